package entries

import (
	"encoding/binary"

	"github.com/kohla-sky/sample-program/internal/common"
	"github.com/kohla-sky/sample-program/internal/core/ledger/entry"
)

// ProgramStateSize is the encoded length of a ProgramState.
const ProgramStateSize = common.AddressLength + 8 + 1

// ProgramState is the singleton record created by Initialize.
type ProgramState struct {
	Authority     common.Address
	TotalSupply   uint64
	IsInitialized bool
}

func (p *ProgramState) Type() entry.Type {
	return entry.TypeProgramState
}

func (p *ProgramState) Size() int {
	return ProgramStateSize
}

func (p *ProgramState) Validate() error {
	if p.Authority.IsZero() {
		return common.ErrAccountValidationFailed
	}
	return nil
}

func (p *ProgramState) Hash() ([32]byte, error) {
	return hashEntry(p)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (p *ProgramState) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, ProgramStateSize)
	b = append(b, p.Authority[:]...)
	b = binary.LittleEndian.AppendUint64(b, p.TotalSupply)
	b = appendBool(b, p.IsInitialized)
	return b, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p *ProgramState) UnmarshalBinary(data []byte) error {
	d := decoder{data: data}
	decoded := ProgramState{
		Authority:     d.address(),
		TotalSupply:   d.uint64(),
		IsInitialized: d.bool(),
	}
	if d.err != nil {
		return d.err
	}
	*p = decoded
	return nil
}

// DecodeProgramState decodes a ProgramState from the front of data.
func DecodeProgramState(data []byte) (*ProgramState, error) {
	var p ProgramState
	if err := p.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return &p, nil
}
