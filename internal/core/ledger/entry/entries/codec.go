// Package entries holds the account records of the ledger program and their
// fixed little-endian binary layout.
//
//	ProgramState  authority[32] ‖ total_supply u64 ‖ is_initialized u8   41 bytes
//	UserAccount   owner[32]     ‖ balance u64      ‖ program_state[32]   72 bytes
//
// Decoding reads the record from the front of the buffer and ignores any
// trailing bytes, since account buffers are allocated at least as large as
// the record. Short or malformed input fails with AccountValidationFailed.
package entries

import (
	"encoding/binary"

	"github.com/kohla-sky/sample-program/internal/common"
	"github.com/kohla-sky/sample-program/internal/core/ledger/entry"
	crypto "github.com/kohla-sky/sample-program/internal/crypto/common"
)

// decoder reads fields in order and remembers the first failure.
type decoder struct {
	data []byte
	off  int
	err  error
}

func (d *decoder) take(n int) []byte {
	if d.err != nil {
		return nil
	}
	if len(d.data)-d.off < n {
		d.err = common.ErrAccountValidationFailed
		return nil
	}
	b := d.data[d.off : d.off+n]
	d.off += n
	return b
}

func (d *decoder) address() common.Address {
	var a common.Address
	copy(a[:], d.take(common.AddressLength))
	return a
}

func (d *decoder) uint64() uint64 {
	b := d.take(8)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

func (d *decoder) bool() bool {
	b := d.take(1)
	if b == nil {
		return false
	}
	switch b[0] {
	case 0:
		return false
	case 1:
		return true
	default:
		d.err = common.ErrAccountValidationFailed
		return false
	}
}

func appendBool(b []byte, v bool) []byte {
	if v {
		return append(b, 1)
	}
	return append(b, 0)
}

func hashEntry(e entry.Entry) ([32]byte, error) {
	data, err := e.MarshalBinary()
	if err != nil {
		return [32]byte{}, err
	}
	return crypto.Keccak256(data), nil
}

// Write encodes e into the front of dst. dst must be at least e.Size() bytes;
// nothing is copied when it is not.
func Write(dst []byte, e entry.Entry) error {
	data, err := e.MarshalBinary()
	if err != nil {
		return err
	}
	if len(dst) < len(data) {
		return common.ErrAccountValidationFailed
	}
	copy(dst, data)
	return nil
}
