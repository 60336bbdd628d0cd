// Package account defines the account handle passed to ledger transitions
// and the helpers for reading and writing records through it.
package account

import (
	"encoding"
	"fmt"

	"github.com/kohla-sky/sample-program/internal/common"
	"github.com/kohla-sky/sample-program/internal/core/ledger/entry"
	"github.com/kohla-sky/sample-program/internal/core/ledger/entry/entries"
)

// Info is a handle to one account supplied with an instruction.
// Data is the account's mutable buffer; transitions write records into it
// in place and never resize it.
type Info struct {
	Key        common.Address
	Owner      common.Address
	IsSigner   bool
	IsWritable bool
	Data       []byte
}

// DataIsEmpty reports whether the account holds no data.
func (a *Info) DataIsEmpty() bool {
	return len(a.Data) == 0
}

// Validate checks the handle is usable: a non-default key and a non-empty
// buffer.
func (a *Info) Validate() error {
	if err := common.ValidateNotDefault(a.Key); err != nil {
		return err
	}
	if a.DataIsEmpty() {
		return common.ErrAccountValidationFailed
	}
	return nil
}

// Clone returns a deep copy of the handle.
func (a *Info) Clone() *Info {
	c := *a
	c.Data = append([]byte(nil), a.Data...)
	return &c
}

func (a *Info) String() string {
	return fmt.Sprintf("%s(signer=%t, writable=%t, len=%d)", a.Key, a.IsSigner, a.IsWritable, len(a.Data))
}

// Decode validates the handle and decodes its data into v.
func Decode(a *Info, v encoding.BinaryUnmarshaler) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := v.UnmarshalBinary(a.Data); err != nil {
		return common.ErrAccountValidationFailed
	}
	return nil
}

// ProgramState decodes the program state record held by a.
func ProgramState(a *Info) (*entries.ProgramState, error) {
	var p entries.ProgramState
	if err := Decode(a, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UserAccount decodes the user account record held by a.
func UserAccount(a *Info) (*entries.UserAccount, error) {
	var u entries.UserAccount
	if err := Decode(a, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Size returns the encoded length of e.
func Size(e entry.Entry) (int, error) {
	data, err := e.MarshalBinary()
	if err != nil {
		return 0, common.ErrInvalidCalculation
	}
	return len(data), nil
}

// ValidateSpace fails unless a's buffer holds at least required bytes.
func ValidateSpace(a *Info, required int) error {
	if len(a.Data) < required {
		return common.ErrAccountValidationFailed
	}
	return nil
}

// Store encodes e into a's buffer. Nothing is written when the buffer is too
// small.
func Store(a *Info, e entry.Entry) error {
	size, err := Size(e)
	if err != nil {
		return err
	}
	if err := ValidateSpace(a, size); err != nil {
		return err
	}
	return entries.Write(a.Data, e)
}
