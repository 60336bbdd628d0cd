package entries

import (
	"encoding/binary"

	"github.com/kohla-sky/sample-program/internal/common"
	"github.com/kohla-sky/sample-program/internal/core/ledger/entry"
)

// UserAccountSize is the encoded length of a UserAccount.
const UserAccountSize = common.AddressLength + 8 + common.AddressLength

// UserAccount holds one owner's balance. Owner and ProgramState never change
// after creation; Balance changes only through transfers.
type UserAccount struct {
	Owner        common.Address
	Balance      uint64
	ProgramState common.Address
}

func (u *UserAccount) Type() entry.Type {
	return entry.TypeUserAccount
}

func (u *UserAccount) Size() int {
	return UserAccountSize
}

func (u *UserAccount) Validate() error {
	if u.Owner.IsZero() || u.ProgramState.IsZero() {
		return common.ErrAccountValidationFailed
	}
	return nil
}

func (u *UserAccount) Hash() ([32]byte, error) {
	return hashEntry(u)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (u *UserAccount) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, UserAccountSize)
	b = append(b, u.Owner[:]...)
	b = binary.LittleEndian.AppendUint64(b, u.Balance)
	b = append(b, u.ProgramState[:]...)
	return b, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (u *UserAccount) UnmarshalBinary(data []byte) error {
	d := decoder{data: data}
	decoded := UserAccount{
		Owner:        d.address(),
		Balance:      d.uint64(),
		ProgramState: d.address(),
	}
	if d.err != nil {
		return d.err
	}
	*u = decoded
	return nil
}

// DecodeUserAccount decodes a UserAccount from the front of data.
func DecodeUserAccount(data []byte) (*UserAccount, error) {
	var u UserAccount
	if err := u.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return &u, nil
}
