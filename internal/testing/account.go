package testing

import (
	"github.com/kohla-sky/sample-program/internal/common"
	crypto "github.com/kohla-sky/sample-program/internal/crypto/common"
)

// Account is a named test wallet.
type Account struct {
	// Name is a human-readable identifier for the account (used for debugging).
	Name string

	Address common.Address
}

// NewAccount creates a test account whose address is derived from name.
// Using the same name will always produce the same account.
func NewAccount(name string) *Account {
	return &Account{Name: name, Address: AddressFor(name)}
}

// AddressFor returns the deterministic address for name.
func AddressFor(name string) common.Address {
	return common.Address(crypto.Keccak256([]byte("test-account:"), []byte(name)))
}

// ProgramID returns the program address tests run under.
func ProgramID() common.Address {
	return AddressFor("program")
}

// String implements the Stringer interface for debugging.
func (a *Account) String() string {
	return a.Name + " (" + a.Address.String() + ")"
}
