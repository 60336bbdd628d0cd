package common

import (
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
)

// AddressLength is the size of an account address in bytes.
const AddressLength = 32

// Address identifies an account, a program or a derived account slot.
type Address [AddressLength]byte

// ZeroAddress is the default address. It is never a valid account identity.
var ZeroAddress Address

// IsZero reports whether a is the default address.
func (a Address) IsZero() bool {
	return a == ZeroAddress
}

// Bytes returns a copy of the address bytes.
func (a Address) Bytes() []byte {
	b := make([]byte, AddressLength)
	copy(b, a[:])
	return b
}

// String renders the address in base58.
func (a Address) String() string {
	return base58.Encode(a[:])
}

// MarshalText implements encoding.TextMarshaler.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAddress decodes a base58 address.
func ParseAddress(s string) (Address, error) {
	var a Address
	if s == "" {
		return a, errors.New("empty address")
	}
	raw, err := base58.Decode(s)
	if err != nil {
		return a, fmt.Errorf("decode address %q: %w", s, err)
	}
	return AddressFromBytes(raw)
}

// AddressFromBytes copies a 32-byte slice into an Address.
func AddressFromBytes(b []byte) (Address, error) {
	var a Address
	if len(b) != AddressLength {
		return a, fmt.Errorf("address must be %d bytes, got %d", AddressLength, len(b))
	}
	copy(a[:], b)
	return a, nil
}

// IsValidAddress reports whether a can be used as an account identity.
func IsValidAddress(a Address) bool {
	return !a.IsZero()
}

// ValidateNotDefault fails with AccountValidationFailed for the zero address.
func ValidateNotDefault(a Address) error {
	if a.IsZero() {
		return ErrAccountValidationFailed
	}
	return nil
}

// ValidateOwner fails with InsufficientPermissions unless owner == expected.
func ValidateOwner(owner, expected Address) error {
	if owner != expected {
		return ErrInsufficientPermissions
	}
	return nil
}
