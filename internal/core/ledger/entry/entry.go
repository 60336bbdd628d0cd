package entry

import (
	"encoding"
	"fmt"
)

// Type represents a ledger entry type
type Type uint16

// Known entry types. Only ProgramState and UserAccount carry records; the
// remaining types tag derived addresses.
const (
	TypeProgramState Type = 0x0050 // Program state (singleton)
	TypeUserAccount  Type = 0x0055 // User balance account
	TypeVault        Type = 0x0056 // Owner vault slot
	TypeMetadata     Type = 0x004d // Metadata record
	TypeSecondary    Type = 0x0053 // Account derived from a primary account
	TypeDerived      Type = 0x0044 // Untagged [base, seed] derivation
)

// String returns the string representation of the Type
func (t Type) String() string {
	switch t {
	case TypeProgramState:
		return "ProgramState"
	case TypeUserAccount:
		return "UserAccount"
	case TypeVault:
		return "Vault"
	case TypeMetadata:
		return "Metadata"
	case TypeSecondary:
		return "Secondary"
	case TypeDerived:
		return "Derived"
	default:
		return fmt.Sprintf("Unknown(%#x)", uint16(t))
	}
}

// Entry defines the interface for all ledger entries
type Entry interface {
	encoding.BinaryMarshaler

	Type() Type
	Validate() error
	Hash() ([32]byte, error)

	// Size is the encoded length in bytes.
	Size() int
}
