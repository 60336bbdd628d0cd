package validation

import (
	"crypto/subtle"

	"github.com/kohla-sky/sample-program/internal/common"
	"github.com/kohla-sky/sample-program/internal/core/account"
	"github.com/kohla-sky/sample-program/internal/core/ledger/keylet"
)

// Exists requires a non-default key and a non-empty data buffer.
func Exists() Check {
	return NewCheck("exists", func(a *account.Info) error {
		return a.Validate()
	})
}

// IsSigner requires the account to have signed the instruction.
func IsSigner() Check {
	return NewCheck("signer", func(a *account.Info) error {
		if !a.IsSigner {
			return common.ErrInsufficientPermissions
		}
		return nil
	})
}

// IsWritable requires the account to be writable.
func IsWritable() Check {
	return NewCheck("writable", func(a *account.Info) error {
		if !a.IsWritable {
			return common.ErrInsufficientPermissions
		}
		return nil
	})
}

// OwnerIs requires the account's owning program to be expected.
func OwnerIs(expected common.Address) Check {
	return NewCheck("owner", func(a *account.Info) error {
		return common.ValidateOwner(a.Owner, expected)
	})
}

// DerivationMatches requires the account key to equal a derived address.
func DerivationMatches(expected keylet.Keylet) Check {
	return NewCheck("derivation", func(a *account.Info) error {
		return keylet.Verify(a.Key, expected)
	})
}

// OwnershipProofMatches requires proof to be the ownership proof of owner
// over the account.
func OwnershipProofMatches(owner common.Address, proof [32]byte) Check {
	return NewCheck("ownership proof", func(a *account.Info) error {
		return ValidateOwnershipProof(a.Key, owner, proof)
	})
}

// EntropyAtLeast requires the account data to contain at least threshold
// distinct byte values.
func EntropyAtLeast(threshold int) Check {
	return NewCheck("entropy", func(a *account.Info) error {
		return ValidateSecurityLevel(a.Data, threshold)
	})
}

// SecurityTokenFresh requires token to be a current security token for the
// account and operation.
func SecurityTokenFresh(token [32]byte, operation string, timestamp, maxAge int64, clock Clock) Check {
	return NewCheck("security token", func(a *account.Info) error {
		return VerifySecurityToken(token, a.Key, operation, timestamp, maxAge, clock)
	})
}

func equal32(a, b [32]byte) bool {
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}
