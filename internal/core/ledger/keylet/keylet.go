// Package keylet derives the addresses of program-owned accounts.
//
// A derived address is sha256(seed₁ ‖ … ‖ seedₙ ‖ bump ‖ authority ‖
// "ProgramDerivedAddress") for the largest bump in [1, 255] whose digest is
// not a valid ed25519 point, so no private key exists for it. The seed order
// of every kind below is part of its contract:
//
//	ProgramState  ["program_state"]
//	User          ["user", owner]
//	Vault         ["vault", owner, vault_id (u64 LE)]
//	Metadata      ["metadata", account, keccak(type)[0:8]]
//	Secondary     ["secondary", primary, path]
//	Base          [base, seed]
//
// Addresses supplied by a caller are never trusted: Verify and
// VerifyDerivation recompute the derivation and compare.
package keylet

import (
	"crypto/sha256"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/kohla-sky/sample-program/internal/common"
	"github.com/kohla-sky/sample-program/internal/core/ledger/entry"
	"github.com/kohla-sky/sample-program/internal/core/seed"
)

// Namespace tags for derived accounts.
var (
	nsUser      = []byte("user")
	nsVault     = []byte("vault")
	nsMetadata  = []byte("metadata")
	nsSecondary = []byte("secondary")
)

const pdaMarker = "ProgramDerivedAddress"

// Keylet is a derived account address together with the bump that produced it.
type Keylet struct {
	Type entry.Type
	Key  common.Address
	Bump uint8
}

func (k Keylet) String() string {
	return fmt.Sprintf("%s(%s, bump=%d)", k.Type, k.Key, k.Bump)
}

// CreateAddress hashes seeds and authority into an address. It fails when a
// seed is too long, when there are too many seeds, or when the digest lies on
// the ed25519 curve.
func CreateAddress(seeds [][]byte, authority common.Address) (common.Address, error) {
	if err := checkSeeds(seeds); err != nil {
		return common.ZeroAddress, err
	}
	addr := hashSeeds(seeds, authority)
	if isOnCurve(addr) {
		return common.ZeroAddress, common.ErrInvalidCalculation
	}
	return addr, nil
}

// Derive finds the canonical address for namespace and parts under authority.
// An empty namespace is omitted from the seeds. The result is a pure function
// of the inputs: the bump is chosen here, never by the caller.
func Derive(t entry.Type, namespace []byte, authority common.Address, parts ...[]byte) (Keylet, error) {
	seeds, err := derivationSeeds(namespace, parts)
	if err != nil {
		return Keylet{}, err
	}

	bump := []byte{0}
	withBump := append(seeds, bump)
	for b := 255; b > 0; b-- {
		bump[0] = byte(b)
		addr := hashSeeds(withBump, authority)
		if isOnCurve(addr) {
			continue
		}
		if addr.IsZero() {
			return Keylet{}, common.ErrAccountValidationFailed
		}
		return Keylet{Type: t, Key: addr, Bump: byte(b)}, nil
	}
	return Keylet{}, common.ErrInvalidCalculation
}

// ProgramState returns the keylet of the singleton program state account.
func ProgramState(authority common.Address) (Keylet, error) {
	return Derive(entry.TypeProgramState, common.ProgramStateSeed, authority)
}

// User returns the keylet of owner's user account.
func User(owner, authority common.Address) (Keylet, error) {
	if err := common.ValidateNotDefault(owner); err != nil {
		return Keylet{}, err
	}
	return Derive(entry.TypeUserAccount, nsUser, authority, owner[:])
}

// Vault returns the keylet of owner's vault with the given identifier.
func Vault(owner common.Address, vaultID uint64, authority common.Address) (Keylet, error) {
	return Derive(entry.TypeVault, nsVault, authority, owner[:], seed.VaultID(vaultID))
}

// Metadata returns the keylet of a named metadata record for account.
func Metadata(account common.Address, metadataType string, authority common.Address) (Keylet, error) {
	return Derive(entry.TypeMetadata, nsMetadata, authority, account[:], seed.MetadataType(metadataType))
}

// Secondary returns the keylet of an account derived from primary along path.
func Secondary(primary common.Address, path []byte, authority common.Address) (Keylet, error) {
	if len(path) > common.MaxSeedLength {
		return Keylet{}, common.SeedTooLong(len(path), common.MaxSeedLength)
	}
	return Derive(entry.TypeSecondary, nsSecondary, authority, primary[:], path)
}

// Base returns the keylet derived from [base, seed] with no namespace tag.
func Base(base common.Address, s []byte, authority common.Address) (Keylet, error) {
	return Derive(entry.TypeDerived, nil, authority, base[:], s)
}

// Verify fails with AccountValidationFailed unless candidate is expected's address.
func Verify(candidate common.Address, expected Keylet) error {
	if candidate != expected.Key {
		return common.ErrAccountValidationFailed
	}
	return nil
}

// VerifyDerivation recomputes Base(base, seed, authority) and compares it
// with candidate.
func VerifyDerivation(candidate, base common.Address, s []byte, authority common.Address) error {
	expected, err := Base(base, s, authority)
	if err != nil {
		return err
	}
	return Verify(candidate, expected)
}

// derivationSeeds assembles and bounds the seeds Derive hashes, leaving room
// for the bump.
func derivationSeeds(namespace []byte, parts [][]byte) ([][]byte, error) {
	seeds := make([][]byte, 0, len(parts)+2)
	if len(namespace) > 0 {
		seeds = append(seeds, namespace)
	}
	seeds = append(seeds, parts...)

	// The bump occupies one seed slot.
	if len(seeds)+1 > common.MaxSeeds {
		return nil, common.NewCustom(common.CodeTooManySeeds, uint64(len(seeds)+1), common.MaxSeeds)
	}
	if err := checkSeeds(seeds); err != nil {
		return nil, err
	}
	return seeds, nil
}

func checkSeeds(seeds [][]byte) error {
	if len(seeds) > common.MaxSeeds {
		return common.NewCustom(common.CodeTooManySeeds, uint64(len(seeds)), common.MaxSeeds)
	}
	for _, s := range seeds {
		if len(s) > common.MaxSeedLength {
			return common.SeedTooLong(len(s), common.MaxSeedLength)
		}
	}
	return nil
}

func hashSeeds(seeds [][]byte, authority common.Address) common.Address {
	h := sha256.New()
	for _, s := range seeds {
		h.Write(s)
	}
	h.Write(authority[:])
	h.Write([]byte(pdaMarker))

	var addr common.Address
	h.Sum(addr[:0])
	return addr
}

func isOnCurve(addr common.Address) bool {
	_, err := new(edwards25519.Point).SetBytes(addr[:])
	return err == nil
}
