// Package seed builds the byte strings fed into address derivation.
//
// Each builder reads a different window of the base address so that seeds
// produced for different kinds from the same address do not share a prefix:
//
//	Deterministic  base[0:16]  ‖ identifier[0:8] ‖ nonce (u32 LE)   ≤ 28 bytes
//	Temporal       base[8:24]  ‖ timestamp (i64 LE)                 = 24 bytes
//	Hierarchical   parent[12:] ‖ child type ‖ child index (u16 LE)  = 23 bytes
//
// Identifiers are truncated to IdentifierBudget bytes without error. The
// truncation is lossy: two identifiers that agree on their first eight bytes
// produce the same seed.
package seed

import (
	"encoding/binary"

	"github.com/kohla-sky/sample-program/internal/common"
)

// IdentifierBudget is the number of identifier bytes kept by Deterministic.
const IdentifierBudget = 8

// Deterministic builds a seed from an address, an identifier and a nonce.
func Deterministic(base common.Address, identifier string, nonce uint32) ([]byte, error) {
	id := []byte(identifier)
	if len(id) > IdentifierBudget {
		id = id[:IdentifierBudget]
	}

	seed := make([]byte, 0, 16+len(id)+4)
	seed = append(seed, base[:16]...)
	seed = append(seed, id...)
	seed = binary.LittleEndian.AppendUint32(seed, nonce)

	return checkLength(seed)
}

// Hierarchical builds the seed of a child account nested under parent.
func Hierarchical(parent common.Address, childType uint8, childIndex uint16) ([]byte, error) {
	seed := make([]byte, 0, 20+1+2)
	seed = append(seed, parent[12:]...)
	seed = append(seed, childType)
	seed = binary.LittleEndian.AppendUint16(seed, childIndex)

	return checkLength(seed)
}

// Temporal builds a seed for a short-lived account bound to a timestamp.
// The result is always 24 bytes.
func Temporal(base common.Address, timestamp int64) []byte {
	seed := make([]byte, 0, 16+8)
	seed = append(seed, base[8:24]...)
	seed = binary.LittleEndian.AppendUint64(seed, uint64(timestamp))
	return seed
}

// VaultID encodes a vault identifier as a seed part.
func VaultID(id uint64) []byte {
	return binary.LittleEndian.AppendUint64(nil, id)
}

// MetadataType returns the first eight bytes of the hash of a metadata type
// name, used as the last seed part of a metadata address.
func MetadataType(metadataType string) []byte {
	h := HashAccountData([]byte(metadataType))
	return h[:8]
}

func checkLength(seed []byte) ([]byte, error) {
	if len(seed) > common.MaxSeedLength {
		return nil, common.SeedTooLong(len(seed), common.MaxSeedLength)
	}
	return seed, nil
}
