package seed

import (
	"crypto/subtle"
	"encoding/binary"

	"github.com/kohla-sky/sample-program/internal/common"
	crypto "github.com/kohla-sky/sample-program/internal/crypto/common"
)

// HashAccountData returns the content hash of data.
func HashAccountData(data []byte) [32]byte {
	return crypto.Keccak256(data)
}

// AccountIdentifier returns hash(owner ‖ seed).
func AccountIdentifier(owner common.Address, seed []byte) [32]byte {
	return crypto.Keccak256(owner[:], seed)
}

// VerifyAccountIntegrity fails with AccountValidationFailed unless data
// hashes to expected.
func VerifyAccountIntegrity(data []byte, expected [32]byte) error {
	got := HashAccountData(data)
	if subtle.ConstantTimeCompare(got[:], expected[:]) != 1 {
		return common.ErrAccountValidationFailed
	}
	return nil
}

// AccountSalt returns hash(base ‖ nonce LE).
func AccountSalt(base common.Address, nonce uint64) [32]byte {
	return crypto.Keccak256(base[:], binary.LittleEndian.AppendUint64(nil, nonce))
}
