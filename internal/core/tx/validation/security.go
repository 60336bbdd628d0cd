package validation

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/kohla-sky/sample-program/internal/common"
	"github.com/kohla-sky/sample-program/internal/core/seed"
)

// SignatureLength is the length of a deterministic signature.
const SignatureLength = 32

// MinSecureDataLength is the smallest buffer ValidateSecurityLevel accepts.
const MinSecureDataLength = 32

//go:generate mockgen -destination=../../../testing/mocks/clock.go -package=mocks github.com/kohla-sky/sample-program/internal/core/tx/validation Clock

// Clock reports the current time in Unix seconds.
type Clock interface {
	Unix() (int64, error)
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() (int64, error)

func (f ClockFunc) Unix() (int64, error) {
	return f()
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Unix() (int64, error) {
	return time.Now().Unix(), nil
}

// GenerateSecurityToken returns hash(account ‖ operation ‖ timestamp_le).
func GenerateSecurityToken(acct common.Address, operation string, timestamp int64) [32]byte {
	var ts [8]byte
	binary.LittleEndian.PutUint64(ts[:], uint64(timestamp))
	return seed.HashAccountData(concat(acct[:], []byte(operation), ts[:]))
}

// VerifySecurityToken checks that token was generated for acct and operation
// at timestamp, and that timestamp is no more than maxAge seconds old.
// Freshness is checked first; the clock is read exactly once. A negative
// maxAge accepts no token.
func VerifySecurityToken(token [32]byte, acct common.Address, operation string, timestamp, maxAge int64, clock Clock) error {
	now, err := clock.Unix()
	if err != nil {
		return common.ErrClockUnavailable
	}
	if maxAge < 0 {
		return common.ErrTokenExpired
	}
	if expired(now, timestamp, maxAge) {
		return common.TokenExpired(tokenAge(now, timestamp), maxAge)
	}
	if !equal32(token, GenerateSecurityToken(acct, operation, timestamp)) {
		return common.ErrInsufficientPermissions
	}
	return nil
}

// expired reports now - timestamp > maxAge without overflowing. maxAge must
// not be negative.
func expired(now, timestamp, maxAge int64) bool {
	if now < math.MinInt64+maxAge {
		// Every timestamp is at least now - maxAge.
		return false
	}
	return timestamp < now-maxAge
}

// tokenAge returns now - timestamp, saturated to the int64 range.
func tokenAge(now, timestamp int64) int64 {
	age := now - timestamp
	if (now^timestamp)&(now^age) < 0 {
		if now < 0 {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	return age
}

// OwnershipProof returns the proof that owner controls acct.
func OwnershipProof(acct, owner common.Address) [32]byte {
	return seed.AccountIdentifier(owner, acct[:])
}

// ValidateOwnershipProof fails with InsufficientPermissions unless proof is
// OwnershipProof(acct, owner).
func ValidateOwnershipProof(acct, owner common.Address, proof [32]byte) error {
	if !equal32(proof, OwnershipProof(acct, owner)) {
		return common.ErrInsufficientPermissions
	}
	return nil
}

// ValidateSecurityLevel requires data of at least 32 bytes containing at
// least requiredEntropy distinct byte values.
func ValidateSecurityLevel(data []byte, requiredEntropy int) error {
	if len(data) < MinSecureDataLength {
		return common.ErrAccountValidationFailed
	}
	var seen [256]bool
	distinct := 0
	for _, b := range data {
		if !seen[b] {
			seen[b] = true
			distinct++
		}
	}
	if distinct < requiredEntropy {
		return common.EntropyTooLow(distinct, requiredEntropy)
	}
	return nil
}

// DeterministicSignature returns hash(message ‖ account).
func DeterministicSignature(message []byte, acct common.Address) [32]byte {
	return seed.HashAccountData(concat(message, acct[:]))
}

// VerifyDeterministicSignature checks sig against DeterministicSignature.
func VerifyDeterministicSignature(message []byte, acct common.Address, sig []byte) error {
	if len(sig) != SignatureLength {
		return common.NewCustom(common.CodeInvalidSignatureLength, uint64(len(sig)), SignatureLength)
	}
	var got [32]byte
	copy(got[:], sig)
	if !equal32(got, DeterministicSignature(message, acct)) {
		return common.ErrInsufficientPermissions
	}
	return nil
}

func concat(parts ...[]byte) []byte {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
