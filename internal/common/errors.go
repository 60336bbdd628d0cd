// Package common holds the error taxonomy, address type and constants shared
// by every layer of the ledger program.
package common

import (
	"fmt"
)

// Kind is the coarse error category reported to the instruction dispatcher.
type Kind uint8

const (
	KindInvalidCalculation Kind = iota + 1
	KindAccountValidationFailed
	KindInsufficientPermissions
	KindCustom
)

// String returns the string representation of the Kind
func (k Kind) String() string {
	switch k {
	case KindInvalidCalculation:
		return "InvalidCalculation"
	case KindAccountValidationFailed:
		return "AccountValidationFailed"
	case KindInsufficientPermissions:
		return "InsufficientPermissions"
	case KindCustom:
		return "Custom"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(k))
	}
}

// Code narrows a Custom error to one of a closed set of conditions.
// Errors of the three structured kinds carry CodeNone.
type Code uint8

const (
	CodeNone Code = iota
	CodeSeedTooLong
	CodeTooManySeeds
	CodeEntropyTooLow
	CodeTokenExpired
	CodeClockUnavailable
	CodeBasisPointsOutOfRange
	CodePrecisionOutOfRange
	CodePercentageOutOfRange
	CodeMultiplicationOverflow
	CodeInvalidSignatureLength
	CodeMalformedInstruction
	CodeUnknownInstruction
	CodeNotEnoughAccounts
	CodeInsufficientFunds
	CodeAlreadyInitialized
)

var codeNames = map[Code]string{
	CodeSeedTooLong:            "seed too long",
	CodeTooManySeeds:           "too many seeds",
	CodeEntropyTooLow:          "account entropy too low",
	CodeTokenExpired:           "security token expired",
	CodeClockUnavailable:       "clock unavailable",
	CodeBasisPointsOutOfRange:  "basis points out of range",
	CodePrecisionOutOfRange:    "decimal precision out of range",
	CodePercentageOutOfRange:   "percentage out of range",
	CodeMultiplicationOverflow: "multiplication would overflow",
	CodeInvalidSignatureLength: "invalid signature length",
	CodeMalformedInstruction:   "malformed instruction",
	CodeUnknownInstruction:     "unknown instruction",
	CodeNotEnoughAccounts:      "not enough account keys",
	CodeInsufficientFunds:      "insufficient funds",
	CodeAlreadyInitialized:     "account already initialized",
}

// String returns the string representation of the Code
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("code(%d)", uint8(c))
}

// Error is the single error type produced by the ledger core.
//
// Got and Limit are populated for the Custom codes that compare a measured
// value against a bound (seed length, entropy, token age, balance). Callers
// match with errors.Is against the sentinels below or inspect the fields
// through errors.As; the message text is never meant to be parsed.
type Error struct {
	Kind  Kind
	Code  Code
	Got   uint64
	Limit uint64
}

func (e *Error) Error() string {
	if e.Kind != KindCustom {
		return e.Kind.String()
	}
	switch e.Code {
	case CodeSeedTooLong, CodeTooManySeeds:
		return fmt.Sprintf("%s: %d exceeds %d", e.Code, e.Got, e.Limit)
	case CodeEntropyTooLow:
		return fmt.Sprintf("%s: %d below required %d", e.Code, e.Got, e.Limit)
	case CodeTokenExpired:
		return fmt.Sprintf("%s: age %ds exceeds %ds", e.Code, e.Got, e.Limit)
	case CodeBasisPointsOutOfRange, CodePrecisionOutOfRange:
		return fmt.Sprintf("%s: %d exceeds maximum %d", e.Code, e.Got, e.Limit)
	case CodeInsufficientFunds:
		return fmt.Sprintf("%s: have %d, need %d", e.Code, e.Got, e.Limit)
	case CodeNotEnoughAccounts, CodeInvalidSignatureLength:
		return fmt.Sprintf("%s: got %d, want %d", e.Code, e.Got, e.Limit)
	case CodeUnknownInstruction:
		return fmt.Sprintf("%s: tag %d", e.Code, e.Got)
	default:
		return e.Code.String()
	}
}

// Is reports whether target is an *Error of the same kind and, when the
// target names a code, the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Code == CodeNone || t.Code == e.Code
}

var (
	ErrInvalidCalculation      = &Error{Kind: KindInvalidCalculation}
	ErrAccountValidationFailed = &Error{Kind: KindAccountValidationFailed}
	ErrInsufficientPermissions = &Error{Kind: KindInsufficientPermissions}

	// ErrCustom matches every Custom error regardless of code.
	ErrCustom = &Error{Kind: KindCustom}

	ErrSeedTooLong            = custom(CodeSeedTooLong)
	ErrTooManySeeds           = custom(CodeTooManySeeds)
	ErrEntropyTooLow          = custom(CodeEntropyTooLow)
	ErrTokenExpired           = custom(CodeTokenExpired)
	ErrClockUnavailable       = custom(CodeClockUnavailable)
	ErrBasisPointsOutOfRange  = custom(CodeBasisPointsOutOfRange)
	ErrPrecisionOutOfRange    = custom(CodePrecisionOutOfRange)
	ErrPercentageOutOfRange   = custom(CodePercentageOutOfRange)
	ErrMultiplicationOverflow = custom(CodeMultiplicationOverflow)
	ErrInvalidSignatureLength = custom(CodeInvalidSignatureLength)
	ErrMalformedInstruction   = custom(CodeMalformedInstruction)
	ErrUnknownInstruction     = custom(CodeUnknownInstruction)
	ErrNotEnoughAccounts      = custom(CodeNotEnoughAccounts)
	ErrInsufficientFunds      = custom(CodeInsufficientFunds)
	ErrAlreadyInitialized     = custom(CodeAlreadyInitialized)
)

func custom(code Code) *Error {
	return &Error{Kind: KindCustom, Code: code}
}

// NewCustom builds a Custom error carrying a measured value and its bound.
func NewCustom(code Code, got, limit uint64) *Error {
	return &Error{Kind: KindCustom, Code: code, Got: got, Limit: limit}
}

// SeedTooLong reports a seed or seed part of n bytes against max.
func SeedTooLong(n, max int) *Error {
	return NewCustom(CodeSeedTooLong, uint64(n), uint64(max))
}

// EntropyTooLow reports a distinct-byte count below the required threshold.
func EntropyTooLow(got, want int) *Error {
	return NewCustom(CodeEntropyTooLow, uint64(got), uint64(want))
}

// TokenExpired reports a security token whose age exceeds maxAge seconds.
func TokenExpired(age, maxAge int64) *Error {
	return NewCustom(CodeTokenExpired, uint64(age), uint64(maxAge))
}

// InsufficientFunds reports a balance that cannot cover need.
func InsufficientFunds(have, need uint64) *Error {
	return NewCustom(CodeInsufficientFunds, have, need)
}
