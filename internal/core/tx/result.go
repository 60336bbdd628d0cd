package tx

import (
	"errors"
	"fmt"

	"github.com/kohla-sky/sample-program/internal/common"
)

// Result represents an instruction result code.
type Result int

// Result codes follow the tes/tem/tef ranges:
// tes (0): success
// tef (-199 to -100): failed against account state, nothing written
// tem (-299 to -200): malformed instruction or arguments
const (
	TesSUCCESS Result = 0

	TefFAILURE          Result = -199
	TefBAD_ACCOUNT      Result = -198
	TefNO_PERMISSION    Result = -197
	TefUNFUNDED         Result = -196
	TefEXPIRED          Result = -195
	TefCLOCK            Result = -194
	TefBAD_CALCULATION  Result = -193
	TefLOW_ENTROPY      Result = -192
	TefNOT_ENOUGH_ACCTS Result = -191
	TefALREADY          Result = -190

	TemMALFORMED      Result = -299
	TemUNKNOWN        Result = -298
	TemBAD_FEE        Result = -297
	TemBAD_PRECISION  Result = -296
	TemBAD_SEED       Result = -295
	TemBAD_SIGNATURE  Result = -294
	TemBAD_PERCENTAGE Result = -293
)

var resultNames = map[Result]string{
	TesSUCCESS:          "tesSUCCESS",
	TefFAILURE:          "tefFAILURE",
	TefBAD_ACCOUNT:      "tefBAD_ACCOUNT",
	TefNO_PERMISSION:    "tefNO_PERMISSION",
	TefUNFUNDED:         "tefUNFUNDED",
	TefEXPIRED:          "tefEXPIRED",
	TefCLOCK:            "tefCLOCK",
	TefBAD_CALCULATION:  "tefBAD_CALCULATION",
	TefLOW_ENTROPY:      "tefLOW_ENTROPY",
	TefNOT_ENOUGH_ACCTS: "tefNOT_ENOUGH_ACCTS",
	TefALREADY:          "tefALREADY",
	TemMALFORMED:        "temMALFORMED",
	TemUNKNOWN:          "temUNKNOWN",
	TemBAD_FEE:          "temBAD_FEE",
	TemBAD_PRECISION:    "temBAD_PRECISION",
	TemBAD_SEED:         "temBAD_SEED",
	TemBAD_SIGNATURE:    "temBAD_SIGNATURE",
	TemBAD_PERCENTAGE:   "temBAD_PERCENTAGE",
}

// String returns the result token, e.g. "tesSUCCESS".
func (r Result) String() string {
	if name, ok := resultNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Result(%d)", int(r))
}

// IsSuccess returns true if the result indicates success.
func (r Result) IsSuccess() bool {
	return r == TesSUCCESS
}

// IsTem returns true for malformed instructions.
func (r Result) IsTem() bool {
	return r >= -299 && r <= -200
}

// IsTef returns true for failures against account state.
func (r Result) IsTef() bool {
	return r >= -199 && r <= -100
}

// Message returns a human-readable message for the result.
func (r Result) Message() string {
	switch r {
	case TesSUCCESS:
		return "The instruction was applied."
	case TefBAD_ACCOUNT:
		return "Account failed validation."
	case TefNO_PERMISSION:
		return "Missing signature, write access or ownership."
	case TefUNFUNDED:
		return "Insufficient balance for amount plus fee."
	case TefEXPIRED:
		return "Security token expired."
	case TefCLOCK:
		return "Clock unavailable."
	case TefBAD_CALCULATION:
		return "Arithmetic overflow or invalid calculation."
	case TefLOW_ENTROPY:
		return "Account data entropy below threshold."
	case TefNOT_ENOUGH_ACCTS:
		return "Not enough accounts supplied."
	case TefALREADY:
		return "Account already initialized."
	case TemMALFORMED:
		return "Malformed instruction."
	case TemUNKNOWN:
		return "Unknown instruction."
	case TemBAD_FEE:
		return "Fee basis points out of range."
	case TemBAD_PRECISION:
		return "Precision out of range."
	case TemBAD_SEED:
		return "Seed material out of bounds."
	case TemBAD_SIGNATURE:
		return "Malformed signature."
	case TemBAD_PERCENTAGE:
		return "Percentage out of range."
	default:
		return "Instruction failed."
	}
}

// ResultFromError maps an error from the engine to a result code.
func ResultFromError(err error) Result {
	if err == nil {
		return TesSUCCESS
	}
	var e *common.Error
	if !errors.As(err, &e) {
		return TefFAILURE
	}
	switch e.Kind {
	case common.KindInvalidCalculation:
		return TefBAD_CALCULATION
	case common.KindAccountValidationFailed:
		return TefBAD_ACCOUNT
	case common.KindInsufficientPermissions:
		return TefNO_PERMISSION
	}
	switch e.Code {
	case common.CodeInsufficientFunds:
		return TefUNFUNDED
	case common.CodeTokenExpired:
		return TefEXPIRED
	case common.CodeClockUnavailable:
		return TefCLOCK
	case common.CodeEntropyTooLow:
		return TefLOW_ENTROPY
	case common.CodeNotEnoughAccounts:
		return TefNOT_ENOUGH_ACCTS
	case common.CodeAlreadyInitialized:
		return TefALREADY
	case common.CodeMalformedInstruction:
		return TemMALFORMED
	case common.CodeUnknownInstruction:
		return TemUNKNOWN
	case common.CodeBasisPointsOutOfRange:
		return TemBAD_FEE
	case common.CodePrecisionOutOfRange:
		return TemBAD_PRECISION
	case common.CodePercentageOutOfRange:
		return TemBAD_PERCENTAGE
	case common.CodeMultiplicationOverflow:
		return TefBAD_CALCULATION
	case common.CodeSeedTooLong, common.CodeTooManySeeds:
		return TemBAD_SEED
	case common.CodeInvalidSignatureLength:
		return TemBAD_SIGNATURE
	}
	return TefFAILURE
}
