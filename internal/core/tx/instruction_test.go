package tx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kohla-sky/sample-program/internal/common"
)

func TestDecodeInstruction(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		want Instruction
	}{
		{"initialize", []byte{0, 5, 0, 0, 0, 0, 0, 0, 0}, &Initialize{InitialAmount: 5}},
		{"create user", []byte{1, 3, 0, 0, 0, 0, 0, 0, 0}, &CreateUserAccount{InitialBalance: 3}},
		{"transfer", []byte{2, 100, 0, 0, 0, 0, 0, 0, 0, 0xf4, 0x01}, &TransferWithFee{Amount: 100, FeeBasisPoints: 500}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeInstruction(tt.buf)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			enc, err := got.MarshalBinary()
			require.NoError(t, err)
			assert.Equal(t, tt.buf, enc)
		})
	}
}

func TestDecodeInstruction_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		buf     []byte
		wantErr error
	}{
		{"empty", nil, common.ErrMalformedInstruction},
		{"short initialize", []byte{0, 1, 2}, common.ErrMalformedInstruction},
		{"trailing byte", []byte{1, 0, 0, 0, 0, 0, 0, 0, 0, 9}, common.ErrMalformedInstruction},
		{"transfer without fee", []byte{2, 1, 0, 0, 0, 0, 0, 0, 0}, common.ErrMalformedInstruction},
		{"unknown tag", []byte{7}, common.ErrUnknownInstruction},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeInstruction(tt.buf)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestInstructionType_String(t *testing.T) {
	assert.Equal(t, "Initialize", TypeInitialize.String())
	assert.Equal(t, "TransferWithFee", TypeTransferWithFee.String())
	assert.Equal(t, "Unknown(9)", InstructionType(9).String())
}

func TestResultFromError(t *testing.T) {
	tests := []struct {
		err  error
		want Result
	}{
		{nil, TesSUCCESS},
		{common.ErrInvalidCalculation, TefBAD_CALCULATION},
		{common.ErrAccountValidationFailed, TefBAD_ACCOUNT},
		{common.ErrInsufficientPermissions, TefNO_PERMISSION},
		{common.InsufficientFunds(1, 2), TefUNFUNDED},
		{common.TokenExpired(61, 60), TefEXPIRED},
		{common.ErrClockUnavailable, TefCLOCK},
		{common.ErrMalformedInstruction, TemMALFORMED},
		{common.ErrUnknownInstruction, TemUNKNOWN},
		{common.SeedTooLong(33, 32), TemBAD_SEED},
		{assert.AnError, TefFAILURE},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, ResultFromError(tt.err))
		})
	}
}

func TestResult(t *testing.T) {
	assert.True(t, TesSUCCESS.IsSuccess())
	assert.True(t, TemMALFORMED.IsTem())
	assert.False(t, TemMALFORMED.IsTef())
	assert.True(t, TefUNFUNDED.IsTef())
	assert.Equal(t, "tefUNFUNDED", TefUNFUNDED.String())
	assert.Equal(t, "Result(5)", Result(5).String())
	assert.NotEmpty(t, TefUNFUNDED.Message())
}
