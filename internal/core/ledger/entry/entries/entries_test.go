package entries

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kohla-sky/sample-program/internal/common"
	"github.com/kohla-sky/sample-program/internal/core/ledger/entry"
	crypto "github.com/kohla-sky/sample-program/internal/crypto/common"
)

func addr(b byte) common.Address {
	var a common.Address
	for i := range a {
		a[i] = b
	}
	return a
}

func TestProgramState_Type(t *testing.T) {
	p := &ProgramState{}
	assert.Equal(t, entry.TypeProgramState, p.Type())
	assert.Equal(t, "ProgramState", p.Type().String())
	assert.Equal(t, 41, p.Size())
}

func TestProgramState_Layout(t *testing.T) {
	p := &ProgramState{Authority: addr(0xaa), TotalSupply: 5_000_000, IsInitialized: true}
	data, err := p.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, ProgramStateSize)

	assert.Equal(t, addr(0xaa).Bytes(), data[:32])
	assert.Equal(t, uint64(5_000_000), binary.LittleEndian.Uint64(data[32:40]))
	assert.Equal(t, byte(1), data[40])

	decoded, err := DecodeProgramState(data)
	require.NoError(t, err)
	assert.Equal(t, p, decoded)
}

func TestProgramState_Decode(t *testing.T) {
	valid, _ := (&ProgramState{Authority: addr(1), TotalSupply: 7}).MarshalBinary()

	t.Run("trailing bytes ignored", func(t *testing.T) {
		buf := append(append([]byte{}, valid...), 0xff, 0xff, 0xff)
		p, err := DecodeProgramState(buf)
		require.NoError(t, err)
		assert.Equal(t, uint64(7), p.TotalSupply)
		assert.False(t, p.IsInitialized)
	})

	t.Run("short buffer", func(t *testing.T) {
		_, err := DecodeProgramState(valid[:40])
		assert.ErrorIs(t, err, common.ErrAccountValidationFailed)
	})

	t.Run("empty buffer", func(t *testing.T) {
		_, err := DecodeProgramState(nil)
		assert.ErrorIs(t, err, common.ErrAccountValidationFailed)
	})

	t.Run("invalid bool", func(t *testing.T) {
		buf := append([]byte{}, valid...)
		buf[40] = 2
		_, err := DecodeProgramState(buf)
		assert.ErrorIs(t, err, common.ErrAccountValidationFailed)
	})

	t.Run("failed decode leaves receiver untouched", func(t *testing.T) {
		p := ProgramState{TotalSupply: 99}
		require.Error(t, p.UnmarshalBinary(valid[:10]))
		assert.Equal(t, uint64(99), p.TotalSupply)
	})
}

func TestProgramState_Validate(t *testing.T) {
	assert.ErrorIs(t, (&ProgramState{}).Validate(), common.ErrAccountValidationFailed)
	assert.NoError(t, (&ProgramState{Authority: addr(3)}).Validate())
}

func TestUserAccount_Layout(t *testing.T) {
	u := &UserAccount{Owner: addr(0x11), Balance: 3000, ProgramState: addr(0x22)}
	data, err := u.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, UserAccountSize)
	assert.Equal(t, 72, u.Size())

	assert.Equal(t, addr(0x11).Bytes(), data[:32])
	assert.Equal(t, uint64(3000), binary.LittleEndian.Uint64(data[32:40]))
	assert.Equal(t, addr(0x22).Bytes(), data[40:72])

	decoded, err := DecodeUserAccount(data)
	require.NoError(t, err)
	assert.Equal(t, u, decoded)
}

func TestUserAccount_Decode(t *testing.T) {
	valid, _ := (&UserAccount{Owner: addr(1), Balance: 1, ProgramState: addr(2)}).MarshalBinary()

	_, err := DecodeUserAccount(valid[:71])
	assert.ErrorIs(t, err, common.ErrAccountValidationFailed)

	u, err := DecodeUserAccount(append(append([]byte{}, valid...), make([]byte, 8)...))
	require.NoError(t, err)
	assert.Equal(t, addr(2), u.ProgramState)
}

func TestUserAccount_Validate(t *testing.T) {
	tests := []struct {
		name    string
		account UserAccount
		wantErr bool
	}{
		{"valid", UserAccount{Owner: addr(1), ProgramState: addr(2)}, false},
		{"zero owner", UserAccount{ProgramState: addr(2)}, true},
		{"zero program state", UserAccount{Owner: addr(1)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.account.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, common.ErrAccountValidationFailed)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestHash(t *testing.T) {
	u := &UserAccount{Owner: addr(1), Balance: 10, ProgramState: addr(2)}
	data, _ := u.MarshalBinary()

	h, err := u.Hash()
	require.NoError(t, err)
	assert.Equal(t, crypto.Keccak256(data), h)

	u.Balance++
	h2, err := u.Hash()
	require.NoError(t, err)
	assert.NotEqual(t, h, h2)
}

func TestWrite(t *testing.T) {
	p := &ProgramState{Authority: addr(9), TotalSupply: 1, IsInitialized: true}

	t.Run("exact size", func(t *testing.T) {
		buf := make([]byte, ProgramStateSize)
		require.NoError(t, Write(buf, p))
		got, err := DecodeProgramState(buf)
		require.NoError(t, err)
		assert.Equal(t, p, got)
	})

	t.Run("larger buffer keeps tail", func(t *testing.T) {
		buf := make([]byte, ProgramStateSize+4)
		buf[ProgramStateSize] = 0xee
		require.NoError(t, Write(buf, p))
		assert.Equal(t, byte(0xee), buf[ProgramStateSize])
	})

	t.Run("too small", func(t *testing.T) {
		buf := make([]byte, ProgramStateSize-1)
		err := Write(buf, p)
		assert.ErrorIs(t, err, common.ErrAccountValidationFailed)
		assert.Equal(t, make([]byte, ProgramStateSize-1), buf)
	})
}

func TestType_String(t *testing.T) {
	assert.Equal(t, "Vault", entry.TypeVault.String())
	assert.Equal(t, "Derived", entry.TypeDerived.String())
	assert.Equal(t, "Unknown(0xffff)", entry.Type(0xffff).String())
}
