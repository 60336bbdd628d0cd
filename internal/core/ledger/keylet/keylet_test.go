package keylet

import (
	"bytes"
	"testing"

	"github.com/kohla-sky/sample-program/internal/common"
	"github.com/kohla-sky/sample-program/internal/core/ledger/entry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	programID = common.Address{0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f}
	owner     = common.Address{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20}
)

func TestDerive_Deterministic(t *testing.T) {
	a, err := User(owner, programID)
	require.NoError(t, err)
	b, err := User(owner, programID)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, entry.TypeUserAccount, a.Type)
	assert.False(t, a.Key.IsZero())
	assert.NotZero(t, a.Bump)
}

func TestDerive_OffCurveWithChosenBump(t *testing.T) {
	k, err := ProgramState(programID)
	require.NoError(t, err)
	assert.False(t, isOnCurve(k.Key))

	// The bump is the largest one producing an off-curve digest.
	addr, err := CreateAddress([][]byte{common.ProgramStateSeed, {k.Bump}}, programID)
	require.NoError(t, err)
	assert.Equal(t, k.Key, addr)
	for b := 255; b > int(k.Bump); b-- {
		_, err := CreateAddress([][]byte{common.ProgramStateSeed, {byte(b)}}, programID)
		assert.Error(t, err, "bump %d should have been on curve", b)
	}
}

func TestDerive_InputsSeparateAddresses(t *testing.T) {
	other := owner
	other[0] ^= 0xff

	user, err := User(owner, programID)
	require.NoError(t, err)
	otherUser, err := User(other, programID)
	require.NoError(t, err)
	otherProgram, err := User(owner, common.Address{0xff})
	require.NoError(t, err)
	state, err := ProgramState(programID)
	require.NoError(t, err)

	keys := []common.Address{user.Key, otherUser.Key, otherProgram.Key, state.Key}
	for i := range keys {
		for j := i + 1; j < len(keys); j++ {
			assert.NotEqual(t, keys[i], keys[j], "keys %d and %d collide", i, j)
		}
	}
}

func TestDerive_Kinds(t *testing.T) {
	vault1, err := Vault(owner, 1, programID)
	require.NoError(t, err)
	vault2, err := Vault(owner, 2, programID)
	require.NoError(t, err)
	assert.NotEqual(t, vault1.Key, vault2.Key)
	assert.Equal(t, entry.TypeVault, vault1.Type)

	meta, err := Metadata(owner, "profile", programID)
	require.NoError(t, err)
	assert.Equal(t, entry.TypeMetadata, meta.Type)

	sec, err := Secondary(owner, []byte("m/0/1"), programID)
	require.NoError(t, err)
	assert.Equal(t, entry.TypeSecondary, sec.Type)

	_, err = Secondary(owner, bytes.Repeat([]byte{1}, 33), programID)
	assert.ErrorIs(t, err, common.ErrSeedTooLong)
}

func TestDerive_RejectsBadSeeds(t *testing.T) {
	_, err := Derive(entry.TypeDerived, []byte("ns"), programID, make([]byte, common.MaxSeedLength+1))
	assert.ErrorIs(t, err, common.ErrSeedTooLong)

	parts := make([][]byte, common.MaxSeeds)
	_, err = Derive(entry.TypeDerived, nil, programID, parts...)
	assert.ErrorIs(t, err, common.ErrTooManySeeds)

	_, err = CreateAddress(make([][]byte, common.MaxSeeds+1), programID)
	assert.ErrorIs(t, err, common.ErrTooManySeeds)
}

func TestUser_RejectsDefaultOwner(t *testing.T) {
	_, err := User(common.ZeroAddress, programID)
	assert.ErrorIs(t, err, common.ErrAccountValidationFailed)
}

func TestVerifyDerivation(t *testing.T) {
	s := []byte("savings")
	k, err := Base(owner, s, programID)
	require.NoError(t, err)

	require.NoError(t, VerifyDerivation(k.Key, owner, s, programID))

	wrong := k.Key
	wrong[31] ^= 1
	assert.ErrorIs(t, VerifyDerivation(wrong, owner, s, programID), common.ErrAccountValidationFailed)
	assert.ErrorIs(t, VerifyDerivation(k.Key, owner, []byte("checking"), programID), common.ErrAccountValidationFailed)
	assert.ErrorIs(t, VerifyDerivation(k.Key, owner, s, common.Address{0xee}), common.ErrAccountValidationFailed)
}

func TestVerify(t *testing.T) {
	k, err := ProgramState(programID)
	require.NoError(t, err)

	assert.NoError(t, Verify(k.Key, k))
	assert.ErrorIs(t, Verify(owner, k), common.ErrAccountValidationFailed)
}

func TestCache(t *testing.T) {
	c, err := NewCache(8)
	require.NoError(t, err)

	want, err := User(owner, programID)
	require.NoError(t, err)

	got, err := c.User(owner, programID)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = c.User(owner, programID)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	hits, misses := c.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(1), misses)
	assert.Equal(t, 1, c.Len())

	_, err = c.User(common.ZeroAddress, programID)
	assert.ErrorIs(t, err, common.ErrAccountValidationFailed)
}

func TestCache_RejectsLongSeedsAfterCaching(t *testing.T) {
	c, err := NewCache(8)
	require.NoError(t, err)

	short := []byte{0x01}
	_, err = c.Derive(entry.TypeDerived, nil, programID, short)
	require.NoError(t, err)

	// 257 bytes share the one-byte length prefix of a 1-byte part.
	long := make([]byte, 257)
	long[0] = 0x01
	_, err = c.Derive(entry.TypeDerived, nil, programID, long)
	assert.ErrorIs(t, err, common.ErrSeedTooLong)

	_, err = c.Derive(entry.TypeDerived, nil, programID, make([][]byte, common.MaxSeeds)...)
	assert.ErrorIs(t, err, common.ErrTooManySeeds)

	hits, _ := c.Stats()
	assert.Zero(t, hits)
}

func TestCacheKey_SeparatesSplits(t *testing.T) {
	a := cacheKey(entry.TypeDerived, nil, programID, [][]byte{[]byte("ab"), []byte("c")})
	b := cacheKey(entry.TypeDerived, nil, programID, [][]byte{[]byte("a"), []byte("bc")})
	assert.NotEqual(t, a, b)
}
