package accounts

import (
	"context"
	"encoding/binary"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kohla-sky/sample-program/internal/common"
	"github.com/kohla-sky/sample-program/internal/storage/compression"
	"github.com/kohla-sky/sample-program/internal/storage/database/memory"
)

func key(b byte) common.Address {
	var a common.Address
	a[0], a[31] = b, b
	return a
}

func TestStore_Backends(t *testing.T) {
	ctx := context.Background()
	for _, backend := range []string{"memory", "pebble", "leveldb"} {
		for _, codec := range compression.Available() {
			t.Run(backend+"/"+codec, func(t *testing.T) {
				s, err := Open(Config{Backend: backend, Path: filepath.Join(t.TempDir(), "db"), Compressor: codec})
				require.NoError(t, err)
				defer s.Close()

				rec := &Record{Key: key(1), Owner: key(9), Data: append(make([]byte, 40), 1, 2, 3)}
				require.NoError(t, s.Put(ctx, rec))

				got, err := s.Get(ctx, key(1))
				require.NoError(t, err)
				assert.Equal(t, rec, got)

				_, err = s.Get(ctx, key(2))
				assert.ErrorIs(t, err, ErrNotFound)
			})
		}
	}
}

func TestStore_Allocate(t *testing.T) {
	ctx := context.Background()
	s := New(memory.New(), &compression.LZ4Compressor{})

	r, err := s.Allocate(ctx, key(1), key(9), 72)
	require.NoError(t, err)
	assert.Equal(t, make([]byte, 72), r.Data)

	_, err = s.Allocate(ctx, key(1), key(9), 72)
	assert.ErrorIs(t, err, ErrExists)

	_, err = s.Allocate(ctx, common.ZeroAddress, key(9), 72)
	assert.ErrorIs(t, err, common.ErrAccountValidationFailed)

	ok, err := s.Has(ctx, key(1))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestStore_List(t *testing.T) {
	ctx := context.Background()
	s := New(memory.New(), &compression.NoCompressor{})

	require.NoError(t, s.Put(ctx,
		&Record{Key: key(3), Data: []byte{3}},
		&Record{Key: key(1), Data: []byte{1}},
	))
	recs, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, key(1), recs[0].Key)
	assert.Equal(t, key(3), recs[1].Key)
}

func TestStore_ReadsOtherCodec(t *testing.T) {
	ctx := context.Background()
	db := memory.New()

	require.NoError(t, New(db, &compression.LZ4Compressor{}).Put(ctx, &Record{Key: key(1), Data: make([]byte, 512)}))

	got, err := New(db, &compression.NoCompressor{}).Get(ctx, key(1))
	require.NoError(t, err)
	assert.Equal(t, make([]byte, 512), got.Data)
}

func TestStore_Corrupt(t *testing.T) {
	ctx := context.Background()
	db := memory.New()
	s := New(db, &compression.NoCompressor{})

	require.NoError(t, db.Write(ctx, recordKey(key(1)), []byte{2, 0}))
	_, err := s.Get(ctx, key(1))
	assert.ErrorIs(t, err, ErrCorruptRecord)
}

func TestStore_CorruptSize(t *testing.T) {
	ctx := context.Background()
	db := memory.New()
	s := New(db, &compression.LZ4Compressor{})

	for _, size := range []uint64{MaxDataSize + 1, 1 << 63, ^uint64(0)} {
		v := append([]byte{formatVersion}, make([]byte, common.AddressLength)...)
		v = binary.AppendUvarint(v, size)
		v = append(v, 3)
		v = append(v, "lz4"...)
		v = append(v, 0x10, 0x00)
		require.NoError(t, db.Write(ctx, recordKey(key(1)), v))

		_, err := s.Get(ctx, key(1))
		assert.ErrorIs(t, err, ErrCorruptRecord, "size %d", size)
	}
}

func TestStore_AllocateBounds(t *testing.T) {
	s := New(memory.New(), &compression.NoCompressor{})
	_, err := s.Allocate(context.Background(), key(1), key(2), MaxDataSize+1)
	assert.ErrorIs(t, err, ErrTooLarge)
	_, err = s.Allocate(context.Background(), key(1), key(2), -1)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestOpen_Unknown(t *testing.T) {
	_, err := Open(Config{Backend: "bolt", Compressor: "none"})
	assert.Error(t, err)
	_, err = Open(Config{Backend: "memory", Compressor: "zstd"})
	assert.Error(t, err)
}
