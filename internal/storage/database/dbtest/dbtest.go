// Package dbtest holds the behaviour every database.DB backend must share.
package dbtest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kohla-sky/sample-program/internal/storage/database"
)

// Run exercises a backend. open must return a fresh, empty database.
func Run(t *testing.T, open func(t *testing.T) database.DB) {
	ctx := context.Background()

	t.Run("ReadWriteDelete", func(t *testing.T) {
		db := open(t)
		defer db.Close()

		_, err := db.Read(ctx, []byte("missing"))
		assert.ErrorIs(t, err, database.ErrKeyNotFound)

		require.NoError(t, db.Write(ctx, []byte("k"), []byte("v1")))
		got, err := db.Read(ctx, []byte("k"))
		require.NoError(t, err)
		assert.Equal(t, []byte("v1"), got)

		require.NoError(t, db.Write(ctx, []byte("k"), []byte("v2")))
		got, err = db.Read(ctx, []byte("k"))
		require.NoError(t, err)
		assert.Equal(t, []byte("v2"), got)

		require.NoError(t, db.Delete(ctx, []byte("k")))
		_, err = db.Read(ctx, []byte("k"))
		assert.ErrorIs(t, err, database.ErrKeyNotFound)
	})

	t.Run("Batch", func(t *testing.T) {
		db := open(t)
		defer db.Close()

		require.NoError(t, db.Write(ctx, []byte("gone"), []byte("x")))
		require.NoError(t, db.Batch(ctx, []database.BatchOperation{
			database.Put([]byte("a"), []byte("1")),
			database.Put([]byte("b"), []byte("2")),
			database.Del([]byte("gone")),
		}))

		for k, v := range map[string]string{"a": "1", "b": "2"} {
			got, err := db.Read(ctx, []byte(k))
			require.NoError(t, err)
			assert.Equal(t, v, string(got))
		}
		_, err := db.Read(ctx, []byte("gone"))
		assert.ErrorIs(t, err, database.ErrKeyNotFound)

		err = db.Batch(ctx, []database.BatchOperation{
			database.Put([]byte("c"), []byte("3")),
			{Type: database.BatchOpType(9), Key: []byte("d")},
		})
		assert.ErrorIs(t, err, database.ErrUnknownBatchOp)
		_, err = db.Read(ctx, []byte("c"))
		assert.ErrorIs(t, err, database.ErrKeyNotFound)
	})

	t.Run("Iterator", func(t *testing.T) {
		db := open(t)
		defer db.Close()

		for _, k := range []string{"acct:2", "acct:1", "meta:1", "acct:3"} {
			require.NoError(t, db.Write(ctx, []byte(k), []byte("v-"+k)))
		}

		prefix := []byte("acct:")
		it, err := db.Iterator(ctx, prefix, database.PrefixEnd(prefix))
		require.NoError(t, err)

		var keys []string
		for it.Next() {
			keys = append(keys, string(it.Key()))
			assert.Equal(t, "v-"+string(it.Key()), string(it.Value()))
		}
		require.NoError(t, it.Error())
		require.NoError(t, it.Close())
		assert.Equal(t, []string{"acct:1", "acct:2", "acct:3"}, keys)
	})

	t.Run("ValuesAreCopies", func(t *testing.T) {
		db := open(t)
		defer db.Close()

		v := []byte("value")
		require.NoError(t, db.Write(ctx, []byte("k"), v))
		got, err := db.Read(ctx, []byte("k"))
		require.NoError(t, err)
		got[0] = 'X'

		again, err := db.Read(ctx, []byte("k"))
		require.NoError(t, err)
		assert.Equal(t, []byte("value"), again)
	})

	t.Run("Closed", func(t *testing.T) {
		db := open(t)
		require.NoError(t, db.Close())

		_, err := db.Read(ctx, []byte("k"))
		assert.ErrorIs(t, err, database.ErrDBClosed)
		assert.ErrorIs(t, db.Write(ctx, []byte("k"), nil), database.ErrDBClosed)
	})
}
