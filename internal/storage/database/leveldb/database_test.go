package leveldb

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kohla-sky/sample-program/internal/storage/database"
	"github.com/kohla-sky/sample-program/internal/storage/database/dbtest"
)

func TestLevelDB(t *testing.T) {
	dbtest.Run(t, func(t *testing.T) database.DB {
		db, err := Open(filepath.Join(t.TempDir(), "accounts"))
		require.NoError(t, err)
		return db
	})
}
