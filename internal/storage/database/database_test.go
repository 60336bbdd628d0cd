package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixEnd(t *testing.T) {
	assert.Equal(t, []byte("acct;"), PrefixEnd([]byte("acct:")))
	assert.Equal(t, []byte{0x01}, PrefixEnd([]byte{0x00, 0xff}))
	assert.Nil(t, PrefixEnd([]byte{0xff, 0xff}))
	assert.Nil(t, PrefixEnd(nil))
}

func TestBatchHelpers(t *testing.T) {
	p := Put([]byte("k"), []byte("v"))
	assert.Equal(t, BatchPut, p.Type)
	d := Del([]byte("k"))
	assert.Equal(t, BatchDelete, d.Type)
	assert.Nil(t, d.Value)
}
