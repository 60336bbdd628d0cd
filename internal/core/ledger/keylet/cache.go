package keylet

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/hashicorp/golang-lru/v2"
	"github.com/kohla-sky/sample-program/internal/common"
	"github.com/kohla-sky/sample-program/internal/core/ledger/entry"
	crypto "github.com/kohla-sky/sample-program/internal/crypto/common"
)

// DefaultCacheSize is used when NewCache is given a non-positive size.
const DefaultCacheSize = 1024

// Cache memoizes derivations so the bump search runs once per input tuple.
// It only ever returns what Derive would return for the same inputs; callers
// still compare the result against the supplied address.
type Cache struct {
	entries *lru.Cache[[32]byte, Keylet]

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewCache creates a derivation cache holding up to size keylets.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	entries, err := lru.New[[32]byte, Keylet](size)
	if err != nil {
		return nil, err
	}
	return &Cache{entries: entries}, nil
}

// Derive is the memoized form of the package-level Derive.
func (c *Cache) Derive(t entry.Type, namespace []byte, authority common.Address, parts ...[]byte) (Keylet, error) {
	// Bounded seeds keep the one-byte length prefixes in cacheKey unambiguous.
	if _, err := derivationSeeds(namespace, parts); err != nil {
		return Keylet{}, err
	}
	key := cacheKey(t, namespace, authority, parts)
	if k, ok := c.entries.Get(key); ok {
		c.hits.Add(1)
		return k, nil
	}
	c.misses.Add(1)

	k, err := Derive(t, namespace, authority, parts...)
	if err != nil {
		return Keylet{}, err
	}
	c.entries.Add(key, k)
	return k, nil
}

// ProgramState is the memoized form of ProgramState.
func (c *Cache) ProgramState(authority common.Address) (Keylet, error) {
	return c.Derive(entry.TypeProgramState, common.ProgramStateSeed, authority)
}

// User is the memoized form of User.
func (c *Cache) User(owner, authority common.Address) (Keylet, error) {
	if err := common.ValidateNotDefault(owner); err != nil {
		return Keylet{}, err
	}
	return c.Derive(entry.TypeUserAccount, nsUser, authority, owner[:])
}

// Stats returns the number of cache hits and misses.
func (c *Cache) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}

// Len returns the number of cached keylets.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// cacheKey length-prefixes every part so distinct seed splits cannot collide.
func cacheKey(t entry.Type, namespace []byte, authority common.Address, parts [][]byte) [32]byte {
	buf := make([]byte, 0, 2+common.AddressLength+(len(parts)+1)*(1+common.MaxSeedLength))
	buf = binary.BigEndian.AppendUint16(buf, uint16(t))
	buf = append(buf, authority[:]...)
	buf = append(buf, byte(len(namespace)))
	buf = append(buf, namespace...)
	for _, p := range parts {
		buf = append(buf, byte(len(p)))
		buf = append(buf, p...)
	}
	return crypto.Sha512Half(buf)
}
