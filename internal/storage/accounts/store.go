// Package accounts persists account buffers in a key-value database.
//
// Value layout:
//
//	version u8 ‖ owner[32] ‖ size uvarint ‖ codec_len u8 ‖ codec ‖ payload
//
// payload is the account data compressed with the named codec, so values
// written with one compressor stay readable after the configured one changes.
package accounts

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/kohla-sky/sample-program/internal/common"
	"github.com/kohla-sky/sample-program/internal/storage/compression"
	"github.com/kohla-sky/sample-program/internal/storage/database"
	"github.com/kohla-sky/sample-program/internal/storage/database/leveldb"
	"github.com/kohla-sky/sample-program/internal/storage/database/memory"
	"github.com/kohla-sky/sample-program/internal/storage/database/pebble"
)

const formatVersion = 1

// MaxDataSize bounds the data of a single account.
const MaxDataSize = 10 << 20

var keyPrefix = []byte("acct:")

var (
	ErrNotFound      = errors.New("account not found")
	ErrExists        = errors.New("account already exists")
	ErrCorruptRecord = errors.New("corrupt account record")
	ErrTooLarge      = errors.New("account data too large")
)

// Record is a persisted account.
type Record struct {
	Key   common.Address
	Owner common.Address
	Data  []byte
}

// Config selects the database backend and value codec.
type Config struct {
	Backend    string // memory, pebble or leveldb
	Path       string
	Compressor string
}

// Store reads and writes account records.
type Store struct {
	db    database.DB
	codec compression.Compressor
}

// New wraps an open database.
func New(db database.DB, codec compression.Compressor) *Store {
	return &Store{db: db, codec: codec}
}

// Open opens the backend named in cfg.
func Open(cfg Config) (*Store, error) {
	codec, err := compression.Get(cfg.Compressor)
	if err != nil {
		return nil, err
	}

	var db database.DB
	switch cfg.Backend {
	case "memory":
		db = memory.New()
	case "pebble":
		db, err = pebble.Open(cfg.Path)
	case "leveldb":
		db, err = leveldb.Open(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, err
	}
	return New(db, codec), nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func recordKey(k common.Address) []byte {
	return append(append([]byte(nil), keyPrefix...), k[:]...)
}

// Get loads the record for k.
func (s *Store) Get(ctx context.Context, k common.Address) (*Record, error) {
	raw, err := s.db.Read(ctx, recordKey(k))
	if errors.Is(err, database.ErrKeyNotFound) {
		return nil, fmt.Errorf("%s: %w", k, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return s.decode(k, raw)
}

// Has reports whether a record exists for k.
func (s *Store) Has(ctx context.Context, k common.Address) (bool, error) {
	_, err := s.db.Read(ctx, recordKey(k))
	if errors.Is(err, database.ErrKeyNotFound) {
		return false, nil
	}
	return err == nil, err
}

// Put writes all records in one batch.
func (s *Store) Put(ctx context.Context, records ...*Record) error {
	ops := make([]database.BatchOperation, 0, len(records))
	for _, r := range records {
		v, err := s.encode(r)
		if err != nil {
			return err
		}
		ops = append(ops, database.Put(recordKey(r.Key), v))
	}
	return s.db.Batch(ctx, ops)
}

// Allocate creates a zeroed record of size bytes owned by owner. It fails
// with ErrExists when k is already allocated.
func (s *Store) Allocate(ctx context.Context, k, owner common.Address, size int) (*Record, error) {
	if err := common.ValidateNotDefault(k); err != nil {
		return nil, err
	}
	if size < 0 || size > MaxDataSize {
		return nil, fmt.Errorf("%s: %d bytes: %w", k, size, ErrTooLarge)
	}
	exists, err := s.Has(ctx, k)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%s: %w", k, ErrExists)
	}
	r := &Record{Key: k, Owner: owner, Data: make([]byte, size)}
	if err := s.Put(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// List returns every record in key order.
func (s *Store) List(ctx context.Context) ([]*Record, error) {
	it, err := s.db.Iterator(ctx, keyPrefix, database.PrefixEnd(keyPrefix))
	if err != nil {
		return nil, err
	}
	defer it.Close()

	var out []*Record
	for it.Next() {
		k, err := common.AddressFromBytes(it.Key()[len(keyPrefix):])
		if err != nil {
			return nil, ErrCorruptRecord
		}
		r, err := s.decode(k, it.Value())
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, it.Error()
}

func (s *Store) encode(r *Record) ([]byte, error) {
	if len(r.Data) > MaxDataSize {
		return nil, fmt.Errorf("%s: %d bytes: %w", r.Key, len(r.Data), ErrTooLarge)
	}
	payload, err := s.codec.Compress(r.Data)
	if err != nil {
		return nil, err
	}
	name := s.codec.Name()

	v := make([]byte, 0, 1+common.AddressLength+binary.MaxVarintLen64+1+len(name)+len(payload))
	v = append(v, formatVersion)
	v = append(v, r.Owner[:]...)
	v = binary.AppendUvarint(v, uint64(len(r.Data)))
	v = append(v, byte(len(name)))
	v = append(v, name...)
	return append(v, payload...), nil
}

func (s *Store) decode(k common.Address, v []byte) (*Record, error) {
	if len(v) < 1+common.AddressLength || v[0] != formatVersion {
		return nil, fmt.Errorf("%s: %w", k, ErrCorruptRecord)
	}
	r := &Record{Key: k}
	copy(r.Owner[:], v[1:1+common.AddressLength])
	rest := v[1+common.AddressLength:]

	size, n := binary.Uvarint(rest)
	if n <= 0 || len(rest) < n+1 || size > MaxDataSize {
		return nil, fmt.Errorf("%s: %w", k, ErrCorruptRecord)
	}
	rest = rest[n:]
	nameLen := int(rest[0])
	if len(rest) < 1+nameLen {
		return nil, fmt.Errorf("%s: %w", k, ErrCorruptRecord)
	}
	codec, err := compression.Get(string(rest[1 : 1+nameLen]))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", k, ErrCorruptRecord, err)
	}
	data, err := codec.Decompress(rest[1+nameLen:], int(size))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", k, ErrCorruptRecord, err)
	}
	r.Data = data
	return r, nil
}
