// Package journal records every instruction the host applies, successful or
// not, in a relational database.
package journal

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=../../testing/mocks/journal_store.go -package=mocks github.com/kohla-sky/sample-program/internal/storage/journal Store

// Entry is one journal row.
type Entry struct {
	ID          uuid.UUID
	Instruction string
	Result      string
	Accounts    []string
	FeeBurned   uint64
	Error       string

	// Digest is a hash of the encoded instruction.
	Digest    string
	CreatedAt time.Time
}

// Store persists journal entries.
type Store interface {
	Record(ctx context.Context, e *Entry) error
	Recent(ctx context.Context, limit int) ([]*Entry, error)
	Close() error
}

// NewEntry returns an entry with a fresh ID and timestamp.
func NewEntry(instruction, result string, now time.Time) *Entry {
	return &Entry{
		ID:          uuid.New(),
		Instruction: instruction,
		Result:      result,
		CreatedAt:   now.UTC(),
	}
}
