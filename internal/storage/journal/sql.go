package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver (pgx)
	_ "github.com/lib/pq"              // PostgreSQL driver (pq)
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/kohla-sky/sample-program/internal/storage/journal/migrations"
)

// Supported drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverPgx      = "pgx"
)

var ErrUnsupportedDriver = errors.New("unsupported journal driver")

// migrate applies the embedded migrations for driver.
func migrate(ctx context.Context, db *sql.DB, driver string) error {
	dialect, dir := "sqlite3", "sqlite"
	if driver != DriverSQLite {
		dialect, dir = "postgres", "postgres"
	}
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, dir)
}

// SQLStore is a Store over database/sql.
type SQLStore struct {
	db     *sql.DB
	driver string
}

// Open connects to dsn with driver and creates the journal table.
func Open(ctx context.Context, driver, dsn string) (*SQLStore, error) {
	switch driver {
	case DriverSQLite, DriverPostgres, DriverPgx:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	if driver == DriverSQLite {
		// One writer at a time.
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping journal: %w", err)
	}
	if err := migrate(ctx, db, driver); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize journal schema: %w", err)
	}
	return &SQLStore{db: db, driver: driver}, nil
}

// rebind rewrites ? placeholders for the postgres drivers.
func (s *SQLStore) rebind(query string) string {
	if s.driver == DriverSQLite {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *SQLStore) Record(ctx context.Context, e *Entry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, s.rebind(
		`INSERT INTO journal (id, instruction, result, accounts, fee_burned, error, digest, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`),
		e.ID.String(),
		e.Instruction,
		e.Result,
		strings.Join(e.Accounts, ","),
		strconv.FormatUint(e.FeeBurned, 10),
		e.Error,
		e.Digest,
		e.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to record journal entry: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, most recently recorded first.
func (s *SQLStore) Recent(ctx context.Context, limit int) ([]*Entry, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx, s.rebind(
		`SELECT id, instruction, result, accounts, fee_burned, error, digest, created_at
		 FROM journal ORDER BY seq DESC LIMIT ?`), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}
	defer rows.Close()

	var out []*Entry
	for rows.Next() {
		var (
			e              Entry
			id, accts, fee string
			createdAt      int64
		)
		if err := rows.Scan(&id, &e.Instruction, &e.Result, &accts, &fee, &e.Error, &e.Digest, &createdAt); err != nil {
			return nil, err
		}
		if e.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("journal id %q: %w", id, err)
		}
		if accts != "" {
			e.Accounts = strings.Split(accts, ",")
		}
		if e.FeeBurned, err = strconv.ParseUint(fee, 10, 64); err != nil {
			return nil, fmt.Errorf("journal fee %q: %w", fee, err)
		}
		e.CreatedAt = time.Unix(0, createdAt).UTC()
		out = append(out, &e)
	}
	return out, rows.Err()
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
