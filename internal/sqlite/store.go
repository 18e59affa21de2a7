// Package sqlite implements the storage layer for tally: a single
// process-wide SQLite handle behind two strategies (persistent file, or
// in-memory with BadgerDB blob snapshots), the table schema, the typed
// entity repositories, the streak engine, and whole-database backup.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/tally/pkg/types"
)

// Store owns the database handle for one process. All repositories read
// and write through it; there is no caching layer. The store is a single
// logical writer: operations run one at a time against one connection.
type Store struct {
	mu      sync.Mutex
	config  types.Config
	db      *sql.DB
	kv      *badger.DB // blob store; non-nil only for the kv backend
	discard bool       // degraded mode: mutations are dropped
	now     func() time.Time
}

// DBFileName is the database file of the file backend, under DataDir.
const DBFileName = "tally.db"

// Open initializes a Store for the configured backend. Backend
// initialization failure does not return an error: the store degrades to
// an empty in-memory schema whose reads return empty sets and whose
// writes are discarded. Only an invalid Config is an error.
func Open(config types.Config) (*Store, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	s := &Store{config: config, now: time.Now}
	if err := s.open(); err != nil {
		s.degrade()
	}
	return s, nil
}

var (
	defaultStore *Store
	defaultOnce  sync.Once
)

// Acquire returns the process-wide Store, opening it on first call with
// the given config. Later calls return the same handle regardless of
// config; there is no teardown, the handle lives for the process's
// lifetime. An invalid config also degrades rather than failing, so
// Acquire never returns nil.
func Acquire(config types.Config) *Store {
	defaultOnce.Do(func() {
		st, err := Open(config)
		if err != nil {
			st = &Store{config: config, now: time.Now}
			st.degrade()
		}
		defaultStore = st
	})
	return defaultStore
}

// open sets up the configured backend and runs schema init, blob restore
// (kv backend), and default seeding.
func (s *Store) open() error {
	if err := os.MkdirAll(s.config.DataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	dsn := filepath.Join(s.config.DataDir, DBFileName)
	if s.config.Backend == types.BackendKV {
		dsn = ":memory:"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	// One connection only: the schema pragmas are per-connection, an
	// in-memory database exists per-connection, and the store is a
	// single logical writer anyway.
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return fmt.Errorf("initializing schema: %w", err)
	}
	s.db = db

	if s.config.Backend == types.BackendKV {
		kv, err := openBlob(s.config.DataDir)
		if err != nil {
			db.Close()
			s.db = nil
			return fmt.Errorf("opening blob store: %w", err)
		}
		s.kv = kv

		data, found, err := readBlob(kv)
		if err != nil {
			s.closeAll()
			return fmt.Errorf("reading blob image: %w", err)
		}
		if found {
			if err := s.restoreImage(data); err != nil {
				s.closeAll()
				return fmt.Errorf("restoring blob image: %w", err)
			}
		}
	}

	if err := s.seedDefaults(); err != nil {
		s.closeAll()
		return fmt.Errorf("seeding defaults: %w", err)
	}

	return nil
}

// degrade switches the store to the no-op strategy: an empty in-memory
// schema so reads still work (and return empty sets), with every
// mutation discarded. Callers are expected to tolerate empty results
// even immediately after a write.
func (s *Store) degrade() {
	s.discard = true
	s.kv = nil

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		s.db = nil
		return
	}
	db.SetMaxOpenConns(1)
	if err := initSchema(db); err != nil {
		db.Close()
		s.db = nil
		return
	}
	s.db = db
}

// Degraded reports whether backend initialization failed and the store is
// running as a no-op handle.
func (s *Store) Degraded() bool {
	return s.discard
}

// Close releases the database and blob store. The process-wide handle
// from Acquire is normally never closed; Close exists for short-lived
// uses such as CLI invocations and tests.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closeAll()
}

func (s *Store) closeAll() error {
	var firstErr error
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			firstErr = err
		}
		s.db = nil
	}
	if s.kv != nil {
		if err := s.kv.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		s.kv = nil
	}
	return firstErr
}

// noResult is the sql.Result returned for discarded mutations.
type noResult struct{}

func (noResult) LastInsertId() (int64, error) { return 0, nil }
func (noResult) RowsAffected() (int64, error) { return 0, nil }

// exec runs one mutating statement and, on the kv backend, snapshots the
// image afterward. In degraded mode the statement is discarded.
func (s *Store) exec(query string, args ...any) (sql.Result, error) {
	if s.discard || s.db == nil {
		return noResult{}, nil
	}
	res, err := s.db.Exec(query, args...)
	if err != nil {
		return nil, err
	}
	s.snapshot()
	return res, nil
}

// collectRows runs a read query and hydrates every row through scan.
// A store with no engine at all returns an empty result set.
func collectRows[T any](s *Store, query string, scan func(*sql.Rows) (T, error), args ...any) ([]T, error) {
	results := []T{}
	if s.db == nil {
		return results, nil
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating row: %w", err)
		}
		results = append(results, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return results, nil
}

// generateUUID generates a UUID v7, falling back to v4.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// today returns the store clock's current calendar date.
func (s *Store) today() string {
	return types.Date(s.now())
}
