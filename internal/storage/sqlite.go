package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/formspec-tools/formspecgen/pkg/types"
)

// SnapshotStore keeps one row per generation run so element definitions can
// be compared across lua_api versions.
type SnapshotStore struct {
	db *sql.DB
}

// OpenSnapshotStore opens (creating if needed) the snapshot database
func OpenSnapshotStore(dbPath string) (*SnapshotStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=10000", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	store := &SnapshotStore{db: db}
	if err := store.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SnapshotStore) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		id TEXT PRIMARY KEY,
		source TEXT NOT NULL,
		element_count INTEGER NOT NULL,
		created_at INTEGER NOT NULL,
		payload TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_snapshots_created ON snapshots(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the underlying database
func (s *SnapshotStore) Close() error {
	return s.db.Close()
}

// Save records one generated table and returns the stored snapshot metadata
func (s *SnapshotStore) Save(table types.ElementTable, source string) (*types.Snapshot, error) {
	payload, err := json.Marshal(table)
	if err != nil {
		return nil, err
	}

	snap := &types.Snapshot{
		ID:           uuid.New().String(),
		Source:       source,
		ElementCount: len(table),
		CreatedAt:    time.Now(),
	}
	_, err = s.db.Exec(
		`INSERT INTO snapshots (id, source, element_count, created_at, payload) VALUES (?, ?, ?, ?, ?)`,
		snap.ID, snap.Source, snap.ElementCount, snap.CreatedAt.Unix(), string(payload),
	)
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// List returns snapshot metadata, newest first, without payloads
func (s *SnapshotStore) List() ([]types.Snapshot, error) {
	rows, err := s.db.Query(
		`SELECT id, source, element_count, created_at FROM snapshots ORDER BY created_at DESC, id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snaps []types.Snapshot
	for rows.Next() {
		var snap types.Snapshot
		var createdAt int64
		if err := rows.Scan(&snap.ID, &snap.Source, &snap.ElementCount, &createdAt); err != nil {
			return nil, err
		}
		snap.CreatedAt = time.Unix(createdAt, 0)
		snaps = append(snaps, snap)
	}
	return snaps, rows.Err()
}

// Get loads one snapshot, including its element table. The id may be a
// unique prefix of the full id.
func (s *SnapshotStore) Get(id string) (*types.Snapshot, error) {
	rows, err := s.db.Query(
		`SELECT id, source, element_count, created_at, payload FROM snapshots WHERE id LIKE ? || '%'`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snap *types.Snapshot
	for rows.Next() {
		if snap != nil {
			return nil, fmt.Errorf("snapshot id %q is ambiguous", id)
		}
		snap = &types.Snapshot{}
		var createdAt int64
		var payload string
		if err := rows.Scan(&snap.ID, &snap.Source, &snap.ElementCount, &createdAt, &payload); err != nil {
			return nil, err
		}
		snap.CreatedAt = time.Unix(createdAt, 0)
		if err := json.Unmarshal([]byte(payload), &snap.Table); err != nil {
			return nil, fmt.Errorf("snapshot %s has a corrupt payload: %w", snap.ID, err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, fmt.Errorf("snapshot %q not found", id)
	}
	return snap, nil
}
