package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/meur/blueprintlabs/internal/models"
)

// ErrNoSnapshot is returned when nothing has been imported yet
var ErrNoSnapshot = errors.New("no catalog snapshot imported")

// Store handles all database operations
type Store struct {
	db *sql.DB
}

// New creates a new Store with SQLite
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate runs database migrations
func (s *Store) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS snapshots (
			id TEXT PRIMARY KEY,
			source TEXT NOT NULL,
			weapon_count INTEGER NOT NULL,
			blueprint_count INTEGER NOT NULL,
			changelog_count INTEGER NOT NULL,
			imported_at DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS weapons (
			snapshot_id TEXT NOT NULL REFERENCES snapshots(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			PRIMARY KEY (snapshot_id, position)
		)`,
		`CREATE TABLE IF NOT EXISTS blueprints (
			snapshot_id TEXT NOT NULL,
			weapon_position INTEGER NOT NULL,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			status TEXT NOT NULL,
			pool TEXT NOT NULL,
			PRIMARY KEY (snapshot_id, weapon_position, position),
			FOREIGN KEY (snapshot_id, weapon_position)
				REFERENCES weapons(snapshot_id, position) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS changelog (
			snapshot_id TEXT NOT NULL REFERENCES snapshots(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			version TEXT NOT NULL,
			date TEXT NOT NULL,
			changes TEXT NOT NULL,
			author TEXT,
			PRIMARY KEY (snapshot_id, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_imported ON snapshots(imported_at)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

// --- Snapshots ---

// SaveSnapshot stores a full copy of the dataset in one transaction.
// Placeholder slots are kept so the stored catalog matches its source.
func (s *Store) SaveSnapshot(ctx context.Context, source string, doc *models.CatalogDocument, changelog []models.ChangelogEntry) (*models.Snapshot, error) {
	if doc == nil {
		doc = &models.CatalogDocument{}
	}

	snap := &models.Snapshot{
		ID:             uuid.New().String(),
		Source:         source,
		WeaponCount:    len(doc.Weapons),
		ChangelogCount: len(changelog),
		ImportedAt:     time.Now().UTC(),
	}
	for _, w := range doc.Weapons {
		snap.BlueprintCount += len(w.Blueprints)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO snapshots (id, source, weapon_count, blueprint_count, changelog_count, imported_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, snap.ID, snap.Source, snap.WeaponCount, snap.BlueprintCount, snap.ChangelogCount, snap.ImportedAt)
	if err != nil {
		return nil, err
	}

	weaponStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO weapons (snapshot_id, position, name, category) VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return nil, err
	}
	defer weaponStmt.Close()

	bpStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO blueprints (snapshot_id, weapon_position, position, name, status, pool)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return nil, err
	}
	defer bpStmt.Close()

	for wi, w := range doc.Weapons {
		if _, err := weaponStmt.ExecContext(ctx, snap.ID, wi, w.Name, w.Category); err != nil {
			return nil, fmt.Errorf("insert weapon %q: %w", w.Name, err)
		}
		for bi, bp := range w.Blueprints {
			if _, err := bpStmt.ExecContext(ctx, snap.ID, wi, bi, bp.Name, bp.Status, bp.Pool); err != nil {
				return nil, fmt.Errorf("insert blueprint %q: %w", bp.Name, err)
			}
		}
	}

	for i, entry := range changelog {
		changes, _ := json.Marshal(entry.Changes)
		var author sql.NullString
		if entry.Author != "" {
			author = sql.NullString{String: entry.Author, Valid: true}
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO changelog (snapshot_id, position, version, date, changes, author)
			VALUES (?, ?, ?, ?, ?, ?)
		`, snap.ID, i, entry.Version, entry.Date, changes, author)
		if err != nil {
			return nil, fmt.Errorf("insert changelog %q: %w", entry.Version, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return snap, nil
}

// GetSnapshots returns all snapshots, newest first
func (s *Store) GetSnapshots(ctx context.Context) ([]models.Snapshot, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, source, weapon_count, blueprint_count, changelog_count, imported_at
		FROM snapshots ORDER BY imported_at DESC, rowid DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snapshots := []models.Snapshot{}
	for rows.Next() {
		var snap models.Snapshot
		err := rows.Scan(&snap.ID, &snap.Source, &snap.WeaponCount,
			&snap.BlueprintCount, &snap.ChangelogCount, &snap.ImportedAt)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snap)
	}
	return snapshots, rows.Err()
}

// GetLatestSnapshot returns the most recent snapshot, or nil if none exists
func (s *Store) GetLatestSnapshot(ctx context.Context) (*models.Snapshot, error) {
	var snap models.Snapshot
	err := s.db.QueryRowContext(ctx, `
		SELECT id, source, weapon_count, blueprint_count, changelog_count, imported_at
		FROM snapshots ORDER BY imported_at DESC, rowid DESC LIMIT 1
	`).Scan(&snap.ID, &snap.Source, &snap.WeaponCount,
		&snap.BlueprintCount, &snap.ChangelogCount, &snap.ImportedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// DeleteSnapshot removes a snapshot and everything imported with it
func (s *Store) DeleteSnapshot(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE id = ?`, id)
	return err
}

// --- Catalog source ---

// Catalog rebuilds the catalog document of the latest snapshot
func (s *Store) Catalog(ctx context.Context) (*models.CatalogDocument, error) {
	snap, err := s.GetLatestSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, ErrNoSnapshot
	}
	return s.GetCatalog(ctx, snap.ID)
}

// GetCatalog rebuilds the catalog document of a snapshot
func (s *Store) GetCatalog(ctx context.Context, snapshotID string) (*models.CatalogDocument, error) {
	weaponRows, err := s.db.QueryContext(ctx, `
		SELECT position, name, category FROM weapons
		WHERE snapshot_id = ? ORDER BY position
	`, snapshotID)
	if err != nil {
		return nil, err
	}
	defer weaponRows.Close()

	doc := &models.CatalogDocument{Weapons: []models.WeaponRecord{}}
	index := make(map[int]int)
	for weaponRows.Next() {
		var pos int
		var w models.WeaponRecord
		if err := weaponRows.Scan(&pos, &w.Name, &w.Category); err != nil {
			return nil, err
		}
		w.Blueprints = []models.BlueprintRecord{}
		index[pos] = len(doc.Weapons)
		doc.Weapons = append(doc.Weapons, w)
	}
	if err := weaponRows.Err(); err != nil {
		return nil, err
	}

	bpRows, err := s.db.QueryContext(ctx, `
		SELECT weapon_position, name, status, pool FROM blueprints
		WHERE snapshot_id = ? ORDER BY weapon_position, position
	`, snapshotID)
	if err != nil {
		return nil, err
	}
	defer bpRows.Close()

	for bpRows.Next() {
		var pos int
		var bp models.BlueprintRecord
		if err := bpRows.Scan(&pos, &bp.Name, &bp.Status, &bp.Pool); err != nil {
			return nil, err
		}
		i, ok := index[pos]
		if !ok {
			continue
		}
		doc.Weapons[i].Blueprints = append(doc.Weapons[i].Blueprints, bp)
	}
	return doc, bpRows.Err()
}

// Changelog returns the changelog of the latest snapshot in source order
func (s *Store) Changelog(ctx context.Context) ([]models.ChangelogEntry, error) {
	snap, err := s.GetLatestSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, ErrNoSnapshot
	}
	return s.GetChangelog(ctx, snap.ID)
}

// GetChangelog returns the changelog of a snapshot in source order
func (s *Store) GetChangelog(ctx context.Context, snapshotID string) ([]models.ChangelogEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT version, date, changes, author FROM changelog
		WHERE snapshot_id = ? ORDER BY position
	`, snapshotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.ChangelogEntry{}
	for rows.Next() {
		var entry models.ChangelogEntry
		var changes string
		var author sql.NullString
		if err := rows.Scan(&entry.Version, &entry.Date, &changes, &author); err != nil {
			return nil, err
		}
		json.Unmarshal([]byte(changes), &entry.Changes)
		if author.Valid {
			entry.Author = author.String
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
