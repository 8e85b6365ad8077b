// Package syncstate tracks which command definitions have already been
// pushed to Discord, so registration runs skip unchanged commands.
package syncstate

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/composure-bot/composure/internal/command"
)

// GlobalScope keys state for the global command set; guild-scoped commands
// use the guild id.
const GlobalScope = "global"

// Store persists per-command fingerprints in SQLite.
type Store struct {
	db *sql.DB
}

// Open creates or opens the state database at dbPath.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening state database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL; PRAGMA synchronous=NORMAL;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	store := &Store{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	return store, nil
}

func (s *Store) initSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS command_state (
		scope TEXT NOT NULL,
		name TEXT NOT NULL,
		digest TEXT NOT NULL,
		pushed_at TIMESTAMP NOT NULL,
		PRIMARY KEY (scope, name)
	)`)
	return err
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Digest returns the stored fingerprint for a command, or "" when the
// command was never pushed.
func (s *Store) Digest(ctx context.Context, scope, name string) (string, error) {
	var digest string
	err := s.db.QueryRowContext(ctx,
		"SELECT digest FROM command_state WHERE scope = ? AND name = ?",
		scope, name,
	).Scan(&digest)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading command state: %w", err)
	}
	return digest, nil
}

// MarkPushed records that a command with the given fingerprint has been
// pushed.
func (s *Store) MarkPushed(ctx context.Context, scope, name, digest string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO command_state (scope, name, digest, pushed_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT (scope, name) DO UPDATE SET digest = excluded.digest, pushed_at = excluded.pushed_at`,
		scope, name, digest, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("writing command state: %w", err)
	}
	return nil
}

// Forget drops the state rows of commands no longer in the set.
func (s *Store) Forget(ctx context.Context, scope string, keep []string) error {
	names := make(map[string]bool, len(keep))
	for _, n := range keep {
		names[n] = true
	}

	rows, err := s.db.QueryContext(ctx, "SELECT name FROM command_state WHERE scope = ?", scope)
	if err != nil {
		return fmt.Errorf("listing command state: %w", err)
	}
	defer rows.Close()

	var stale []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return err
		}
		if !names[name] {
			stale = append(stale, name)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, name := range stale {
		if _, err := s.db.ExecContext(ctx,
			"DELETE FROM command_state WHERE scope = ? AND name = ?", scope, name,
		); err != nil {
			return fmt.Errorf("deleting command state: %w", err)
		}
	}
	return nil
}

// Fingerprint hashes a command definition's wire form. Discord-assigned
// fields never survive marshaling, so the digest is stable across reads and
// writes of the same definition.
func Fingerprint(cmd command.Command) (string, error) {
	buf, err := json.Marshal(cmd)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(buf)
	return hex.EncodeToString(sum[:]), nil
}
