package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/walle-gg/tournament-aggregator/internal/tournament"
)

var ErrNotFound = errors.New("tournament not found")

const (
	tournamentColumns = "id, title, game_name, stream_url, image_url, status, start_time, created_at"

	findAllQuery = "SELECT " + tournamentColumns + " FROM tournaments ORDER BY created_at ASC, id ASC"
	// Live group keeps insertion order.
	findByStatusQuery = "SELECT " + tournamentColumns + " FROM tournaments WHERE status = ? ORDER BY created_at ASC, id ASC"
	// Everything else is ordered by start time.
	findExcludingStatusQuery = "SELECT " + tournamentColumns + " FROM tournaments WHERE status <> ? ORDER BY start_time ASC, id ASC"
	findOneQuery             = "SELECT " + tournamentColumns + " FROM tournaments WHERE id = ?"
	insertQuery              = `INSERT INTO tournaments (id, title, game_name, stream_url, image_url, status, start_time, created_at)
		VALUES (:id, :title, :game_name, :stream_url, :image_url, :status, :start_time, :created_at)`
	deleteQuery = "DELETE FROM tournaments WHERE id = ?"
)

// Columns an update may touch. Anything else in a change set is rejected.
var updatableColumns = map[string]bool{
	"title":      true,
	"game_name":  true,
	"stream_url": true,
	"image_url":  true,
	"status":     true,
	"start_time": true,
}

type TournamentStore struct {
	db *sqlx.DB
}

func NewTournamentStore(db *sqlx.DB) *TournamentStore {
	return &TournamentStore{db: db}
}

func (s *TournamentStore) FindAll(ctx context.Context) ([]tournament.Tournament, error) {
	return s.selectTournaments(ctx, findAllQuery)
}

func (s *TournamentStore) FindByStatus(ctx context.Context, status tournament.Status) ([]tournament.Tournament, error) {
	return s.selectTournaments(ctx, findByStatusQuery, status)
}

func (s *TournamentStore) FindExcludingStatus(ctx context.Context, status tournament.Status) ([]tournament.Tournament, error) {
	return s.selectTournaments(ctx, findExcludingStatusQuery, status)
}

func (s *TournamentStore) FindOne(ctx context.Context, id uuid.UUID) (*tournament.Tournament, error) {
	var t tournament.Tournament
	err := s.db.GetContext(ctx, &t, s.db.Rebind(findOneQuery), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	normalize(&t)
	return &t, nil
}

// Insert assigns the record a fresh id and creation time, persists it and returns the stored copy.
func (s *TournamentStore) Insert(ctx context.Context, t tournament.Tournament) (*tournament.Tournament, error) {
	t.ID = uuid.New()
	t.StartTime = t.StartTime.UTC()
	t.CreatedAt = time.Now().UTC()

	if _, err := s.db.NamedExecContext(ctx, insertQuery, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateFields applies changes to the record and returns it re-read from the same transaction,
// so callers never observe a half-applied update.
func (s *TournamentStore) UpdateFields(ctx context.Context, id uuid.UUID, changes tournament.Changes) (*tournament.Tournament, error) {
	cols := changes.Columns()
	if len(cols) == 0 {
		return nil, fmt.Errorf("no columns to update")
	}

	assignments := make([]string, 0, len(cols))
	args := make([]any, 0, len(cols)+1)
	for _, col := range cols {
		if !updatableColumns[col] {
			return nil, fmt.Errorf("column %q is not updatable", col)
		}
		v := changes[col]
		if ts, ok := v.(time.Time); ok {
			v = ts.UTC()
		}
		assignments = append(assignments, col+" = ?")
		args = append(args, v)
	}
	args = append(args, id)

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	query := tx.Rebind("UPDATE tournaments SET " + strings.Join(assignments, ", ") + " WHERE id = ?")
	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if err := checkAffectedRows(result); err != nil {
		return nil, err
	}

	var t tournament.Tournament
	if err := tx.GetContext(ctx, &t, tx.Rebind(findOneQuery), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	normalize(&t)

	return &t, tx.Commit()
}

// Delete reports whether a record was removed.
func (s *TournamentStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := s.db.ExecContext(ctx, s.db.Rebind(deleteQuery), id)
	if err != nil {
		return false, err
	}
	if err := checkAffectedRows(result); err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *TournamentStore) selectTournaments(ctx context.Context, query string, args ...any) ([]tournament.Tournament, error) {
	tournaments := make([]tournament.Tournament, 0)
	if err := s.db.SelectContext(ctx, &tournaments, s.db.Rebind(query), args...); err != nil {
		return nil, err
	}
	for i := range tournaments {
		normalize(&tournaments[i])
	}
	return tournaments, nil
}

func checkAffectedRows(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Drivers hand timestamps back in the session location; the API always speaks UTC.
func normalize(t *tournament.Tournament) {
	t.StartTime = t.StartTime.UTC()
	t.CreatedAt = t.CreatedAt.UTC()
}
