package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/walle-gg/tournament-aggregator/internal/store"
	"github.com/walle-gg/tournament-aggregator/internal/tournament"
	"github.com/walle-gg/tournament-aggregator/internal/utils"
)

// Store is the persistence collaborator. Implementations must be safe for concurrent use
// and report a missing record with store.ErrNotFound.
type Store interface {
	FindByStatus(ctx context.Context, status tournament.Status) ([]tournament.Tournament, error)
	FindExcludingStatus(ctx context.Context, status tournament.Status) ([]tournament.Tournament, error)
	FindOne(ctx context.Context, id uuid.UUID) (*tournament.Tournament, error)
	Insert(ctx context.Context, t tournament.Tournament) (*tournament.Tournament, error)
	UpdateFields(ctx context.Context, id uuid.UUID, changes tournament.Changes) (*tournament.Tournament, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type TournamentService struct {
	store Store
}

func NewTournamentService(store Store) *TournamentService {
	return &TournamentService{store: store}
}

// ParseID checks that id is a well-formed tournament identifier.
func ParseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return uuid.Nil, validationErrorf("invalid tournament ID format")
	}
	return parsed, nil
}

// ListTournaments returns live tournaments first, then all others ordered by start time.
func (s *TournamentService) ListTournaments(ctx context.Context) ([]tournament.Tournament, error) {
	var live, others []tournament.Tournament

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		live, err = s.store.FindByStatus(gctx, tournament.StatusLive)
		return err
	})
	g.Go(func() error {
		var err error
		others, err = s.store.FindExcludingStatus(gctx, tournament.StatusLive)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, &StorageError{Op: "list", Err: err}
	}

	result := make([]tournament.Tournament, 0, len(live)+len(others))
	result = append(result, live...)
	return append(result, others...), nil
}

func (s *TournamentService) GetTournament(ctx context.Context, id string) (*tournament.Tournament, error) {
	tournamentID, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	t, err := s.store.FindOne(ctx, tournamentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, &StorageError{Op: "get", Err: err}
	}
	return t, nil
}

func (s *TournamentService) CreateTournament(ctx context.Context, input tournament.Input) (*tournament.Tournament, error) {
	title, err := requiredText("title", input.Title)
	if err != nil {
		return nil, err
	}
	gameName, err := requiredText("game_name", input.GameName)
	if err != nil {
		return nil, err
	}
	streamURL, err := requiredText("stream_url", input.StreamURL)
	if err != nil {
		return nil, err
	}
	imageURL, err := requiredText("image_url", input.ImageURL)
	if err != nil {
		return nil, err
	}
	if input.StartTime == nil {
		return nil, validationErrorf("start_time is required")
	}
	startTime, err := tournament.ParseStartTime(*input.StartTime)
	if err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	status := tournament.StatusUpcoming
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, invalidStatus(*input.Status)
		}
		status = *input.Status
	}

	created, err := s.store.Insert(ctx, tournament.Tournament{
		Title:     title,
		GameName:  gameName,
		StreamURL: streamURL,
		ImageURL:  imageURL,
		Status:    status,
		StartTime: startTime,
	})
	if err != nil {
		return nil, &StorageError{Op: "insert", Err: err}
	}
	return created, nil
}

// UpdateTournament merges the non-null fields of patch onto the stored record.
// A null field cannot clear a value; it is simply left out of the update.
func (s *TournamentService) UpdateTournament(ctx context.Context, id string, patch tournament.Patch) (*tournament.Tournament, error) {
	tournamentID, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	changes, err := effectiveChanges(patch)
	if err != nil {
		return nil, err
	}

	updated, err := s.store.UpdateFields(ctx, tournamentID, changes)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, &StorageError{Op: "update", Err: err}
	}
	return updated, nil
}

func (s *TournamentService) DeleteTournament(ctx context.Context, id string) error {
	tournamentID, err := ParseID(id)
	if err != nil {
		return err
	}

	deleted, err := s.store.Delete(ctx, tournamentID)
	if err != nil {
		return &StorageError{Op: "delete", Err: err}
	}
	if !deleted {
		return ErrTournamentNotFound
	}
	return nil
}

func effectiveChanges(patch tournament.Patch) (tournament.Changes, error) {
	changes := tournament.Changes{}

	textFields := []struct {
		column string
		value  *string
	}{
		{"title", patch.Title},
		{"game_name", patch.GameName},
		{"stream_url", patch.StreamURL},
		{"image_url", patch.ImageURL},
	}
	for _, f := range textFields {
		if f.value == nil {
			continue
		}
		v, err := requiredText(f.column, f.value)
		if err != nil {
			return nil, err
		}
		changes[f.column] = v
	}

	if patch.Status != nil {
		if !patch.Status.Valid() {
			return nil, invalidStatus(*patch.Status)
		}
		changes["status"] = *patch.Status
	}

	if patch.StartTime != nil {
		startTime, err := tournament.ParseStartTime(*patch.StartTime)
		if err != nil {
			return nil, &ValidationError{Message: err.Error()}
		}
		changes["start_time"] = startTime
	}

	if len(changes) == 0 {
		return nil, validationErrorf("no fields to update")
	}
	return changes, nil
}

func requiredText(field string, value *string) (string, error) {
	if value == nil {
		return "", validationErrorf("%s is required", field)
	}
	v := utils.TrimmedOrNil(value)
	if v == nil {
		return "", validationErrorf("%s must not be empty", field)
	}
	return *v, nil
}

func invalidStatus(status tournament.Status) error {
	return validationErrorf("status %q is invalid, expected one of %s, %s, %s",
		status, tournament.StatusLive, tournament.StatusUpcoming, tournament.StatusCompleted)
}
