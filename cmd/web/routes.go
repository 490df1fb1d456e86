package main

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/walle-gg/tournament-aggregator/internal/httputil"
	"github.com/walle-gg/tournament-aggregator/internal/metrics"
	"github.com/walle-gg/tournament-aggregator/internal/service"
	"github.com/walle-gg/tournament-aggregator/internal/tournament"
)

func newRouter(tournamentService *service.TournamentService, httpMetrics *metrics.HTTPMetrics) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(httpMetrics.Middleware)

	// Liveness only, storage is deliberately not checked.
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Method(http.MethodGet, "/metrics", httpMetrics.Handler())

	r.Get("/tournaments", func(w http.ResponseWriter, r *http.Request) {
		tournaments, err := tournamentService.ListTournaments(r.Context())
		if err != nil {
			serviceError(w, "Failed to list tournaments", err)
			return
		}
		respond(w, http.StatusOK, tournaments)
	})

	r.Post("/tournaments", func(w http.ResponseWriter, r *http.Request) {
		var input tournament.Input
		if err := httputil.ReadJSON(w, r, &input); err != nil {
			httputil.BadRequest(w, err.Error(), nil)
			return
		}

		created, err := tournamentService.CreateTournament(r.Context(), input)
		if err != nil {
			serviceError(w, "Failed to create tournament", err)
			return
		}
		respond(w, http.StatusCreated, created)
	})

	r.Get("/tournaments/{id}", func(w http.ResponseWriter, r *http.Request) {
		t, err := tournamentService.GetTournament(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			serviceError(w, "Failed to get tournament", err)
			return
		}
		respond(w, http.StatusOK, t)
	})

	r.Put("/tournaments/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		// The id is checked before the body so a bad id is reported even with a bad body.
		if _, err := service.ParseID(id); err != nil {
			serviceError(w, "Invalid tournament ID", err)
			return
		}

		var patch tournament.Patch
		if err := httputil.ReadJSON(w, r, &patch); err != nil {
			httputil.BadRequest(w, err.Error(), nil)
			return
		}

		updated, err := tournamentService.UpdateTournament(r.Context(), id, patch)
		if err != nil {
			serviceError(w, "Failed to update tournament", err)
			return
		}
		respond(w, http.StatusOK, updated)
	})

	r.Delete("/tournaments/{id}", func(w http.ResponseWriter, r *http.Request) {
		if err := tournamentService.DeleteTournament(r.Context(), chi.URLParam(r, "id")); err != nil {
			serviceError(w, "Failed to delete tournament", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	return r
}

// serviceError maps service failures onto status codes. Storage details only reach the log.
func serviceError(w http.ResponseWriter, msg string, err error) {
	switch {
	case errors.Is(err, service.ErrTournamentNotFound):
		httputil.NotFound(w, "Tournament not found", err)
	case service.IsValidation(err):
		httputil.BadRequest(w, err.Error(), nil)
	default:
		httputil.InternalServerError(w, msg, err)
	}
}

func respond(w http.ResponseWriter, status int, data any) {
	if err := httputil.WriteJSON(w, status, data); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}
