package server

import (
	"checkers/game"
	"checkers/searcher"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

// Request limits. Deeper searches must be run locally.
const (
	MaxDepth     = 20
	MaxBodyBytes = 1 << 16
)

type FindMoveRequest struct {
	Position   string `json:"position"`
	Depth      *int   `json:"depth,omitempty"` // Server default when absent
	MovetimeMs int    `json:"movetime_ms,omitempty"`
}

type FindMoveResponse struct {
	Position  string `json:"position"`
	Move      string `json:"move"`
	Value     int    `json:"value"`
	Evaluated int64  `json:"evaluated"`
	Nodes     int64  `json:"nodes"`
	Stopped   string `json:"stopped"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewRouter exposes the searcher over HTTP:
//
//	GET  /ping
//	POST /findmove  FindMoveRequest -> FindMoveResponse
func NewRouter(alphaBeta *searcher.AlphaBeta, defaultDepth int) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/findmove", func(w http.ResponseWriter, r *http.Request) {
		handleFindMove(w, r, alphaBeta, defaultDepth)
	})

	return r
}

func handleFindMove(w http.ResponseWriter, r *http.Request, alphaBeta *searcher.AlphaBeta, defaultDepth int) {
	var payload FindMoveRequest
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad request: " + err.Error()})
		return
	}

	position, err := game.Parse(payload.Position)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	depth := defaultDepth
	if payload.Depth != nil {
		depth = *payload.Depth
	}
	if depth > MaxDepth {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("depth %d exceeds the limit of %d", depth, MaxDepth)})
		return
	}

	ctx := r.Context()
	if payload.MovetimeMs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(payload.MovetimeMs)*time.Millisecond)
		defer cancel()
	}

	result, err := alphaBeta.ChooseMove(ctx, position, depth)
	if errors.Is(err, searcher.ErrPrecondition) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		log.Error().Err(err).Str("position", payload.Position).Msg("search failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	chosen := result.Position.(*game.Position)
	log.Info().
		Str("request_id", middleware.GetReqID(r.Context())).
		Str("move", chosen.LastMove().String()).
		Int("depth", depth).
		Int("value", result.Value).
		Int64("evaluated", result.Evaluated).
		Msg("move found")

	writeJSON(w, http.StatusOK, FindMoveResponse{
		Position:  chosen.String(),
		Move:      chosen.LastMove().String(),
		Value:     result.Value,
		Evaluated: result.Evaluated,
		Nodes:     result.Nodes,
		Stopped:   result.Stopped.String(),
	})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// ListenAndServe serves handler on addr until ctx is done.
func ListenAndServe(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{Addr: addr, Handler: handler}

	errs := make(chan error, 1)
	go func() {
		log.Info().Msgf("agent server listening on %s", addr)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
