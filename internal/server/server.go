// Package server is the thin JSON surface over the pipeline. Handlers
// decode, delegate to a service, and encode; no pipeline logic lives
// here.
package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"tourney-graphics/internal/domain"
	"tourney-graphics/internal/importer"
	"tourney-graphics/internal/service"
)

type Server struct {
	imports     *service.ImportService
	tournaments *service.TournamentService
	logger      zerolog.Logger
}

func New(imports *service.ImportService, tournaments *service.TournamentService, logger zerolog.Logger) *Server {
	return &Server{imports: imports, tournaments: tournaments, logger: logger}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/presets", s.handlePresets)
		r.Post("/import/tabular", s.handleImportTabular)
		r.Post("/import/teamlist", s.handleImportTeamList)
		r.Post("/import/roster", s.handleImportRoster)

		r.Post("/event", s.handleSetEvent)
		r.Post("/players", s.handleAddPlayer)
		r.Put("/players/{id}", s.handleUpdatePlayer)
		r.Delete("/players/{id}", s.handleRemovePlayer)
		r.Put("/order", s.handleSetOrder)
		r.Put("/bracket/{slot}", s.handleSetBracketSlot)
		r.Put("/wrappers", s.handleSetWrappers)

		r.Get("/graphic", s.handleGraphic)
		r.Get("/snapshot", s.handleExportSnapshot)
		r.Post("/snapshot", s.handleRestoreSnapshot)
	})

	return r
}

func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, importer.Presets)
}

func (s *Server) handleImportTabular(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Preset string `json:"preset"`
		Body   string `json:"body"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	out, err := s.imports.ImportTabular(r.Context(), req.Preset, req.Body)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleImportTeamList(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL string `json:"url"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	res, err := s.imports.FetchTeamList(r.Context(), req.URL)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleImportRoster(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL string `json:"url"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	rows, err := s.imports.FetchRoster(r.Context(), req.URL)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleSetEvent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
		Size int    `json:"size"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.tournaments.SetEvent(req.Name, req.Size); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddPlayer(w http.ResponseWriter, r *http.Request) {
	var rec domain.ImportRecord
	if !s.decode(w, r, &rec) {
		return
	}
	p, err := s.tournaments.AddPlayer(rec)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleUpdatePlayer(w http.ResponseWriter, r *http.Request) {
	var rec domain.ImportRecord
	if !s.decode(w, r, &rec) {
		return
	}
	if err := s.tournaments.UpdatePlayer(chi.URLParam(r, "id"), rec); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRemovePlayer(w http.ResponseWriter, r *http.Request) {
	if err := s.tournaments.RemovePlayer(chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSetOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Order []string `json:"order"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.tournaments.SetOrder(req.Order); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSetBracketSlot(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PlayerID string `json:"playerId"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	slot := domain.BracketSlot(chi.URLParam(r, "slot"))
	if err := s.tournaments.SetBracketSlot(slot, req.PlayerID); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSetWrappers(w http.ResponseWriter, r *http.Request) {
	var wrappers []domain.ColumnWrapperConfig
	if !s.decode(w, r, &wrappers) {
		return
	}
	s.tournaments.SetWrappers(wrappers)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGraphic(w http.ResponseWriter, r *http.Request) {
	topN := 0
	if v := r.URL.Query().Get("topN"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			s.writeError(w, domain.NewFault(domain.ErrMalformedInput, "topN must be an integer"))
			return
		}
		topN = n
	}
	desc, err := s.tournaments.Render(r.Context(), topN)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, desc)
}

func (s *Server) handleExportSnapshot(w http.ResponseWriter, r *http.Request) {
	data, err := s.tournaments.ExportSnapshot()
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) handleRestoreSnapshot(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeError(w, domain.NewFault(domain.ErrMalformedInput, "read body: %v", err))
		return
	}
	if err := s.tournaments.RestoreSnapshot(data); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.writeError(w, domain.NewFault(domain.ErrMalformedInput, "decode request: %v", err))
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}

// writeError maps the fault taxonomy onto HTTP statuses and emits the
// structured failure envelope.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrMalformedInput):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrValidationFailure):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrUpstreamFailure):
		status = http.StatusBadGateway
	}

	resp := struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
		Status  int    `json:"upstreamStatus,omitempty"`
	}{Error: err.Error()}

	var fault *domain.Fault
	if errors.As(err, &fault) {
		resp.Status = fault.Status
	}
	s.writeJSON(w, status, resp)
}
