package service

import (
	"context"

	"github.com/rs/zerolog"

	"tourney-graphics/internal/compose"
	"tourney-graphics/internal/constants"
	"tourney-graphics/internal/domain"
	"tourney-graphics/internal/tournament"
)

// TournamentService fronts the canonical record: explicit mutations,
// the snapshot surface, and composition of the render description.
type TournamentService struct {
	store    *tournament.Store
	composer *compose.Composer
	logger   zerolog.Logger
}

func NewTournamentService(store *tournament.Store, composer *compose.Composer, logger zerolog.Logger) *TournamentService {
	return &TournamentService{store: store, composer: composer, logger: logger}
}

func (s *TournamentService) SetEvent(name string, size int) error {
	return s.store.SetEvent(name, size)
}

func (s *TournamentService) AddPlayer(rec domain.ImportRecord) (*domain.Player, error) {
	return s.store.AddPlayer(rec)
}

func (s *TournamentService) UpdatePlayer(id string, rec domain.ImportRecord) error {
	return s.store.UpdatePlayer(id, rec)
}

func (s *TournamentService) RemovePlayer(id string) error {
	return s.store.RemovePlayer(id)
}

func (s *TournamentService) SetOrder(ids []string) error {
	return s.store.SetOrder(ids)
}

func (s *TournamentService) SetBracketSlot(slot domain.BracketSlot, playerID string) error {
	return s.store.SetBracketSlot(slot, playerID)
}

func (s *TournamentService) SetWrappers(wrappers []domain.ColumnWrapperConfig) {
	s.store.SetWrappers(wrappers)
}

func (s *TournamentService) Record() domain.Tournament {
	return s.store.Record()
}

// Render validates the record and composes the graphic description.
func (s *TournamentService) Render(ctx context.Context, topN int) (*compose.RenderDescription, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	if err := s.store.Validate(); err != nil {
		s.logger.Error().Err(err).Msg("record failed validation before compose")
		return nil, err
	}
	return s.composer.Compose(ctx, s.store.Record(), topN)
}

func (s *TournamentService) ExportSnapshot() ([]byte, error) {
	return s.store.Export()
}

func (s *TournamentService) RestoreSnapshot(data []byte) error {
	return s.store.Restore(data)
}
