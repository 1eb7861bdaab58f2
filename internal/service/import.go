// Package service orchestrates the pipeline behind the public entry
// points. Every operation returns a value or a categorized Fault;
// nothing below this layer leaks an unhandled failure to the caller.
package service

import (
	"context"

	"github.com/rs/zerolog"

	"tourney-graphics/internal/api"
	"tourney-graphics/internal/constants"
	"tourney-graphics/internal/domain"
	"tourney-graphics/internal/importer"
	"tourney-graphics/internal/tournament"
)

type ImportService struct {
	client *api.Client
	store  *tournament.Store
	logger zerolog.Logger
}

func NewImportService(client *api.Client, store *tournament.Store, logger zerolog.Logger) *ImportService {
	return &ImportService{client: client, store: store, logger: logger}
}

// ImportOutcome reports a merged batch: the new player ids plus the
// per-row diagnostics for records that failed to parse.
type ImportOutcome struct {
	Added  []string `json:"added"`
	Errors []string `json:"errors"`
}

// ImportTabular parses a CSV batch with the given preset and merges the
// surviving records. Row-level failures become diagnostics; the batch
// itself only fails on an unknown preset.
func (s *ImportService) ImportTabular(ctx context.Context, presetID, body string) (*ImportOutcome, error) {
	preset, ok := importer.PresetByID(presetID)
	if !ok {
		return nil, domain.NewFault(domain.ErrMalformedInput, "unknown format preset %q", presetID)
	}

	res := importer.ParseTabular(body, preset, s.logger)

	ids, err := s.store.MergeRecords(res.Records)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("preset", presetID).
		Int("added", len(ids)).
		Int("errors", len(res.Errors)).
		Msg("tabular import merged")
	return &ImportOutcome{Added: ids, Errors: res.Errors}, nil
}

// FetchTeamList validates the URL, fetches the page once, and extracts
// the player's team. The caller decides whether to merge the result.
func (s *ImportService) FetchTeamList(ctx context.Context, pageURL string) (*importer.TeamListResult, error) {
	if err := api.ValidateTeamListURL(pageURL); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	body, err := s.client.FetchPage(ctx, pageURL)
	if err != nil {
		s.logger.Error().Err(err).Str("url", pageURL).Msg("team list fetch failed")
		return nil, err
	}

	res, err := importer.ParseTeamListPage(body)
	if err != nil {
		s.logger.Warn().Err(err).Str("url", pageURL).Msg("team list page did not parse")
		return nil, err
	}

	s.logger.Info().Str("player", res.PlayerName).Int("pokemon", len(res.Pokemon)).Msg("team list scraped")
	return res, nil
}

// FetchRoster validates the URL, fetches the page once, and extracts
// the roster rows.
func (s *ImportService) FetchRoster(ctx context.Context, pageURL string) ([]importer.RosterRow, error) {
	if err := api.ValidateRosterURL(pageURL); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	body, err := s.client.FetchPage(ctx, pageURL)
	if err != nil {
		s.logger.Error().Err(err).Str("url", pageURL).Msg("roster fetch failed")
		return nil, err
	}

	rows, err := importer.ParseRosterPage(body)
	if err != nil {
		s.logger.Warn().Err(err).Str("url", pageURL).Msg("roster page did not parse")
		return nil, err
	}

	s.logger.Info().Int("rows", len(rows)).Msg("roster scraped")
	return rows, nil
}
