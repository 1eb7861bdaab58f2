// Package tournament owns the canonical record for the session: the
// player map, the ordered id list that encodes placement, and the
// ancillary bracket and wrapper config. All reads hand out copies; the
// composed outputs never alias store internals.
package tournament

import (
	"fmt"
	"sync"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"

	"tourney-graphics/internal/constants"
	"tourney-graphics/internal/domain"
)

type Store struct {
	mu     sync.RWMutex
	t      domain.Tournament
	logger zerolog.Logger
}

func NewStore(logger zerolog.Logger) *Store {
	return &Store{
		t: domain.Tournament{
			Size:    constants.SizeSixteen,
			Players: make(map[string]*domain.Player),
			Bracket: make(map[domain.BracketSlot]string),
		},
		logger: logger,
	}
}

// SetEvent sets the event name and tournament size.
func (s *Store) SetEvent(name string, size int) error {
	if size != constants.SizeSixteen && size != constants.SizeSixtyFour {
		return domain.NewFault(domain.ErrValidationFailure, "unsupported tournament size %d", size)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.t.EventName = name
	s.t.Size = size
	return nil
}

// AddPlayer mints a new player from an import record and appends it to
// the order. The team is padded or truncated to exactly six slots.
func (s *Store) AddPlayer(rec domain.ImportRecord) (*domain.Player, error) {
	id, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("generate player id: %w", err)
	}

	p := &domain.Player{
		ID:    id,
		Name:  rec.Name,
		Flags: append([]string(nil), rec.Flags...),
		Team:  normalizeTeam(rec.Team),
	}

	s.mu.Lock()
	s.t.Players[id] = p
	s.t.Order = append(s.t.Order, id)
	s.mu.Unlock()

	s.logger.Debug().Str("id", id).Str("name", p.Name).Msg("player added")
	return copyPlayer(p), nil
}

// MergeRecords adds a batch of import records, returning the new ids in
// input order.
func (s *Store) MergeRecords(recs []domain.ImportRecord) ([]string, error) {
	ids := make([]string, 0, len(recs))
	for _, rec := range recs {
		p, err := s.AddPlayer(rec)
		if err != nil {
			return ids, err
		}
		ids = append(ids, p.ID)
	}
	return ids, nil
}

// UpdatePlayer replaces the mutable fields of an existing player.
func (s *Store) UpdatePlayer(id string, rec domain.ImportRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.t.Players[id]
	if !ok {
		return domain.NewFault(domain.ErrValidationFailure, "no player with id %s", id)
	}
	p.Name = rec.Name
	p.Flags = append([]string(nil), rec.Flags...)
	p.Team = normalizeTeam(rec.Team)
	return nil
}

// RemovePlayer deletes a player, its order entry, and any bracket slots
// referencing it. Removal is always an explicit caller action.
func (s *Store) RemovePlayer(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.t.Players[id]; !ok {
		return domain.NewFault(domain.ErrValidationFailure, "no player with id %s", id)
	}
	delete(s.t.Players, id)

	order := s.t.Order[:0]
	for _, oid := range s.t.Order {
		if oid != id {
			order = append(order, oid)
		}
	}
	s.t.Order = order

	for slot, sid := range s.t.Bracket {
		if sid == id {
			delete(s.t.Bracket, slot)
		}
	}
	return nil
}

// SetOrder replaces the canonical order. The new order must be a
// permutation of the player map's keys.
func (s *Store) SetOrder(ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validateOrder(ids, s.t.Players); err != nil {
		return err
	}
	s.t.Order = append([]string(nil), ids...)
	return nil
}

// SetBracketSlot maps a named bracket slot to a player id. An empty id
// clears the slot. A dangling id is allowed here and resolves to null
// later.
func (s *Store) SetBracketSlot(slot domain.BracketSlot, playerID string) error {
	if !knownSlot(slot) {
		return domain.NewFault(domain.ErrValidationFailure, "unknown bracket slot %q", slot)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if playerID == "" {
		delete(s.t.Bracket, slot)
	} else {
		s.t.Bracket[slot] = playerID
	}
	return nil
}

// SetWrappers replaces the column wrapper configuration.
func (s *Store) SetWrappers(wrappers []domain.ColumnWrapperConfig) {
	s.mu.Lock()
	s.t.Wrappers = append([]domain.ColumnWrapperConfig(nil), wrappers...)
	s.mu.Unlock()
}

// Record returns a deep copy of the canonical record.
func (s *Store) Record() domain.Tournament {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyTournament(s.t)
}

// Validate checks the structural invariants of the assembled record:
// six slots per team, order and player map holding exactly the same
// ids, no duplicates.
func (s *Store) Validate() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return validateTournament(s.t)
}

func validateTournament(t domain.Tournament) error {
	if t.Size != constants.SizeSixteen && t.Size != constants.SizeSixtyFour {
		return domain.NewFault(domain.ErrValidationFailure, "unsupported tournament size %d", t.Size)
	}
	for id, p := range t.Players {
		if p == nil || p.ID != id {
			return domain.NewFault(domain.ErrValidationFailure, "player map key %s does not match its entry", id)
		}
		if len(p.Team) != constants.TeamSize {
			return domain.NewFault(domain.ErrValidationFailure,
				"player %s has %d team slots, want %d", id, len(p.Team), constants.TeamSize)
		}
	}
	return validateOrder(t.Order, t.Players)
}

func validateOrder(order []string, players map[string]*domain.Player) error {
	if len(order) != len(players) {
		return domain.NewFault(domain.ErrValidationFailure,
			"order holds %d ids, player map holds %d", len(order), len(players))
	}
	seen := make(map[string]struct{}, len(order))
	for _, id := range order {
		if _, dup := seen[id]; dup {
			return domain.NewFault(domain.ErrValidationFailure, "duplicate id %s in order", id)
		}
		seen[id] = struct{}{}
		if _, ok := players[id]; !ok {
			return domain.NewFault(domain.ErrValidationFailure, "order references unknown player %s", id)
		}
	}
	return nil
}

func knownSlot(slot domain.BracketSlot) bool {
	for _, s := range domain.BracketSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// normalizeTeam pads or truncates to exactly TeamSize slots.
func normalizeTeam(team []domain.TeamSlot) []domain.TeamSlot {
	out := make([]domain.TeamSlot, constants.TeamSize)
	copy(out, team)
	return out
}

func copyPlayer(p *domain.Player) *domain.Player {
	cp := *p
	cp.Flags = append([]string(nil), p.Flags...)
	cp.Team = append([]domain.TeamSlot(nil), p.Team...)
	return &cp
}

func copyTournament(t domain.Tournament) domain.Tournament {
	cp := t
	cp.Players = make(map[string]*domain.Player, len(t.Players))
	for id, p := range t.Players {
		cp.Players[id] = copyPlayer(p)
	}
	cp.Order = append([]string(nil), t.Order...)
	cp.Bracket = make(map[domain.BracketSlot]string, len(t.Bracket))
	for slot, id := range t.Bracket {
		cp.Bracket[slot] = id
	}
	cp.Wrappers = append([]domain.ColumnWrapperConfig(nil), t.Wrappers...)
	return cp
}
