package tournament

import (
	"encoding/json"
	"fmt"

	"tourney-graphics/internal/domain"
)

// Snapshot is the serialized form of the canonical record: a plain
// structured document that round-trips to an equal record.
type Snapshot struct {
	EventName string                        `json:"eventName"`
	Size      int                           `json:"size"`
	Players   []*domain.Player              `json:"players"` // in canonical order
	Bracket   map[domain.BracketSlot]string `json:"bracket,omitempty"`
	Wrappers  []domain.ColumnWrapperConfig  `json:"wrappers,omitempty"`
}

// Export serializes the current record. Players appear in canonical
// order so the order list needs no separate field.
func (s *Store) Export() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := validateTournament(s.t); err != nil {
		return nil, err
	}

	snap := Snapshot{
		EventName: s.t.EventName,
		Size:      s.t.Size,
		Players:   make([]*domain.Player, 0, len(s.t.Order)),
		Bracket:   s.t.Bracket,
		Wrappers:  s.t.Wrappers,
	}
	for _, id := range s.t.Order {
		snap.Players = append(snap.Players, s.t.Players[id])
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return data, nil
}

// Restore replaces the record with a previously exported snapshot. The
// rebuilt record is validated before it takes effect; a structurally
// broken document changes nothing.
func (s *Store) Restore(data []byte) error {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return domain.NewFault(domain.ErrMalformedInput, "unmarshal snapshot: %v", err)
	}

	t := domain.Tournament{
		EventName: snap.EventName,
		Size:      snap.Size,
		Players:   make(map[string]*domain.Player, len(snap.Players)),
		Order:     make([]string, 0, len(snap.Players)),
		Bracket:   make(map[domain.BracketSlot]string, len(snap.Bracket)),
		Wrappers:  append([]domain.ColumnWrapperConfig(nil), snap.Wrappers...),
	}
	for _, p := range snap.Players {
		if p == nil {
			return domain.NewFault(domain.ErrMalformedInput, "snapshot contains a null player")
		}
		t.Players[p.ID] = p
		t.Order = append(t.Order, p.ID)
	}
	for slot, id := range snap.Bracket {
		t.Bracket[slot] = id
	}

	if err := validateTournament(t); err != nil {
		return err
	}

	s.mu.Lock()
	s.t = t
	s.mu.Unlock()

	s.logger.Info().Int("players", len(t.Players)).Str("event", t.EventName).Msg("snapshot restored")
	return nil
}
