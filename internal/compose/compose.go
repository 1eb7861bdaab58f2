// Package compose turns the canonical tournament record into the
// render-ready graphic description. The output is plain data; nothing
// here knows about the rendering layer.
package compose

import (
	"context"

	"github.com/rs/zerolog"

	"tourney-graphics/internal/constants"
	"tourney-graphics/internal/domain"
	"tourney-graphics/internal/layout"
	"tourney-graphics/internal/sprites"
	"tourney-graphics/internal/stats"
)

// RenderSlot is one team slot with its sprite resolved. An empty key
// keeps an empty sprite reference and renders as a placeholder.
type RenderSlot struct {
	SpeciesKey string           `json:"speciesKey"`
	IsShadow   bool             `json:"isShadow"`
	Sprite     sprites.AssetRef `json:"sprite"`
}

// RenderPlayer is a player ready for placement: flags filtered of empty
// strings, every slot carrying its resolved sprite.
type RenderPlayer struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Flags []string     `json:"flags"`
	Slots []RenderSlot `json:"slots"`
}

// GraphicPage is one physical output graphic: the whole tournament at
// size 16, the winners or losers side at size 64.
type GraphicPage struct {
	Label    string                       `json:"label"`
	Groups   []layout.Group               `json:"groups"`
	Wrappers []domain.ColumnWrapperConfig `json:"wrappers"`
}

// RenderDescription is the composed, immutable input to the renderer.
type RenderDescription struct {
	EventName string                          `json:"eventName"`
	Size      int                             `json:"size"`
	Players   []RenderPlayer                  `json:"players"` // canonical order
	Pages     []GraphicPage                   `json:"pages"`
	Usage     []domain.UsageStat              `json:"usage"`
	Bracket   domain.ResolvedBracketPositions `json:"bracket,omitempty"`
	Matches   []domain.BracketMatch           `json:"matches,omitempty"`
}

type Composer struct {
	resolver *sprites.Resolver
	logger   zerolog.Logger
}

func NewComposer(resolver *sprites.Resolver, logger zerolog.Logger) *Composer {
	return &Composer{resolver: resolver, logger: logger}
}

// Compose builds the full render description: positioned groups, per
// slot sprite references, the usage ranking over the complete player
// set, resolved bracket positions, and the wrapper config carried
// through unchanged.
func (c *Composer) Compose(ctx context.Context, t domain.Tournament, topN int) (*RenderDescription, error) {
	groups, err := layout.Partition(t.Order, t.Size)
	if err != nil {
		return nil, err
	}

	ordered := make([]*domain.Player, 0, len(t.Order))
	for _, id := range t.Order {
		ordered = append(ordered, t.Players[id])
	}

	desc := &RenderDescription{
		EventName: t.EventName,
		Size:      t.Size,
		Players:   make([]RenderPlayer, 0, len(ordered)),
		Pages:     pages(t.Size, groups, t.Wrappers),
		Usage:     stats.Usage(ordered, topN),
	}

	for _, p := range ordered {
		rp := RenderPlayer{
			ID:    p.ID,
			Name:  p.Name,
			Flags: nonEmpty(p.Flags),
			Slots: make([]RenderSlot, len(p.Team)),
		}
		for i, slot := range p.Team {
			rp.Slots[i] = RenderSlot{
				SpeciesKey: slot.SpeciesKey,
				IsShadow:   slot.IsShadow,
				Sprite:     c.resolver.Resolve(ctx, slot.SpeciesKey),
			}
		}
		desc.Players = append(desc.Players, rp)
	}

	if len(t.Bracket) > 0 {
		desc.Bracket = layout.ResolvePositions(t.Bracket, t.Players)
		desc.Matches = layout.InferMatches(t.Bracket)
	}

	c.logger.Info().
		Str("event", t.EventName).
		Int("size", t.Size).
		Int("players", len(desc.Players)).
		Int("usage_rows", len(desc.Usage)).
		Msg("graphic description composed")
	return desc, nil
}

// pages splits the named groups into physical graphics. At size 64 the
// two sides are independent graphics; the wrapper list splits evenly
// across them when its length allows, and is otherwise carried to both
// sides unchanged.
func pages(size int, groups []layout.Group, wrappers []domain.ColumnWrapperConfig) []GraphicPage {
	if size != constants.SizeSixtyFour {
		return []GraphicPage{{Groups: groups, Wrappers: wrappers}}
	}

	half := len(groups) / 2
	winners := GraphicPage{Label: "winners", Groups: groups[:half], Wrappers: wrappers}
	losers := GraphicPage{Label: "losers", Groups: groups[half:], Wrappers: wrappers}
	if len(wrappers)%2 == 0 && len(wrappers) > 0 {
		winners.Wrappers = wrappers[:len(wrappers)/2]
		losers.Wrappers = wrappers[len(wrappers)/2:]
	}
	return []GraphicPage{winners, losers}
}

func nonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
