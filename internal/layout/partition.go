// Package layout slices the canonical player order into the fixed
// positional groups each supported tournament size requires, and
// resolves named bracket-position slots.
package layout

import (
	"fmt"

	"tourney-graphics/internal/constants"
	"tourney-graphics/internal/domain"
)

// Group is one named contiguous run of player ids. The caller's order
// encodes the intended placement; no reordering happens here.
type Group struct {
	Name    string   `json:"name"`
	Players []string `json:"players"`
}

// Partition slices order into the named groups for the given size:
//
//	16 -> col1..col4, four players each
//	64 -> w1..w8 over the first half, l1..l8 over the second
//
// The only validation is exact expected length; anything else is a
// broken caller contract.
func Partition(order []string, size int) ([]Group, error) {
	if len(order) != size {
		return nil, domain.NewFault(domain.ErrValidationFailure,
			"player order holds %d ids, size %d requires exactly %d", len(order), size, size)
	}

	switch size {
	case constants.SizeSixteen:
		return slices4(order, func(i int) string { return fmt.Sprintf("col%d", i+1) }), nil
	case constants.SizeSixtyFour:
		half := size / 2
		winners := slices4(order[:half], func(i int) string { return fmt.Sprintf("w%d", i+1) })
		losers := slices4(order[half:], func(i int) string { return fmt.Sprintf("l%d", i+1) })
		return append(winners, losers...), nil
	default:
		return nil, domain.NewFault(domain.ErrValidationFailure, "unsupported tournament size %d", size)
	}
}

func slices4(order []string, name func(int) string) []Group {
	groups := make([]Group, 0, len(order)/constants.ColumnLength)
	for i := 0; i < len(order); i += constants.ColumnLength {
		groups = append(groups, Group{
			Name:    name(len(groups)),
			Players: order[i : i+constants.ColumnLength],
		})
	}
	return groups
}

// ResolvePositions maps the sparse slot -> player-id bracket mapping to
// slot -> display name. Every named slot is present in the result; an
// unmapped slot or one referencing a missing player resolves to nil.
func ResolvePositions(slots map[domain.BracketSlot]string, players map[string]*domain.Player) domain.ResolvedBracketPositions {
	resolved := make(domain.ResolvedBracketPositions, len(domain.BracketSlots))
	for _, slot := range domain.BracketSlots {
		resolved[slot] = nil
		if id, ok := slots[slot]; ok {
			if p, ok := players[id]; ok {
				name := p.Name
				resolved[slot] = &name
			}
		}
	}
	return resolved
}

// InferMatches reconstructs a best-effort set of bracket pairings from
// final placements. Placements alone cannot recover the real bracket:
// the semifinal pairings here are fabricated as champion-vs-fourth and
// runner-up-vs-third and flagged Inferred. Slots that cannot be paired
// are simply absent.
func InferMatches(slots map[domain.BracketSlot]string) []domain.BracketMatch {
	var matches []domain.BracketMatch

	pair := func(round string, a, b domain.BracketSlot, inferred bool) {
		idA, okA := slots[a]
		idB, okB := slots[b]
		if okA && okB {
			matches = append(matches, domain.BracketMatch{
				Round: round, PlayerA: idA, PlayerB: idB, Inferred: inferred,
			})
		}
	}

	pair("final", domain.SlotChampion, domain.SlotRunnerUp, false)
	pair("third-place", domain.SlotThird, domain.SlotFourth, false)
	pair("semifinal", domain.SlotChampion, domain.SlotFourth, true)
	pair("semifinal", domain.SlotRunnerUp, domain.SlotThird, true)

	return matches
}
