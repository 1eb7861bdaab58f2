// Package stats aggregates per-tournament species usage.
package stats

import (
	"sort"
	"strings"

	"tourney-graphics/internal/constants"
	"tourney-graphics/internal/domain"
)

// Usage counts species occurrences across the player list, with shadow
// sub-counts. Grouping is case-insensitive on the species key; empty
// slots are skipped. The ranking sorts by count descending with ties
// broken by first-encountered order, truncated to topN (<= 0 means the
// default).
func Usage(players []*domain.Player, topN int) []domain.UsageStat {
	if topN <= 0 {
		topN = constants.DefaultUsageTopN
	}

	index := make(map[string]int)
	var ranked []domain.UsageStat

	for _, p := range players {
		for _, slot := range p.Team {
			if slot.SpeciesKey == "" {
				continue
			}
			key := strings.ToLower(slot.SpeciesKey)
			i, ok := index[key]
			if !ok {
				i = len(ranked)
				index[key] = i
				ranked = append(ranked, domain.UsageStat{SpeciesKey: slot.SpeciesKey})
			}
			ranked[i].Count++
			if slot.IsShadow {
				ranked[i].ShadowCount++
			}
		}
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Count > ranked[b].Count
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
