package layout

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourney-graphics/internal/domain"
	"tourney-graphics/internal/stats"
)

func orderOf(n int) []string {
	order := make([]string, n)
	for i := range order {
		order[i] = fmt.Sprintf("p%02d", i)
	}
	return order
}

func TestPartitionSixteen(t *testing.T) {
	groups, err := Partition(orderOf(16), 16)
	require.NoError(t, err)

	require.Len(t, groups, 4)
	assert.Equal(t, "col1", groups[0].Name)
	assert.Equal(t, []string{"p00", "p01", "p02", "p03"}, groups[0].Players)
	assert.Equal(t, "col4", groups[3].Name)
	assert.Equal(t, []string{"p12", "p13", "p14", "p15"}, groups[3].Players)
}

func TestPartitionSixtyFour(t *testing.T) {
	groups, err := Partition(orderOf(64), 64)
	require.NoError(t, err)

	require.Len(t, groups, 16)
	for _, g := range groups {
		assert.Len(t, g.Players, 4)
	}
	assert.Equal(t, "w1", groups[0].Name)
	assert.Equal(t, "w8", groups[7].Name)
	assert.Equal(t, "l1", groups[8].Name)
	assert.Equal(t, []string{"p32", "p33", "p34", "p35"}, groups[8].Players)
	assert.Equal(t, "l8", groups[15].Name)
	assert.Equal(t, "p63", groups[15].Players[3])
}

func TestPartitionLengthMismatch(t *testing.T) {
	_, err := Partition(orderOf(15), 16)
	require.ErrorIs(t, err, domain.ErrValidationFailure)

	_, err = Partition(orderOf(64), 32)
	require.ErrorIs(t, err, domain.ErrValidationFailure)
}

// Usage over the combined 64 must equal the per-species sums of usage
// computed over the two 32-player halves.
func TestCombinedUsageEqualsHalves(t *testing.T) {
	var players []*domain.Player
	for i := 0; i < 64; i++ {
		players = append(players, &domain.Player{
			ID: fmt.Sprintf("p%02d", i),
			Team: []domain.TeamSlot{
				{SpeciesKey: fmt.Sprintf("species-%d", i%5)},
				{SpeciesKey: "swampert", IsShadow: i%2 == 0},
			},
		})
	}

	counts := func(ranked []domain.UsageStat) map[string][2]int {
		out := make(map[string][2]int)
		for _, u := range ranked {
			prev := out[u.SpeciesKey]
			out[u.SpeciesKey] = [2]int{prev[0] + u.Count, prev[1] + u.ShadowCount}
		}
		return out
	}

	combined := counts(stats.Usage(players, 100))

	halves := counts(stats.Usage(players[:32], 100))
	for key, c := range counts(stats.Usage(players[32:], 100)) {
		prev := halves[key]
		halves[key] = [2]int{prev[0] + c[0], prev[1] + c[1]}
	}

	assert.Equal(t, combined, halves)
}

func TestResolvePositions(t *testing.T) {
	players := map[string]*domain.Player{
		"a": {ID: "a", Name: "Ada"},
		"b": {ID: "b", Name: "Alan"},
	}
	slots := map[domain.BracketSlot]string{
		domain.SlotChampion: "a",
		domain.SlotRunnerUp: "b",
		domain.SlotThird:    "ghost", // no such player
	}

	resolved := ResolvePositions(slots, players)

	require.Len(t, resolved, len(domain.BracketSlots))
	require.NotNil(t, resolved[domain.SlotChampion])
	assert.Equal(t, "Ada", *resolved[domain.SlotChampion])
	assert.Nil(t, resolved[domain.SlotThird], "dangling id resolves to nil, not an error")
	assert.Nil(t, resolved[domain.SlotTopEight1])
}

func TestInferMatches(t *testing.T) {
	slots := map[domain.BracketSlot]string{
		domain.SlotChampion: "a",
		domain.SlotRunnerUp: "b",
		domain.SlotThird:    "c",
		domain.SlotFourth:   "d",
	}

	matches := InferMatches(slots)

	require.Len(t, matches, 4)
	assert.Equal(t, domain.BracketMatch{Round: "final", PlayerA: "a", PlayerB: "b"}, matches[0])
	assert.False(t, matches[1].Inferred)
	assert.True(t, matches[2].Inferred, "semifinals are fabricated from placements")
	assert.True(t, matches[3].Inferred)
}

func TestInferMatchesPartialSlots(t *testing.T) {
	matches := InferMatches(map[domain.BracketSlot]string{
		domain.SlotChampion: "a",
		domain.SlotRunnerUp: "b",
	})

	require.Len(t, matches, 1)
	assert.Equal(t, "final", matches[0].Round)
}
