package importer

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTabularPartialFailure(t *testing.T) {
	preset, ok := PresetByID("sheet-export")
	require.True(t, ok)

	// Second data row has only a timestamp, so the required name column
	// is missing. The rest of the batch must survive.
	input := "Timestamp,Name,Country,Pokemon 1,Pokemon 2,Pokemon 3,Pokemon 4,Pokemon 5,Pokemon 6\n" +
		"2024-06-01 12:00:00,SpeedyFox,DE,Moltres (Galarian),Corviknight Shadow,Swampert,,,\n" +
		"2024-06-01 12:01:00\n" +
		"2024-06-01 12:02:00,Kertwang,US,Machamp (Shadow),,,,,\n"

	res := ParseTabular(input, preset, zerolog.Nop())

	require.Len(t, res.Records, 2)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "line 3")

	first := res.Records[0]
	assert.Equal(t, "SpeedyFox", first.Name)
	assert.Equal(t, []string{"DE"}, first.Flags)
	require.Len(t, first.Team, 6)
	assert.Equal(t, "moltres (galarian)", first.Team[0].SpeciesKey)
	assert.False(t, first.Team[0].IsShadow)
	assert.Equal(t, "corviknight", first.Team[1].SpeciesKey)
	assert.True(t, first.Team[1].IsShadow)
	assert.Equal(t, "", first.Team[3].SpeciesKey)

	second := res.Records[1]
	assert.Equal(t, "Kertwang", second.Name)
	assert.Equal(t, "machamp", second.Team[0].SpeciesKey)
	assert.True(t, second.Team[0].IsShadow)
}

func TestParseTabularOptionalColumnsMissing(t *testing.T) {
	preset, _ := PresetByID("standard")

	// Rows shorter than the species columns are still accepted.
	input := "Name,Country\nSpeedyFox,DE\nKertwang\n"

	res := ParseTabular(input, preset, zerolog.Nop())

	require.Len(t, res.Records, 2)
	assert.Empty(t, res.Errors)
	assert.Equal(t, "Kertwang", res.Records[1].Name)
	assert.Empty(t, res.Records[1].Flags)
	require.Len(t, res.Records[1].Team, 6)
}

func TestParseTabularBlankAndEmptyInput(t *testing.T) {
	preset, _ := PresetByID("screenname-only")

	res := ParseTabular("", preset, zerolog.Nop())
	assert.Empty(t, res.Records)
	assert.Empty(t, res.Errors)

	res = ParseTabular("Name\n\n   \nSpeedyFox\n", preset, zerolog.Nop())
	require.Len(t, res.Records, 1)
	assert.Equal(t, "SpeedyFox", res.Records[0].Name)
}

func TestPresetExamplesParse(t *testing.T) {
	for _, p := range Presets {
		t.Run(p.ID, func(t *testing.T) {
			res := ParseTabular(p.ExampleHeader+"\n"+p.ExampleRow+"\n", p, zerolog.Nop())
			require.Len(t, res.Records, 1)
			assert.Empty(t, res.Errors)
			assert.NotEmpty(t, res.Records[0].Name)
		})
	}
}
