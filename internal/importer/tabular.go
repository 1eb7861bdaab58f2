// Package importer turns loosely structured external text — CSV batches
// and scraped result pages — into import records. Both parsers tolerate
// malformed rows: a bad row becomes a diagnostic, not an aborted batch.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"tourney-graphics/internal/constants"
	"tourney-graphics/internal/domain"
	"tourney-graphics/internal/normalize"
)

// Preset declares the column mapping of one supported tabular format.
// The name column is required per row; flag and species columns are
// optional and simply skipped when a row is too short to hold them.
type Preset struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`

	ExampleHeader string `json:"exampleHeader"`
	ExampleRow    string `json:"exampleRow"`

	NameCol     int   `json:"nameCol"`
	FlagCols    []int `json:"flagCols"`
	SpeciesCols []int `json:"speciesCols"`
}

// Presets lists every supported tabular format, in menu order.
var Presets = []Preset{
	{
		ID:            "standard",
		Name:          "Standard",
		Description:   "Name, up to two country codes, then six species columns.",
		ExampleHeader: "Name,Country,Country 2,Pokemon 1,Pokemon 2,Pokemon 3,Pokemon 4,Pokemon 5,Pokemon 6",
		ExampleRow:    "SpeedyFox,DE,,Moltres (Galarian),Corviknight Shadow,Swampert,,,",
		NameCol:       0,
		FlagCols:      []int{1, 2},
		SpeciesCols:   []int{3, 4, 5, 6, 7, 8},
	},
	{
		ID:            "screenname-only",
		Name:          "Screen names only",
		Description:   "One name per row, no flags or teams. Useful for seeding lists.",
		ExampleHeader: "Name",
		ExampleRow:    "SpeedyFox",
		NameCol:       0,
	},
	{
		ID:            "sheet-export",
		Name:          "Sheet export",
		Description:   "Form-tool CSV export: timestamp column first, then name, country and six species columns.",
		ExampleHeader: "Timestamp,Name,Country,Pokemon 1,Pokemon 2,Pokemon 3,Pokemon 4,Pokemon 5,Pokemon 6",
		ExampleRow:    "2024-06-01 12:00:00,SpeedyFox,DE,Moltres (Galarian),Corviknight Shadow,Swampert,,,",
		NameCol:       1,
		FlagCols:      []int{2},
		SpeciesCols:   []int{3, 4, 5, 6, 7, 8},
	},
}

// PresetByID returns the preset with the given id.
func PresetByID(id string) (Preset, bool) {
	for _, p := range Presets {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}

// Result is the shared output contract of both importers: the records
// that parsed plus one human-readable diagnostic per record that did
// not.
type Result struct {
	Records []domain.ImportRecord `json:"records"`
	Errors  []string              `json:"errors"`
}

// ParseTabular reads a comma-delimited batch using the preset's column
// mapping. The header row is always skipped. A row missing its required
// name column is rejected with a diagnostic; missing optional columns
// are tolerated.
func ParseTabular(input string, preset Preset, logger zerolog.Logger) Result {
	var res Result

	r := csv.NewReader(strings.NewReader(input))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	line := 0
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("line %d: %v", line, err))
			logger.Debug().Int("line", line).Err(err).Msg("skipping unreadable row")
			continue
		}
		if line == 1 {
			continue // header
		}
		if isBlankRow(row) {
			continue
		}

		if preset.NameCol >= len(row) {
			res.Errors = append(res.Errors, fmt.Sprintf("line %d: missing required name column %d", line, preset.NameCol+1))
			continue
		}

		rec := domain.ImportRecord{
			Name: strings.TrimSpace(row[preset.NameCol]),
			Team: make([]domain.TeamSlot, constants.TeamSize),
		}
		for _, col := range preset.FlagCols {
			if col >= len(row) {
				continue
			}
			if flag := strings.ToUpper(strings.TrimSpace(row[col])); flag != "" {
				rec.Flags = append(rec.Flags, flag)
			}
		}
		for i, col := range preset.SpeciesCols {
			if i >= constants.TeamSize || col >= len(row) {
				continue
			}
			raw := strings.TrimSpace(row[col])
			if raw == "" {
				continue
			}
			n := normalize.Name(raw)
			rec.Team[i] = domain.TeamSlot{SpeciesKey: n.Key(), IsShadow: n.Shadow}
		}
		res.Records = append(res.Records, rec)
	}

	logger.Info().
		Str("preset", preset.ID).
		Int("records", len(res.Records)).
		Int("errors", len(res.Errors)).
		Msg("tabular batch parsed")
	return res
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
