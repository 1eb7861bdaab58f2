package sprites

import "strings"

// distinctForms is the closed set of form qualifiers whose sprite must
// never silently degrade to the base species. Membership is exact,
// case-insensitive match only: several of these tokens are ordinary
// English words, so substring matching would collapse unrelated
// qualifiers onto them.
var distinctForms = map[string]struct{}{}

func init() {
	for _, f := range []string{
		// regional
		"alolan", "galarian", "hisuian", "paldean",
		// legendary alternates
		"origin", "altered", "incarnate", "therian",
		"dusk mane", "dawn wings", "crowned sword", "crowned shield",
		"black", "white", "complete", "unbound",
		// cosmetic / type variants
		"attack", "defense", "speed",
		"plant", "sandy", "trash",
		"heat", "wash", "frost", "fan", "mow",
		"sunny", "rainy", "snowy",
		"dusk", "dawn", "midnight", "midday",
		// mega / primal
		"mega", "mega x", "mega y", "primal",
		"armored",
	} {
		distinctForms[f] = struct{}{}
	}
}

// IsDistinctForm reports whether a form qualifier is in the curated
// distinct-form set.
func IsDistinctForm(form string) bool {
	_, ok := distinctForms[strings.ToLower(strings.TrimSpace(form))]
	return ok
}
