// Package normalize canonicalizes free-text species names into a base
// name, an optional form qualifier, and a shadow flag. Everything here
// is pure; malformed input degrades to a plain base name.
package normalize

import "strings"

// Normalized is the canonical breakdown of a species name.
type Normalized struct {
	Base   string
	Form   string // "" when no form qualifier
	Shadow bool
}

// Key returns the lookup key used across the local and remote sprite
// indices: lowercased base, with the form appended in parentheses.
func (n Normalized) Key() string {
	base := strings.ToLower(strings.TrimSpace(n.Base))
	if base == "" {
		return ""
	}
	if n.Form == "" {
		return base
	}
	return base + " (" + n.Form + ")"
}

// regionSynonyms folds the short and long spellings of each regional
// form onto one canonical adjective. A closed table on purpose:
// inferring from prefixes would false-positive on unrelated qualifiers.
var regionSynonyms = map[string]string{
	"alola":    "alolan",
	"alolan":   "alolan",
	"galar":    "galarian",
	"galarian": "galarian",
	"hisui":    "hisuian",
	"hisuian":  "hisuian",
	"paldea":   "paldean",
	"paldean":  "paldean",
}

const shadowWord = "shadow"

// Name parses a free-text species name: an optional parenthetical or
// bracketed form qualifier, and a "Shadow" marker that may appear after
// the base name or inside the qualifier. It never fails; an input with
// no recognizable structure comes back as a bare base name.
func Name(raw string) Normalized {
	var n Normalized

	base, qualifier := splitQualifier(raw)

	words := strings.Fields(base)
	for len(words) > 0 && strings.EqualFold(words[len(words)-1], shadowWord) {
		n.Shadow = true
		words = words[:len(words)-1]
	}
	n.Base = strings.Join(words, " ")

	if qualifier != "" {
		n.Form = canonicalForm(qualifier, &n.Shadow)
	}
	return n
}

// splitQualifier separates "Name (Qualifier) trailing" into the name
// (with any trailing text appended) and the qualifier. An unclosed
// bracket swallows the rest of the string as the qualifier.
func splitQualifier(raw string) (base, qualifier string) {
	raw = strings.TrimSpace(raw)

	open := strings.IndexAny(raw, "([")
	if open < 0 {
		return raw, ""
	}

	closer := ")"
	if raw[open] == '[' {
		closer = "]"
	}

	rest := raw[open+1:]
	if end := strings.Index(rest, closer); end >= 0 {
		qualifier = rest[:end]
		base = strings.TrimSpace(raw[:open] + " " + rest[end+1:])
		return base, strings.TrimSpace(qualifier)
	}
	return strings.TrimSpace(raw[:open]), strings.TrimSpace(rest)
}

// canonicalForm lowercases the qualifier, strips shadow markers and a
// trailing "form"/"forme" word, and folds regional synonyms. Unknown
// qualifiers pass through verbatim, lowercased.
func canonicalForm(qualifier string, shadow *bool) string {
	words := strings.Fields(strings.ToLower(qualifier))

	kept := words[:0]
	for _, w := range words {
		if w == shadowWord {
			*shadow = true
			continue
		}
		kept = append(kept, w)
	}

	if len(kept) > 0 {
		switch kept[len(kept)-1] {
		case "form", "forme":
			kept = kept[:len(kept)-1]
		}
	}
	if len(kept) == 0 {
		return ""
	}

	form := strings.Join(kept, " ")
	if canonical, ok := regionSynonyms[form]; ok {
		return canonical
	}
	return form
}
