package normalize

import "testing"

func TestName(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Normalized
	}{
		{
			name: "plain name",
			in:   "Corviknight",
			want: Normalized{Base: "Corviknight"},
		},
		{
			name: "bracketed regional form with form suffix",
			in:   "Moltres [Galarian Form]",
			want: Normalized{Base: "Moltres", Form: "galarian"},
		},
		{
			name: "parenthesized long regional form",
			in:   "Ninetales (Alolan)",
			want: Normalized{Base: "Ninetales", Form: "alolan"},
		},
		{
			name: "short region code folds to adjective",
			in:   "Ninetales (Alola)",
			want: Normalized{Base: "Ninetales", Form: "alolan"},
		},
		{
			name: "trailing shadow marker",
			in:   "Corviknight Shadow",
			want: Normalized{Base: "Corviknight", Shadow: true},
		},
		{
			name: "shadow as the whole qualifier",
			in:   "Machamp (Shadow)",
			want: Normalized{Base: "Machamp", Shadow: true},
		},
		{
			name: "form then shadow marker",
			in:   "Moltres (Galarian) Shadow",
			want: Normalized{Base: "Moltres", Form: "galarian", Shadow: true},
		},
		{
			name: "shadow inside qualifier with form",
			in:   "Moltres (Galarian Shadow)",
			want: Normalized{Base: "Moltres", Form: "galarian", Shadow: true},
		},
		{
			name: "unknown qualifier passes through lowercased",
			in:   "Castform [Foo Bar]",
			want: Normalized{Base: "Castform", Form: "foo bar"},
		},
		{
			name: "unclosed bracket swallows the rest",
			in:   "Giratina (Origin",
			want: Normalized{Base: "Giratina", Form: "origin"},
		},
		{
			name: "empty input",
			in:   "",
			want: Normalized{},
		},
		{
			name: "whitespace noise",
			in:   "  Mr. Mime   (Galarian)  ",
			want: Normalized{Base: "Mr. Mime", Form: "galarian"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Name(tc.in)
			if got != tc.want {
				t.Fatalf("Name(%q) = %+v, want %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestKey(t *testing.T) {
	cases := []struct {
		in   Normalized
		want string
	}{
		{Normalized{Base: "Moltres", Form: "galarian"}, "moltres (galarian)"},
		{Normalized{Base: "Corviknight"}, "corviknight"},
		{Normalized{Base: "Corviknight", Shadow: true}, "corviknight"},
		{Normalized{}, ""},
	}
	for _, tc := range cases {
		if got := tc.in.Key(); got != tc.want {
			t.Errorf("Key(%+v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
