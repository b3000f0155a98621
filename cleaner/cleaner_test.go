package cleaner

import "testing"

func TestClean(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"emoji removed", "Hello \U0001F44B World \U0001F30D!", "Hello  World !"},
		{"em dash", "This is an em dash — right here.", "This is an em dash -- right here."},
		{"en dash", "Range: 1–10", "Range: 1-10"},
		{"smart double quotes", "“Hello”", "\"Hello\""},
		{"smart single quotes", "‘world’", "'world'"},
		{"ellipsis", "Wait…", "Wait..."},
		{"zero width characters", "Hello\u200bWorld\ufeff!", "HelloWorld!"},
		{"non-breaking space", "a\u00a0b", "ab"},
		{"plain ascii untouched", "Normal text without any special characters.", "Normal text without any special characters."},
		{"mixed", "Hi \U0001F600 — a “test” and … done", "Hi  -- a \"test\" and ... done"},
		{"empty", "", ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Clean(c.in); got != c.want {
				t.Errorf("Clean(%q) = %q; want %q", c.in, got, c.want)
			}
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"Hello \U0001F44B — “quoted” …",
		"already clean ascii -- with \"quotes\" and ... dots",
		"\u200b\u200c\u200d\ufeff",
		"Range: 1–2 ‘a’",
	}

	for _, in := range inputs {
		once := Clean(in)
		twice := Clean(once)
		if once != twice {
			t.Errorf("Clean not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
