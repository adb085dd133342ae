package wildcard

import "testing"

func TestPattern(t *testing.T) {
	cases := []struct {
		pattern string
		input   string
		match   bool
	}{
		{"*", "", true},
		{"*", "anything", true},
		{"key_*", "key_2", true},
		{"key_*", "Hello", false},
		{"h?llo", "hello", true},
		{"h?llo", "hllo", false},
		{"h[ae]llo", "hallo", true},
		{"h[ae]llo", "hillo", false},
		{"h[^e]llo", "hallo", true},
		{"h[^e]llo", "hello", false},
		{"a.b", "a.b", true},
		{"a.b", "axb", false},
		{`\*`, "*", true},
		{`\*`, "x", false},
		{"(x)", "(x)", true},
		{"^a", "^a", true},
	}
	for _, c := range cases {
		p, err := CompilePattern(c.pattern)
		if err != nil {
			t.Errorf("compile %q: %v", c.pattern, err)
			continue
		}
		if got := p.IsMatch(c.input); got != c.match {
			t.Errorf("%q match %q = %v, want %v", c.pattern, c.input, got, c.match)
		}
	}
}

func TestTrailingEscape(t *testing.T) {
	if _, err := CompilePattern(`abc\`); err == nil {
		t.Error("expected error")
	}
}
