package slug

import "testing"

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "spaces to hyphens", input: "Hydraulic Press", want: "hydraulic-press"},
		{name: "punctuation stripped", input: "Hydraulic Press X-200!", want: "hydraulic-press-x-200"},
		{name: "uppercase lowered", input: "LOUD PRODUCT NAME", want: "loud-product-name"},
		{name: "multiple spaces collapsed", input: "too   many   spaces", want: "too-many-spaces"},
		{name: "leading and trailing spaces trimmed", input: "  padded name  ", want: "padded-name"},
		{name: "hyphens preserved", input: "pre-existing-slug", want: "pre-existing-slug"},
		{name: "hyphen runs collapsed", input: "a---b--c", want: "a-b-c"},
		{name: "tabs and newlines treated as whitespace", input: "line\tone\ntwo", want: "line-one-two"},
		{name: "numbers preserved", input: "Valve 42 rev 2", want: "valve-42-rev-2"},
		{name: "symbols and spaces mixed", input: "100% Steel & Brass", want: "100-steel-brass"},
		{name: "apostrophes removed", input: "Baker's Dozen", want: "bakers-dozen"},
		{name: "dots removed", input: "unit.v2.final", want: "unitv2final"},
		{name: "empty input", input: "", want: ""},
		{name: "only symbols", input: "!@#$%", want: ""},
		{name: "only spaces", input: "   ", want: ""},
		{name: "trailing punctuation trimmed", input: "trailing!", want: "trailing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Make(tt.input); got != tt.want {
				t.Errorf("Make(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMake_Idempotent(t *testing.T) {
	inputs := []string{
		"Hydraulic Press X-200!",
		"  padded name  ",
		"100% Steel & Brass",
		"already-a-slug",
		"",
	}

	for _, input := range inputs {
		once := Make(input)
		twice := Make(once)
		if once != twice {
			t.Errorf("Make not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestMake_OutputAlphabet(t *testing.T) {
	inputs := []string{
		"Mixed CASE with 123 & symbols!?",
		"\ttabs\tand\nnewlines",
		"ünïcödé stays out",
	}

	for _, input := range inputs {
		got := Make(input)
		for _, r := range got {
			isLower := r >= 'a' && r <= 'z'
			isDigit := r >= '0' && r <= '9'
			if !isLower && !isDigit && r != '-' {
				t.Errorf("Make(%q) = %q contains invalid rune %q", input, got, r)
			}
		}
	}
}
