package phone

import "testing"

func TestNormalizeE164(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "us number with punctuation", input: "(212) 555-0142", want: "+12125550142"},
		{name: "already e164", input: "+12125550142", want: "+12125550142"},
		{name: "international with country code", input: "+31 20 123 4567", want: "+31201234567"},
		{name: "unparseable kept as-is", input: "ext. 42", want: "ext. 42"},
		{name: "empty", input: "", want: ""},
		{name: "whitespace only", input: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeE164(tt.input); got != tt.want {
				t.Errorf("NormalizeE164(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
