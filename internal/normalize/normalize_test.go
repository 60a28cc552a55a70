package normalize

import (
	"strings"
	"testing"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercases",
			input: "Zoey Dong, Roseville CA",
			want:  "zoey dong, roseville ca",
		},
		{
			name:  "strips weight tokens",
			input: "lex2 2.8 lbs box",
			want:  "lex2 box",
		},
		{
			name:  "strips integer weight without space",
			input: "41lbs parcel",
			want:  "parcel",
		},
		{
			name:  "strips long numeric runs",
			input: "id 1234567890 ok",
			want:  "id ok",
		},
		{
			name:  "keeps nine digit runs",
			input: "ref 123456789",
			want:  "ref 123456789",
		},
		{
			name:  "keeps digits glued to letters",
			input: "tba132376390000 cycle",
			want:  "tba132376390000 cycle",
		},
		{
			name:  "strips country tokens",
			input: "roseville ca united states usa",
			want:  "roseville ca",
		},
		{
			name:  "strips carrier and billing stopwords",
			input: "ups ground priority tracking fedex usps billing sender postage ship to",
			want:  "ship to",
		},
		{
			name:  "collapses whitespace and trims",
			input: "  a   b\t\tc \n d  ",
			want:  "a b c d",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "noise only input becomes empty",
			input: "2.8 lbs usa tracking 1234567890",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.input); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanRemovesAllNoiseClasses(t *testing.T) {
	input := "UPS Ground 41 lbs Tracking 1234567890123 Zoey Dong 2821 Carradale Dr Roseville CA United States"
	got := Clean(input)

	for _, banned := range []string{
		"lbs", "1234567890123", "united states", "usa",
		"priority", "ground", "tracking", "fedex", "ups", "usps", "billing", "sender", "postage",
	} {
		if strings.Contains(got, banned) {
			t.Errorf("Clean output %q still contains %q", got, banned)
		}
	}
	for _, kept := range []string{"zoey dong", "2821 carradale dr", "roseville ca"} {
		if !strings.Contains(got, kept) {
			t.Errorf("Clean output %q lost wanted substring %q", got, kept)
		}
	}
}
