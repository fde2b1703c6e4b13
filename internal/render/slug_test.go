// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Overview", "overview"},
		{"Key Features", "key-features"},
		{"  Spaced   Out  ", "spaced-out"},
		{"Q3 2026: Tax Analysis!", "q3-2026-tax-analysis"},
		{"already-slugged", "already-slugged"},
		{"---", ""},
		{"", ""},
		{"C++ & Go", "c-go"},
		{"Ünïcode Héadings", "ünïcode-héadings"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Slugify(tt.in); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSlugIDsDeduplicate(t *testing.T) {
	ids := newSlugIDs()

	first := string(ids.Generate([]byte("Overview"), 0))
	second := string(ids.Generate([]byte("Overview"), 0))
	third := string(ids.Generate([]byte("Overview"), 0))

	if first != "overview" || second != "overview-1" || third != "overview-2" {
		t.Errorf("got %q, %q, %q", first, second, third)
	}
}
