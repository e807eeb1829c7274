package md2html

import (
	"errors"
	"testing"
)

func TestParseEngine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Engine
		wantErr error
	}{
		{"empty selects passes", "", EnginePasses, nil},
		{"passes", "passes", EnginePasses, nil},
		{"commonmark", "commonmark", EngineCommonMark, nil},
		{"case insensitive", "CommonMark", EngineCommonMark, nil},
		{"surrounding space", "  passes ", EnginePasses, nil},
		{"unknown", "pandoc", "", ErrUnknownEngine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseEngine(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseEngine(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseEngine(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEngines(t *testing.T) {
	t.Parallel()

	for _, name := range Engines() {
		if _, err := ParseEngine(name); err != nil {
			t.Errorf("ParseEngine(%q) = %v, want every listed engine accepted", name, err)
		}
	}
}
