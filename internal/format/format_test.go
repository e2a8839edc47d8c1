package format

import (
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/kiria-f/noita-saves/internal/dirstat"
	"github.com/kiria-f/noita-saves/internal/saves"
)

func TestSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    uint64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{10 * 1024 * 1024, "10.0 MiB"},
		{3 << 30, "3.0 GiB"},
		{1 << 62, "4.0 EiB"},
	}

	for _, tt := range tests {
		if got := Size(tt.n); got != tt.want {
			t.Errorf("Size(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestCount(t *testing.T) {
	t.Parallel()

	if got := Count(1); got != "1 file" {
		t.Errorf("Count(1) = %q", got)
	}
	if got := Count(312); got != "312 files" {
		t.Errorf("Count(312) = %q", got)
	}
	if got := Plural(0, "save"); got != "0 saves" {
		t.Errorf("Plural(0, save) = %q", got)
	}
}

func TestSaveLine(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 1, 2, 15, 4, 0, 0, time.Local)
	s := saves.Save{Name: "Before boss", Created: created, Stat: dirstat.Stat{Size: 2048, Count: 3}}
	other := &saves.Save{Stat: dirstat.Stat{Size: 1, Count: 1}}
	same := &saves.Save{Stat: s.Stat}

	tests := []struct {
		name    string
		current *saves.Save
		want    string
	}{
		{"no live save", nil, "Before boss · 2.0 KiB · 3 files · 2026-01-02 15:04"},
		{"different live save", other, "Before boss · 2.0 KiB · 3 files · 2026-01-02 15:04"},
		{"matching live save", same, "Before boss · 2.0 KiB · 3 files · 2026-01-02 15:04 ● current"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ansi.Strip(SaveLine(s, tt.current)); got != tt.want {
				t.Errorf("SaveLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIndexedLine_Padding(t *testing.T) {
	t.Parallel()

	s := saves.Save{Name: "x"}
	got := ansi.Strip(IndexedLine(3, 12, s, nil))
	if want := " 3 ❯ x · 0 B · 0 files · unknown date"; got != want {
		t.Errorf("IndexedLine() = %q, want %q", got, want)
	}
}
