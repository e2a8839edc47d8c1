package config

import (
	"testing"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	debug := true
	base := &Config{
		SavesDir:    "/file/saves",
		CurrentSave: "/file/save00",
		Game:        GameConfig{Command: []string{"steam"}},
		Theme:       ThemeConfig{Name: "default"},
	}

	merged, err := Merge(base, Overrides{SavesDir: "/flag/saves", Debug: &debug, Theme: "dracula"})
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}

	if merged.SavesDir != "/flag/saves" {
		t.Errorf("SavesDir = %q, want %q", merged.SavesDir, "/flag/saves")
	}
	if merged.CurrentSave != "/file/save00" {
		t.Errorf("CurrentSave = %q, want unchanged", merged.CurrentSave)
	}
	if !merged.Debug {
		t.Error("Debug = false, want true")
	}
	if merged.Theme.Name != "dracula" {
		t.Errorf("Theme.Name = %q, want %q", merged.Theme.Name, "dracula")
	}

	merged.Game.Command[0] = "changed"
	if base.Game.Command[0] != "steam" {
		t.Error("Merge() mutated the base config")
	}
}

func TestMerge_Invalid(t *testing.T) {
	t.Parallel()

	if _, err := Merge(&Config{}, Overrides{SavesDir: "relative"}); err == nil {
		t.Error("Merge() with relative path should fail")
	}
	if _, err := Merge(&Config{}, Overrides{Theme: "bogus"}); err == nil {
		t.Error("Merge() with unknown theme should fail")
	}
}
