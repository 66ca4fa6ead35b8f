package config

import (
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
	if Exists() {
		t.Error("Exists() = true with no config file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	want := Config{
		General:    GeneralConfig{DataDir: "/tmp/paisa-data"},
		Appearance: AppearanceConfig{Theme: "tokyo-night"},
	}
	if err := Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Errorf("Load = %+v, want %+v", got, want)
	}
}

func TestDBPathHonorsOverride(t *testing.T) {
	cfg := Config{General: GeneralConfig{DataDir: "/custom"}}
	if got := DBPath(cfg); got != "/custom/paisa.db" {
		t.Errorf("DBPath = %q, want /custom/paisa.db", got)
	}
}

func TestDBPathDefaultsToXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	got := DBPath(Default())
	want := dir + "/paisa/paisa.db"
	if got != want {
		t.Errorf("DBPath = %q, want %q", got, want)
	}
}
