package sim

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("missing file should yield defaults")
	}
}

func TestLoadConfigOverridesOnlyGivenFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("gravity: 0.25\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Gravity != 0.25 {
		t.Fatalf("gravity = %v, want 0.25", cfg.Gravity)
	}

	want := DefaultConfig()
	want.Gravity = 0.25
	if cfg != want {
		t.Fatalf("other fields changed: got %+v, want %+v", cfg, want)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("empty path should yield defaults")
	}
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte(":\n\t- nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected an error for malformed yaml")
	}
}
