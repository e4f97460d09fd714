package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type testConfig struct {
	Name string `yaml:"name"`
	Dir  string `yaml:"dir"`
}

func (c *testConfig) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("GALLERY_TEST_DIR", "/srv/decks")
	p := writeConfig(t, "name: demo\ndir: ${GALLERY_TEST_DIR}\n")

	var cfg testConfig
	if err := Load(p, &cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Dir != "/srv/decks" {
		t.Errorf("dir = %q", cfg.Dir)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	var cfg testConfig
	if err := Load(filepath.Join(t.TempDir(), "nope.yaml"), &cfg); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_ValidationFailure(t *testing.T) {
	p := writeConfig(t, "dir: x\n")
	var cfg testConfig
	err := Load(p, &cfg)
	if err == nil || !strings.Contains(err.Error(), "validation failed") {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	p := writeConfig(t, "name: [unterminated\n")
	var cfg testConfig
	if err := Load(p, &cfg); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadIfExists_MissingKeepsDefaults(t *testing.T) {
	cfg := testConfig{Name: "default", Dir: "ppts"}
	found, err := LoadIfExists(filepath.Join(t.TempDir(), "absent.yaml"), &cfg)
	if err != nil {
		t.Fatalf("LoadIfExists: %v", err)
	}
	if found {
		t.Error("found = true for missing file")
	}
	if cfg.Name != "default" || cfg.Dir != "ppts" {
		t.Errorf("defaults changed: %+v", cfg)
	}
}

func TestLoadIfExists_MissingStillValidates(t *testing.T) {
	var cfg testConfig
	if _, err := LoadIfExists(filepath.Join(t.TempDir(), "absent.yaml"), &cfg); err == nil {
		t.Fatal("expected validation error for empty defaults")
	}
}

func TestLoadIfExists_OverridesDefaults(t *testing.T) {
	p := writeConfig(t, "dir: slides\n")
	cfg := testConfig{Name: "default", Dir: "ppts"}
	found, err := LoadIfExists(p, &cfg)
	if err != nil || !found {
		t.Fatalf("LoadIfExists: found=%v err=%v", found, err)
	}
	if cfg.Name != "default" || cfg.Dir != "slides" {
		t.Errorf("cfg = %+v", cfg)
	}
}
