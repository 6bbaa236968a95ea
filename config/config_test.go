package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	chdir(t, t.TempDir())
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Source != "" {
		t.Errorf("Source = %q, want empty", c.Source)
	}
	if c.Roles.Candidate != "Candidate" || c.Roles.Interviewer != "Interviewer" {
		t.Errorf("roles = %+v", c.Roles)
	}
	if c.Pipeline.LogLvl != "info" || c.Services.TimeoutSeconds != 60 || c.Paths.Transcripts != "transcripts" {
		t.Errorf("defaults = %+v", c)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("CONFIG_ENV", "test")
	t.Setenv("INTERVIEW_SERVICES_TIMEOUT_SECONDS", "5")

	path := filepath.Join(dir, "config", "test", "config.yaml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	body := `pipeline:
  log_level: debug
roles:
  candidate: Alice
services:
  sentiment:
    url: http://localhost:9000
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Source != filepath.Join("config", "test", "config.yaml") {
		t.Errorf("Source = %q", c.Source)
	}
	if c.Roles.Candidate != "Alice" || c.Roles.Interviewer != "Interviewer" {
		t.Errorf("roles = %+v", c.Roles)
	}
	if c.Pipeline.LogLvl != "debug" || c.Services.Sentiment.URL != "http://localhost:9000" {
		t.Errorf("file values not applied: %+v", c)
	}
	if got := DurSeconds(c.Services.TimeoutSeconds); got != 5*time.Second {
		t.Errorf("timeout = %v, want 5s from env", got)
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load(missing) error = nil")
	}
}

func TestValidate(t *testing.T) {
	chdir(t, t.TempDir())
	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	c.Pipeline.LogLvl = "loud"
	c.Pipeline.LogFormat = "xml"
	c.Services.TimeoutSeconds = -1
	err = c.Validate()
	if err == nil {
		t.Fatal("Validate() error = nil")
	}
	for _, key := range []string{"pipeline.log_level", "pipeline.log_format", "services.timeout_seconds"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error %q does not mention %s", err, key)
		}
	}
}
