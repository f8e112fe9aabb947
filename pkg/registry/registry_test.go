package registry

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadBuiltinDefault(t *testing.T) {
	reg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reg.DefaultVersion() != DefaultVersionName {
		t.Fatalf("expected default version %q, got %q", DefaultVersionName, reg.DefaultVersion())
	}
	engine, version, err := reg.Engine("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if engine == nil || version != DefaultVersionName {
		t.Fatalf("expected built-in engine, got version %q", version)
	}
}

func TestLoadFromFile(t *testing.T) {
	content := `
default_version: "2024.2"
versions:
  - name: "2024.1"
    shape: 1.5
    scale: 60
    weights:
      age: 0.4
      comorbidity: 0.3
      prior_admission: 0.35
      diabetes: 0.25
      chf: 0.4
      copd: 0.3
      socioeconomic: -0.3
  - name: "2024.2"
    shape: 1.4
    scale: 58
    weights:
      age: 0.42
      comorbidity: 0.28
      prior_admission: 0.36
      diabetes: 0.24
      chf: 0.41
      copd: 0.31
      socioeconomic: -0.28
`
	path := filepath.Join(t.TempDir(), "models.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	reg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reg.DefaultVersion() != "2024.2" {
		t.Fatalf("expected default 2024.2, got %q", reg.DefaultVersion())
	}
	if got := reg.Versions(); len(got) != 2 || got[0] != "2024.1" || got[1] != "2024.2" {
		t.Fatalf("unexpected versions: %v", got)
	}

	engine, version, err := reg.Engine("2024.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if version != "2024.1" {
		t.Fatalf("expected resolved version 2024.1, got %q", version)
	}
	if engine.Coefficients().Scale != 60 {
		t.Fatalf("unexpected scale: %v", engine.Coefficients().Scale)
	}

	if _, _, err := reg.Engine("2019.9"); err == nil {
		t.Fatal("expected error for unknown version")
	}
}

func TestLoadRejectsBadConfig(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"no versions", "default_version: x\nversions: []\n"},
		{"zero scale", "versions:\n  - name: bad\n    shape: 1.5\n    scale: 0\n"},
		{"negative shape", "versions:\n  - name: bad\n    shape: -1\n    scale: 60\n"},
		{"missing name", "versions:\n  - shape: 1.5\n    scale: 60\n"},
		{"unknown default", "default_version: nope\nversions:\n  - name: ok\n    shape: 1.5\n    scale: 60\n"},
	}
	for _, tc := range cases {
		path := filepath.Join(t.TempDir(), "models.yaml")
		if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
			t.Fatalf("%s: failed to write config: %v", tc.name, err)
		}
		if _, err := Load(path); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}
