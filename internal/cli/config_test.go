package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/treeseed/pkg/errors"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "treeseed.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
output = "fixtures/DBInitial.json"
seed = 42
dot = "/abs/tree.dot"
detailed = true
verbose = true
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if want := filepath.Join(dir, "fixtures", "DBInitial.json"); cfg.Output != want {
		t.Errorf("Output = %q, want %q", cfg.Output, want)
	}
	if cfg.Seed == nil || *cfg.Seed != 42 {
		t.Errorf("Seed = %v, want 42", cfg.Seed)
	}
	if cfg.DOT != "/abs/tree.dot" {
		t.Errorf("DOT = %q, want /abs/tree.dot", cfg.DOT)
	}
	if cfg.SVG != "" {
		t.Errorf("SVG = %q, want empty", cfg.SVG)
	}
	if !cfg.Detailed || !cfg.Verbose {
		t.Errorf("Detailed/Verbose = %v/%v, want true/true", cfg.Detailed, cfg.Verbose)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown key", `count = 10`},
		{"malformed", `output = `},
		{"negative seed", `seed = -1`},
		{"wrong type", `output = 5`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, t.TempDir(), tt.body))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("error = %v, want %v", err, errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "none.toml"))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error = %v, want %v", err, errors.ErrCodeInvalidConfig)
	}
}

func TestGenerateWithConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir, `
output = "from-config.json"
seed = 7
`)

	stdout, _, err := execute(t, "20", "--config", cfgPath)
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(dir, "from-config.json")
	if _, path := reportedCount(t, stdout); path != want {
		t.Errorf("wrote to %q, want %q", path, want)
	}

	first, _ := os.ReadFile(want)
	if _, _, err := execute(t, "20", "--config", cfgPath); err != nil {
		t.Fatal(err)
	}
	second, _ := os.ReadFile(want)
	if !bytes.Equal(first, second) {
		t.Error("seed from config did not reproduce the document")
	}
}

func TestFlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir, `output = "from-config.json"`)
	flagOut := filepath.Join(dir, "from-flag.json")

	stdout, _, err := execute(t, "--config", cfgPath, "-o", flagOut)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, flagOut) {
		t.Errorf("stdout = %q, want path %q", stdout, flagOut)
	}
	if _, err := os.Stat(filepath.Join(dir, "from-config.json")); !os.IsNotExist(err) {
		t.Error("config output should not be written when --output is set")
	}
}
