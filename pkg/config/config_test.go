package config

import (
	"os"
	"path/filepath"
	"testing"

	cncerrors "github.com/adamValent/CNC-code-utility/pkg/errors"
)

// chdir changes the working directory for the duration of the test,
// like t.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Offset.Threshold != 50 || cfg.Offset.Shift != 10 {
		t.Errorf("offset defaults = %+v, want threshold 50, shift 10", cfg.Offset)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("server addr = %q, want :8080", cfg.Server.Addr)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cncutil.toml")
	content := `[offset]
threshold = 30.0
shift = 2.5

[server]
addr = ":9090"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	rule := cfg.Rule()
	if rule.Threshold != 30 || rule.Shift != 2.5 {
		t.Errorf("rule = %+v, want {30 2.5}", rule)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("addr = %q, want :9090", cfg.Server.Addr)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cncutil.toml")
	if err := os.WriteFile(path, []byte("[offset]\nthreshold = 25.0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Offset.Threshold != 25 {
		t.Errorf("threshold = %v, want 25", cfg.Offset.Threshold)
	}
	if cfg.Offset.Shift != 10 {
		t.Errorf("shift = %v, want default 10", cfg.Offset.Shift)
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !cncerrors.Is(err, cncerrors.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want FILE_NOT_FOUND", err)
	}
}

func TestLoad_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cncutil.toml")
	if err := os.WriteFile(path, []byte("offset = [broken"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !cncerrors.Is(err, cncerrors.ErrCodeInvalidConfig) {
		t.Errorf("err = %v, want INVALID_CONFIG", err)
	}
}

func TestResolve_NoFile(t *testing.T) {
	// Run from a directory without cncutil.toml.
	chdir(t, t.TempDir())

	cfg, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if cfg.Offset.Threshold != 50 {
		t.Errorf("threshold = %v, want default 50", cfg.Offset.Threshold)
	}
}
