package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lifelist/internal/config"
)

type cliTestEnv struct {
	configPath string
	baseDir    string
	dataDir    string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv(config.EnvDatabaseURL, "")
	t.Setenv(config.EnvLogLevel, "")
	os.Unsetenv(config.EnvDatabaseURL)
	os.Unsetenv(config.EnvLogLevel)
	t.Chdir(base)

	dataDir := filepath.Join(base, "data")
	configPath := filepath.Join(homeDir, ".config", "lifelist", "config.toml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	writeTestConfig(t, configPath, dataDir)

	return &cliTestEnv{configPath: configPath, baseDir: base, dataDir: dataDir}
}

func writeTestConfig(t *testing.T, path, dataDir string) {
	t.Helper()
	var b strings.Builder
	b.WriteString("[paths]\n")
	fmt.Fprintf(&b, "data_dir = %q\n", dataDir)
	b.WriteString("log_dir = \"\"\n\n")
	b.WriteString("[store]\n")
	b.WriteString("backend = \"sqlite\"\n\n")
	b.WriteString("[logging]\n")
	b.WriteString("level = \"error\"\n")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected output to contain %q, got:\n%s", substr, output)
	}
}

func requireNotContains(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Fatalf("expected output not to contain %q, got:\n%s", substr, output)
	}
}
