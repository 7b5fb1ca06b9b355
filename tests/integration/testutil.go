// Package integration provides shared helpers for the bakebook CLI
// integration tests. Each test runs the built binary against an
// isolated config and data directory.
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// bakebookBin is the path to the built bakebook binary.
	bakebookBin string
	// buildErr captures any build error from TestMain.
	buildErr error
)

// BuildError wraps a build failure with the compiler output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot walks up from the working directory looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// SetBakebookBin records the binary path (called from TestMain).
func SetBakebookBin(path string) {
	bakebookBin = path
}

// SetBuildErr records a build error (called from TestMain).
func SetBuildErr(err error) {
	buildErr = err
}

// TestEnv is an isolated environment with its own config and data
// directory. Commands run as separate processes, so state only survives
// between invocations through the data file.
type TestEnv struct {
	t         *testing.T
	TempDir   string
	ConfigDir string
	DataDir   string
}

// NewTestEnv creates an isolated environment using the JSON backend.
func NewTestEnv(t *testing.T) *TestEnv {
	return newTestEnv(t, "json")
}

// NewSQLiteTestEnv creates an isolated environment using the SQLite
// backend.
func NewSQLiteTestEnv(t *testing.T) *TestEnv {
	return newTestEnv(t, "sqlite")
}

func newTestEnv(t *testing.T, backend string) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build bakebook: %v", buildErr)
	}
	if bakebookBin == "" {
		t.Fatal("bakebook binary not built")
	}

	tempDir := t.TempDir()
	dataDir := filepath.Join(tempDir, "data")
	configDir := filepath.Join(tempDir, "config")

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	configContent := "backend: " + backend + "\ndata_dir: " + dataDir + "\nlog_mode: prod\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	return &TestEnv{
		t:         t,
		TempDir:   tempDir,
		ConfigDir: configDir,
		DataDir:   dataDir,
	}
}

// CmdResult holds the outcome of one bakebook invocation.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunBakebook executes the bakebook CLI with the given arguments.
func (e *TestEnv) RunBakebook(args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.ConfigDir, "--data-dir", e.DataDir}, args...)
	cmd := exec.Command(bakebookBin, allArgs...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run bakebook: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunBakebook executes the CLI and fails the test on a non-zero
// exit code.
func (e *TestEnv) MustRunBakebook(args ...string) CmdResult {
	e.t.Helper()
	result := e.RunBakebook(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("bakebook %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// ParseJSON parses JSON output into the target type.
func ParseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", jsonStr, err)
	}
	return result
}

// CommandResult mirrors the --json output document.
type CommandResult struct {
	Feedback     string `json:"feedback"`
	FocusedView  string `json:"focusedView"`
	FocusedIndex int    `json:"focusedIndex"`
}

// Snapshot mirrors the persisted JSON data file.
type Snapshot struct {
	Persons []struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	} `json:"persons"`
	Pastries []struct {
		Name  string `json:"name"`
		Price string `json:"price"`
	} `json:"pastries"`
	Orders []struct {
		OrderID  string `json:"orderId"`
		Customer struct {
			Name  string `json:"name"`
			Phone string `json:"phone"`
		} `json:"customer"`
		Status string `json:"status"`
	} `json:"orders"`
}

// ReadSnapshot reads and parses the JSON data file of env.
func (e *TestEnv) ReadSnapshot() Snapshot {
	e.t.Helper()
	data, err := os.ReadFile(filepath.Join(e.DataDir, "bakebook.json"))
	if err != nil {
		e.t.Fatalf("failed to read data file: %v", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		e.t.Fatalf("failed to parse data file: %v", err)
	}
	return snap
}
