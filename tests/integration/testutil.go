// Package integration provides CLI integration tests for daylist. They run
// the built binary end to end against throwaway config and data directories.
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
	// daylistBin is the path to the built daylist binary.
	daylistBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with its output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// SetDaylistBin sets the path to the daylist binary (called from TestMain).
func SetDaylistBin(path string) {
	daylistBin = path
}

// SetBuildErr sets the build error (called from TestMain).
func SetBuildErr(err error) {
	buildErr = err
}

// Result holds the outcome of one CLI invocation.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// TestEnv provides an isolated config and data directory pair for one test.
type TestEnv struct {
	t         *testing.T
	ConfigDir string
	DataDir   string
}

// NewTestEnv creates a TestEnv backed by temp directories.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()
	if buildErr != nil {
		t.Fatalf("daylist binary not built: %v", buildErr)
	}
	return &TestEnv{
		t:         t,
		ConfigDir: t.TempDir(),
		DataDir:   t.TempDir(),
	}
}

// RunDaylist runs the daylist binary with the env's directories plus the
// given arguments.
func (e *TestEnv) RunDaylist(args ...string) Result {
	e.t.Helper()

	full := append([]string{"--config-dir", e.ConfigDir, "--data-dir", e.DataDir}, args...)
	cmd := exec.Command(daylistBin, full...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if exitErr, ok := err.(*exec.ExitError); ok {
		exitCode = exitErr.ExitCode()
	} else if err != nil {
		e.t.Fatalf("run daylist %v: %v", args, err)
	}

	return Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunDaylist runs the binary and fails the test on a nonzero exit.
func (e *TestEnv) MustRunDaylist(args ...string) Result {
	e.t.Helper()
	result := e.RunDaylist(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("daylist %v exited %d\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// MustUnmarshal decodes JSON output into v, failing the test on error.
func (e *TestEnv) MustUnmarshal(data string, v any) {
	e.t.Helper()
	if err := json.Unmarshal([]byte(data), v); err != nil {
		e.t.Fatalf("unmarshal %q: %v", data, err)
	}
}
