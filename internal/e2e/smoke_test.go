package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	workDir := t.TempDir()
	binaryPath := buildBinary(t)

	stdout, stderr, err := runRanch(t, binaryPath, workDir, "session", "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "sessions: 0")

	require.NoError(t, writeSessionFixture(workDir, "alice"))

	stdout, stderr, err = runRanch(t, binaryPath, workDir, "session", "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "sessions: 1")
	assert.Contains(t, stdout, "alice")
}

func TestSmokeRunReadsDotEnv(t *testing.T) {
	workDir := t.TempDir()
	binaryPath := buildBinary(t)

	_, stderr, err := runRanch(t, binaryPath, workDir, "run")
	require.Error(t, err)
	assert.Contains(t, stderr, "API_ID and API_HASH must be set")

	env := "API_ID=123456\nAPI_HASH=0123456789abcdef0123456789abcdef\n"
	require.NoError(t, os.WriteFile(filepath.Join(workDir, ".env"), []byte(env), 0o600))

	_, stderr, err = runRanch(t, binaryPath, workDir, "run")
	require.Error(t, err)
	assert.Contains(t, stderr, "no sessions found")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "ranch-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/ranch")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build ranch binary: %s", string(output))
	return binaryPath
}

func runRanch(t *testing.T, binaryPath, workDir string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = workDir
	cmd.Env = cleanEnv()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// cleanEnv drops settings that would leak from the developer's shell.
func cleanEnv() []string {
	env := os.Environ()
	kept := env[:0:0]
	for _, kv := range env {
		if strings.HasPrefix(kv, "API_ID=") || strings.HasPrefix(kv, "API_HASH=") {
			continue
		}
		kept = append(kept, kv)
	}

	return kept
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}

func writeSessionFixture(dir, name string) error {
	sessionsDir := filepath.Join(dir, "sessions")
	if err := os.MkdirAll(sessionsDir, 0o700); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(sessionsDir, name+".session"), []byte(`{"Version":1}`), 0o600)
}
