package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secretDiff = "diff --git a/.env b/.env\n@@ -0,0 +1 @@\n+API_KEY=abc123\n"

const cleanDiff = "diff --git a/README.md b/README.md\n@@ -1 +1 @@\n-Hello\n+Hello world\n"

func quietEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GATE_LOG_LEVEL", "error")
	t.Setenv("GATE_LOG_FORMAT", "console")
	t.Setenv("GATE_CONFIG_FILE", "")
	t.Setenv("GATE_GITHUB_ORG", "")
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun_ScanStdinBlocks(t *testing.T) {
	quietEnv(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"scan"}, strings.NewReader(secretDiff), &stdout, &stderr)

	assert.Equal(t, exitBlocked, code)
	assert.Contains(t, stdout.String(), "Verdict:")
	assert.Contains(t, stdout.String(), "BLOCK")
	assert.Contains(t, stdout.String(), "SensitiveDataDetection")
}

func TestRun_ScanFileAllows(t *testing.T) {
	quietEnv(t)
	path := writeFile(t, "clean.diff", cleanDiff)
	var stdout, stderr bytes.Buffer

	code := run([]string{"scan", path}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, exitAllowed, code)
	assert.Contains(t, stdout.String(), "ALLOW")
}

func TestRun_ScanJSONVerbose(t *testing.T) {
	quietEnv(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"scan", "-", "--output", "json", "--verbose"}, strings.NewReader(cleanDiff), &stdout, &stderr)

	require.Equal(t, exitAllowed, code, stderr.String())

	var got []struct {
		Verdict string `json:"verdict"`
		Steps   []struct {
			Name string `json:"name"`
		} `json:"steps"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "allow", got[0].Verdict)
	assert.Len(t, got[0].Steps, 12)
}

func TestRun_ScanWithPipelineConfig(t *testing.T) {
	quietEnv(t)
	cfg := writeFile(t, "gate.yaml", "inspectors:\n  - name: CodeQuality\n")
	var stdout, stderr bytes.Buffer

	code := run([]string{"scan", "--config", cfg}, strings.NewReader(secretDiff), &stdout, &stderr)

	assert.Equal(t, exitAllowed, code)
	assert.NotContains(t, stdout.String(), "SensitiveDataDetection")
}

func TestRun_OperationalErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown output format", args: []string{"scan", "--output", "xml"}},
		{name: "missing file", args: []string{"scan", "/does/not/exist.diff"}},
		{name: "not a repository", args: []string{"local", "--repo", "/does/not/exist"}},
		{name: "pulls without org", args: []string{"pulls"}},
		{name: "unknown command", args: []string{"nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quietEnv(t)
			var stdout, stderr bytes.Buffer

			code := run(tt.args, strings.NewReader(secretDiff), &stdout, &stderr)

			assert.Equal(t, exitError, code)
			assert.Contains(t, stderr.String(), "error:")
		})
	}
}

func TestRun_InvalidPipelineConfig(t *testing.T) {
	quietEnv(t)
	cfg := writeFile(t, "gate.yaml", "inspectors:\n  - name: DoesNotExist\n")
	var stdout, stderr bytes.Buffer

	code := run([]string{"scan", "--config", cfg}, strings.NewReader(cleanDiff), &stdout, &stderr)

	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr.String(), "unknown inspector")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger, err := newLogger("info", "json", &buf)
	require.NoError(t, err)
	logger.Sugar().Infow("evaluated", "verdict", "allow")
	logger.Sugar().Debugw("hidden")

	assert.Contains(t, buf.String(), `"verdict":"allow"`)
	assert.NotContains(t, buf.String(), "hidden")

	_, err = newLogger("loud", "console", &buf)
	assert.Error(t, err)
}
