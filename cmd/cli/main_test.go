package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/discoverapp/internal/cli"
)

func TestRun_EmitsDescriptor(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	tempDir := t.TempDir()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, []string{tempDir})

	// --- Assert ---
	require.NoError(t, err)
	require.Empty(t, errOut.String(), "a default successful run writes nothing to stderr")

	line := out.String()
	require.Equal(t, 1, strings.Count(line, "\n"), "stdout should carry exactly one line")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &decoded))
	require.Len(t, decoded, 3)
	require.Equal(t, ":23232", decoded["reverse_proxy_to"])
}

func TestRun_MissingDirectory(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	missing := filepath.Join(t.TempDir(), "missing")
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, []string{missing})

	// --- Assert ---
	require.Error(t, err)
	require.Equal(t, "Error: directory "+missing+" does not exist", err.Error())
	require.Equal(t, 1, exitCode(err), "a missing directory maps to exit code 1")
	require.Empty(t, out.String(), "no JSON may be emitted on failure")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// --- Act ---
	// The run function should see `shouldExit=true` and return a nil error.
	err := run(out, errOut, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, errOut.String(), "Usage:", "Expected help text on the error stream")
	require.Empty(t, out.String(), "help must not pollute stdout")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Providing an unknown flag will cause cli.Parse to return an error.
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
	require.Equal(t, 2, exitCode(err))
}

func TestExitCode_Generic(t *testing.T) {
	t.Parallel()

	require.Equal(t, 2, exitCode(&cli.ExitError{Code: 2, Message: "usage"}))
	require.Equal(t, 1, exitCode(&cli.ExitError{Code: 1, Message: "whatever"}))
	require.Equal(t, 2, exitCode(errDummy{}))
}

type errDummy struct{}

func (errDummy) Error() string { return "dummy" }
