package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/deskutils/scicalc/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{LogLevel: "info", Precision: 53, ErrorText: "Error"}
}

func runString(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out strings.Builder
	err := run(args, testConfig(), zap.NewNop(), strings.NewReader(stdin), &out)
	return out.String(), err
}

func TestRunArgs(t *testing.T) {
	out, err := runString(t, "", "2+2", "√9×2", "10÷0", "1/3")
	require.NoError(t, err)
	assert.Equal(t, "4\n6\nError: division by zero\n0.3333333333333333\n", out)
}

func TestRunGiven(t *testing.T) {
	out, err := runString(t, "", "-given", "r = 2", "-given", "h=3", "r^2 h")
	require.NoError(t, err)
	assert.Equal(t, "12\n", out)

	_, err = runString(t, "", "-given", "r", "r")
	assert.Error(t, err)
	_, err = runString(t, "", "-given", "r=1/0", "r")
	assert.ErrorContains(t, err, "setting r")
}

func TestRunLines(t *testing.T) {
	out, err := runString(t, "1+1\n2*3\nfoo\n", "-n")
	require.NoError(t, err)
	assert.Equal(t, "2\n6\nError: undefined variable: \"foo\"\n", out)
}

func TestRunBlankLines(t *testing.T) {
	out, err := runString(t, "1+1\n\n  \n2*3\n\n", "-n")
	require.NoError(t, err)
	assert.Equal(t, "2\n6\n", out)

	out, err = runString(t, "\n\n", "-n")
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestRunFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "exprs.txt")
	require.NoError(t, os.WriteFile(p, []byte("2^10\n"), 0o600))
	out, err := runString(t, "", "-in", p, "-fmt", "%.3g", "1+1")
	require.NoError(t, err)
	assert.Equal(t, "1.02e+03\n2\n", out)

	_, err = runString(t, "", "-in", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestRunEcho(t *testing.T) {
	out, err := runString(t, "", "-echo", "2*3")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, " : 6\n"), out)
}

func TestRunSyntaxError(t *testing.T) {
	_, err := runString(t, "", "2+")
	assert.ErrorContains(t, err, "no expression")
}

func TestRunInteractive(t *testing.T) {
	out, err := runString(t, "7*6\n:q\n", "-i")
	require.NoError(t, err)
	assert.Contains(t, out, "> 42\n42> ")
}

func TestRunPrecisionBounds(t *testing.T) {
	for _, p := range []string{"1", "4097", "10000000"} {
		_, err := runString(t, "", "-p", p, "1+1")
		assert.ErrorContains(t, err, "precision", "-p %s", p)
	}
	for _, p := range []string{"2", "4096"} {
		out, err := runString(t, "", "-p", p, "1+1")
		require.NoError(t, err, "-p %s", p)
		assert.Equal(t, "2\n", out)
	}
}
