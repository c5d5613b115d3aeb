package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deskutils/scicalc/pad"
)

func TestRunPad(t *testing.T) {
	in := strings.Join([]string{
		"2+2",
		"*10",
		"÷0",
		":b",
		"3^2",
		":c",
		":h",
		":q",
		"1+1",
	}, "\n")
	var out strings.Builder
	require.NoError(t, runPad(pad.New(), strings.NewReader(in), &out))
	got := out.String()
	assert.Contains(t, got, "2+2 = 4\n4*10 = 40\n3^2 = 9\n")
	assert.Contains(t, got, "Error (division by zero)")
	assert.NotContains(t, got, "1+1")
}

func TestRunPadEOF(t *testing.T) {
	var out strings.Builder
	require.NoError(t, runPad(pad.New(), strings.NewReader("1/4"), &out))
	assert.Contains(t, out.String(), "0.25\n")
}
