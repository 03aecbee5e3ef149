package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseInputs(t *testing.T) {
	var out bytes.Buffer
	var errOut bytes.Buffer
	code := parseInputs([]string{"2025-06-18", "18 Jun 2025 10:30"}, &out, &errOut)
	require.Zero(t, code)
	require.Equal(t, "2025-06-18\n2025-06-18T10:30\n", out.String())
	require.Empty(t, errOut.String())
}

func TestParseInputsNoDate(t *testing.T) {
	var out bytes.Buffer
	var errOut bytes.Buffer
	code := parseInputs([]string{"2025-06-18", "not a date"}, &out, &errOut)
	require.Equal(t, 1, code)
	require.Equal(t, "2025-06-18\n", out.String())
	require.Equal(t, "no date in: not a date\n", errOut.String())
}

// JSON mode reports misses in-band and still exits nonzero.
func TestParseInputsJSONNoDate(t *testing.T) {
	asJSON = true
	t.Cleanup(func() { asJSON = false })

	var out bytes.Buffer
	var errOut bytes.Buffer
	code := parseInputs([]string{"2025-06-18", "not a date"}, &out, &errOut)
	require.Equal(t, 1, code)
	require.Equal(t,
		`{"input":"2025-06-18","found":true,"moment":"2025-06-18"}`+"\n"+
			`{"input":"not a date","found":false}`+"\n",
		out.String())
	require.Empty(t, errOut.String())
}
