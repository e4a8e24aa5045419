package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stationtime/ioformat"
	"github.com/katalvlaran/stationtime/traveltime"
)

func TestRun_Scenarios(t *testing.T) {
	cases := []struct {
		name, in, want string
	}{
		{"two hops", "3\n1 2 5\n2 3 7\n1\n1 3\n", "12\n"},
		{"unit line", "4\n1 2 1\n2 3 1\n3 4 1\n3\n1 4\n1 3\n2 4\n", "3\n2\n2\n"},
		{"symmetry", "2\n1 2 10\n2\n1 2\n2 1\n", "10\n10\n"},
		{"self query", "3\n1 2 4\n2 3 4\n1\n2 2\n", "0\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out, diag bytes.Buffer
			require.NoError(t, run(strings.NewReader(tc.in), &out, &diag, batchOptions{}))
			assert.Equal(t, tc.want, out.String())
			assert.Empty(t, diag.String())
		})
	}
}

func TestRun_Errors(t *testing.T) {
	var out, diag bytes.Buffer
	err := run(strings.NewReader("-2\n"), &out, &diag, batchOptions{})
	require.ErrorIs(t, err, ioformat.ErrInvalidStationCount)

	err = run(strings.NewReader("2\n1 3 4\n0\n"), &out, &diag, batchOptions{})
	require.ErrorIs(t, err, traveltime.ErrStationOutOfRange)

	err = run(strings.NewReader("2\n1 2 4\n1\n1 9\n"), &out, &diag, batchOptions{})
	require.ErrorIs(t, err, traveltime.ErrStationOutOfRange)
	assert.Empty(t, out.String(), "no partial output on a failed query")

	err = run(strings.NewReader("4294967296 0\n1\n1 1\n"), &out, &diag, batchOptions{})
	require.ErrorIs(t, err, traveltime.ErrTooManyStations)
	assert.Empty(t, out.String())
}

func TestRun_Dump(t *testing.T) {
	var out, diag bytes.Buffer
	in := "3\n1 2 5\n2 3 7\n0\n"
	require.NoError(t, run(strings.NewReader(in), &out, &diag, batchOptions{Dump: true}))
	assert.Empty(t, out.String())
	assert.Equal(t, "table: 3 stations, 6 of 6 cells known, complete=true\n"+
		"[0, 5, 12]\n[5, 0, 7]\n[12, 7, 0]\n", diag.String())
}

func TestRun_Audit(t *testing.T) {
	in := "3\n1 2 9\n2 3 1\n2\n1 2\n1 3\n"
	var out, diag bytes.Buffer
	require.NoError(t, run(strings.NewReader(in), &out, &diag, batchOptions{Audit: true}))
	assert.Equal(t, "9\n10\n", out.String())
	assert.Empty(t, diag.String(), "a tree has nothing to report")

	diag.Reset()
	out.Reset()
	require.NoError(t, run(strings.NewReader(in), &out, &diag, batchOptions{Audit: true, AuditMax: 2}))
	assert.Contains(t, diag.String(), "audit skipped")
}

func TestGenerate(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, generate(&buf, "line", 3, 0, 1, 2, 2, -1))
	assert.Equal(t, "3\n1 2 2\n2 3 2\n3\n1 2\n1 3\n2 3\n", buf.String())

	buf.Reset()
	require.NoError(t, generate(&buf, "grid", 2, 3, 5, 1, 9, 4))
	in, err := ioformat.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, 6, in.Request.StationCount)
	assert.Len(t, in.Queries, 4)

	assert.Error(t, generate(&buf, "hexagon", 3, 0, 1, 1, 1, -1))
	assert.Error(t, generate(&buf, "line", 3, 0, 1, 0, 1, -1))
	assert.Error(t, generate(&buf, "line", 1, 0, 1, 1, 1, -1))
}
