package main

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/clockz"

	"github.com/zoobzio/chunkz"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func testEnv() (env, *bytes.Buffer, *bytes.Buffer) {
	var out, logs bytes.Buffer
	return env{
		stdout: &out,
		logger: log.New(&logs, "", 0),
		clock:  clockz.NewFakeClock(),
	}, &out, &logs
}

func TestRun_DefaultSizes(t *testing.T) {
	path := writeInput(t, "mjqjpqmgbljsphdztnvjfqwrcgsmlb\n")

	e, out, logs := testEnv()
	require.NoError(t, run([]string{"-input", path}, e))

	assert.Equal(t, "Part1: 7\nPart2: 19\n", out.String())
	assert.Empty(t, logs.String())
}

func TestRun_ExtraSizes(t *testing.T) {
	path := writeInput(t, "bvwbjplbgvbhsrlpgdmjqwftvncz")

	e, out, logs := testEnv()
	require.NoError(t, run([]string{"-input", path, "-sizes", "4, 14,40"}, e))

	assert.Equal(t, "Part1: 5\nPart2: 23\nSize 40: 0\n", out.String())
	assert.Contains(t, logs.String(), "no run of 40 distinct bytes")
}

func TestRun_TrailingNewlineNeverCompletesARun(t *testing.T) {
	// "abc" plus the newline would be four distinct bytes.
	path := writeInput(t, "abc\n")

	e, out, _ := testEnv()
	require.NoError(t, run([]string{"-input", path, "-sizes", "4"}, e))

	assert.Equal(t, "Part1: 0\n", out.String())
}

func TestRun_Stats(t *testing.T) {
	path := writeInput(t, "zcfzfwzzqfrljwzlrfnpqdbhtmscgvjw\r\n")

	e, out, logs := testEnv()
	require.NoError(t, run([]string{"-input", path, "-stats", "1s"}, e))

	assert.Equal(t, "Part1: 11\nPart2: 26\n", out.String())

	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	require.Len(t, lines, 2, "one final report per size")
	assert.Regexp(t, `^size 4: \d+ windows \(0\.0/s\)$`, lines[0])
	assert.Regexp(t, `^size 14: \d+ windows \(0\.0/s\)$`, lines[1])
}

func TestRun_StatsNotFound(t *testing.T) {
	path := writeInput(t, "aaaaaa")

	e, out, logs := testEnv()
	require.NoError(t, run([]string{"-input", path, "-sizes", "2", "-stats", "1m"}, e))

	assert.Equal(t, "Part1: 0\n", out.String())
	assert.Contains(t, logs.String(), "size 2: 5 windows (0.0/s)")
	assert.Contains(t, logs.String(), "no run of 2 distinct bytes")
}

func TestRun_Errors(t *testing.T) {
	path := writeInput(t, "abcd")

	tests := []struct {
		name string
		args []string
		is   error
	}{
		{"missing file", []string{"-input", filepath.Join(t.TempDir(), "nope")}, os.ErrNotExist},
		{"missing file with stats", []string{"-input", filepath.Join(t.TempDir(), "nope"), "-stats", "1s"}, os.ErrNotExist},
		{"zero size", []string{"-input", path, "-sizes", "0"}, chunkz.ErrInvalidConfiguration},
		{"zero size with stats", []string{"-input", path, "-sizes", "0", "-stats", "1s"}, chunkz.ErrInvalidConfiguration},
		{"negative stats interval", []string{"-input", path, "-stats", "-1s"}, chunkz.ErrInvalidConfiguration},
		{"bad size", []string{"-input", path, "-sizes", "x"}, nil},
		{"empty sizes", []string{"-input", path, "-sizes", ","}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _, _ := testEnv()
			err := run(tt.args, e)
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}
