package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/seqscan/internal/cli"
)

type harness struct {
	app    *cli.App
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	logs   *observer.ObservedLogs
}

func newHarness(stdin string) *harness {
	core, logs := observer.New(zapcore.DebugLevel)
	h := &harness{stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}, logs: logs}
	h.app = &cli.App{
		Stdin:  strings.NewReader(stdin),
		Stdout: h.stdout,
		Stderr: h.stderr,
		Logger: zap.New(core),
	}

	return h
}

func (h *harness) lines() []string {
	return strings.Fields(h.stdout.String())
}

// TestRun_Commands drives each subcommand with the canonical inputs.
func TestRun_Commands(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want []string
	}{
		{"unique", []string{"unique", "abcabcbb"}, []string{"3"}},
		{"unique window", []string{"unique", "-window", "pwwkew"}, []string{"[2,5)"}},
		{"unique runes", []string{"unique", "-runes", "éä"}, []string{"2"}},
		{"concat", []string{"concat", "barfoofoobarthefoobarman", "bar", "foo", "the"}, []string{"6", "9", "12"}},
		{"concat rolling", []string{"concat", "-rolling", "barfoofoobarthefoobarman", "bar", "foo", "the"}, []string{"6", "9", "12"}},
		{"minwindow", []string{"minwindow", "7", "2", "3", "1", "2", "4", "3"}, []string{"2"}},
		{"minwindow none", []string{"minwindow", "100", "1", "1", "1"}, []string{"0"}},
		{"minwindow window", []string{"minwindow", "-window", "7", "2", "3", "1", "2", "4", "3"}, []string{"[4,6)"}},
		{"kgram", []string{"kgram", "AAAAAAAAAAAAA"}, []string{"AAAAAAAAAA"}},
		{"kgram dna sorted", []string{"kgram", "-dna", "-sorted", "-k", "5", "ttgacGTTGACgt"}, []string{"GACGT", "TGACG", "TTGAC"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness("")
			code := h.app.Run(tc.args)
			require.Equal(t, cli.ExitOK, code, "stderr: %s", h.stderr.String())
			assert.Equal(t, tc.want, h.lines())

			done := h.logs.FilterMessage("scan complete").All()
			require.Len(t, done, 1)
			fields := done[0].ContextMap()
			assert.Equal(t, tc.args[0], fields["command"])
			assert.NotEmpty(t, fields["run_id"])
		})
	}
}

// TestRun_Stdin reads TEXT from stdin when given "-".
func TestRun_Stdin(t *testing.T) {
	h := newHarness("AAAAACCCCCAAAAACCCCCCAAAAAGGGTTT\n")
	code := h.app.Run([]string{"kgram", "-"})
	require.Equal(t, cli.ExitOK, code)
	assert.Equal(t, []string{"AAAAACCCCC", "CCCCCAAAAA"}, h.lines())

	rec := h.logs.FilterMessage("scan complete").All()
	require.Len(t, rec, 1)
	assert.EqualValues(t, 32, rec[0].ContextMap()["input_len"])
	assert.EqualValues(t, 2, rec[0].ContextMap()["results"])
}

// TestRun_ScanError logs the failure and exits 1.
func TestRun_ScanError(t *testing.T) {
	h := newHarness("")
	code := h.app.Run([]string{"concat", "foobar", "foo", "ba"})
	assert.Equal(t, cli.ExitFailure, code)

	failed := h.logs.FilterMessage("scan failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, zapcore.ErrorLevel, failed[0].Level)
	assert.Contains(t, failed[0].ContextMap()["error"], "same length")

	h = newHarness("")
	assert.Equal(t, cli.ExitFailure, h.app.Run([]string{"minwindow", "3", "1", "-2"}))
	assert.Equal(t, cli.ExitFailure, h.app.Run([]string{"kgram", "-dna", "ACGTN"}))
}

// TestRun_Usage covers the exit-2 paths.
func TestRun_Usage(t *testing.T) {
	for _, args := range [][]string{
		nil,
		{"bogus"},
		{"unique"},
		{"unique", "a", "b"},
		{"minwindow", "seven", "1"},
		{"kgram", "-k", "x", "AAAA"},
	} {
		h := newHarness("")
		assert.Equal(t, cli.ExitUsage, h.app.Run(args), "args=%v", args)
		assert.NotEmpty(t, h.stderr.String(), "args=%v", args)
	}

	h := newHarness("")
	assert.Equal(t, cli.ExitOK, h.app.Run([]string{"-h"}))
	assert.Contains(t, h.stderr.String(), "minwindow")
}

// TestRun_BuiltLogger uses the flag-configured logger when none is injected.
func TestRun_BuiltLogger(t *testing.T) {
	var stdout, stderr bytes.Buffer
	app := &cli.App{
		Stdout: &stdout,
		Stderr: &stderr,
		Getenv: func(key string) string {
			if key == cli.EnvLogFormat {
				return "json"
			}
			return ""
		},
	}
	require.Equal(t, cli.ExitOK, app.Run([]string{"unique", "abc"}))
	assert.Equal(t, "3\n", stdout.String())
	assert.Contains(t, stderr.String(), `"msg":"scan complete"`)
	assert.Contains(t, stderr.String(), `"command":"unique"`)

	stderr.Reset()
	assert.Equal(t, cli.ExitUsage, app.Run([]string{"-log-level", "loud", "unique", "abc"}))
	assert.Contains(t, stderr.String(), "log level")
}

// TestNewLogger rejects unknown levels and formats.
func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := cli.NewLogger("debug", "console", &buf)
	require.NoError(t, err)
	l.Debug("hello")
	assert.Contains(t, buf.String(), "hello")

	_, err = cli.NewLogger("loud", "json", &buf)
	assert.Error(t, err)
	_, err = cli.NewLogger("info", "xml", &buf)
	assert.Error(t, err)
}
