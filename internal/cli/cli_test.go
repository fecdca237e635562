package cli

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/prog2math/internal/builder"
)

func TestParse_NoArgsPrintsUsage(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	cfg, shouldExit, err := Parse(nil, &out)
	require.NoError(t, err)
	require.True(t, shouldExit)
	require.Nil(t, cfg)
	require.Contains(t, out.String(), "Usage:")
}

func TestParse_HelpFlagExitsCleanly(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	cfg, shouldExit, err := Parse([]string{"--help"}, &out)
	require.NoError(t, err)
	require.True(t, shouldExit)
	require.Nil(t, cfg)
	require.Contains(t, out.String(), "INPUT_PATH")
}

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	cfg, shouldExit, err := Parse([]string{"graph.json"}, io.Discard)
	require.NoError(t, err)
	require.False(t, shouldExit)
	require.Equal(t, "graph.json", cfg.InputPath)
	require.Empty(t, cfg.OutputPath)
	require.Equal(t, "text", cfg.LogFormat)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, builder.DefaultMaxDepth, cfg.MaxDepth)
	require.False(t, cfg.Quiet)
}

func TestParse_AllFlags(t *testing.T) {
	t.Parallel()

	cfg, shouldExit, err := Parse([]string{
		"--input", "graph.hcl",
		"--output", "formula.tex",
		"--log-format", "JSON",
		"--log-level", "Debug",
		"--max-depth", "8",
		"--quiet",
	}, io.Discard)
	require.NoError(t, err)
	require.False(t, shouldExit)
	require.Equal(t, "graph.hcl", cfg.InputPath)
	require.Equal(t, "formula.tex", cfg.OutputPath)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, 8, cfg.MaxDepth)
	require.True(t, cfg.Quiet)
}

func TestParse_Shorthands(t *testing.T) {
	t.Parallel()

	cfg, _, err := Parse([]string{"-i", "graph.json", "-o", "out.tex", "-q"}, io.Discard)
	require.NoError(t, err)
	require.Equal(t, "graph.json", cfg.InputPath)
	require.Equal(t, "out.tex", cfg.OutputPath)
	require.True(t, cfg.Quiet)
}

func TestParse_LongFlagWinsOverShorthand(t *testing.T) {
	t.Parallel()

	cfg, _, err := Parse([]string{"--input", "long.json", "-i", "short.json"}, io.Discard)
	require.NoError(t, err)
	require.Equal(t, "long.json", cfg.InputPath)
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		args []string
	}{
		{name: "unknown log-format", args: []string{"--log-format", "xml", "graph.json"}},
		{name: "unknown log-level", args: []string{"--log-level", "trace", "graph.json"}},
		{name: "non-positive max-depth", args: []string{"--max-depth", "0", "graph.json"}},
		{name: "undefined flag", args: []string{"--no-such-flag", "graph.json"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, shouldExit, err := Parse(tc.args, io.Discard)
			require.False(t, shouldExit)

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			require.Equal(t, 2, exitErr.Code)
			require.NotEmpty(t, exitErr.Message)
		})
	}
}
