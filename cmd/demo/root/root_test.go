package root

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/flarebyte/demo-shell/internal/config"
	"github.com/stretchr/testify/require"
)

func quietConfig(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "demo.yaml")
	require.NoError(t, os.WriteFile(p, []byte("configVersion: \"1\"\nfarewellDelayMs: 0\nlog:\n  level: error\n"), 0o644))
	return p
}

func execute(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd(args)
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRoot_InteractiveExit(t *testing.T) {
	t.Setenv(config.PathEnv, quietConfig(t))

	out, errOut, err := execute(t, "bye\ny\n")

	require.NoError(t, err)
	require.Equal(t, "Demo > Continue on exit? (Y/N)\ny\nGoodbye!\n", out)
	require.Empty(t, errOut)
}

func TestRoot_OptionTokensBypassFlagParsing(t *testing.T) {
	t.Setenv(config.PathEnv, quietConfig(t))

	out, _, err := execute(t, "", "-h", "/H", "--zz")

	require.NoError(t, err)
	require.Contains(t, out, "Available commands:")
	require.NotContains(t, out, "Usage:")
	require.Contains(t, out, "'--zz' is currently not recognized by this cmd tool.")
}

func TestRoot_HelpWordIsAPlainArgument(t *testing.T) {
	t.Setenv(config.PathEnv, quietConfig(t))

	out, _, err := execute(t, "", "help")

	require.NoError(t, err)
	require.Equal(t, "'help' is currently not recognized by this cmd tool.\n", out)
}

func TestRoot_SubcommandNamesAfterAnOptionStayInTheShell(t *testing.T) {
	t.Setenv(config.PathEnv, quietConfig(t))
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("0123456789"), 0o644))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	for _, name := range []string{"version", "config"} {
		t.Run(name, func(t *testing.T) {
			out, _, err := execute(t, "", "-li", name)

			require.NoError(t, err)
			require.Contains(t, out, "File Name")
			require.Contains(t, out, "a.txt")
			require.Contains(t, out, "'"+name+"' is currently not recognized by this cmd tool.\n")
		})
	}
}

func TestRoot_UnknownWordsReachTheShell(t *testing.T) {
	t.Setenv(config.PathEnv, quietConfig(t))

	for _, word := range []string{"no-help", "completion"} {
		out, _, err := execute(t, "", word)

		require.NoError(t, err)
		require.Equal(t, "'"+word+"' is currently not recognized by this cmd tool.\n", out)
	}
}

func TestRoot_VersionSubcommand(t *testing.T) {
	out, _, err := execute(t, "", "version")

	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "demo "), out)
}

func TestRoot_ConfigErrorCarriesExitCode(t *testing.T) {
	t.Setenv(config.PathEnv, filepath.Join(t.TempDir(), "demo.json"))

	_, _, err := execute(t, "")

	require.EqualError(t, err, "unsupported config format: expected .cue or .yaml")
	var ec interface{ ExitCode() int }
	require.True(t, errors.As(err, &ec))
	require.Equal(t, exitCodeConfig, ec.ExitCode())
}
