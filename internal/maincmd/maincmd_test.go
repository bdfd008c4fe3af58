package maincmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juniper-lang/juniper/internal/cli"
	"github.com/juniper-lang/juniper/internal/maincmd"
)

func writeScript(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "script.jnp")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestRunPrintsOutputAndExitsOK(t *testing.T) {
	path := writeScript(t, `print "hi" + "!";`)
	var out, errBuf bytes.Buffer
	code := maincmd.Run(cli.Stdio{Stdout: &out, Stderr: &errBuf}, path)

	assert.Equal(t, cli.ExitOK, code)
	assert.Equal(t, "hi!\n", out.String())
	assert.Empty(t, errBuf.String())
}

func TestRunReportsCompileErrorAndExits65(t *testing.T) {
	path := writeScript(t, `print ;`)
	var out, errBuf bytes.Buffer
	code := maincmd.Run(cli.Stdio{Stdout: &out, Stderr: &errBuf}, path)

	assert.Equal(t, cli.ExitDataErr, code)
	assert.Contains(t, errBuf.String(), "[line 1]")
}

func TestRunReportsRuntimeErrorAndExits70(t *testing.T) {
	path := writeScript(t, `print nope;`)
	var out, errBuf bytes.Buffer
	code := maincmd.Run(cli.Stdio{Stdout: &out, Stderr: &errBuf}, path)

	assert.Equal(t, cli.ExitSoftErr, code)
	assert.Contains(t, errBuf.String(), "Undefined variable 'nope'.")
}

func TestTokenizeListsTokens(t *testing.T) {
	path := writeScript(t, `var x = 1;`)
	var out, errBuf bytes.Buffer
	code := maincmd.Tokenize(cli.Stdio{Stdout: &out, Stderr: &errBuf}, path)

	assert.Equal(t, cli.ExitOK, code)
	assert.Contains(t, out.String(), "var")
	assert.Contains(t, out.String(), "\"x\"")
}

func TestParseDumpsTree(t *testing.T) {
	path := writeScript(t, `1 + 2;`)
	var out, errBuf bytes.Buffer
	code := maincmd.Parse(cli.Stdio{Stdout: &out, Stderr: &errBuf}, path)

	assert.Equal(t, cli.ExitOK, code)
	assert.Contains(t, out.String(), "binary +")
}

func TestResolveReportsBindingErrors(t *testing.T) {
	path := writeScript(t, `print this;`)
	var out, errBuf bytes.Buffer
	code := maincmd.Resolve(cli.Stdio{Stdout: &out, Stderr: &errBuf}, path)

	assert.Equal(t, cli.ExitDataErr, code)
	assert.Contains(t, errBuf.String(), "Can't use 'this' outside of a class.")
}
