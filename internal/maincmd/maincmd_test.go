package maincmd_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/mna/mainer"
	"github.com/nenuphar-lang/clox/internal/maincmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args []string, stdin string) (code mainer.ExitCode, stdout, stderr string) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	stdio := mainer.Stdio{
		Stdin:  strings.NewReader(stdin),
		Stdout: &outBuf,
		Stderr: &errBuf,
	}
	c := &maincmd.Cmd{BuildVersion: "0.0.0-test", BuildDate: "2026-01-01"}
	got := c.Main(args, stdio)
	return got, outBuf.String(), errBuf.String()
}

func TestMainSuccessOnFile(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/prog.clox"
	require.NoError(t, os.WriteFile(path, []byte(`print 1 + 2;`), 0o600))

	code, out, _ := run(t, []string{path}, "")
	assert.Equal(t, mainer.Success, code)
	assert.Equal(t, "3\n", out)
}

func TestMainCompileErrorExitCode(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/bad.clox"
	require.NoError(t, os.WriteFile(path, []byte(`print ;`), 0o600))

	code, _, errOut := run(t, []string{path}, "")
	assert.Equal(t, maincmd.ExitCompileError, code)
	assert.NotEmpty(t, errOut)
}

func TestMainRuntimeErrorExitCode(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/bad.clox"
	require.NoError(t, os.WriteFile(path, []byte(`1 + "x";`), 0o600))

	code, _, errOut := run(t, []string{path}, "")
	assert.Equal(t, maincmd.ExitRuntimeError, code)
	assert.NotEmpty(t, errOut)
}

func TestMainIOErrorExitCode(t *testing.T) {
	code, _, errOut := run(t, []string{"/nonexistent/path/does/not/exist.clox"}, "")
	assert.Equal(t, maincmd.ExitIOError, code)
	assert.NotEmpty(t, errOut)
}

func TestMainUsageErrorOnTooManyArgs(t *testing.T) {
	code, _, _ := run(t, []string{"a", "b"}, "")
	assert.Equal(t, maincmd.ExitUsage, code)
}

func TestMainReplReadsLineByLine(t *testing.T) {
	code, out, _ := run(t, nil, "print 1;\nprint 2;\n")
	assert.Equal(t, mainer.Success, code)
	assert.Contains(t, out, "1")
	assert.Contains(t, out, "2")
}

func TestMainHelpAndVersion(t *testing.T) {
	code, out, _ := run(t, []string{"--help"}, "")
	assert.Equal(t, mainer.Success, code)
	assert.Contains(t, out, "usage: clox")

	code, out, _ = run(t, []string{"--version"}, "")
	assert.Equal(t, mainer.Success, code)
	assert.Contains(t, out, "0.0.0-test")
}
