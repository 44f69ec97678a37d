package engine

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termgo-sh/termgo/internal/builtin"
	"github.com/termgo-sh/termgo/internal/session"
)

func newTestEngine(t *testing.T) (*Engine, *session.Session) {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/home/user", 0o755))

	sess := session.New(fs, "/home/user", "/home/user")
	return New(builtin.NewRegistry(), Options{}), sess
}

func TestExecute_emptyLine(t *testing.T) {
	e, sess := newTestEngine(t)

	res, err := e.Execute("   ", sess)
	require.NoError(t, err)
	assert.Equal(t, Result{}, res)
	assert.Empty(t, sess.History())
}

func TestExecute_builtin(t *testing.T) {
	e, sess := newTestEngine(t)

	res, err := e.Execute(`echo "a b" c`, sess)
	require.NoError(t, err)
	assert.Equal(t, Result{Code: 0, Output: "a b c"}, res)
}

func TestExecute_andShortCircuits(t *testing.T) {
	e, sess := newTestEngine(t)
	require.NoError(t, sess.FS().MkdirAll("/home/user/a", 0o755))

	// mkdir fails on the existing directory, so mv never runs.
	res, err := e.Execute("mkdir a && mv x a", sess)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Code)
	assert.Contains(t, res.Output, "File exists")
	assert.NotContains(t, res.Output, "mv:")
}

func TestExecute_sequenceContinues(t *testing.T) {
	e, sess := newTestEngine(t)

	res, err := e.Execute("rm missing ; echo hi", sess)
	require.NoError(t, err)
	assert.Equal(t, Result{Code: 0, Output: "hi"}, res)
}

func TestExecute_chainMutatesSession(t *testing.T) {
	e, sess := newTestEngine(t)

	res, err := e.Execute("mkdir sub && cd sub && pwd", sess)
	require.NoError(t, err)
	assert.Equal(t, Result{Code: 0, Output: "/home/user/sub"}, res)
	assert.Equal(t, "/home/user/sub", sess.Getwd())
}

func TestExecute_parseError(t *testing.T) {
	e, sess := newTestEngine(t)

	res, err := e.Execute(`echo "unterminated`, sess)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Code)
	assert.Contains(t, res.Output, "Error parsing command:")
}

func TestExecute_commandNotFound(t *testing.T) {
	e, sess := newTestEngine(t)

	res, err := e.Execute("doesnotexist123", sess)
	require.NoError(t, err)
	assert.Equal(t, Result{Code: 127, Output: "doesnotexist123: command not found"}, res)
}

func TestExecute_exit(t *testing.T) {
	e, sess := newTestEngine(t)

	for _, line := range []string{"exit", "quit"} {
		_, err := e.Execute(line, sess)
		assert.ErrorIs(t, err, builtin.ErrExit)
	}
}

func TestExecute_builtinError(t *testing.T) {
	e, sess := newTestEngine(t)

	res, err := e.Execute("mkdir", sess)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Code)
	assert.Equal(t, "Error executing builtin 'mkdir': missing operand", res.Output)
}

func TestExecute_recordsHistory(t *testing.T) {
	e, sess := newTestEngine(t)

	_, err := e.Execute("echo one", sess)
	require.NoError(t, err)
	_, err = e.Execute("echo two ; echo three", sess)
	require.NoError(t, err)

	// One entry per input line, not per chain link.
	assert.Equal(t, []string{"echo one", "echo two ; echo three"}, sess.History())
}

func TestExecute_splitsInsideQuotes(t *testing.T) {
	e, sess := newTestEngine(t)

	// Chain operators are recognized before quoting, so quoted text
	// containing one still splits the line.
	res, err := e.Execute(`echo "a ; b"`, sess)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Code)
	assert.Contains(t, res.Output, "Error parsing command:")
}

func TestExecute_nlp(t *testing.T) {
	e, sess := newTestEngine(t)

	res, err := e.Execute("nlp create a folder called demo", sess)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Code)
	assert.Equal(t, "Executed: mkdir demo", res.Output)

	ok, statErr := afero.DirExists(sess.FS(), "/home/user/demo")
	require.NoError(t, statErr)
	assert.True(t, ok)
}
