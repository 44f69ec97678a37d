package builtin

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRm(t *testing.T) {
	env := newTestEnv(t)
	fs := env.Session.FS()
	require.NoError(t, afero.WriteFile(fs, "/home/user/f.txt", []byte("x"), 0o644))

	code, out, err := run(t, Rm, env, "f.txt")
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Empty(t, out)

	exists, _ := afero.Exists(fs, "/home/user/f.txt")
	assert.False(t, exists)
}

func TestRm_directory(t *testing.T) {
	env := newTestEnv(t)
	fs := env.Session.FS()
	require.NoError(t, fs.MkdirAll("/home/user/d", 0o755))

	code, out, err := run(t, Rm, env, "d")
	require.NoError(t, err)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Is a directory")

	// The directory remains present afterward.
	isDir, _ := afero.IsDir(fs, "/home/user/d")
	assert.True(t, isDir)
}

func TestRm_batchContinues(t *testing.T) {
	env := newTestEnv(t)
	fs := env.Session.FS()
	require.NoError(t, afero.WriteFile(fs, "/home/user/keep-going.txt", []byte("x"), 0o644))

	code, out, err := run(t, Rm, env, "missing.txt", "keep-going.txt")
	require.NoError(t, err)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "No such file or directory")

	// The failure didn't abort the second operand.
	exists, _ := afero.Exists(fs, "/home/user/keep-going.txt")
	assert.False(t, exists)
}

func TestRm_missingOperand(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := run(t, Rm, env)
	require.EqualError(t, err, "missing operand")
}

func TestRmdir(t *testing.T) {
	env := newTestEnv(t)
	fs := env.Session.FS()
	require.NoError(t, fs.MkdirAll("/home/user/empty", 0o755))
	require.NoError(t, afero.WriteFile(fs, "/home/user/full/f.txt", []byte("x"), 0o644))

	code, out, err := run(t, Rmdir, env, "empty")
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Empty(t, out)
	exists, _ := afero.DirExists(fs, "/home/user/empty")
	assert.False(t, exists)

	code, out, err = run(t, Rmdir, env, "full")
	require.NoError(t, err)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Directory not empty")
}
