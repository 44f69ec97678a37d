package history

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_roundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewStore(fs, "/home/user/.termgo_history", 0)

	lines := []string{"ls", "cd sub", "echo hi"}
	require.NoError(t, store.Save(lines))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, lines, got)
}

func TestStore_missingFile(t *testing.T) {
	store := NewStore(afero.NewMemMapFs(), "/nowhere/.termgo_history", 0)

	got, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_capsAtLimit(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewStore(fs, "/h", 2)

	require.NoError(t, store.Save([]string{"oldest", "middle", "newest"}))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"middle", "newest"}, got)
}

func TestStore_skipsBlankLines(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/h", []byte("one\n\ntwo\n"), 0600))

	got, err := NewStore(fs, "/h", 0).Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, got)
}
