package builtin

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelp(t *testing.T) {
	env := newTestEnv(t)

	code, out, err := run(t, Help, env)
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	g := goldie.New(t)
	g.Assert(t, "help", []byte(out))
}
