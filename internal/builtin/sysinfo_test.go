package builtin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termgo-sh/termgo/internal/stats"
)

type fakeStats struct{}

func (fakeStats) CPUPercent() (float64, error) { return 12.5, nil }
func (fakeStats) CPUCount() (int, error)       { return 8, nil }

func (fakeStats) VirtualMemory() (stats.Memory, error) {
	return stats.Memory{Total: 1000, Available: 400, UsedPercent: 60}, nil
}

func (fakeStats) Processes(limit int) ([]stats.Process, error) {
	return []stats.Process{
		{PID: 1, User: "root", CPUPercent: 50, Name: "init"},
	}, nil
}

func TestCpu(t *testing.T) {
	env := newTestEnv(t)
	env.Stats = fakeStats{}

	code, out, err := run(t, Cpu, env)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "CPU percent: 12.5%\nCores: 8", out)
}

func TestMem(t *testing.T) {
	env := newTestEnv(t)
	env.Stats = fakeStats{}

	code, out, err := run(t, Mem, env)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "Total: 1000 bytes\nAvailable: 400 bytes\nUsed%: 60.0%", out)
}

func TestPs(t *testing.T) {
	env := newTestEnv(t)
	env.Stats = fakeStats{}

	code, out, err := run(t, Ps, env)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "PID  USER  CPU%  NAME\n1    root  50.0  init", out)
}

func TestTop(t *testing.T) {
	env := newTestEnv(t)
	env.Stats = fakeStats{}

	code, out, err := run(t, Top, env)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t,
		"PID  USER  CPU%  NAME\n1    root  50.0  init"+
			"\n\n"+
			"Total: 1000 bytes\nAvailable: 400 bytes\nUsed%: 60.0%",
		out)
}

func TestStats_unavailable(t *testing.T) {
	// With no capability wired in the builtins degrade to an
	// explanatory message instead of failing hard.
	env := newTestEnv(t)

	for _, tc := range []struct {
		fn     Func
		prefix string
	}{
		{Cpu, "cpu: "},
		{Mem, "mem: "},
		{Ps, "ps: "},
		{Top, "ps: "},
	} {
		code, out, err := run(t, tc.fn, env)
		require.NoError(t, err)
		assert.Equal(t, 0, code)
		assert.Contains(t, out, tc.prefix+stats.ErrUnavailable.Error())
	}
}
