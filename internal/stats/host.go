package stats

import (
	"sort"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

// cpuSampleInterval trades prompt latency for a meaningful utilization
// number; instantaneous samples are mostly noise.
const cpuSampleInterval = 500 * time.Millisecond

// Host returns a Provider sampling the local machine.
func Host() Provider {
	return hostProvider{}
}

type hostProvider struct{}

func (hostProvider) CPUPercent() (float64, error) {
	percents, err := cpu.Percent(cpuSampleInterval, false)
	if err != nil {
		return 0, err
	}
	if len(percents) == 0 {
		return 0, nil
	}
	return percents[0], nil
}

func (hostProvider) CPUCount() (int, error) {
	return cpu.Counts(true)
}

func (hostProvider) VirtualMemory() (Memory, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return Memory{}, err
	}
	return Memory{
		Total:       vm.Total,
		Available:   vm.Available,
		UsedPercent: vm.UsedPercent,
	}, nil
}

func (hostProvider) Processes(limit int) ([]Process, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, err
	}

	out := make([]Process, 0, len(procs))
	for _, p := range procs {
		pct, err := p.CPUPercent()
		if err != nil {
			// Processes can vanish between listing and sampling.
			continue
		}
		name, _ := p.Name()
		user, _ := p.Username()
		out = append(out, Process{
			PID:        p.Pid,
			User:       user,
			CPUPercent: pct,
			Name:       name,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CPUPercent > out[j].CPUPercent
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
