// Package stats exposes host resource statistics to builtins as an
// injected capability. The engine works with any Provider, including
// the Unavailable one, so its core logic never depends on the host.
package stats

import "errors"

// ErrUnavailable is reported when no stats capability is wired in.
var ErrUnavailable = errors.New("system statistics are not available")

// Memory is a snapshot of virtual memory usage.
type Memory struct {
	Total       uint64
	Available   uint64
	UsedPercent float64
}

// Process is one entry of a ranked process snapshot.
type Process struct {
	PID        int32
	User       string
	CPUPercent float64
	Name       string
}

// Provider samples host resource statistics. Calls may block briefly
// (CPU sampling) and run on the evaluation goroutine.
type Provider interface {
	// CPUPercent reports overall CPU utilization in percent.
	CPUPercent() (float64, error)
	// CPUCount reports the number of logical cores.
	CPUCount() (int, error)
	// VirtualMemory reports a memory usage snapshot.
	VirtualMemory() (Memory, error)
	// Processes reports up to limit processes ranked by CPU, highest
	// first.
	Processes(limit int) ([]Process, error)
}

// Unavailable returns a Provider whose every call reports
// ErrUnavailable. Builtins degrade to an explanatory message.
func Unavailable() Provider {
	return unavailable{}
}

type unavailable struct{}

func (unavailable) CPUPercent() (float64, error) {
	return 0, ErrUnavailable
}

func (unavailable) CPUCount() (int, error) {
	return 0, ErrUnavailable
}

func (unavailable) VirtualMemory() (Memory, error) {
	return Memory{}, ErrUnavailable
}

func (unavailable) Processes(limit int) ([]Process, error) {
	return nil, ErrUnavailable
}
