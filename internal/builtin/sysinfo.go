package builtin

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// The stats builtins degrade to an explanatory message when the
// capability is unavailable; they never fail the session.

// Cpu reports CPU utilization and the logical core count.
func Cpu(env *Env, args []string) (int, error) {
	percent, err := env.Stats.CPUPercent()
	if err != nil {
		fmt.Fprintf(env.Out, "cpu: %v", err)
		return 0, nil
	}
	cores, err := env.Stats.CPUCount()
	if err != nil {
		fmt.Fprintf(env.Out, "cpu: %v", err)
		return 0, nil
	}

	fmt.Fprintf(env.Out, "CPU percent: %.1f%%\nCores: %d", percent, cores)
	return 0, nil
}

// Mem reports a virtual memory snapshot.
func Mem(env *Env, args []string) (int, error) {
	fmt.Fprint(env.Out, memReport(env))
	return 0, nil
}

// Ps reports the top processes ranked by CPU usage.
func Ps(env *Env, args []string) (int, error) {
	fmt.Fprint(env.Out, psSnapshot(env))
	return 0, nil
}

// Top reports the process snapshot followed by memory statistics.
func Top(env *Env, args []string) (int, error) {
	fmt.Fprint(env.Out, psSnapshot(env)+"\n\n"+memReport(env))
	return 0, nil
}

func memReport(env *Env) string {
	vm, err := env.Stats.VirtualMemory()
	if err != nil {
		return fmt.Sprintf("mem: %v", err)
	}
	return fmt.Sprintf("Total: %d bytes\nAvailable: %d bytes\nUsed%%: %.1f%%",
		vm.Total, vm.Available, vm.UsedPercent)
}

func psSnapshot(env *Env) string {
	limit := env.ProcessSample
	if limit <= 0 {
		limit = 20
	}

	procs, err := env.Stats.Processes(limit)
	if err != nil {
		return fmt.Sprintf("ps: %v", err)
	}

	var buf strings.Builder
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PID\tUSER\tCPU%\tNAME")
	for _, p := range procs {
		fmt.Fprintf(tw, "%d\t%s\t%.1f\t%s\n", p.PID, p.User, p.CPUPercent, p.Name)
	}
	tw.Flush()

	return strings.TrimRight(buf.String(), "\n")
}
