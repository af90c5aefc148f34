package sampler

import (
	"context"
	"fmt"
	"time"

	"github.com/Dicklesworthstone/proctable/internal/model"
	"github.com/shirou/gopsutil/v3/process"
)

// Record is a process as reported by a Source.
type Record struct {
	PID     uint32
	Name    string
	Cmdline []string
	RunTime uint64 // seconds
}

// Source lists the processes currently running. Each call is a full list.
type Source interface {
	List(ctx context.Context) ([]Record, error)
}

// Gopsutil reads the process table through gopsutil.
type Gopsutil struct {
	// Now is used to derive run times; defaults to time.Now.
	Now func() time.Time
}

// List returns every process. Failing to enumerate processes is an error;
// attributes that cannot be read for a single process are left empty.
func (g Gopsutil) List(ctx context.Context) ([]Record, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	nowMS := now().UnixMilli()

	out := make([]Record, 0, len(procs))
	for _, p := range procs {
		name, _ := p.NameWithContext(ctx)
		// Kernel threads and exited processes have no command line.
		cmdline, err := p.CmdlineSliceWithContext(ctx)
		if err != nil {
			cmdline = nil
		}
		var runTime uint64
		if created, err := p.CreateTimeWithContext(ctx); err == nil {
			runTime = runTimeSeconds(created, nowMS)
		}
		out = append(out, Record{
			PID:     uint32(p.Pid),
			Name:    name,
			Cmdline: cmdline,
			RunTime: runTime,
		})
	}
	return out, nil
}

// runTimeSeconds converts a creation time in epoch milliseconds to whole
// seconds elapsed, clamped at zero for clocks that disagree.
func runTimeSeconds(createdMS, nowMS int64) uint64 {
	if createdMS <= 0 || nowMS <= createdMS {
		return 0
	}
	return uint64((nowMS - createdMS) / 1000)
}

// FromRecord maps a Record to a Snapshot. The command is the last command
// line token, or unavailable when there are none.
func FromRecord(r Record) model.Snapshot {
	cmd := model.Command{}
	if n := len(r.Cmdline); n > 0 {
		cmd = model.CommandOf(r.Cmdline[n-1])
	}
	return model.Snapshot{
		PID:     r.PID,
		Name:    r.Name,
		Command: cmd,
		RunTime: r.RunTime,
	}
}

// Capture takes one full snapshot of src, preserving its order. It never
// returns a partial list.
func Capture(ctx context.Context, src Source) ([]model.Snapshot, error) {
	records, err := src.List(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]model.Snapshot, len(records))
	for i, r := range records {
		rows[i] = FromRecord(r)
	}
	return rows, nil
}
