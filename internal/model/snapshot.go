package model

// Unavailable is shown in place of values the OS did not report.
const Unavailable = "N/A"

// Command is the last token of a process command line. Valid is false when
// the OS could not report one, which is distinct from an empty token.
type Command struct {
	Value string
	Valid bool
}

// CommandOf returns a valid Command holding v.
func CommandOf(v string) Command { return Command{Value: v, Valid: true} }

func (c Command) String() string {
	if !c.Valid {
		return Unavailable
	}
	return c.Value
}

// Snapshot is one process as seen at capture time. Snapshots are values:
// a capture produces new ones instead of updating old ones.
type Snapshot struct {
	PID     uint32
	Name    string
	Command Command
	RunTime uint64 // seconds since start
}
