package sampler

import (
	"context"
	"errors"
	"testing"

	"github.com/Dicklesworthstone/proctable/internal/model"
)

type fakeSource struct {
	records []Record
	err     error
}

func (f fakeSource) List(context.Context) ([]Record, error) { return f.records, f.err }

func TestFromRecord(t *testing.T) {
	tests := []struct {
		name string
		in   Record
		want model.Snapshot
	}{
		{
			name: "last token becomes command",
			in:   Record{PID: 42, Name: "bash", Cmdline: []string{"/bin/bash", "-l", "script.sh"}, RunTime: 90},
			want: model.Snapshot{PID: 42, Name: "bash", Command: model.CommandOf("script.sh"), RunTime: 90},
		},
		{
			name: "no tokens is unavailable",
			in:   Record{PID: 2, Name: "kthreadd"},
			want: model.Snapshot{PID: 2, Name: "kthreadd"},
		},
		{
			name: "empty last token is valid",
			in:   Record{PID: 7, Cmdline: []string{"prog", ""}},
			want: model.Snapshot{PID: 7, Command: model.CommandOf("")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromRecord(tt.in); got != tt.want {
				t.Fatalf("FromRecord(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromRecordDoesNotAliasCmdline(t *testing.T) {
	cmdline := []string{"a", "b"}
	snap := FromRecord(Record{Cmdline: cmdline})
	cmdline[1] = "changed"
	if snap.Command.Value != "b" {
		t.Fatalf("snapshot changed with source record: %q", snap.Command.Value)
	}
}

func TestCapturePreservesOrder(t *testing.T) {
	src := fakeSource{records: []Record{{PID: 3}, {PID: 1}, {PID: 3}}}
	rows, err := Capture(context.Background(), src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	for i, want := range []uint32{3, 1, 3} {
		if rows[i].PID != want {
			t.Fatalf("row %d: expected pid %d, got %d", i, want, rows[i].PID)
		}
	}
}

func TestCapturePropagatesError(t *testing.T) {
	boom := errors.New("boom")
	rows, err := Capture(context.Background(), fakeSource{records: []Record{{PID: 1}}, err: boom})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if rows != nil {
		t.Fatalf("expected no rows on error, got %d", len(rows))
	}
}

func TestRunTimeSeconds(t *testing.T) {
	tests := []struct {
		created, now int64
		want         uint64
	}{
		{created: 1_000, now: 61_000, want: 60},
		{created: 1_000, now: 1_999, want: 0},
		{created: 5_000, now: 1_000, want: 0},
		{created: 0, now: 1_000, want: 0},
	}
	for _, tt := range tests {
		if got := runTimeSeconds(tt.created, tt.now); got != tt.want {
			t.Fatalf("runTimeSeconds(%d, %d) = %d, want %d", tt.created, tt.now, got, tt.want)
		}
	}
}

func TestGopsutilListsCurrentProcess(t *testing.T) {
	records, err := Gopsutil{}.List(context.Background())
	if err != nil {
		t.Skipf("process listing unavailable: %v", err)
	}
	if len(records) == 0 {
		t.Fatalf("expected at least one process")
	}
}
