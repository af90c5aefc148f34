package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/Dicklesworthstone/proctable/internal/config"
	"github.com/Dicklesworthstone/proctable/internal/logging"
	"github.com/Dicklesworthstone/proctable/internal/model"
	"github.com/Dicklesworthstone/proctable/internal/sampler"
	"github.com/Dicklesworthstone/proctable/internal/ui"
)

var errNotTerminal = errors.New("stdin is not a terminal (use -json for non-interactive output)")

func main() {
	cfg, err := config.FromFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	closer, err := logging.Configure(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: open log file: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	if err := run(cfg, sampler.Gopsutil{}); err != nil {
		log.Printf("exit: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closer.Close()
		os.Exit(1)
	}
}

func run(cfg config.Config, src sampler.Source) error {
	if cfg.JSON {
		return dumpJSON(os.Stdout, src)
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errNotTerminal
	}
	log.Printf("starting: interval=%s", cfg.Interval)
	return ui.Run(cfg, src)
}

type jsonProcess struct {
	PID     uint32  `json:"pid"`
	Name    string  `json:"name"`
	Command *string `json:"command"`
	RunTime uint64  `json:"run_time_seconds"`
}

// dumpJSON writes one capture to w. Unavailable commands encode as null.
func dumpJSON(w io.Writer, src sampler.Source) error {
	rows, err := sampler.Capture(context.Background(), src)
	if err != nil {
		return fmt.Errorf("capture processes: %w", err)
	}
	out := make([]jsonProcess, len(rows))
	for i, r := range rows {
		out[i] = toJSON(r)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func toJSON(s model.Snapshot) jsonProcess {
	p := jsonProcess{PID: s.PID, Name: s.Name, RunTime: s.RunTime}
	if s.Command.Valid {
		cmd := s.Command.Value
		p.Command = &cmd
	}
	return p
}
