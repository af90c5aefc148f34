// Package logging routes the standard logger away from the terminal, which
// belongs to the UI while it runs.
package logging

import (
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

const prefix = "proctable"

// Configure sends the standard logger to path, or discards its output when
// path is empty. The returned closer releases the log file.
func Configure(path string) (io.Closer, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return nopCloser{}, nil
	}
	f, err := tea.LogToFile(path, prefix)
	if err != nil {
		return nil, err
	}
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
