package logging

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigureWritesToFile(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	path := filepath.Join(t.TempDir(), "debug.log")
	closer, err := Configure(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	log.Printf("captured %d rows", 12)
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "captured 12 rows") {
		t.Fatalf("expected log line, got %q", data)
	}
}

func TestConfigureEmptyPathDiscards(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	closer, err := Configure("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
