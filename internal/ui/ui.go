package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dicklesworthstone/proctable/internal/config"
	"github.com/Dicklesworthstone/proctable/internal/model"
	"github.com/Dicklesworthstone/proctable/internal/sampler"
)

// ErrZeroArea is returned when the terminal reports a window with no room
// to draw in.
var ErrZeroArea = errors.New("terminal has zero drawable area")

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Model renders the process table and routes keys to it.
type Model struct {
	cfg       config.Config
	src       sampler.Source
	ctx       context.Context
	ctxCancel context.CancelFunc

	table  *model.Table // nil until the first capture arrives
	keys   keyMap
	help   help.Model
	offset int
	width  int
	height int

	// Captures may overlap (tick and refresh key); older ones are dropped.
	captureSeq uint64
	appliedSeq uint64

	stopped bool
	err     error
}

func New(cfg config.Config, src sampler.Source) *Model {
	ctx, cancel := context.WithCancel(context.Background())
	h := help.New()
	h.Width = defaultWidth
	return &Model{
		cfg:       cfg,
		src:       src,
		ctx:       ctx,
		ctxCancel: cancel,
		keys:      defaultKeys(),
		help:      h,
		width:     defaultWidth,
		height:    defaultHeight,
	}
}

// Messages
type (
	tickMsg time.Time
	errMsg  struct{ err error }
)

// snapshotMsg carries one capture; seq orders captures by issue time.
type snapshotMsg struct {
	seq  uint64
	rows []model.Snapshot
}

// Err returns the error that stopped the model, if any.
func (m *Model) Err() error { return m.err }

// Stopped reports whether the model has asked the program to quit.
func (m *Model) Stopped() bool { return m.stopped }

func (m *Model) captureCmd() tea.Cmd {
	m.captureSeq++
	ctx, src, seq := m.ctx, m.src, m.captureSeq
	return func() tea.Msg {
		rows, err := sampler.Capture(ctx, src)
		if err != nil {
			return errMsg{err: fmt.Errorf("capture processes: %w", err)}
		}
		return snapshotMsg{seq: seq, rows: rows}
	}
}

// tickCmd schedules the next refresh. It is nil in single-capture mode.
func (m *Model) tickCmd() tea.Cmd {
	if m.cfg.Interval <= 0 {
		return nil
	}
	return tea.Tick(m.cfg.Interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// refreshCmd captures now and schedules the following tick.
func (m *Model) refreshCmd() tea.Cmd {
	if next := m.tickCmd(); next != nil {
		return tea.Batch(m.captureCmd(), next)
	}
	return m.captureCmd()
}

func (m *Model) Init() tea.Cmd { return m.refreshCmd() }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.stopped {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width <= 0 || msg.Height <= 0 {
			return m.fail(fmt.Errorf("%w (%dx%d)", ErrZeroArea, msg.Width, msg.Height))
		}
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.syncOffset()
	case snapshotMsg:
		if msg.seq < m.appliedSeq {
			log.Printf("dropped stale capture %d (have %d)", msg.seq, m.appliedSeq)
			return m, nil
		}
		m.appliedSeq = msg.seq
		rows := msg.rows
		if m.table == nil {
			m.table = model.NewTable(rows)
		} else {
			m.table.Replace(rows)
		}
		log.Printf("captured %d processes", len(rows))
		m.syncOffset()
	case errMsg:
		return m.fail(msg.err)
	case tickMsg:
		return m, m.refreshCmd()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	act := m.keys.route(msg)
	if act == actionQuit {
		return m.quit()
	}
	if act == actionRefresh {
		return m, m.captureCmd()
	}
	if m.table == nil {
		return m, nil
	}
	switch act {
	case actionAdvance:
		m.table.Advance()
	case actionRetreat:
		m.table.Retreat()
	case actionTop:
		m.table.Select(0)
	case actionBottom:
		m.table.Select(m.table.Len() - 1)
	}
	m.syncOffset()
	return m, nil
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.stopped = true
	m.ctxCancel()
	return m, tea.Quit
}

func (m *Model) fail(err error) (tea.Model, tea.Cmd) {
	log.Printf("fatal: %v", err)
	m.err = err
	return m.quit()
}

// Run starts the Bubble Tea program on the alternate screen and blocks
// until it stops. The terminal is restored before Run returns; the error
// that stopped the loop, if any, is returned afterwards.
func Run(cfg config.Config, src sampler.Source, opts ...tea.ProgramOption) error {
	return New(cfg, src).run(opts...)
}

func (m *Model) run(opts ...tea.ProgramOption) error {
	defer m.ctxCancel()
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	if fm, ok := final.(*Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
