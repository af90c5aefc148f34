package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Dicklesworthstone/proctable/internal/model"
)

const (
	pidWidth    = 10 // digits in the largest uint32
	minColWidth = 10
	colGap      = 1
	marker      = ">> "

	// border (2) + title (1) + header (1) + help (1)
	chromeHeight = 5
	// border (2) + padding (2)
	chromeWidth = 4
)

var headers = [4]string{"PID", "Name", "Command", "Run Time"}

// Styles
var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")).Background(lipgloss.Color("24"))
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	subtleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	frameStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("60")).
			Padding(0, 1)
)

func (m *Model) View() string {
	inner := m.width - chromeWidth
	if inner < 1 {
		inner = 1
	}
	widths := columnWidths(inner)

	lines := []string{
		titleStyle.Render(cell(m.title(), inner)),
		headerStyle.Render(clip(formatRow(widths, headers, false), inner)),
	}
	switch {
	case m.table == nil:
		lines = append(lines, subtleStyle.Render(clip("capturing processes…", inner)))
	case m.table.Len() == 0:
		lines = append(lines, subtleStyle.Render(clip("no processes", inner)))
	default:
		sel, hasSel := m.table.Selected()
		rows := m.table.Rows()
		end := m.offset + m.bodyHeight()
		if end > len(rows) {
			end = len(rows)
		}
		for i := m.offset; i < end; i++ {
			isSel := hasSel && i == sel
			line := clip(formatRow(widths, cells(rows[i]), isSel), inner)
			if isSel {
				line = selectedStyle.Render(line)
			}
			lines = append(lines, line)
		}
	}

	// Rows are already clipped to inner, so the frame never wraps them.
	frame := frameStyle.Width(inner + 2).Render(strings.Join(lines, "\n"))
	view := lipgloss.JoinVertical(lipgloss.Left, frame, m.help.ShortHelpView(m.keys.ShortHelp()))
	return lipgloss.NewStyle().MaxWidth(m.width).MaxHeight(m.height).Render(view)
}

func (m *Model) title() string {
	if m.table == nil {
		return m.cfg.Title
	}
	return fmt.Sprintf("%s (%d)", m.cfg.Title, m.table.Len())
}

func (m *Model) bodyHeight() int {
	h := m.height - chromeHeight
	if h < 0 {
		return 0
	}
	return h
}

// syncOffset scrolls so the selected row is inside the visible body.
func (m *Model) syncOffset() {
	if m.table == nil {
		m.offset = 0
		return
	}
	sel, ok := m.table.Selected()
	m.offset = scrollOffset(m.offset, sel, ok, m.table.Len(), m.bodyHeight())
}

func scrollOffset(offset, sel int, hasSel bool, total, visible int) int {
	if total == 0 || visible <= 0 {
		return 0
	}
	maxOffset := total - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	if !hasSel {
		return offset
	}
	if sel < offset {
		return sel
	}
	if sel >= offset+visible {
		return sel - visible + 1
	}
	return offset
}

// columnWidths gives PID a fixed width and splits the rest between the
// other columns, none narrower than minColWidth.
func columnWidths(inner int) [4]int {
	rest := inner - len(marker) - pidWidth - 3*colGap
	each := rest / 3
	if each < minColWidth {
		return [4]int{pidWidth, minColWidth, minColWidth, minColWidth}
	}
	// Command gets the remainder since it is usually the longest.
	return [4]int{pidWidth, each, rest - 2*each, each}
}

func cells(s model.Snapshot) [4]string {
	return [4]string{
		strconv.FormatUint(uint64(s.PID), 10),
		s.Name,
		s.Command.String(),
		formatRunTime(s.RunTime),
	}
}

func formatRow(widths [4]int, values [4]string, selected bool) string {
	var b strings.Builder
	if selected {
		b.WriteString(marker)
	} else {
		b.WriteString(strings.Repeat(" ", len(marker)))
	}
	for i, v := range values {
		if i > 0 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
		b.WriteString(cell(v, widths[i]))
	}
	return b.String()
}

// clip cuts s to at most w terminal cells.
func clip(s string, w int) string {
	return runewidth.Truncate(s, w, "")
}

// cell truncates or pads s to exactly w terminal cells.
func cell(s string, w int) string {
	return runewidth.FillRight(runewidth.Truncate(s, w, "…"), w)
}

// formatRunTime renders seconds as HH:MM:SS with a day count when needed.
func formatRunTime(secs uint64) string {
	d := secs / 86400
	h := secs % 86400 / 3600
	m := secs % 3600 / 60
	s := secs % 60
	if d > 0 {
		return fmt.Sprintf("%dd %02d:%02d:%02d", d, h, m, s)
	}
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
