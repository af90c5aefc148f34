package model

// Table holds the rows of the latest capture and an optional selected row.
// When a row is selected its index is always within range.
type Table struct {
	rows     []Snapshot
	selected int
	hasSel   bool
}

// NewTable returns a table over rows with nothing selected.
func NewTable(rows []Snapshot) *Table {
	return &Table{rows: rows}
}

// Rows returns the current rows. Callers must not modify them.
func (t *Table) Rows() []Snapshot { return t.rows }

func (t *Table) Len() int { return len(t.rows) }

// Selected reports the selected index and whether a row is selected.
func (t *Table) Selected() (int, bool) { return t.selected, t.hasSel }

// Current returns the selected snapshot.
func (t *Table) Current() (Snapshot, bool) {
	if !t.hasSel {
		return Snapshot{}, false
	}
	return t.rows[t.selected], true
}

// Select moves the selection to i. Out of range indexes are ignored.
func (t *Table) Select(i int) {
	if i < 0 || i >= len(t.rows) {
		return
	}
	t.selected, t.hasSel = i, true
}

// Advance moves the selection down one row, wrapping to the top.
func (t *Table) Advance() {
	n := len(t.rows)
	if n == 0 {
		return
	}
	if !t.hasSel {
		t.Select(0)
		return
	}
	t.selected = (t.selected + 1) % n
}

// Retreat moves the selection up one row, wrapping to the bottom.
func (t *Table) Retreat() {
	n := len(t.rows)
	if n == 0 {
		return
	}
	if !t.hasSel {
		t.Select(0)
		return
	}
	if t.selected == 0 {
		t.selected = n - 1
		return
	}
	t.selected--
}

// Replace swaps in a new capture. A selection past the end of rows is
// clamped to the last row, or cleared when rows is empty.
func (t *Table) Replace(rows []Snapshot) {
	t.rows = rows
	if !t.hasSel || t.selected < len(rows) {
		return
	}
	if len(rows) == 0 {
		t.selected, t.hasSel = 0, false
		return
	}
	t.selected = len(rows) - 1
}
