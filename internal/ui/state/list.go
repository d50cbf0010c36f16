// Package state holds presentation-side list state for the series explorer:
// cursor, fuzzy filter and scroll offset. Viewport adjustments live in
// internal/viewport, not here.
package state

import "strconv"

// Row is one entry of the series explorer.
type Row struct {
	ID     int
	Label  string
	Detail string
}

// Key returns the row id as a string for text matching.
func (r Row) Key() string {
	return strconv.Itoa(r.ID)
}

// List tracks the visible rows, cursor, filter and scroll offset.
type List struct {
	Rows           []Row
	Full           []Row
	Filter         string
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewList constructs a list with the cursor on the first row.
func NewList(rows []Row) *List {
	l := &List{LastCursor: -1}
	l.UpdateRows(rows)
	return l
}

// UpdateRows replaces the row set, re-applying the current filter.
func (l *List) UpdateRows(rows []Row) {
	l.Full = cloneRows(rows)
	l.applyFilter()
}

// IndexOf returns the visible index of the row with the given id, or -1.
func (l *List) IndexOf(id int) int {
	for i, row := range l.Rows {
		if row.ID == id {
			return i
		}
	}
	return -1
}

// Current returns the row under the cursor.
func (l *List) Current() (Row, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Rows) {
		return Row{}, false
	}
	return l.Rows[l.Cursor], true
}

// Focus moves the cursor onto the row with id, when visible.
func (l *List) Focus(id int) bool {
	idx := l.IndexOf(id)
	if idx < 0 {
		return false
	}
	l.Cursor = idx
	return true
}

func cloneRows(rows []Row) []Row {
	dup := make([]Row, len(rows))
	copy(dup, rows)
	return dup
}
