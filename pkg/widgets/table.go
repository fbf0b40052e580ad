package widgets

import (
	"github.com/odvcencio/tessera/pkg/backend"
	"github.com/odvcencio/tessera/pkg/input"
	"github.com/odvcencio/tessera/pkg/screen"
	"github.com/odvcencio/tessera/pkg/widget"
)

// Column describes one table column for row type R. View builds the
// cell widget for a row; Input, when set, receives input routed to
// the selected cell.
type Column[R any] struct {
	View  func(*R) widget.Widget
	Input func(*R, input.Input) bool
}

// Table displays rows of R in aligned columns with a selected cell.
// Column widths come from the same allocation used by layouts, with
// every column weighted equally. The viewport scrolls by the minimum
// needed to keep the selection visible.
type Table[R any] struct {
	columns []Column[R]
	rows    []R

	row     int
	col     int
	scroll  int
	context int

	selected backend.Style
	lastRows int
}

var _ input.Navigatable = (*Table[struct{}])(nil)
var _ input.Scrollable = (*Table[struct{}])(nil)

// NewTable returns an empty table with the given columns.
func NewTable[R any](columns ...Column[R]) *Table[R] {
	return &Table[R]{
		columns:  columns,
		selected: backend.DefaultStyle().Reverse(true),
	}
}

// SetRows replaces the table content, clamping selection and scroll.
func (t *Table[R]) SetRows(rows []R) {
	t.rows = rows
	t.clampSelection()
	if t.scroll >= len(t.rows) {
		t.scroll = max(len(t.rows)-1, 0)
	}
}

// Rows returns the backing row slice.
func (t *Table[R]) Rows() []R {
	return t.rows
}

// RowCount returns the number of rows.
func (t *Table[R]) RowCount() int {
	return len(t.rows)
}

// SetScrollContext keeps n extra rows visible around the selection
// when the viewport has room.
func (t *Table[R]) SetScrollContext(n int) {
	t.context = max(n, 0)
}

// SetSelectionStyle replaces the style marking the selected cell.
func (t *Table[R]) SetSelectionStyle(s backend.Style) {
	t.selected = s
}

// CurrentRow returns the selected row, or false when the table is
// empty. It never changes table state.
func (t *Table[R]) CurrentRow() (*R, bool) {
	if len(t.rows) == 0 {
		return nil, false
	}
	if t.row >= len(t.rows) {
		return &t.rows[len(t.rows)-1], true
	}
	return &t.rows[t.row], true
}

// SelectedRow returns the selected row index.
func (t *Table[R]) SelectedRow() int {
	return t.row
}

// SelectedColumn returns the selected column index.
func (t *Table[R]) SelectedColumn() int {
	return t.col
}

// HandleInput routes in to the selected cell's column handler.
func (t *Table[R]) HandleInput(in input.Input) bool {
	r, ok := t.CurrentRow()
	if !ok || len(t.columns) == 0 {
		return false
	}
	handler := t.columns[t.col].Input
	if handler == nil {
		return false
	}
	return handler(r, in)
}

// MoveUp selects the row above.
func (t *Table[R]) MoveUp() bool {
	if t.row == 0 || len(t.rows) == 0 {
		return false
	}
	t.row--
	return true
}

// MoveDown selects the row below.
func (t *Table[R]) MoveDown() bool {
	if t.row >= len(t.rows)-1 {
		return false
	}
	t.row++
	return true
}

// MoveLeft selects the column to the left.
func (t *Table[R]) MoveLeft() bool {
	if t.col == 0 || len(t.columns) == 0 {
		return false
	}
	t.col--
	return true
}

// MoveRight selects the column to the right.
func (t *Table[R]) MoveRight() bool {
	if t.col >= len(t.columns)-1 {
		return false
	}
	t.col++
	return true
}

// ScrollBackwards moves the selection up by one page.
func (t *Table[R]) ScrollBackwards() bool {
	return t.jumpSelection(-t.page())
}

// ScrollForwards moves the selection down by one page.
func (t *Table[R]) ScrollForwards() bool {
	return t.jumpSelection(t.page())
}

// ScrollToBeginning selects the first row.
func (t *Table[R]) ScrollToBeginning() bool {
	if len(t.rows) == 0 || t.row == 0 {
		return false
	}
	t.row = 0
	return true
}

// ScrollToEnd selects the last row.
func (t *Table[R]) ScrollToEnd() bool {
	if len(t.rows) == 0 || t.row == len(t.rows)-1 {
		return false
	}
	t.row = len(t.rows) - 1
	return true
}

// SearchForwards selects the nearest matching row below the selection.
func (t *Table[R]) SearchForwards(match func(*R) bool) bool {
	for i := t.row + 1; i < len(t.rows); i++ {
		if match(&t.rows[i]) {
			t.row = i
			return true
		}
	}
	return false
}

// SearchBackwards selects the nearest matching row above the selection.
func (t *Table[R]) SearchBackwards(match func(*R) bool) bool {
	for i := min(t.row, len(t.rows)) - 1; i >= 0; i-- {
		if match(&t.rows[i]) {
			t.row = i
			return true
		}
	}
	return false
}

func (t *Table[R]) SpaceDemand() widget.Demand2D {
	var width widget.Demand
	for _, d := range t.columnDemands() {
		width = widget.AddDemand(width, d)
	}
	return widget.Demand2D{
		Width:  width,
		Height: widget.AtLeast(1),
	}
}

func (t *Table[R]) Draw(win screen.Window, hints widget.RenderingHints) {
	w, h := win.Size()
	if w == 0 || h == 0 || len(t.columns) == 0 {
		return
	}
	t.adjustScroll(h)

	demands := t.columnDemands()
	weights := make([]float64, len(t.columns))
	for i := range weights {
		weights[i] = 1
	}
	widths := widget.LayoutLinearly(w, 0, demands, weights)

	drawn := 0
	y := 0
	for ri := t.scroll; ri < len(t.rows) && y < h; ri++ {
		rh := min(t.rowHeight(ri), h-y)
		x := 0
		for ci, col := range t.columns {
			sub := win.Sub(screen.Rect{X: x, Y: y, Width: widths[ci], Height: rh})
			active := hints.Active && ri == t.row && ci == t.col
			if active {
				sub = sub.WithDefaultStyle(t.selected)
				sub.Clear()
			}
			col.View(&t.rows[ri]).Draw(sub, widget.RenderingHints{Active: active})
			x += widths[ci]
		}
		y += rh
		drawn++
	}
	t.lastRows = drawn
}

// columnDemands returns the width demand per column, the widest cell
// in each.
func (t *Table[R]) columnDemands() []widget.Demand {
	demands := make([]widget.Demand, len(t.columns))
	for ci, col := range t.columns {
		for ri := range t.rows {
			d := col.View(&t.rows[ri]).SpaceDemand().Width
			demands[ci] = widget.MaxDemand(demands[ci], d)
		}
	}
	return demands
}

func (t *Table[R]) rowHeight(ri int) int {
	rh := 1
	for _, col := range t.columns {
		rh = max(rh, col.View(&t.rows[ri]).SpaceDemand().Height.Min)
	}
	return rh
}

// spanHeight sums row heights for rows a..b inclusive.
func (t *Table[R]) spanHeight(a, b int) int {
	total := 0
	for i := a; i <= b; i++ {
		total += t.rowHeight(i)
	}
	return total
}

// adjustScroll moves the viewport by the minimum needed to show the
// selected row, plus the configured context rows when they fit.
func (t *Table[R]) adjustScroll(h int) {
	if len(t.rows) == 0 {
		t.scroll = 0
		return
	}
	t.clampSelection()

	lo := max(t.row-t.context, 0)
	hi := min(t.row+t.context, len(t.rows)-1)
	if t.scroll > lo {
		t.scroll = lo
	}
	for t.scroll < lo && t.spanHeight(t.scroll, hi) > h {
		t.scroll++
	}
	for t.scroll < t.row && t.spanHeight(t.scroll, t.row) > h {
		t.scroll++
	}
}

func (t *Table[R]) jumpSelection(delta int) bool {
	if len(t.rows) == 0 {
		return false
	}
	to := min(max(t.row+delta, 0), len(t.rows)-1)
	if to == t.row {
		return false
	}
	t.row = to
	return true
}

func (t *Table[R]) page() int {
	if t.lastRows > 1 {
		return t.lastRows
	}
	return 1
}

func (t *Table[R]) clampSelection() {
	t.row = min(max(t.row, 0), max(len(t.rows)-1, 0))
	t.col = min(max(t.col, 0), max(len(t.columns)-1, 0))
}
