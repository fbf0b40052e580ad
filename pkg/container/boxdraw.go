package container

import (
	"github.com/odvcencio/tessera/pkg/backend"
	"github.com/odvcencio/tessera/pkg/screen"
)

// lineType is the drawing weight of one line segment.
type lineType uint8

const (
	lineNone lineType = iota
	lineThin
	lineThick
)

// segment names one of the four arms that can leave a cell. Each arm
// occupies a two-bit field in lineCell, holding its lineType.
type segment uint8

const (
	segUp    segment = 0
	segDown  segment = 2
	segRight segment = 4
	segLeft  segment = 6
)

// lineCell packs the four arm weights of one cell into a byte, indexing
// cellRunes directly.
type lineCell uint8

func (c lineCell) with(s segment, t lineType) lineCell {
	mask := lineCell(0b11) << s
	return (c &^ mask) | lineCell(t)<<s
}

func (c lineCell) rune() rune {
	return cellRunes[c]
}

// cellRunes maps every arm combination to its box-drawing rune. Mixed
// weights use the Unicode half-weight forms; combinations the block has
// no character for render as a crossed box.
var cellRunes = [256]rune{
	' ', '╵', '╹', '╳', '╷', '│', '╿', '╳', '╻', '╽', '┃', '╳', '╳', '╳', '╳', '╳',
	'╶', '└', '┖', '╳', '┌', '├', '┞', '╳', '┎', '┟', '┠', '╳', '╳', '╳', '╳', '╳',
	'╺', '┕', '┗', '╳', '┍', '┝', '┡', '╳', '┏', '┢', '┣', '╳', '╳', '╳', '╳', '╳',
	'╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳',
	'╴', '┘', '┚', '╳', '┐', '┤', '┦', '╳', '┒', '┧', '┨', '╳', '╳', '╳', '╳', '╳',
	'─', '┴', '┸', '╳', '┬', '┼', '╀', '╳', '┰', '╁', '╂', '╳', '╳', '╳', '╳', '╳',
	'╼', '┶', '┺', '╳', '┮', '┾', '╄', '╳', '┲', '╆', '╊', '╳', '╳', '╳', '╳', '╳',
	'╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳',
	'╸', '┙', '┛', '╳', '┑', '┥', '┩', '╳', '┓', '┪', '┫', '╳', '╳', '╳', '╳', '╳',
	'╾', '┵', '┹', '╳', '┭', '┽', '╃', '╳', '┱', '╅', '╉', '╳', '╳', '╳', '╳', '╳',
	'━', '┷', '┻', '╳', '┯', '┿', '╇', '╳', '┳', '╈', '╋', '╳', '╳', '╳', '╳', '╳',
	'╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳',
	'╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳',
	'╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳',
	'╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳',
	'╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳', '╳',
}

// lineCanvas accumulates separator segments so that crossing and abutting
// lines merge into proper junction characters before painting.
type lineCanvas struct {
	cells map[[2]int]lineCell
}

func newLineCanvas() *lineCanvas {
	return &lineCanvas{cells: make(map[[2]int]lineCell)}
}

func (c *lineCanvas) put(x, y int, s segment, t lineType) {
	key := [2]int{x, y}
	c.cells[key] = c.cells[key].with(s, t)
}

// paint writes the merged cells into win. Cells outside the window are
// clipped by SetCell.
func (c *lineCanvas) paint(win screen.Window, style backend.Style) {
	for key, cell := range c.cells {
		win.SetCell(key[0], key[1], string(cell.rune()), style)
	}
}
