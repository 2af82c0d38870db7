package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/shuriken/vmath"
)

// Cell is one terminal cell
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Buffer is an off-screen cell grid flushed to the terminal once per frame
type Buffer struct {
	width, height int
	cells         []Cell
	blank         Cell
}

// NewBuffer creates a buffer of the given size
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize reallocates the grid; contents are lost
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b.width, b.height = width, height
	b.cells = make([]Cell, width*height)
}

// Size returns the grid dimensions
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// Clear fills every cell with a space in the given style
func (b *Buffer) Clear(style tcell.Style) {
	b.blank = Cell{Rune: ' ', Style: style}
	for i := range b.cells {
		b.cells[i] = b.blank
	}
}

// Set writes a cell; out-of-bounds writes are dropped
func (b *Buffer) Set(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
}

// SetString writes s left to right starting at x
func (b *Buffer) SetString(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		b.Set(x, y, r, style)
		x++
	}
}

// Get reads a cell; out-of-bounds reads return the blank cell
func (b *Buffer) Get(x, y int) Cell {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return b.blank
	}
	return b.cells[y*b.width+x]
}

// Flush copies the buffer to the screen, squashing columns toward the center by scaleX
// scaleX 1 is a straight copy; 0 shows only the blank fill
func (b *Buffer) Flush(screen tcell.Screen, scaleX float64) {
	cx := float64(b.width) / 2
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			if scaleX < 1 {
				c = b.blank
				if scaleX > 0 {
					src := int(math.Floor(cx + (float64(x)+0.5-cx)/scaleX))
					if src >= 0 && src < b.width {
						c = b.cells[y*b.width+src]
					}
				}
			}
			screen.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
	screen.Show()
}

// CellCenter maps a terminal cell to the scene point at its center
func CellCenter(x, y int) vmath.Vec2 {
	return vmath.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5}
}
