package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// ToTcell converts an RGBA color to a true-color terminal color; alpha is ignored
func ToTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
