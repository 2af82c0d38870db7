package parameter

import "image/color"

// SpriteSizes holds sprite extents in scene units for one frontend
type SpriteSizes struct {
	PlayerW, PlayerH         float64
	MonsterW, MonsterH       float64
	ProjectileW, ProjectileH float64
}

// PixelSizes are sprite extents in pixels for the window frontend
var PixelSizes = SpriteSizes{
	PlayerW: 27, PlayerH: 40,
	MonsterW: 27, MonsterH: 40,
	ProjectileW: 15, ProjectileH: 15,
}

// CellSizes are terminal cell extents; cells are roughly twice as tall as wide
var CellSizes = SpriteSizes{
	PlayerW: 1, PlayerH: 1,
	MonsterW: 3, MonsterH: 1,
	ProjectileW: 1, ProjectileH: 1,
}

// Glyphs for the terminal renderer
const (
	GlyphPlayer     = '@'
	GlyphProjectile = '*'
)

// GlyphMonster is drawn across the monster's width
var GlyphMonster = []rune("}#{")

// Window frontend defaults
const (
	WindowWidth  = 480
	WindowHeight = 320
	WindowTitle  = "Shuriken"
	LabelSize    = 40
)

var (
	PlayingBackground  = color.RGBA{211, 211, 211, 255} // light gray
	GameOverBackground = color.RGBA{128, 0, 128, 255}   // purple
	LabelColor         = color.RGBA{255, 255, 255, 255}
	PlayerColor        = color.RGBA{40, 40, 160, 255}
	MonsterColor       = color.RGBA{40, 140, 40, 255}
	ProjectileColor    = color.RGBA{60, 60, 60, 255}
)
