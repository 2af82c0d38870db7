package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/shuriken/core"
	"github.com/lixenwraith/shuriken/parameter"
	"github.com/lixenwraith/shuriken/scene"
)

// BackgroundRenderer clears the buffer to the view's background color
type BackgroundRenderer struct{}

func (r *BackgroundRenderer) Render(v scene.View, buf *Buffer) {
	buf.Clear(tcell.StyleDefault.Background(ToTcell(v.Background)))
}

// SpriteRenderer draws entities as glyph blocks covering their extent in cells
type SpriteRenderer struct{}

func (r *SpriteRenderer) Render(v scene.View, buf *Buffer) {
	bg := ToTcell(v.Background)
	for _, sp := range v.Sprites {
		style := tcell.StyleDefault.Background(bg)
		var glyphs []rune
		switch sp.Kind {
		case core.KindPlayer:
			style = style.Foreground(ToTcell(parameter.PlayerColor)).Bold(true)
			glyphs = []rune{parameter.GlyphPlayer}
		case core.KindMonster:
			style = style.Foreground(ToTcell(parameter.MonsterColor))
			glyphs = parameter.GlyphMonster
		case core.KindProjectile:
			style = style.Foreground(ToTcell(parameter.ProjectileColor)).Bold(true)
			glyphs = []rune{parameter.GlyphProjectile}
		default:
			continue
		}

		w := max(1, int(math.Round(sp.Size.X)))
		h := max(1, int(math.Round(sp.Size.Y)))
		x0 := int(math.Floor(sp.Position.X - float64(w)/2 + 0.5))
		y0 := int(math.Floor(sp.Position.Y - float64(h)/2 + 0.5))
		for dy := 0; dy < h; dy++ {
			for dx := 0; dx < w; dx++ {
				buf.Set(x0+dx, y0+dy, glyphs[dx%len(glyphs)], style)
			}
		}
	}
}

// StatusRenderer shows the kill counter in the top-left corner while playing
type StatusRenderer struct{}

func (r *StatusRenderer) Render(v scene.View, buf *Buffer) {
	if v.Label != "" {
		return
	}
	style := tcell.StyleDefault.Background(ToTcell(v.Background)).Foreground(tcell.ColorBlack)
	buf.SetString(0, 0, fmt.Sprintf("kills %d/%d", v.Kills, parameter.WinThreshold+1), style)
}

// LabelRenderer centers the result message
type LabelRenderer struct{}

func (r *LabelRenderer) Render(v scene.View, buf *Buffer) {
	if v.Label == "" {
		return
	}
	w, h := buf.Size()
	runes := []rune(v.Label)
	x := (w - len(runes)) / 2
	style := tcell.StyleDefault.Background(ToTcell(v.Background)).Foreground(ToTcell(parameter.LabelColor)).Bold(true)
	buf.SetString(x, h/2, v.Label, style)
}
