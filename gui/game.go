// Package gui is the window frontend: ebiten drives the loop, the director owns the game
package gui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/lixenwraith/shuriken/core"
	"github.com/lixenwraith/shuriken/engine"
	"github.com/lixenwraith/shuriken/parameter"
	"github.com/lixenwraith/shuriken/scene"
	"github.com/lixenwraith/shuriken/vmath"
)

const statusSize = 14

// Game adapts the director to ebiten.Game
type Game struct {
	director *scene.Director
	clock    *engine.FrameClock
	logger   *log.Logger

	label  *text.GoTextFace
	status *text.GoTextFace
	canvas *ebiten.Image

	width, height int
	touchIDs      []ebiten.TouchID
	points        []vmath.Vec2
}

// NewGame builds the director for a window of the configured size and loads the label font
func NewGame(cfg scene.EncounterConfig) (*Game, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("gui: failed to parse font: %w", err)
	}

	if cfg.Field.IsZero() {
		cfg.Field = vmath.V2(parameter.WindowWidth, parameter.WindowHeight)
	}
	if cfg.Sizes == (parameter.SpriteSizes{}) {
		cfg.Sizes = parameter.PixelSizes
	}

	g := &Game{
		director: scene.NewDirector(cfg),
		clock:    engine.NewFrameClock(engine.NewMonotonicTimeProvider(), parameter.MaxFrameDelta),
		logger:   cfg.Logger,
		label:    &text.GoTextFace{Source: source, Size: parameter.LabelSize},
		status:   &text.GoTextFace{Source: source, Size: statusSize},
		width:    int(cfg.Field.X),
		height:   int(cfg.Field.Y),
	}
	return g, nil
}

// Director exposes the scene state machine
func (g *Game) Director() *scene.Director {
	return g.director
}

// Update collects released touches and the left mouse button, then steps the director
func (g *Game) Update() error {
	g.points = g.points[:0]

	g.touchIDs = inpututil.AppendJustReleasedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		g.points = append(g.points, vmath.V2(float64(x), float64(y)))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.points = append(g.points, vmath.V2(float64(x), float64(y)))
	}

	if len(g.points) > 0 {
		g.director.TouchEnded(g.points)
	}
	g.director.Update(g.clock.Tick())
	return nil
}

// Draw paints the current view to an off-screen canvas, then flips it onto the screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.canvas == nil {
		g.canvas = ebiten.NewImage(g.width, g.height)
	}
	v := g.director.View()

	g.canvas.Fill(v.Background)
	for _, sp := range v.Sprites {
		x, y, w, h := spriteRect(sp)
		vector.DrawFilledRect(g.canvas, x, y, w, h, spriteColor(sp.Kind), false)
	}

	if v.Label != "" {
		op := &text.DrawOptions{}
		op.GeoM.Translate(v.Field.X/2, v.Field.Y/2)
		op.ColorScale.ScaleWithColor(parameter.LabelColor)
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		text.Draw(g.canvas, v.Label, g.label, op)
	} else {
		op := &text.DrawOptions{}
		op.GeoM.Translate(6, 4)
		op.ColorScale.ScaleWithColor(color.Black)
		text.Draw(g.canvas, fmt.Sprintf("kills %d/%d", v.Kills, parameter.WinThreshold+1), g.status, op)
	}

	screen.Fill(color.Black)
	if v.ScaleX <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM = flipGeoM(float64(g.width), v.ScaleX)
	screen.DrawImage(g.canvas, op)
}

// Layout pins the logical screen to the field size
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until it is closed
func Run(g *Game) error {
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(parameter.WindowTitle)
	ebiten.SetTPS(int(time.Second / parameter.FrameUpdateInterval))
	if g.logger != nil {
		g.logger.Printf("window %dx%d", g.width, g.height)
	}
	return ebiten.RunGame(g)
}

// spriteRect returns the top-left corner and extent of a sprite in pixels
func spriteRect(sp scene.Sprite) (x, y, w, h float32) {
	return float32(sp.Position.X - sp.Size.X/2),
		float32(sp.Position.Y - sp.Size.Y/2),
		float32(sp.Size.X),
		float32(sp.Size.Y)
}

func spriteColor(k core.Kind) color.RGBA {
	switch k {
	case core.KindPlayer:
		return parameter.PlayerColor
	case core.KindMonster:
		return parameter.MonsterColor
	default:
		return parameter.ProjectileColor
	}
}

// flipGeoM squashes the canvas horizontally around its vertical center line
func flipGeoM(width, scaleX float64) ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-width/2, 0)
	m.Scale(scaleX, 1)
	m.Translate(width/2, 0)
	return m
}
