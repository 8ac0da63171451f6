//go:build ebiten

package app

import (
	"context"
	"errors"
	"image/color"

	"lifeline/internal/life"
	"lifeline/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const hudHeight = 16

var keyActions = []struct {
	key    ebiten.Key
	action Action
}{
	{ebiten.KeySpace, ActionTogglePlay},
	{ebiten.KeyP, ActionTogglePlay},
	{ebiten.KeyN, ActionStep},
	{ebiten.KeyM, ActionStepMany},
	{ebiten.KeyUp, ActionFaster},
	{ebiten.KeyEqual, ActionFaster},
	{ebiten.KeyNumpadAdd, ActionFaster},
	{ebiten.KeyDown, ActionSlower},
	{ebiten.KeyMinus, ActionSlower},
	{ebiten.KeyNumpadSubtract, ActionSlower},
	{ebiten.KeyR, ActionReset},
	{ebiten.KeyS, ActionReseed},
	{ebiten.KeyQ, ActionQuit},
	{ebiten.KeyEscape, ActionQuit},
}

// Game renders the viewer side of a running engine through ebiten.
type Game struct {
	ctx     context.Context
	link    *life.Link
	shadow  *render.Shadow
	painter *render.GridPainter
	ctl     *Controller

	onColor  color.Color
	offColor color.Color
	hudColor color.Color

	scale int
}

// New constructs a Game for the viewer end of link.
func New(ctx context.Context, link *life.Link, cfg *Config) *Game {
	n := cfg.Life.GridSize
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	return &Game{
		ctx:      ctx,
		link:     link,
		shadow:   render.NewShadow(n),
		painter:  render.NewGridPainter(n, n),
		ctl:      NewController(link, cfg.Life),
		onColor:  color.RGBA{R: 0x6c, G: 0xc2, B: 0x4a, A: 0xff},
		offColor: color.RGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff},
		hudColor: color.White,
		scale:    scale,
	}
}

// Update handles input and folds pending diffs into the shadow grid.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		g.ctl.Do(ActionQuit)
		return ebiten.Termination
	}
	for _, ka := range keyActions {
		if inpututil.IsKeyJustPressed(ka.key) && g.ctl.Do(ka.action) {
			return ebiten.Termination
		}
	}
	g.shadow.Apply(g.link.Receive())
	return nil
}

// Draw renders the grid and the status line.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.shadow, g.onColor, g.offColor, g.scale)
	size := g.shadow.Size()
	status := g.ctl.Status(g.shadow.Generation(), g.shadow.LiveCount())
	text.Draw(screen, status, basicfont.Face7x13, 4, size.H*g.scale+12, g.hudColor)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.shadow.Size()
	return s.W * g.scale, s.H*g.scale + hudHeight
}

// RunGUI opens a window and blocks until it closes. It must be called from
// the main goroutine.
func RunGUI(ctx context.Context, link *life.Link, cfg *Config) error {
	game := New(ctx, link, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("lifeline: " + cfg.Life.Rule)
	ebiten.SetTPS(cfg.Life.TargetRefreshRate)
	ebiten.SetWindowSize(w, h)

	err := ebiten.RunGame(game)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
