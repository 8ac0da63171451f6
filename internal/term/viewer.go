// Package term hosts the viewer side of the simulation in a terminal.
package term

import (
	"context"
	"time"

	"lifeline/internal/app"
	"lifeline/internal/life"
	"lifeline/internal/render"

	"github.com/gdamore/tcell/v2"
)

// Viewer draws a shadow grid on a tcell screen, two columns per cell, with
// a status line underneath.
type Viewer struct {
	screen tcell.Screen
	link   *life.Link
	shadow *render.Shadow
	ctl    *app.Controller
	poll   time.Duration

	alive  tcell.Style
	dead   tcell.Style
	status tcell.Style
}

// New returns a viewer for an already initialised screen.
func New(screen tcell.Screen, link *life.Link, cfg *app.Config) *Viewer {
	fps := cfg.Life.TargetRefreshRate
	if fps <= 0 {
		fps = 60
	}
	return &Viewer{
		screen: screen,
		link:   link,
		shadow: render.NewShadow(cfg.Life.GridSize),
		ctl:    app.NewController(link, cfg.Life),
		poll:   time.Second / time.Duration(fps),
		alive:  tcell.StyleDefault.Background(tcell.ColorGreen),
		dead:   tcell.StyleDefault.Background(tcell.ColorBlack),
		status: tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
	}
}

// Run pumps screen events and engine diffs until the user quits (nil) or
// ctx is done (ctx.Err()). Either way the engine is asked to shut down.
func (v *Viewer) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go v.screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(v.poll)
	defer ticker.Stop()

	v.draw()
	for {
		select {
		case <-ctx.Done():
			v.ctl.Do(app.ActionQuit)
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				v.ctl.Do(app.ActionQuit)
				return nil
			}
			if v.handle(ev) {
				return nil
			}
		case <-ticker.C:
			if v.shadow.Apply(v.link.Receive()) {
				v.draw()
			}
		}
	}
}

func (v *Viewer) handle(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action := app.ActionNone
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			action = app.ActionQuit
		case tcell.KeyUp:
			action = app.ActionFaster
		case tcell.KeyDown:
			action = app.ActionSlower
		case tcell.KeyRune:
			action = app.ActionForRune(ev.Rune())
		}
		if v.ctl.Do(action) {
			return true
		}
		v.draw()
	case *tcell.EventResize:
		v.screen.Sync()
		v.draw()
	}
	return false
}

func (v *Viewer) draw() {
	w, h := v.screen.Size()
	size := v.shadow.Size()
	v.screen.Clear()
	for y := 0; y < size.H && y < h-1; y++ {
		for x := 0; x < size.W && 2*x+1 < w; x++ {
			style := v.dead
			if v.shadow.Alive(x, y) {
				style = v.alive
			}
			v.screen.SetContent(2*x, y, ' ', nil, style)
			v.screen.SetContent(2*x+1, y, ' ', nil, style)
		}
	}
	row := min(size.H, h-1)
	status := v.ctl.Status(v.shadow.Generation(), v.shadow.LiveCount())
	for i, r := range status {
		if i >= w {
			break
		}
		v.screen.SetContent(i, row, r, nil, v.status)
	}
	v.screen.Show()
}
