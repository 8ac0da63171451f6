package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"lifeline/internal/app"
	"lifeline/internal/life"
	"lifeline/internal/term"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Life.Validate(); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg *app.Config) error {
	engineLink, viewerLink := life.NewLink()
	engine, err := life.New(engineLink, cfg.Life)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer engineLink.Close()
		return quiet(engine.Run(ctx))
	})

	switch cfg.UI {
	case "gui":
		// ebiten insists on the main goroutine.
		err = app.RunGUI(ctx, viewerLink, cfg)
		cancel()
	case "term":
		err = runTerm(ctx, viewerLink, cfg)
		cancel()
	case "headless":
		g.Go(func() error {
			defer cancel()
			return quiet(runHeadless(ctx, viewerLink, cfg))
		})
	default:
		cancel()
		err = errors.New("unknown -ui " + cfg.UI)
	}

	if werr := g.Wait(); err == nil {
		err = werr
	}
	log.Printf("stopped at generation %d with %d live cells", engine.Generation(), engine.LiveCount())
	return err
}

func runTerm(ctx context.Context, link *life.Link, cfg *app.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	return quiet(term.New(screen, link, cfg).Run(ctx))
}

func runHeadless(ctx context.Context, link *life.Link, cfg *app.Config) error {
	if cfg.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Duration)
		defer cancel()
	}
	return app.NewMonitor(link, cfg, log.Default()).Run(ctx)
}

// quiet treats cancellation as a normal way to stop.
func quiet(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}
