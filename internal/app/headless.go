package app

import (
	"context"
	"log"
	"time"

	"lifeline/internal/life"
	"lifeline/internal/render"
)

// Monitor is a windowless viewer: it keeps a shadow grid in sync and logs
// its progress at a fixed interval.
type Monitor struct {
	link   *life.Link
	shadow *render.Shadow
	ctl    *Controller
	logger *log.Logger

	poll   time.Duration
	report time.Duration
}

// NewMonitor builds a monitor polling at the engine's refresh rate.
func NewMonitor(link *life.Link, cfg *Config, logger *log.Logger) *Monitor {
	if logger == nil {
		logger = log.Default()
	}
	fps := cfg.Life.TargetRefreshRate
	if fps <= 0 {
		fps = 60
	}
	report := cfg.Report
	if report <= 0 {
		report = time.Second
	}
	return &Monitor{
		link:   link,
		shadow: render.NewShadow(cfg.Life.GridSize),
		ctl:    NewController(link, cfg.Life),
		logger: logger,
		poll:   time.Second / time.Duration(fps),
		report: report,
	}
}

// Run polls until ctx is done, then asks the engine to shut down.
func (m *Monitor) Run(ctx context.Context) error {
	poll := time.NewTicker(m.poll)
	defer poll.Stop()
	report := time.NewTicker(m.report)
	defer report.Stop()

	for {
		select {
		case <-ctx.Done():
			m.Poll()
			m.Report()
			m.ctl.Do(ActionQuit)
			return ctx.Err()
		case <-poll.C:
			m.Poll()
		case <-report.C:
			m.Report()
		}
	}
}

// Poll drains pending diffs into the shadow grid.
func (m *Monitor) Poll() bool {
	return m.shadow.Apply(m.link.Receive())
}

// Report logs the current generation and population.
func (m *Monitor) Report() {
	m.logger.Print(m.ctl.Status(m.shadow.Generation(), m.shadow.LiveCount()))
}

// Shadow exposes the monitor's view of the grid.
func (m *Monitor) Shadow() *render.Shadow { return m.shadow }
