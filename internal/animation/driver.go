// Package animation drives the colour rotation on a fixed period.
//
// The driver never touches display state itself. Each period it hands the
// tick function to a Poster, which is responsible for running it on the
// goroutine that owns rendering (the ebiten update loop or the bubbletea
// event loop).
package animation

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/iburimskiy/hello-marquee/internal/logging"
)

// Poster runs fn later on the UI goroutine. Post must not run fn inline.
type Poster interface {
	Post(fn func())
}

// PosterFunc adapts a function to Poster.
type PosterFunc func(fn func())

// Post calls f(fn).
func (f PosterFunc) Post(fn func()) { f(fn) }

// State is the driver lifecycle state.
type State int

const (
	Idle State = iota
	Running
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// ErrNotIdle is returned by Start when the driver has already been started.
var ErrNotIdle = errors.New("animation: driver already started")

// Driver posts a tick to the UI goroutine once per interval.
type Driver struct {
	interval time.Duration
	poster   Poster
	tick     func()
	log      *zap.Logger

	mu     sync.Mutex
	state  State
	cancel context.CancelFunc
	done   chan struct{}
}

// NewDriver returns an idle driver.
func NewDriver(interval time.Duration, poster Poster, tick func()) *Driver {
	return &Driver{
		interval: interval,
		poster:   poster,
		tick:     tick,
		log:      logging.Named("animation"),
	}
}

// State returns the current lifecycle state.
func (d *Driver) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Start moves the driver from Idle to Running. The first tick is posted one
// interval after Start, and then at a fixed rate; slow ticks do not push
// later ones back.
func (d *Driver) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != Idle {
		return ErrNotIdle
	}

	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.done = make(chan struct{})
	d.state = Running
	d.log.Info("Driver started", zap.Duration("interval", d.interval))

	go d.run(ctx, d.done)
	return nil
}

// Stop halts the timer and waits for the timer goroutine to exit. It is safe
// to call more than once and on a driver that never started.
func (d *Driver) Stop() {
	d.mu.Lock()
	if d.state != Running {
		d.state = Stopped
		d.mu.Unlock()
		return
	}
	d.state = Stopped
	cancel, done := d.cancel, d.done
	d.mu.Unlock()

	cancel()
	<-done
	d.log.Info("Driver stopped")
}

func (d *Driver) run(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	t := time.NewTicker(d.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			d.log.Debug("Tick posted")
			d.poster.Post(d.tick)
		}
	}
}
