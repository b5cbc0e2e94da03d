// Package app wires the prompt, the renderer and the animation driver
// together.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/iburimskiy/hello-marquee/internal/animation"
	"github.com/iburimskiy/hello-marquee/internal/audio"
	"github.com/iburimskiy/hello-marquee/internal/config"
	"github.com/iburimskiy/hello-marquee/internal/game"
	"github.com/iburimskiy/hello-marquee/internal/logging"
	"github.com/iburimskiy/hello-marquee/internal/marquee"
	"github.com/iburimskiy/hello-marquee/internal/prompt"
	"github.com/iburimskiy/hello-marquee/internal/term"
)

// Renderer owns the UI goroutine. Post must hand work to that goroutine and
// Run blocks until the user closes the UI.
type Renderer interface {
	animation.Poster
	Run(ctx context.Context) error
}

// Chime sounds on each tick.
type Chime interface {
	Play(idx int)
	Close()
}

// App holds the collaborators for one run. Tests replace them.
type App struct {
	Config      config.Config
	Prompter    prompt.Prompter
	NewRenderer func(seq *marquee.Sequence) (Renderer, error)
	NewChime    func() (Chime, error)
	Palette     marquee.Palette
}

// New returns an App using the renderer and prompt selected by cfg.
func New(cfg config.Config) *App {
	a := &App{
		Config:  cfg,
		Palette: marquee.DefaultPalette(),
		NewChime: func() (Chime, error) {
			return audio.NewChime()
		},
	}

	switch {
	case cfg.Message != "":
		a.Prompter = prompt.Static(cfg.Message)
	case cfg.Renderer == config.RendererTerminal:
		a.Prompter = prompt.Form{}
	default:
		a.Prompter = prompt.Dialog{}
	}

	if cfg.Renderer == config.RendererTerminal {
		a.NewRenderer = func(seq *marquee.Sequence) (Renderer, error) {
			return term.NewRenderer(seq), nil
		}
	} else {
		a.NewRenderer = func(seq *marquee.Sequence) (Renderer, error) {
			return game.New(seq)
		}
	}
	return a
}

// Run asks for the message and animates it until the renderer exits. A
// cancelled prompt returns nil without building any UI.
func (a *App) Run(ctx context.Context) error {
	log := logging.Named("app")

	input, err := a.Prompter.Prompt(ctx)
	if errors.Is(err, prompt.ErrCanceled) {
		log.Info("Prompt canceled, exiting")
		return nil
	}
	if err != nil {
		return err
	}

	msg := marquee.ResolveMessage(input, config.DefaultMessage)
	seq := marquee.BuildSequence(msg)
	cycler := marquee.NewCycler(a.Palette)
	log.Info("Message accepted",
		zap.Int("input_length", len(input)),
		zap.Bool("default", msg != input),
		zap.Int("units", seq.Len()),
	)

	// First pass runs before the UI exists, so nothing else can observe it.
	cycler.Tick(seq)

	r, err := a.NewRenderer(seq)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	tick := func() { cycler.Tick(seq) }
	if a.Config.Sound && a.NewChime != nil {
		chime, err := a.NewChime()
		if err != nil {
			log.Warn("Sound disabled", zap.Error(err))
		} else {
			defer chime.Close()
			tick = func() {
				chime.Play(cycler.Start())
				cycler.Tick(seq)
			}
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	driver := animation.NewDriver(a.Config.Interval, r, tick)
	if err := driver.Start(ctx); err != nil {
		return fmt.Errorf("start animation: %w", err)
	}
	runErr := r.Run(ctx)
	cancel()
	driver.Stop()
	return runErr
}
