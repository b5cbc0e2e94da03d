// Package prompt asks the user for the message to animate.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/hello-marquee/internal/config"
)

// ErrCanceled means the user dismissed the prompt. It is a normal exit path,
// not a failure.
var ErrCanceled = errors.New("prompt canceled")

// Prompter returns the raw text the user entered. An empty string is a valid
// answer.
type Prompter interface {
	Prompt(ctx context.Context) (string, error)
}

// Static answers with a fixed message and never shows anything.
type Static string

func (s Static) Prompt(context.Context) (string, error) {
	return string(s), nil
}

// Dialog shows a native modal text-entry dialog.
type Dialog struct{}

func (Dialog) Prompt(ctx context.Context) (string, error) {
	text, err := zenity.Entry(
		config.PromptHeader+"\n\n"+config.PromptLabel,
		zenity.Title(config.PromptTitle),
		zenity.Context(ctx),
	)
	return text, canceled(err, zenity.ErrCanceled)
}

// Form asks on the terminal. Nil In and Out mean stdin and stdout.
type Form struct {
	In         io.Reader
	Out        io.Writer
	Accessible bool
}

func (f Form) Prompt(ctx context.Context) (string, error) {
	var text string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(config.PromptHeader).
				Prompt(config.PromptLabel + ": ").
				Value(&text),
		).Title(config.PromptTitle),
	).WithAccessible(f.Accessible)
	if f.In != nil {
		form = form.WithInput(f.In)
	}
	if f.Out != nil {
		form = form.WithOutput(f.Out)
	}

	err := form.RunWithContext(ctx)
	return text, canceled(err, huh.ErrUserAborted)
}

// canceled maps a toolkit's cancellation sentinel onto ErrCanceled and wraps
// anything else.
func canceled(err, sentinel error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sentinel),
		errors.Is(err, context.Canceled):
		return ErrCanceled
	default:
		return fmt.Errorf("read message: %w", err)
	}
}
