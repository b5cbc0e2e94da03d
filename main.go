// Hello-marquee asks for a message and shows it one letter per label, cycling
// the letter colours on a fixed timer.
//
// Usage:
//
//	hello-marquee [flags]
//
// With no flags it opens a native dialog for the message and then a window.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/hello-marquee/internal/app"
	"github.com/iburimskiy/hello-marquee/internal/config"
	"github.com/iburimskiy/hello-marquee/internal/logging"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hello-marquee",
	Short: "Animated rainbow message",
	Long: `Prompts for a message and displays each letter in its own colour,
shifting the colours one slot every tick.

Every flag can also be set through a HELLO_* environment variable,
for example HELLO_INTERVAL=500ms.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.Flags()
	flags.String("message", "", "message to show instead of prompting for one")
	flags.Duration("interval", config.DefaultInterval, "time between colour shifts")
	flags.String("renderer", config.RendererWindow, "where to draw: window or terminal")
	flags.Bool("sound", false, "play a tone on every colour shift")
	flags.String("log-level", "", "log to stderr at debug, info, warn or error")
}

func run(cmd *cobra.Command, _ []string) error {
	v := config.New()
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	if err := logging.Initialize(cfg.LogLevel); err != nil {
		return err
	}
	defer logging.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.New(cfg).Run(ctx)
}
