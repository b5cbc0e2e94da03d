package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	WindowTitle = "Hello World Application"

	// Prompt text
	PromptTitle  = "Custom Message Input"
	PromptHeader = "Input a message"
	PromptLabel  = "Message"

	DefaultMessage = "HELLO, WORLD!"

	// Row layout, in window units
	Padding  = 75.0
	Spacing  = 10.0
	FontSize = 100.0

	// Terminal cells stand in for window units at roughly this ratio
	TerminalPaddingX = 6
	TerminalPaddingY = 2
	TerminalSpacing  = 1

	DefaultInterval = 800 * time.Millisecond

	EnvPrefix = "HELLO"
)

// Lighting parameters for the distant light shading each letter.
const (
	LightAzimuth      = -45.0
	LightElevation    = 60.0
	LightSurfaceScale = 3.0
)

// Drop shadow parameters.
const (
	ShadowRadius  = 5.0
	ShadowOffsetX = -5.0
	ShadowOffsetY = 5.0
)

// Reflection parameters.
const (
	ReflectionFraction   = 0.475
	ReflectionTopOpacity = 0.5
)

// Renderer names accepted by the renderer setting.
const (
	RendererWindow   = "window"
	RendererTerminal = "terminal"
)

// Setting keys, shared by flags, environment and viper.
const (
	KeyMessage  = "message"
	KeyInterval = "interval"
	KeyRenderer = "renderer"
	KeySound    = "sound"
	KeyLogLevel = "log_level"
)

// Config holds runtime settings. The zero-flag defaults reproduce the
// prompt-then-animate behaviour with no extra output.
type Config struct {
	// Message skips the prompt when non-empty.
	Message  string
	Interval time.Duration
	Renderer string
	Sound    bool
	LogLevel string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Interval: DefaultInterval,
		Renderer: RendererWindow,
	}
}

// New returns a viper instance with defaults set and HELLO_* environment
// variables bound.
func New() *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault(KeyMessage, d.Message)
	v.SetDefault(KeyInterval, d.Interval)
	v.SetDefault(KeyRenderer, d.Renderer)
	v.SetDefault(KeySound, d.Sound)
	v.SetDefault(KeyLogLevel, d.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags binds command-line flags onto v. Flag names use dashes where
// the setting keys use underscores.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, key := range []string{KeyMessage, KeyInterval, KeyRenderer, KeySound, KeyLogLevel} {
		name := strings.ReplaceAll(key, "_", "-")
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %q: %w", name, err)
		}
	}
	return nil
}

// Load reads the settings out of v and validates them.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Message:  v.GetString(KeyMessage),
		Interval: v.GetDuration(KeyInterval),
		Renderer: strings.ToLower(strings.TrimSpace(v.GetString(KeyRenderer))),
		Sound:    v.GetBool(KeySound),
		LogLevel: strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("invalid %s %v: must be positive", KeyInterval, c.Interval)
	}
	switch c.Renderer {
	case RendererWindow, RendererTerminal:
	default:
		return fmt.Errorf("invalid %s %q: want %q or %q", KeyRenderer, c.Renderer, RendererWindow, RendererTerminal)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid %s %q", KeyLogLevel, c.LogLevel)
	}
	return nil
}
