// Package config loads game settings from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/plus3/tetris/input"
	"github.com/plus3/tetris/tetris"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// MaxTickRate is the fastest supported simulation rate in Hz.
const MaxTickRate = 1000

// Config holds the tunable settings shared by every frontend.
type Config struct {
	Width    uint `yaml:"width"`
	Height   uint `yaml:"height"`
	TickRate int  `yaml:"tick_rate"`
	// Seed fixes the piece sequence. Zero picks a random seed.
	Seed uint64 `yaml:"seed"`
	Mute bool   `yaml:"mute"`
	// Keys overrides repeat timing per action name, e.g. "move_left".
	Keys map[string]input.Repeat `yaml:"keys"`
}

// Default returns the stock settings: a 10x20 board at 60 ticks per second.
func Default() Config {
	c := Config{
		Width:    tetris.StandardDimensions.Width,
		Height:   tetris.StandardDimensions.Height,
		TickRate: 60,
		Keys:     make(map[string]input.Repeat, len(tetris.Actions)),
	}
	for _, a := range tetris.Actions {
		c.Keys[a.String()] = input.DefaultRepeat(a)
	}
	return c
}

// Load reads a config file on top of the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	c, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// repeatOverride is a keys entry as written in the file. Missing fields keep
// the action's default.
type repeatOverride struct {
	Delay *uint `yaml:"delay"`
	Rate  *uint `yaml:"rate"`
}

// Parse decodes YAML on top of the defaults and validates the result.
// Unknown fields are rejected. A keys entry may set only one of delay and
// rate; the other keeps its default.
func Parse(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	c := Default()
	if err := decode(data, &c, true); err != nil {
		return Config{}, err
	}

	var overrides struct {
		Keys map[string]repeatOverride `yaml:"keys"`
	}
	if err := decode(data, &overrides, false); err != nil {
		return Config{}, err
	}
	for name, o := range overrides.Keys {
		a, ok := tetris.ParseAction(name)
		if !ok {
			continue
		}
		rep := input.DefaultRepeat(a)
		if o.Delay != nil {
			rep.Delay = *o.Delay
		}
		if o.Rate != nil {
			rep.Rate = *o.Rate
		}
		c.Keys[name] = rep
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func decode(data []byte, v any, strict bool) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(strict)
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decoding config: %w", err)
	}
	return nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if err := c.Dimensions().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.TickRate < 1 || c.TickRate > MaxTickRate {
		return fmt.Errorf("%w: tick_rate %d is outside [1, %d]", ErrInvalid, c.TickRate, MaxTickRate)
	}
	for name := range c.Keys {
		if _, ok := tetris.ParseAction(name); !ok {
			return fmt.Errorf("%w: unknown action %q in keys", ErrInvalid, name)
		}
	}
	return nil
}

// Dimensions returns the configured board size.
func (c Config) Dimensions() tetris.Dimensions {
	return tetris.Dimensions{Width: c.Width, Height: c.Height}
}

// Repeat returns the repeat timing for an action, falling back to the default.
func (c Config) Repeat(a tetris.Action) input.Repeat {
	if r, ok := c.Keys[a.String()]; ok {
		return r
	}
	return input.DefaultRepeat(a)
}

// Bindings pairs each action with a frontend key using the configured repeat
// timing. Actions without a key are skipped. The result follows the order of
// tetris.Actions.
func Bindings[K comparable](c Config, keys map[tetris.Action]K) []input.Binding[K] {
	var out []input.Binding[K]
	for _, a := range tetris.Actions {
		k, ok := keys[a]
		if !ok {
			continue
		}
		out = append(out, input.Binding[K]{Key: k, Action: a, Repeat: c.Repeat(a)})
	}
	return out
}
