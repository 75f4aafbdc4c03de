package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/plus3/tetris/input"
	"github.com/plus3/tetris/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	require.NoError(t, c.Validate())
	assert.Equal(t, tetris.StandardDimensions, c.Dimensions())
	assert.Equal(t, 60, c.TickRate)
	assert.Len(t, c.Keys, len(tetris.Actions))
	assert.Equal(t, input.Repeat{Delay: 0, Rate: 4}, c.Repeat(tetris.SoftDrop))
}

func TestParse(t *testing.T) {
	c, err := Parse(strings.NewReader(`
width: 12
height: 22
tick_rate: 30
seed: 99
mute: true
keys:
  move_left: {delay: 6, rate: 2}
`))
	require.NoError(t, err)

	assert.Equal(t, tetris.Dimensions{Width: 12, Height: 22}, c.Dimensions())
	assert.Equal(t, 30, c.TickRate)
	assert.Equal(t, uint64(99), c.Seed)
	assert.True(t, c.Mute)
	assert.Equal(t, input.Repeat{Delay: 6, Rate: 2}, c.Repeat(tetris.MoveLeft))
	assert.Equal(t, input.DefaultRepeat(tetris.MoveRight), c.Repeat(tetris.MoveRight), "other keys keep their defaults")
}

func TestParsePartialKeyOverride(t *testing.T) {
	c, err := Parse(strings.NewReader("keys:\n  move_left: {delay: 3}\n  soft_drop: {rate: 1}\n"))
	require.NoError(t, err)

	assert.Equal(t, input.Repeat{Delay: 3, Rate: 4}, c.Repeat(tetris.MoveLeft))
	assert.Equal(t, input.Repeat{Delay: 0, Rate: 1}, c.Repeat(tetris.SoftDrop))
	assert.Equal(t, input.DefaultRepeat(tetris.RotateCW), c.Repeat(tetris.RotateCW))
}

func TestParseEmpty(t *testing.T) {
	c, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"narrow board", "width: 4"},
		{"flat board", "height: 0"},
		{"zero tick rate", "tick_rate: 0"},
		{"huge tick rate", "tick_rate: 5000"},
		{"unknown action", "keys:\n  hold: {delay: 1, rate: 1}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}

	t.Run("unknown field", func(t *testing.T) {
		_, err := Parse(strings.NewReader("colour: red"))
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalid)
	})
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tick_rate: 120\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 120, c.TickRate)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBindings(t *testing.T) {
	c := Default()
	c.Keys[tetris.HardDrop.String()] = input.Repeat{Delay: 20, Rate: 20}

	bindings := Bindings(c, map[tetris.Action]rune{
		tetris.HardDrop: ' ',
		tetris.MoveLeft: 'h',
	})

	require.Len(t, bindings, 2)
	assert.Equal(t, input.Binding[rune]{Key: 'h', Action: tetris.MoveLeft, Repeat: input.Repeat{Delay: 8, Rate: 4}}, bindings[0])
	assert.Equal(t, input.Binding[rune]{Key: ' ', Action: tetris.HardDrop, Repeat: input.Repeat{Delay: 20, Rate: 20}}, bindings[1])
}
