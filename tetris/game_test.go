package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineClearScore(t *testing.T) {
	assert.Equal(t, uint(0), LineClearScore(0))
	assert.Equal(t, uint(40), LineClearScore(1))
	assert.Equal(t, uint(100), LineClearScore(2))
	assert.Equal(t, uint(300), LineClearScore(3))
	assert.Equal(t, uint(1200), LineClearScore(4))
	assert.Panics(t, func() { LineClearScore(5) })
}

func TestFramesPerRow(t *testing.T) {
	assert.Equal(t, uint(53), FramesPerRow(0))
	assert.Equal(t, uint(3), FramesPerRow(MaxLevel))
	assert.Equal(t, uint(3), FramesPerRow(MaxLevel+7))

	for level := uint(1); level <= MaxLevel; level++ {
		assert.LessOrEqual(t, FramesPerRow(level), FramesPerRow(level-1), "level %d", level)
	}
}

func TestGameFallTimer(t *testing.T) {
	g := NewGame()
	var falls []uint
	for tick := uint(1); tick <= 3*53; tick++ {
		g.Advance()
		if g.ShouldFall() {
			falls = append(falls, tick)
		}
	}
	assert.Equal(t, []uint{53, 106, 159}, falls)
}

func TestGameLevels(t *testing.T) {
	g := NewGame()

	assert.False(t, g.AddClearedRows(0))
	assert.Zero(t, g.Score())

	assert.False(t, g.AddClearedRows(4))
	assert.False(t, g.AddClearedRows(4))
	assert.Equal(t, uint(0), g.Level())
	assert.True(t, g.AddClearedRows(2))
	assert.Equal(t, uint(1), g.Level())
	assert.Equal(t, uint(10), g.LinesCleared())
	assert.Equal(t, uint(1200+1200+100), g.Score())

	for range 100 {
		g.AddClearedRows(4)
	}
	assert.Equal(t, uint(MaxLevel), g.Level())
}

func TestGameDropAwards(t *testing.T) {
	g := NewGame()
	g.AwardSoftDrop()
	assert.Equal(t, uint(1), g.Score())
	g.AwardHardDrop(10)
	assert.Equal(t, uint(21), g.Score())

	g.AddClearedRows(4)
	g.AddClearedRows(4)
	g.AddClearedRows(2)
	before := g.Score()
	g.AwardSoftDrop()
	g.AwardHardDrop(3)
	assert.Equal(t, before+2+9, g.Score(), "level 1 drop awards")
}

func TestGameEnd(t *testing.T) {
	g := NewGame()
	assert.True(t, g.Running())
	g.End()
	assert.False(t, g.Running())
	assert.False(t, Game{}.Running())
}
