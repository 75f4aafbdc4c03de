package tetris

// MaxLevel is the highest reachable level.
const MaxLevel = 20

// LinesPerLevel is the number of cleared rows needed to advance one level.
const LinesPerLevel = 10

// lineScores awards single, double, triple and tetris clears.
var lineScores = [4]uint{40, 100, 300, 1200}

// framesPerRow is the number of ticks between automatic falls at each level.
var framesPerRow = [MaxLevel + 1]uint{
	53, 49, 45, 41, 37, 33, 28, 22, 17, 11, 10, 9, 8, 7, 6, 6, 5, 5, 4, 4, 3,
}

// FramesPerRow returns the fall interval in ticks for a level. Levels beyond
// MaxLevel use the MaxLevel interval.
func FramesPerRow(level uint) uint {
	return framesPerRow[min(level, MaxLevel)]
}

// LineClearScore returns the points awarded for clearing rows at once.
// Clearing no rows awards nothing; more than four rows at once is impossible.
func LineClearScore(rows uint) uint {
	if rows == 0 {
		return 0
	}
	if rows > uint(len(lineScores)) {
		panic("cannot clear more than four rows with one piece")
	}
	return lineScores[rows-1]
}

// Game tracks the fall timer, score and level. The zero value is not
// running; use NewGame.
type Game struct {
	ticks        uint
	running      bool
	linesCleared uint
	level        uint
	score        uint
}

// NewGame returns a running game at level 0.
func NewGame() Game {
	return Game{running: true}
}

// Ticks returns the ticks elapsed since the last automatic fall.
func (g Game) Ticks() uint { return g.ticks }

// Running reports whether the game is still in play.
func (g Game) Running() bool { return g.running }

// LinesCleared returns the total number of rows cleared this game.
func (g Game) LinesCleared() uint { return g.linesCleared }

// Level returns the current level, from 0 to MaxLevel.
func (g Game) Level() uint { return g.level }

// Score returns the points earned this game.
func (g Game) Score() uint { return g.score }

// Advance moves the fall timer forward by one tick.
func (g *Game) Advance() {
	if g.ticks >= FramesPerRow(g.level) {
		g.ticks = 0
	}
	g.ticks++
}

// ShouldFall reports whether the focused piece falls on this tick.
func (g Game) ShouldFall() bool {
	return g.ticks%FramesPerRow(g.level) == 0
}

// AddClearedRows scores a clear of rows rows and updates the level.
// It reports whether the level changed.
func (g *Game) AddClearedRows(rows uint) (levelUp bool) {
	if rows == 0 {
		return false
	}
	g.score += LineClearScore(rows)
	g.linesCleared += rows
	level := min(g.linesCleared/LinesPerLevel, MaxLevel)
	levelUp = level != g.level
	g.level = level
	return levelUp
}

// AwardSoftDrop scores one manual step down.
func (g *Game) AwardSoftDrop() {
	g.score += g.level + 1
}

// AwardHardDrop scores a hard drop over rows rows.
func (g *Game) AwardHardDrop(rows uint) {
	g.score += (g.level + 2) * rows
}

// End stops the game.
func (g *Game) End() {
	g.running = false
}
