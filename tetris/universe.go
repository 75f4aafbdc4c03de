package tetris

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// MinWidth is the narrowest board every shape can spawn on.
const MinWidth = 6

// Validate reports whether pieces can spawn on a board of this size.
func (d Dimensions) Validate() error {
	if d.Width < MinWidth {
		return fmt.Errorf("board width %d is below the minimum of %d", d.Width, MinWidth)
	}
	if d.Height == 0 {
		return errors.New("board height must be positive")
	}
	return nil
}

// Universe owns the whole board: the focused piece, its ghost, the locked
// stack and the game state. Tick is its only mutating entry point besides
// construction.
type Universe struct {
	dims    Dimensions
	focused Tetromino
	ghost   Tetromino
	stack   *Stack
	game    Game
	rng     *rand.Rand
	events  eventQueue
}

// Option configures a Universe.
type Option func(*Universe)

// WithDimensions sets the board size. The default is StandardDimensions.
func WithDimensions(d Dimensions) Option {
	return func(u *Universe) {
		u.dims = d
	}
}

// WithSeed makes piece selection deterministic.
func WithSeed(seed uint64) Option {
	return func(u *Universe) {
		u.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithRand sets the random source used for piece selection.
func WithRand(rng *rand.Rand) Option {
	return func(u *Universe) {
		u.rng = rng
	}
}

// WithListener registers a listener at construction.
func WithListener(l Listener) Option {
	return func(u *Universe) {
		u.events.subscribe(l)
	}
}

// NewUniverse creates a running game with a freshly spawned piece.
// It panics if the configured dimensions are invalid.
func NewUniverse(opts ...Option) *Universe {
	u := &Universe{
		dims:  StandardDimensions,
		stack: NewStack(),
		game:  NewGame(),
	}
	for _, opt := range opts {
		opt(u)
	}
	if err := u.dims.Validate(); err != nil {
		panic(err)
	}
	if u.rng == nil {
		u.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	u.focused = u.spawn()
	u.ghost = u.project(u.focused)
	return u
}

// Subscribe registers a listener for events raised by later ticks.
func (u *Universe) Subscribe(l Listener) {
	u.events.subscribe(l)
}

// Tick advances the simulation by one fixed timestep. Actions are applied in
// order to the focused piece, then the piece falls if the level's fall
// interval has elapsed. restart is only honoured once the game is over.
// The events raised during the tick are returned after being delivered to
// listeners.
func (u *Universe) Tick(actions []Action, restart bool) []Event {
	if !u.game.Running() {
		if restart {
			u.restart()
		}
		return u.events.flush()
	}

	u.game.Advance()

	for _, a := range actions {
		if !u.game.Running() {
			break
		}
		u.apply(a)
	}

	if u.game.Running() && u.game.ShouldFall() {
		u.fall()
	}

	u.ghost = u.project(u.focused)
	return u.events.flush()
}

func (u *Universe) apply(a Action) {
	switch a {
	case MoveLeft:
		u.shift(-1)
	case MoveRight:
		u.shift(1)
	case SoftDrop:
		// Every press scores, including one that locks the piece.
		if !u.step() {
			u.lock()
		}
		u.game.AwardSoftDrop()
	case RotateCW:
		u.focused, _ = Rotate(u.focused, Clockwise, u.dims, u.stack)
	case RotateCCW:
		u.focused, _ = Rotate(u.focused, CounterClockwise, u.dims, u.stack)
	case HardDrop:
		u.hardDrop()
	default:
		panic("unknown action " + a.String())
	}
}

// shift moves the focused piece sideways if the destination is free.
func (u *Universe) shift(dx int) {
	if canPlace(u.focused, dx, 0, u.dims, u.stack) {
		u.focused, _ = u.focused.Translated(dx, 0, u.dims)
	}
}

// step moves the focused piece down one row if possible.
func (u *Universe) step() bool {
	if !canPlace(u.focused, 0, -1, u.dims, u.stack) {
		return false
	}
	u.focused, _ = u.focused.Translated(0, -1, u.dims)
	return true
}

// fall is the automatic drop: one row down, or lock when blocked.
func (u *Universe) fall() {
	if !u.step() {
		u.lock()
	}
}

func (u *Universe) hardDrop() {
	target := u.project(u.focused)
	rows := u.focused.Pivot().Y - target.Pivot().Y
	u.game.AwardHardDrop(rows)
	u.focused = target
	u.events.emit(Event{Kind: EventHardDrop, Shape: target.Shape(), Rows: rows})
	u.lock()
}

// lock moves the focused piece into the stack, clears any full rows and
// spawns the next piece. The game ends when the new piece overlaps the stack.
func (u *Universe) lock() {
	u.stack.Lock(u.focused)
	u.events.emit(Event{Kind: EventPieceLocked, Shape: u.focused.Shape()})

	if rows := u.stack.ClearFullRows(u.dims); len(rows) > 0 {
		levelUp := u.game.AddClearedRows(uint(len(rows)))
		u.events.emit(Event{Kind: EventRowsCleared, Rows: uint(len(rows)), Level: u.game.Level()})
		if levelUp {
			u.events.emit(Event{Kind: EventLevelUp, Level: u.game.Level()})
		}
	}

	u.focused = u.spawn()
	if Collides(u.focused, 0, 0, u.stack) {
		u.game.End()
		u.events.emit(Event{Kind: EventGameOver, Level: u.game.Level()})
	}
}

// project drops a copy of t straight down until it is blocked.
func (u *Universe) project(t Tetromino) Tetromino {
	for canPlace(t, 0, -1, u.dims, u.stack) {
		t, _ = t.Translated(0, -1, u.dims)
	}
	return t
}

func (u *Universe) spawn() Tetromino {
	return SpawnShape(RandomShape(u.rng), u.dims)
}

func (u *Universe) restart() {
	u.stack.Reset()
	u.game = NewGame()
	u.focused = u.spawn()
	u.ghost = u.project(u.focused)
	u.events.emit(Event{Kind: EventRestarted})
}

// Dimensions returns the board size.
func (u *Universe) Dimensions() Dimensions {
	return u.dims
}

// Focused returns the piece under player control.
func (u *Universe) Focused() Tetromino {
	return u.focused
}

// Ghost returns where the focused piece would land if hard dropped.
func (u *Universe) Ghost() Tetromino {
	return u.ghost
}

// Locked returns a copy of the locked pieces.
func (u *Universe) Locked() []Tetromino {
	return u.stack.Pieces()
}

// LockedAt returns the shape of the locked cell at c, if any.
func (u *Universe) LockedAt(c Coord) (Shape, bool) {
	return u.stack.ShapeAt(c)
}

// RowCounts returns the number of locked cells on each row.
func (u *Universe) RowCounts() []uint {
	return u.stack.RowCounts(u.dims)
}

// Game returns a copy of the score and level state.
func (u *Universe) Game() Game {
	return u.game
}

// Validate checks the locked stack invariants.
func (u *Universe) Validate() error {
	return u.stack.Validate(u.dims)
}
