package input

// Repeat configures key repetition in ticks. A held key first waits out
// Delay, then repeats whenever more than Rate ticks have passed since the
// last repeat.
type Repeat struct {
	Delay uint `yaml:"delay"`
	Rate  uint `yaml:"rate"`
}

// KeyState is the phase of a pressed key.
type KeyState uint8

const (
	// Initiation is the phase between the first press and the end of the delay.
	Initiation KeyState = iota
	// Held is the auto repeat phase.
	Held
)

func (s KeyState) String() string {
	if s == Held {
		return "held"
	}
	return "initiation"
}

// Debouncer turns the raw down/up level of one key into discrete presses.
// The zero value is a released key with no repetition delay.
type Debouncer struct {
	Repeat Repeat

	state KeyState
	open  bool
	count uint
}

// NewDebouncer creates a released key with the given repeat timing.
func NewDebouncer(r Repeat) Debouncer {
	return Debouncer{Repeat: r}
}

// Tick advances the key by one tick and reports whether it fires.
func (d *Debouncer) Tick(down bool) bool {
	if !down {
		d.release()
		return false
	}

	if !d.open {
		d.open = true
		d.count = 0
		d.state = Initiation
		return true
	}

	d.count++
	switch d.state {
	case Initiation:
		if d.count > d.Repeat.Delay {
			d.state = Held
		}
	case Held:
		if d.count > d.Repeat.Rate {
			d.count = 0
			return true
		}
	}
	return false
}

func (d *Debouncer) release() {
	d.open = false
	d.count = 0
	d.state = Initiation
}

// State returns the current phase.
func (d Debouncer) State() KeyState {
	return d.state
}

// Pressed reports whether the key was down on the last tick.
func (d Debouncer) Pressed() bool {
	return d.open
}

// Buffer returns the ticks counted since the press or the last repeat.
func (d Debouncer) Buffer() uint {
	return d.count
}
