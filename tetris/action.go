package tetris

import "strconv"

// Action is a discrete player command applied to the focused piece.
type Action uint8

const (
	MoveLeft Action = iota
	MoveRight
	SoftDrop
	RotateCW
	RotateCCW
	HardDrop
)

// Actions lists every action in declaration order.
var Actions = [...]Action{MoveLeft, MoveRight, SoftDrop, RotateCW, RotateCCW, HardDrop}

func (a Action) String() string {
	switch a {
	case MoveLeft:
		return "move_left"
	case MoveRight:
		return "move_right"
	case SoftDrop:
		return "soft_drop"
	case RotateCW:
		return "rotate_cw"
	case RotateCCW:
		return "rotate_ccw"
	case HardDrop:
		return "hard_drop"
	}
	return "Action(" + strconv.Itoa(int(a)) + ")"
}

// ParseAction is the inverse of Action.String.
func ParseAction(s string) (Action, bool) {
	for _, a := range Actions {
		if a.String() == s {
			return a, true
		}
	}
	return 0, false
}
