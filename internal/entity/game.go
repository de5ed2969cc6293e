package entity

import "time"

type GameState string

const (
	StateRedTurn  GameState = "red_turn"
	StateBlueTurn GameState = "blue_turn"
	StateRedWin   GameState = "red_win"
	StateBlueWin  GameState = "blue_win"
	StateDraw     GameState = "draw"
)

// TurnState - returns the non-terminal state in which color is to move.
func TurnState(color Color) GameState {
	if color == Red {
		return StateRedTurn
	}
	return StateBlueTurn
}

// WinState - returns the terminal state in which color has won.
func WinState(color Color) GameState {
	if color == Red {
		return StateRedWin
	}
	return StateBlueWin
}

func (that GameState) IsFinished() bool {
	switch that {
	case StateRedWin, StateBlueWin, StateDraw:
		return true
	default:
		return false
	}
}

// TurnColor returns the color to move, ok is false in terminal states.
func (that GameState) TurnColor() (Color, bool) {
	switch that {
	case StateRedTurn:
		return Red, true
	case StateBlueTurn:
		return Blue, true
	default:
		return Red, false
	}
}

// Winner returns the winning color, ok is false unless the state is a win.
func (that GameState) Winner() (Color, bool) {
	switch that {
	case StateRedWin:
		return Red, true
	case StateBlueWin:
		return Blue, true
	default:
		return Red, false
	}
}

// MatchResult is the outcome of one finished match.
type MatchResult struct {
	MatchID    string    `json:"match_id"`
	State      GameState `json:"state"`
	Moves      int       `json:"moves"`
	FinishedAt time.Time `json:"finished_at"`
}

// Tally counts match outcomes over the lifetime of the process.
type Tally struct {
	RedWins  int `json:"red_wins"`
	BlueWins int `json:"blue_wins"`
	Draws    int `json:"draws"`
}

func (that *Tally) Add(state GameState) {
	switch state {
	case StateRedWin:
		that.RedWins++
	case StateBlueWin:
		that.BlueWins++
	case StateDraw:
		that.Draws++
	case StateRedTurn, StateBlueTurn:
	}
}

func (that Tally) Total() int {
	return that.RedWins + that.BlueWins + that.Draws
}
