package entity

import "fmt"

type Mark string

const (
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
	EmptyCell Mark = ""
)

type Status string

const (
	StatusOngoing Status = "ongoing"
	StatusWon     Status = "won"
	StatusTie     Status = "tie"
)

const (
	BoardSide = 3
	BoardSize = BoardSide * BoardSide
)

// WinCombos - every row, column and diagonal of the board.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Opponent - returns the other player symbol. EmptyCell has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Board - cells in row-major order.
type Board [BoardSize]Mark

func (that Board) Cell(row, col int) Mark {
	return that[row*BoardSide+col]
}

func (that Board) HasLine(mark Mark) bool {
	if !mark.IsPlayer() {
		return false
	}

	for _, combo := range WinCombos {
		if that[combo[0]] == mark && that[combo[1]] == mark && that[combo[2]] == mark {
			return true
		}
	}

	return false
}

func (that Board) Filled() int {
	filled := 0
	for _, cell := range that {
		if cell != EmptyCell {
			filled++
		}
	}

	return filled
}

func (that Board) IsFull() bool {
	return that.Filled() == BoardSize
}

type Outcome struct {
	Status Status `json:"status"`
	Winner Mark   `json:"winner,omitempty"`
}

func Ongoing() Outcome {
	return Outcome{Status: StatusOngoing}
}

func Won(winner Mark) Outcome {
	return Outcome{Status: StatusWon, Winner: winner}
}

func Tie() Outcome {
	return Outcome{Status: StatusTie}
}

func (that Outcome) IsTerminal() bool {
	return that.Status == StatusWon || that.Status == StatusTie
}

// Message - text shown on the end screen, empty while the game goes on.
func (that Outcome) Message() string {
	switch that.Status {
	case StatusWon:
		return fmt.Sprintf("%s has won!", that.Winner)
	case StatusTie:
		return "It's a tie!"
	default:
		return ""
	}
}

// State - read-only snapshot of a game.
type State struct {
	Board   Board   `json:"board"`
	Turn    Mark    `json:"player_turn"`
	Outcome Outcome `json:"outcome"`
}
