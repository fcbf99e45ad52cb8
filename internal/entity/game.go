package entity

import "fmt"

const BoardSize = 3

const (
	EmptyCell Cell = ""
	CellX     Cell = "X"
	CellO     Cell = "O"
)

const (
	PlayerX Player = "X"
	PlayerO Player = "O"
)

const (
	StateInProgress State = "in_progress"
	StateWon        State = "won"
	StateDraw       State = "draw"
)

// WinLines - rows, columns, main diagonal and anti-diagonal as (row, col) triples.
var WinLines = [8][3][2]int{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

type Cell string

func (that Cell) IsEmpty() bool {
	return that == EmptyCell
}

// Player returns the player owning the mark, false for an empty cell.
func (that Cell) Player() (Player, bool) {
	switch that {
	case CellX:
		return PlayerX, true
	case CellO:
		return PlayerO, true
	default:
		return "", false
	}
}

type Player string

func (that Player) Mark() Cell {
	if that == PlayerO {
		return CellO
	}
	return CellX
}

func (that Player) Opponent() Player {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

type State string

// Status is the outcome of the game so far. Winner is set only for StateWon.
type Status struct {
	State  State  `json:"state"`
	Winner Player `json:"winner,omitempty"`
}

func InProgress() Status {
	return Status{State: StateInProgress}
}

func Won(player Player) Status {
	return Status{State: StateWon, Winner: player}
}

func Draw() Status {
	return Status{State: StateDraw}
}

func (that Status) IsTerminal() bool {
	return that.State == StateWon || that.State == StateDraw
}

func (that Status) String() string {
	if that.State == StateWon {
		return fmt.Sprintf("%s(%s)", that.State, that.Winner)
	}
	return string(that.State)
}

type Move struct {
	Player Player `json:"player"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
}

// Board is a value type; assigning it copies all nine cells.
type Board [BoardSize][BoardSize]Cell

func InRange(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// Winner - returns the owner of the first complete line.
func (that *Board) Winner() (Player, bool) {
	for _, line := range WinLines {
		a := that[line[0][0]][line[0][1]]
		b := that[line[1][0]][line[1][1]]
		c := that[line[2][0]][line[2][1]]
		if !a.IsEmpty() && a == b && b == c {
			return a.Player()
		}
	}

	return "", false
}

func (that *Board) IsFull() bool {
	return that.Count(EmptyCell) == 0
}

func (that *Board) Count(cell Cell) int {
	count := 0
	for _, row := range that {
		for _, value := range row {
			if value == cell {
				count++
			}
		}
	}

	return count
}

// Result - evaluates the board: a complete line wins, otherwise a full board is a draw.
func (that *Board) Result() Status {
	if winner, ok := that.Winner(); ok {
		return Won(winner)
	}

	// the game will continue until all the squares are full
	if that.IsFull() {
		return Draw()
	}

	return InProgress()
}
