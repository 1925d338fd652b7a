package tui

import "github.com/rocketscienceinc/tictactoe-tui/internal/entity"

// Screen coordinates used both for drawing and for mouse hit-testing.
// Every screen is drawn from the top-left corner without padding, which only
// holds on the alternate screen; mouse input is disabled otherwise.
const (
	cellWidth  = 5
	boardTop   = 2
	buttonLine = 2
)

// cellAt - maps a terminal position to a board index.
func cellAt(x, y int) (int, bool) {
	line := y - boardTop
	if x < 0 || line < 0 || line > 2*entity.BoardSide-2 || line%2 == 1 {
		return 0, false
	}

	if x%(cellWidth+1) == cellWidth {
		return 0, false
	}

	row, col := line/2, x/(cellWidth+1)
	if col >= entity.BoardSide {
		return 0, false
	}

	return row*entity.BoardSide + col, true
}

func moveCursor(cursor, dRow, dCol int) int {
	row := cursor/entity.BoardSide + dRow
	col := cursor%entity.BoardSide + dCol

	if row < 0 || row >= entity.BoardSide || col < 0 || col >= entity.BoardSide {
		return cursor
	}

	return row*entity.BoardSide + col
}
