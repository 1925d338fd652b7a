package apperror

import "errors"

var (
	ErrIllegalMove     = errors.New("illegal move")
	ErrGameFinished    = errors.New("game is already finished")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrUnexpectedEvent = errors.New("event is not expected on this screen")
)
