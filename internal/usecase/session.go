package usecase

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-tui/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-tui/internal/entity"
)

type Screen int

const (
	ScreenStart Screen = iota
	ScreenGame
	ScreenEnd
)

func (that Screen) String() string {
	switch that {
	case ScreenStart:
		return "start"
	case ScreenGame:
		return "game"
	case ScreenEnd:
		return "end"
	default:
		return fmt.Sprintf("screen(%d)", int(that))
	}
}

type EventKind int

const (
	StartPressed EventKind = iota
	CellPressed
	PlayAgainPressed
)

// Event - one user interaction. Cell is only meaningful for CellPressed.
type Event struct {
	Kind EventKind
	Cell int
}

func PressStart() Event {
	return Event{Kind: StartPressed}
}

func PressCell(cell int) Event {
	return Event{Kind: CellPressed, Cell: cell}
}

func PressPlayAgain() Event {
	return Event{Kind: PlayAgainPressed}
}

type engine interface {
	AttemptMove(cell int) error
	Reset()
	State() entity.State
	Moves() int
}

// View - everything a renderer needs to draw the current screen.
type View struct {
	Screen  Screen
	State   entity.State
	Message string
}

// Session - drives the start, game and end screens over one engine.
type Session struct {
	logger *slog.Logger
	engine engine

	screen  Screen
	roundID string
}

func NewSession(logger *slog.Logger, engine engine) *Session {
	return &Session{
		logger: logger.With("component", "session"),
		engine: engine,
		screen: ScreenStart,
	}
}

// Dispatch - applies the event to the current screen. Rejected events leave the session unchanged.
func (that *Session) Dispatch(event Event) error {
	switch {
	case that.screen == ScreenStart && event.Kind == StartPressed:
		that.startRound()
		return nil
	case that.screen == ScreenGame && event.Kind == CellPressed:
		return that.move(event.Cell)
	case that.screen == ScreenEnd && event.Kind == PlayAgainPressed:
		that.engine.Reset()
		that.startRound()
		return nil
	default:
		return fmt.Errorf("%w: %s", apperror.ErrUnexpectedEvent, that.screen)
	}
}

func (that *Session) move(cell int) error {
	if err := that.engine.AttemptMove(cell); err != nil {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	state := that.engine.State()
	if state.Outcome.IsTerminal() {
		that.screen = ScreenEnd
		that.logger.Info("Round finished",
			"roundID", that.roundID,
			"status", state.Outcome.Status,
			"winner", state.Outcome.Winner,
			"moves", that.engine.Moves(),
		)
	}

	return nil
}

func (that *Session) startRound() {
	that.screen = ScreenGame
	that.roundID = uuid.NewString()

	that.logger.Info("Round started", "roundID", that.roundID)
}

func (that *Session) Screen() Screen {
	return that.screen
}

// RoundID - identifier of the current round, empty before the first start.
func (that *Session) RoundID() string {
	return that.roundID
}

func (that *Session) View() View {
	state := that.engine.State()

	return View{
		Screen:  that.screen,
		State:   state,
		Message: state.Outcome.Message(),
	}
}
