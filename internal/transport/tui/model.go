package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rocketscienceinc/tictactoe-tui/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tui/internal/usecase"
)

const (
	startTitle      = "Welcome to Tic Tac Toe!"
	startButton     = "[ Start the game ]"
	playAgainButton = "[ Play again ]"
)

type session interface {
	Dispatch(event usecase.Event) error
	View() usecase.View
}

// Model - Bubble Tea adapter that turns keys and clicks into session events.
type Model struct {
	session session
	styles  styles
	cursor  int
}

func NewModel(session session, theme Theme) *Model {
	return &Model{
		session: session,
		styles:  newStyles(theme),
		cursor:  entity.BoardSize / 2,
	}
}

func (that *Model) Init() tea.Cmd {
	return nil
}

func (that *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return that, that.handleKey(msg.String())
	case tea.MouseMsg:
		that.handleMouse(msg)
	}

	return that, nil
}

func (that *Model) handleKey(key string) tea.Cmd {
	if key == "ctrl+c" || key == "q" {
		return tea.Quit
	}

	switch that.session.View().Screen {
	case usecase.ScreenStart:
		if key == "enter" || key == " " || key == "s" {
			that.dispatch(usecase.PressStart())
		}
	case usecase.ScreenGame:
		that.handleGameKey(key)
	case usecase.ScreenEnd:
		if key == "enter" || key == " " || key == "r" {
			that.dispatch(usecase.PressPlayAgain())
		}
	}

	return nil
}

func (that *Model) handleGameKey(key string) {
	switch key {
	case "up", "k":
		that.cursor = moveCursor(that.cursor, -1, 0)
	case "down", "j":
		that.cursor = moveCursor(that.cursor, 1, 0)
	case "left", "h":
		that.cursor = moveCursor(that.cursor, 0, -1)
	case "right", "l":
		that.cursor = moveCursor(that.cursor, 0, 1)
	case "enter", " ":
		that.dispatch(usecase.PressCell(that.cursor))
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= entity.BoardSize {
			that.cursor = n - 1
			that.dispatch(usecase.PressCell(that.cursor))
		}
	}
}

func (that *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}

	switch that.session.View().Screen {
	case usecase.ScreenStart:
		if msg.Y == buttonLine && msg.X < len(startButton) {
			that.dispatch(usecase.PressStart())
		}
	case usecase.ScreenGame:
		if cell, ok := cellAt(msg.X, msg.Y); ok {
			that.cursor = cell
			that.dispatch(usecase.PressCell(cell))
		}
	case usecase.ScreenEnd:
		if msg.Y == buttonLine && msg.X < len(playAgainButton) {
			that.dispatch(usecase.PressPlayAgain())
		}
	}
}

// dispatch - rejected input is ignored.
func (that *Model) dispatch(event usecase.Event) {
	_ = that.session.Dispatch(event)
}

func (that *Model) View() string {
	view := that.session.View()

	switch view.Screen {
	case usecase.ScreenGame:
		return that.gameView(view.State)
	case usecase.ScreenEnd:
		return that.menuView(view.Message, playAgainButton, "enter: play again • q: quit")
	default:
		return that.menuView(startTitle, startButton, "enter: start • q: quit")
	}
}

// menuView - title on line 0, button on buttonLine.
func (that *Model) menuView(title, button, help string) string {
	lines := []string{
		that.styles.title.Render(title),
		"",
		that.styles.button.Render(button),
		"",
		that.styles.hint.Render(help),
	}

	return strings.Join(lines, "\n") + "\n"
}

func (that *Model) gameView(state entity.State) string {
	lines := []string{
		that.styles.title.Render("Tic Tac Toe"),
		"",
	}

	separator := that.styles.grid.Render(strings.Repeat("─", cellWidth))
	for row := 0; row < entity.BoardSide; row++ {
		if row > 0 {
			rule := []string{separator, separator, separator}
			lines = append(lines, strings.Join(rule, that.styles.grid.Render("┼")))
		}

		cells := make([]string, 0, entity.BoardSide)
		for col := 0; col < entity.BoardSide; col++ {
			cells = append(cells, that.renderCell(state.Board, row*entity.BoardSide+col))
		}

		lines = append(lines, strings.Join(cells, that.styles.grid.Render("│")))
	}

	turn := that.styles.mark(state.Turn).Render(string(state.Turn))
	lines = append(lines,
		"",
		fmt.Sprintf("%s to move", turn),
		that.styles.hint.Render("arrows/hjkl: move • enter or 1-9: play • q: quit"),
	)

	return strings.Join(lines, "\n") + "\n"
}

func (that *Model) renderCell(board entity.Board, cell int) string {
	mark := board[cell]

	symbol := string(mark)
	if mark == entity.EmptyCell {
		symbol = strconv.Itoa(cell + 1)
	}

	text := fmt.Sprintf("%*s%s%*s", cellWidth/2, "", symbol, cellWidth/2, "")

	style := that.styles.mark(mark)
	if cell == that.cursor {
		style = that.styles.cursor.Inherit(style)
	}

	return style.Render(text)
}
