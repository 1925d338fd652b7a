package application

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rocketscienceinc/tictactoe-tui/internal/config"
	"github.com/rocketscienceinc/tictactoe-tui/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Run("Quits when the player presses q", func(t *testing.T) {
		// Given: a terminal that only sends q
		st := suite.New(t)
		var out bytes.Buffer

		// When: the program runs
		err := run(context.Background(), st.Logger, &config.Config{}, tea.WithInput(strings.NewReader("q")), tea.WithOutput(&out), tea.WithoutSignalHandler())

		// Then: it stops without an error
		require.NoError(t, err)
		assert.Equal(t, []string{"Starting game", "Player quit"}, st.Messages())
	})

	t.Run("Stops when the context is canceled", func(t *testing.T) {
		st := suite.New(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := run(ctx, st.Logger, &config.Config{}, tea.WithInput(nil), tea.WithOutput(&bytes.Buffer{}), tea.WithoutSignalHandler())

		require.NoError(t, err)
	})
}

func TestNewTerminalModes(t *testing.T) {
	tests := []struct {
		name     string
		conf     config.Config
		expected terminalModes
	}{
		{name: "defaults", conf: config.Config{}, expected: terminalModes{altScreen: true, mouse: true}},
		{name: "mouse disabled", conf: config.Config{NoMouse: true}, expected: terminalModes{altScreen: true}},
		{name: "inline disables the mouse", conf: config.Config{Inline: true}, expected: terminalModes{}},
		{name: "inline without mouse", conf: config.Config{Inline: true, NoMouse: true}, expected: terminalModes{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// When: building terminal modes from the config
			modes := newTerminalModes(&tt.conf)

			// Then: mouse input is never enabled outside the alternate screen
			assert.Equal(t, tt.expected, modes)
			assert.False(t, modes.mouse && !modes.altScreen)
		})
	}
}
