package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zephyrtronium/calc/keypad"
)

var (
	displayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(24).
			Align(lipgloss.Right)
	resultStyle = displayStyle.Bold(true)
	keyStyle    = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Width(4).
			Align(lipgloss.Center)
	helpStyle = lipgloss.NewStyle().Faint(true)
)

// layout is the button panel of the original calculator.
var layout = [][]string{
	{"C", "()", "+", "-"},
	{"1", "2", "3", "x"},
	{"4", "5", "6", "/"},
	{"7", "8", "9", "%"},
	{".", "0", "<-", "="},
}

// padModel is a bubbletea model driving a keypad from the keyboard.
type padModel struct {
	pad *keypad.Keypad
}

func runKeypad(cfg *config) error {
	m := padModel{pad: keypad.New(keypad.MaxInput(cfg.Keypad.MaxInput))}
	_, err := tea.NewProgram(m).Run()
	return err
}

func (m padModel) Init() tea.Cmd {
	return nil
}

func (m padModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch s := key.String(); s {
	case "ctrl+c", "q":
		return m, tea.Quit
	default:
		if k, ok := keyFor(s); ok {
			m.pad.Press(k)
		}
	}
	return m, nil
}

// keyFor maps a keyboard key to the keypad key it presses.
func keyFor(s string) (keypad.Key, bool) {
	switch s {
	case "enter", "=":
		return keypad.KeyEquals, true
	case "backspace":
		return keypad.KeyBackspace, true
	case "esc", "c", "C", "delete":
		return keypad.KeyClear, true
	case "(", ")":
		return keypad.KeyParens, true
	case "*", "X":
		return 'x', true
	}
	if len(s) == 1 && strings.Contains("0123456789.+-x/%", s) {
		return keypad.Key(s[0]), true
	}
	return 0, false
}

func (m padModel) View() string {
	var b strings.Builder
	style := displayStyle
	if m.pad.Showing() {
		style = resultStyle
	}
	b.WriteString(style.Render(m.pad.Display()))
	b.WriteByte('\n')
	for _, row := range layout {
		keys := make([]string, len(row))
		for i, k := range row {
			keys[i] = keyStyle.Render(k)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, keys...))
		b.WriteByte('\n')
	}
	b.WriteString(helpStyle.Render("enter: =  backspace: <-  esc: C  q: quit"))
	b.WriteByte('\n')
	return b.String()
}
