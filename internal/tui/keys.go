package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fjl/giocalc/internal/calc"
)

type keyMap struct {
	Digits     key.Binding
	DoubleZero key.Binding
	Decimal    key.Binding
	Add        key.Binding
	Subtract   key.Binding
	Multiply   key.Binding
	Divide     key.Binding
	Equals     key.Binding
	Backspace  key.Binding
	Clear      key.Binding
	ToggleSign key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Digits: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "digit"),
		),
		DoubleZero: key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "00")),
		Decimal:    key.NewBinding(key.WithKeys(".", ","), key.WithHelp(".", "decimal")),
		Add:        key.NewBinding(key.WithKeys("+"), key.WithHelp("+", "add")),
		Subtract:   key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "subtract")),
		Multiply:   key.NewBinding(key.WithKeys("*", "x"), key.WithHelp("*", "multiply")),
		Divide:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "divide")),
		Equals:     key.NewBinding(key.WithKeys("enter", "="), key.WithHelp("enter", "equals")),
		Backspace:  key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "delete")),
		Clear:      key.NewBinding(key.WithKeys("c", "delete"), key.WithHelp("c", "clear")),
		ToggleSign: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "±")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Equals, k.Clear, k.ToggleSign, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Digits, k.DoubleZero, k.Decimal},
		{k.Add, k.Subtract, k.Multiply, k.Divide},
		{k.Equals, k.Backspace, k.Clear, k.ToggleSign},
		{k.Help, k.Quit},
	}
}

// button maps a key press to a calculator button.
func (k keyMap) button(msg tea.KeyMsg) (calc.Button, bool) {
	switch {
	case key.Matches(msg, k.Digits):
		return calc.Digit(int(msg.String()[0] - '0')), true
	case key.Matches(msg, k.DoubleZero):
		return calc.DoubleZero, true
	case key.Matches(msg, k.Decimal):
		return calc.Decimal, true
	case key.Matches(msg, k.Add):
		return calc.Op(calc.OpAdd), true
	case key.Matches(msg, k.Subtract):
		return calc.Op(calc.OpSubtract), true
	case key.Matches(msg, k.Multiply):
		return calc.Op(calc.OpMultiply), true
	case key.Matches(msg, k.Divide):
		return calc.Op(calc.OpDivide), true
	case key.Matches(msg, k.Equals):
		return calc.Equals, true
	case key.Matches(msg, k.Backspace):
		return calc.Backspace, true
	case key.Matches(msg, k.Clear):
		return calc.Clear, true
	case key.Matches(msg, k.ToggleSign):
		return calc.ToggleSign, true
	}
	return calc.Button{}, false
}
