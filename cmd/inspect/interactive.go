package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vexingcodes/bitfield"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	fieldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	spanStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type inspectModel struct {
	err      error
	reg      register
	spec     string
	result   string
	fields   []fieldInfo
	input    textinput.Model
	selected int
	strategy bitfield.Strategy
	state    modelState
}

type modelState int

const (
	stateSelectField modelState = iota
	stateInputValue
	stateShowResult
)

// strategyCycle is the order tab walks through call-site strategies. The
// inherit entry leaves the field's own default in force.
var strategyCycle = []bitfield.Strategy{
	bitfield.StrategyInherit,
	bitfield.Unchecked,
	bitfield.Mask,
	bitfield.Strict,
	bitfield.Panic,
}

func newInspectModel(reg register, spec string) *inspectModel {
	// Most significant field first, matching the bit rendering.
	fs := reg.fields()
	fields := make([]fieldInfo, len(fs))
	for i, f := range fs {
		fields[len(fs)-1-i] = f
	}
	return &inspectModel{
		reg:    reg,
		spec:   spec,
		fields: fields,
		state:  stateSelectField,
	}
}

func (m *inspectModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInputValue {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectField && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectField && m.selected < len(m.fields)-1 {
				m.selected++
			}

		case "tab":
			if m.state == stateSelectField {
				m.strategy = nextStrategy(m.strategy)
			}

		case "r":
			if m.state == stateSelectField {
				m.reg.setRaw(0)
			}

		case "enter":
			switch m.state {
			case stateSelectField:
				if len(m.fields) == 0 {
					return m, nil
				}
				m.prepareInput()
				m.state = stateInputValue

			case stateInputValue:
				m.applyInput()
				m.state = stateShowResult

			case stateShowResult:
				m.state = stateSelectField
				m.result = ""
				m.err = nil
			}

		case "esc":
			switch m.state {
			case stateInputValue:
				m.state = stateSelectField
			case stateShowResult:
				m.state = stateSelectField
				m.result = ""
				m.err = nil
			}
		}
	}

	if m.state == stateInputValue {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *inspectModel) prepareInput() {
	f := m.fields[m.selected]
	ti := textinput.New()
	ti.Prompt = f.name + " = "
	ti.Placeholder = "0x, 0b or decimal"
	ti.Width = 40
	ti.Focus()
	m.input = ti
}

func (m *inspectModel) applyInput() {
	f := m.fields[m.selected]
	v, err := parseValue(strings.TrimSpace(m.input.Value()), m.reg.width())
	if err != nil {
		m.err = err
		return
	}
	if err := m.setField(f.name, v); err != nil {
		m.err = err
		return
	}
	m.result = fmt.Sprintf("%s = %d", f.name, v)
}

// setField applies the assignment under the tab-selected strategy. The panic
// strategy is recovered here so a rejected value reports like any other
// failure instead of tearing the program down.
func (m *inspectModel) setField(name string, v uint64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("%v", r)
		}
	}()

	var cfgs []bitfield.Config
	if m.strategy != bitfield.StrategyInherit {
		cfgs = append(cfgs, bitfield.Config{Strategy: m.strategy})
	}
	return m.reg.set(name, v, cfgs...)
}

func nextStrategy(s bitfield.Strategy) bitfield.Strategy {
	for i, c := range strategyCycle {
		if c == s {
			return strategyCycle[(i+1)%len(strategyCycle)]
		}
	}
	return strategyCycle[0]
}

func (m *inspectModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Register Inspector"))
	b.WriteString(" ")
	b.WriteString(m.spec)
	b.WriteString("\n\n")

	w := m.reg.width()
	b.WriteString(fmt.Sprintf("0x%0*X  %s\n\n", int(w/4), m.reg.raw(), m.renderBits()))

	switch m.state {
	case stateSelectField:
		for i, f := range m.fields {
			cursor := "  "
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + m.formatField(f)))
			} else {
				b.WriteString(cursor + m.formatField(f))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(fmt.Sprintf(
			"↑/↓ select • enter set • tab strategy (%s) • r zero • q quit",
			m.strategyLabel())))

	case stateInputValue:
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render(fmt.Sprintf(
			"strategy: %s • enter apply • esc back", m.strategyLabel())))

	case stateShowResult:
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

// renderBits draws the register MSB first, nibble-grouped, with the selected
// field's span highlighted.
func (m *inspectModel) renderBits() string {
	w := m.reg.width()
	raw := m.reg.raw()

	var lo, hi uint
	highlight := false
	if len(m.fields) > 0 {
		f := m.fields[m.selected]
		lo = f.offset
		hi = f.offset + f.width - 1
		highlight = true
	}

	var b strings.Builder
	for i := int(w) - 1; i >= 0; i-- {
		s := string(byte('0' + (raw>>uint(i))&1))
		if highlight && uint(i) >= lo && uint(i) <= hi {
			s = selectedStyle.Render(s)
		}
		b.WriteString(s)
		if i > 0 && i%4 == 0 {
			b.WriteString(" ")
		}
	}
	return b.String()
}

func (m *inspectModel) formatField(f fieldInfo) string {
	span := fmt.Sprintf("[%d:%d]", f.offset+f.width-1, f.offset)
	v, err := m.reg.get(f.name)
	if err != nil {
		return fieldStyle.Render(f.name) + spanStyle.Render(span) + " = ?"
	}
	return fmt.Sprintf("%s%s = %d (0b%0*b)",
		fieldStyle.Render(f.name), spanStyle.Render(span), v, int(f.width), v)
}

func (m *inspectModel) strategyLabel() string {
	if m.strategy == bitfield.StrategyInherit {
		return "field default"
	}
	return m.strategy.String()
}

func runInteractive(reg register, spec string) error {
	p := tea.NewProgram(newInspectModel(reg, spec), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
