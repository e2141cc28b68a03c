package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/silogic/buscode/encoder"
	"github.com/silogic/buscode/errors"
	"github.com/silogic/buscode/sim"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	winnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	schemeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	wordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err         error
	enc         *encoder.Encoder
	power       sim.PowerModel
	inputs      []textinput.Model
	focusIdx    int
	width       int
	edges       int
	transitions int
}

func newInteractiveModel(width int) (*interactiveModel, error) {
	enc, err := encoder.New(width)
	if err != nil {
		return nil, err
	}

	labels := []string{"input", "reference"}
	inputs := make([]textinput.Model, len(labels))
	for i, label := range labels {
		ti := textinput.New()
		ti.Placeholder = "0b… / 0x… / decimal"
		ti.Prompt = label + ": "
		ti.Width = 40
		if i == 0 {
			ti.Focus()
		}
		inputs[i] = ti
	}

	return &interactiveModel{
		enc:    enc,
		power:  sim.DefaultPowerModel(),
		inputs: inputs,
		width:  width,
	}, nil
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+q":
			return m, tea.Quit

		case "tab":
			m.inputs[m.focusIdx].Blur()
			m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
			m.inputs[m.focusIdx].Focus()
			return m, nil

		case "enter":
			m.stepEdge(true, false)
			return m, nil

		case "ctrl+r":
			m.stepEdge(false, true)
			return m, nil

		case "ctrl+g":
			m.stepEdge(false, false)
			return m, nil
		}
	}

	var cmds []tea.Cmd
	for i := range m.inputs {
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *interactiveModel) stepEdge(enable, reset bool) {
	input, reference, err := m.parseWords()
	if err != nil && !reset {
		m.err = err
		return
	}
	m.err = nil

	st := m.enc.Step(input, reference, enable, reset)
	m.edges++
	// Gated and reset edges leave the bus frozen; only enabled edges toggle
	// lines.
	if enable && !reset {
		m.transitions += encoder.Transitions(st.Encoded, reference)
	}
}

func (m *interactiveModel) parseWords() (input, reference encoder.Word, err error) {
	words := make([]encoder.Word, len(m.inputs))
	for i, ti := range m.inputs {
		w, perr := parseWord(ti.Value())
		if perr != nil {
			return 0, 0, perr
		}
		words[i] = w
	}
	return words[0], words[1], nil
}

func parseWord(s string) (encoder.Word, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, errors.InvalidWord(errors.PhaseSimulate, s, err)
	}
	return encoder.Word(v), nil
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Bus Encoder"))
	b.WriteString(fmt.Sprintf("  width %d\n\n", m.width))

	for _, ti := range m.inputs {
		b.WriteString(ti.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	} else {
		b.WriteString(m.candidateTable())
	}

	b.WriteString(m.stateView())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab field • enter step • ctrl+r reset • ctrl+g gated edge • ctrl+c quit"))
	return b.String()
}

// candidateTable shows the live evaluation of the current field values, with
// the candidate Select would register highlighted.
func (m *interactiveModel) candidateTable() string {
	input, reference, err := m.parseWords()
	if err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", err)) + "\n\n"
	}

	cands, costs := m.enc.Evaluate(input, reference)
	sel := encoder.Select(costs)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("reference %s\n\n", wordStyle.Render(reference.Bin(m.width))))
	for i, c := range cands {
		line := fmt.Sprintf("%-12s %s  cost %d",
			c.Tag.String(), c.Encoded.Bin(m.width), costs[i])
		if i == sel {
			b.WriteString(winnerStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

func (m *interactiveModel) stateView() string {
	st := m.enc.State()

	var b strings.Builder
	b.WriteString("registered: ")
	if m.enc.InReset() {
		b.WriteString(errorStyle.Render("reset"))
	} else {
		b.WriteString(wordStyle.Render(st.Encoded.Bin(m.width)))
		b.WriteString(fmt.Sprintf("  tag %02b  ", uint8(st.Tag)))
		b.WriteString(schemeStyle.Render(st.Scheme.String()))
		b.WriteString(fmt.Sprintf("  one-hot %08b", st.EncodingType()))
	}
	b.WriteString("\n")
	b.WriteString(resultStyle.Render(fmt.Sprintf(
		"edges %d  transitions %d  est. %.2f mW",
		m.edges, m.transitions, m.power.EstimateMW(m.transitions))))
	b.WriteString("\n")
	return b.String()
}

func runInteractive(width int) error {
	model, err := newInteractiveModel(width)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
