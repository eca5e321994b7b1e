package playground

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jusunglee/josa"
	"golang.org/x/text/unicode/norm"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	activeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	formStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)
)

var policies = []josa.Policy{josa.PolicyTable, josa.PolicyNoCoda, josa.PolicyCoda, josa.PolicyStrict}

type model struct {
	textInput textinput.Model
	josas     []josa.Josa
	cursor    int
	policy    int
	normalize bool
	chosen    string
}

// New returns a playground model starting on initial and policy.
func New(initial josa.Josa, policy josa.Policy, normalize bool) tea.Model {
	ti := textinput.New()
	ti.Placeholder = "단어를 입력하세요"
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 30

	m := model{
		textInput: ti,
		josas:     josa.Josas(),
		normalize: normalize,
	}
	for i, j := range m.josas {
		if j == initial {
			m.cursor = i
		}
	}
	for i, p := range policies {
		if p == policy {
			m.policy = i
		}
	}
	return m
}

// Run starts the playground and returns the last chosen word with its josa,
// or "" if the user quit without choosing.
func Run(initial josa.Josa, policy josa.Policy, normalize bool) (string, error) {
	final, err := tea.NewProgram(New(initial, policy, normalize)).Run()
	if err != nil {
		return "", fmt.Errorf("running playground: %w", err)
	}
	return final.(model).chosen, nil
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab, tea.KeyDown:
			m.cursor = (m.cursor + 1) % len(m.josas)
			return m, nil
		case tea.KeyShiftTab, tea.KeyUp:
			m.cursor = (m.cursor + len(m.josas) - 1) % len(m.josas)
			return m, nil
		case tea.KeyCtrlP:
			m.policy = (m.policy + 1) % len(policies)
			return m, nil
		case tea.KeyEnter:
			if out, err := m.selector().Append(m.word(), m.josas[m.cursor]); err == nil {
				m.chosen = out
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m model) word() string {
	if m.normalize {
		return norm.NFC.String(m.textInput.Value())
	}
	return m.textInput.Value()
}

func (m model) selector() josa.Selector {
	return josa.NewSelector(josa.WithPolicy(policies[m.policy]))
}

func (m model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("josa playground"))
	s.WriteString("\n")
	s.WriteString(m.textInput.View())
	s.WriteString("\n\n")

	word := m.word()
	sel := m.selector()
	for i, j := range m.josas {
		prefix := "  "
		label := fmt.Sprintf("%-8s %-10s", j.Name(), j.String())
		if i == m.cursor {
			prefix = "> "
			label = activeStyle.Render(label)
		}
		s.WriteString(prefix + label + "  " + m.renderResult(sel, word, j) + "\n")
	}

	s.WriteString("\n")
	s.WriteString(subtleStyle.Render(fmt.Sprintf("policy=%s • tab/↑↓=josa • ctrl+p=policy • enter=choose • esc=quit", policies[m.policy])))

	return boxStyle.Render(s.String())
}

func (m model) renderResult(sel josa.Selector, word string, j josa.Josa) string {
	out, err := sel.Append(word, j)
	switch {
	case errors.Is(err, josa.ErrEmptyInput):
		return subtleStyle.Render("-")
	case err != nil:
		return errorStyle.Render("?")
	default:
		return formStyle.Render(out)
	}
}
