package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// maxHistory bounds the number of command/result pairs kept on screen.
const maxHistory = 12

type historyEntry struct {
	command string
	output  string
	err     error
}

type interactiveModel struct {
	sh      *shell
	input   textinput.Model
	history []historyEntry
}

func newInteractiveModel(sh *shell) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "set key value"
	ti.Prompt = promptStyle.Render("ht> ")
	ti.Width = 60
	ti.Focus()

	return &interactiveModel{sh: sh, input: ti}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "" {
				return m, nil
			}
			out, err := m.sh.exec(line)
			if errors.Is(err, errQuit) {
				return m, tea.Quit
			}
			m.history = append(m.history, historyEntry{command: line, output: out, err: err})
			if len(m.history) > maxHistory {
				m.history = m.history[len(m.history)-maxHistory:]
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	st := m.sh.table.Stats()
	b.WriteString(titleStyle.Render("Hash Table Shell"))
	fmt.Fprintf(&b, " %d keys in %d slots\n\n", st.Count, st.Capacity)

	for _, h := range m.history {
		b.WriteString(promptStyle.Render("ht> "))
		b.WriteString(h.command)
		b.WriteString("\n")
		if h.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("error: %v", h.err)))
			b.WriteString("\n")
		} else if h.output != "" {
			b.WriteString(resultStyle.Render(h.output))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter run • help commands • esc quit"))

	return b.String()
}
