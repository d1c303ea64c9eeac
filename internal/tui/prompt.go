package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	kerrors "github.com/phravins/kivagen/internal/errors"
	"github.com/phravins/kivagen/internal/output"
	"github.com/phravins/kivagen/internal/prompt"
)

// PromptModel asks each field in turn. A validation failure keeps the same
// field active and shows the message under the input.
type PromptModel struct {
	fields  []prompt.Field
	index   int
	input   textinput.Model
	values  map[string]string
	err     error
	done    bool
	aborted bool
}

func NewPromptModel(fields []prompt.Field) PromptModel {
	ti := textinput.New()
	ti.CharLimit = 214
	ti.Width = 50
	ti.Prompt = "> "

	m := PromptModel{
		fields: fields,
		input:  ti,
		values: make(map[string]string, len(fields)),
	}
	m.focusCurrent()
	return m
}

func (m *PromptModel) focusCurrent() {
	m.input.SetValue("")
	if m.index < len(m.fields) {
		m.input.Placeholder = m.fields[m.index].Default
	}
	m.input.Focus()
}

func (m PromptModel) Init() tea.Cmd {
	if len(m.fields) == 0 {
		return tea.Quit
	}
	return textinput.Blink
}

func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.done || m.aborted {
		return m, tea.Quit
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit

		case tea.KeyEnter:
			field := m.fields[m.index]
			value, err := field.Apply(strings.TrimSpace(m.input.Value()))
			if err != nil {
				m.err = err
				m.input.SetValue("")
				return m, nil
			}
			m.err = nil
			m.values[field.Key] = value
			m.index++
			if m.index >= len(m.fields) {
				m.done = true
				return m, tea.Quit
			}
			m.focusCurrent()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m PromptModel) View() string {
	var b strings.Builder

	for i := 0; i < m.index && i < len(m.fields); i++ {
		f := m.fields[i]
		fmt.Fprintf(&b, "%s %s\n", output.QuestionStyle.Render("? "+f.Message), output.AnswerStyle.Render(m.values[f.Key]))
	}

	if m.done || m.index >= len(m.fields) {
		return b.String()
	}

	f := m.fields[m.index]
	b.WriteString(output.QuestionStyle.Render("? " + f.Message))
	if f.Default != "" {
		b.WriteString(" " + output.DefaultStyle.Render("("+f.Default+")"))
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(output.ErrorStyle.Render(">> " + validationMessage(m.err)))
		b.WriteString("\n")
	}
	b.WriteString(output.SubtleStyle.Render("enter: confirm • esc: cancel"))
	b.WriteString("\n")
	return b.String()
}

// Values returns the collected answers so far.
func (m PromptModel) Values() map[string]string {
	out := make(map[string]string, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}

func (m PromptModel) Done() bool { return m.done }

func (m PromptModel) Aborted() bool { return m.aborted }

func validationMessage(err error) string {
	var detail *kerrors.DetailError
	if errors.As(err, &detail) {
		return detail.Message
	}
	return err.Error()
}

// RunPrompts asks every field interactively and returns the answers.
func RunPrompts(fields []prompt.Field) (prompt.Answers, error) {
	p := tea.NewProgram(NewPromptModel(fields))
	final, err := p.Run()
	if err != nil {
		return prompt.Answers{}, fmt.Errorf("running prompts: %w", err)
	}

	m, ok := final.(PromptModel)
	if !ok || m.Aborted() || !m.Done() {
		return prompt.Answers{}, kerrors.ErrAborted
	}
	return prompt.FromValues(m.Values()), nil
}
