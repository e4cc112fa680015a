package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type interactiveModel struct {
	ctx      context.Context
	err      error
	caller   caller
	st       styles
	filename string
	result   callResult
	funcs    []exportedFunc
	inputs   []textinput.Model
	selected int
	focusIdx int
	state    modelState
}

// caller is the part of a session the TUI drives.
type caller interface {
	call(ctx context.Context, name string, args []string) (callResult, error)
}

type modelState int

const (
	stateSelectFunc modelState = iota
	stateInputArgs
	stateShowResult
)

type callResultMsg struct {
	err    error
	result callResult
}

func newInteractiveModel(ctx context.Context, c caller, funcs []exportedFunc, filename string) *interactiveModel {
	return &interactiveModel{
		ctx:      ctx,
		caller:   c,
		funcs:    funcs,
		filename: filename,
		st:       newStyles(true),
		state:    stateSelectFunc,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInputArgs {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectFunc && m.selected > 0 {
				m.selected--
				return m, nil
			}

		case "down", "j":
			if m.state == stateSelectFunc && m.selected < len(m.funcs)-1 {
				m.selected++
				return m, nil
			}

		case "enter":
			switch m.state {
			case stateSelectFunc:
				if len(m.funcs) == 0 {
					return m, nil
				}
				m.prepareInputs()
				if len(m.inputs) == 0 {
					return m, m.callFunction
				}
				m.state = stateInputArgs
				return m, nil

			case stateInputArgs:
				return m, m.callFunction

			case stateShowResult:
				m.reset()
				return m, nil
			}

		case "tab":
			if m.state == stateInputArgs && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
				return m, nil
			}

		case "esc":
			switch m.state {
			case stateInputArgs:
				m.state = stateSelectFunc
				m.inputs = nil
				return m, nil
			case stateShowResult:
				m.reset()
				return m, nil
			}
		}

	case callResultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
		return m, nil
	}

	if m.state == stateInputArgs {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) reset() {
	m.state = stateSelectFunc
	m.result = callResult{}
	m.err = nil
	m.inputs = nil
}

func (m *interactiveModel) prepareInputs() {
	f := m.funcs[m.selected]
	m.inputs = make([]textinput.Model, len(f.params))
	for i := range f.params {
		ti := textinput.New()
		ti.Placeholder = typeNames(f.params[i : i+1])
		ti.Prompt = fmt.Sprintf("arg%d: ", i)
		ti.Width = 40
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0
}

func (m *interactiveModel) callFunction() tea.Msg {
	f := m.funcs[m.selected]
	args := make([]string, len(m.inputs))
	for i, input := range m.inputs {
		args[i] = strings.TrimSpace(input.Value())
	}
	res, err := m.caller.call(m.ctx, f.name, args)
	return callResultMsg{result: res, err: err}
}

func (m *interactiveModel) View() string {
	st := m.st
	var b strings.Builder

	b.WriteString(st.title.Render("wasmarin"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	if len(m.funcs) == 0 {
		b.WriteString("The module exports no functions.\n\n")
		b.WriteString(st.help.Render("q quit"))
		return b.String()
	}

	switch m.state {
	case stateSelectFunc:
		b.WriteString("Select a function to call:\n\n")
		for i, f := range m.funcs {
			if i == m.selected {
				b.WriteString(st.selected.Render("> " + f.String()))
			} else {
				b.WriteString("  " + m.formatFunc(f))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(st.help.Render("↑/↓ select • enter call • q quit"))

	case stateInputArgs:
		f := m.funcs[m.selected]
		b.WriteString(fmt.Sprintf("Calling %s\n\n", st.name.Render(f.name)))
		for i, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString(" ")
			b.WriteString(st.typ.Render(typeNames(f.params[i : i+1])))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(st.help.Render("tab next field • enter call • esc back"))

	case stateShowResult:
		f := m.funcs[m.selected]
		b.WriteString(fmt.Sprintf("Result of %s:\n\n", st.name.Render(f.name)))
		if m.err != nil {
			b.WriteString(st.err.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(st.result.Render(strings.Join(m.result.values, " ")))
		}
		if m.result.metered {
			b.WriteString(fmt.Sprintf("\n\nremaining points: %d", m.result.remaining))
		}
		b.WriteString("\n\n")
		b.WriteString(st.help.Render("enter continue • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatFunc(f exportedFunc) string {
	return m.st.name.Render(f.name) + m.st.typ.Render("("+typeNames(f.params)+") -> ("+typeNames(f.results)+")")
}

func runInteractive(ctx context.Context, s *session, filename string) error {
	p := tea.NewProgram(newInteractiveModel(ctx, s, s.funcs, filename), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
