// Package tui renders a live bubbletea view of an in-progress odex
// run, shown by `odex run --watch`.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

// StepMsg reports progress to the running program: Step of Total
// macro-steps completed, with the time and state norm after the latest.
type StepMsg struct {
	Step  int
	Total int
	Time  float64
	Norm  float64
}

// DoneMsg signals the run has finished.
type DoneMsg struct{}

type progressModel struct {
	model    string
	order    int
	cores    int
	isbn     float64
	parallel bool

	step  int
	total int
	time  float64
	norm  float64
	done  bool

	stream <-chan tea.Msg
}

// NewProgram returns a bubbletea program that renders step updates
// delivered over stream until a DoneMsg arrives.
func NewProgram(modelName string, order, cores int, isbn float64, parallel bool, stream <-chan tea.Msg) *tea.Program {
	m := progressModel{
		model:    modelName,
		order:    order,
		cores:    cores,
		isbn:     isbn,
		parallel: parallel,
		stream:   stream,
	}
	return tea.NewProgram(m)
}

func (m progressModel) Init() tea.Cmd {
	return waitForMsg(m.stream)
}

func waitForMsg(stream <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-stream
		if !ok {
			return DoneMsg{}
		}
		return msg
	}
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case StepMsg:
		m.step = msg.Step
		m.total = msg.Total
		m.time = msg.Time
		m.norm = msg.Norm
		return m, waitForMsg(m.stream)
	case DoneMsg:
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m progressModel) View() string {
	var b strings.Builder

	mode := "serial"
	if m.parallel {
		mode = fmt.Sprintf("parallel, %d workers", m.cores)
	}

	b.WriteString(cyan.Render(fmt.Sprintf("odex: %s", m.model)))
	b.WriteString("  ")
	b.WriteString(dim.Render(fmt.Sprintf("order=%d cores=%d ISBn=%.4f %s", m.order, m.cores, m.isbn, mode)))
	b.WriteString("\n\n")

	b.WriteString(progressBar(m.step, m.total, 40))
	b.WriteString("\n\n")

	b.WriteString(white.Render(fmt.Sprintf("t = %.4f", m.time)))
	b.WriteString("  ")
	b.WriteString(green.Render(fmt.Sprintf("|y| = %.6g", m.norm)))
	b.WriteString("\n")
	b.WriteString(dim.Render("press q to quit"))
	b.WriteString("\n")

	return b.String()
}

func progressBar(step, total, width int) string {
	if total <= 0 {
		return ""
	}
	filled := width * step / total
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("#", filled) + strings.Repeat(".", width-filled)
	pct := 100 * float64(step) / float64(total)
	return fmt.Sprintf("[%s] %s", bar, yellow.Render(fmt.Sprintf("%5.1f%%", pct)))
}
