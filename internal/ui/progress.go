package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"castor/internal/verify"
)

// maxVisibleProbes keeps the probe list readable; the audit fans out over
// hundreds of probes and only active or drifting rows are interesting.
const maxVisibleProbes = 12

type progressModel struct {
	title    string
	events   <-chan verify.Event
	spinner  spinner.Model
	prog     progress.Model
	total    int
	finished int
	drifts   int
	active   []string
	recent   []probeItem
	width    int
	done     bool
}

type probeItem struct {
	name   string
	status verify.Status
}

type eventMsg verify.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model that renders audit progress.
func NewProgressModel(title string, total int, events <-chan verify.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	return &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		prog:    prog,
		total:   total,
		width:   80,
	}
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		cmd := m.applyEvent(verify.Event(msg))
		return m, tea.Batch(cmd, m.listenForEvent())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = msg.Width - 4
		}
		return m, nil
	case progress.FrameMsg:
		progressModel, cmd := m.prog.Update(msg)
		m.prog = progressModel.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	header := fmt.Sprintf("%s (%d/%d probes, %d drifts)", m.title, m.finished, m.total, m.drifts)
	if m.done {
		header = fmt.Sprintf("done: %s", header)
	} else {
		header = fmt.Sprintf("%s %s", m.spinner.View(), header)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	statusWidth := 10
	nameWidth := m.width - statusWidth - 4
	if nameWidth < 20 {
		nameWidth = 20
	}

	for _, item := range m.recent {
		line := fmt.Sprintf("  %s %s",
			styleStatus(item.status).Render(fmt.Sprintf("%10s", statusLabel(item.status))),
			truncate(item.name, nameWidth))
		b.WriteString(line)
		b.WriteString("\n")
	}
	for _, name := range m.active {
		line := fmt.Sprintf("  %s %s",
			styleStatus(verify.StatusWorking).Render(fmt.Sprintf("%10s", "auditing")),
			truncate(name, nameWidth))
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteString("\n")

	return b.String()
}

func (m *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) applyEvent(ev verify.Event) tea.Cmd {
	switch ev.Status {
	case verify.StatusWorking:
		m.active = append(m.active, ev.Probe)
		if len(m.active) > maxVisibleProbes {
			m.active = m.active[len(m.active)-maxVisibleProbes:]
		}
	case verify.StatusDone, verify.StatusDrift:
		m.finished++
		if ev.Status == verify.StatusDrift {
			m.drifts++
			m.recent = append(m.recent, probeItem{name: ev.Probe, status: ev.Status})
			if len(m.recent) > maxVisibleProbes {
				m.recent = m.recent[len(m.recent)-maxVisibleProbes:]
			}
		}
		m.dropActive(ev.Probe)
		if m.total > 0 {
			return m.prog.SetPercent(float64(m.finished) / float64(m.total))
		}
	}
	return nil
}

func (m *progressModel) dropActive(name string) {
	for i, active := range m.active {
		if active == name {
			m.active = append(m.active[:i], m.active[i+1:]...)
			return
		}
	}
}

func statusLabel(status verify.Status) string {
	switch status {
	case verify.StatusQueued:
		return "queued"
	case verify.StatusWorking:
		return "auditing"
	case verify.StatusDone:
		return "ok"
	case verify.StatusDrift:
		return "drift"
	default:
		return ""
	}
}

func styleStatus(status verify.Status) lipgloss.Style {
	switch status {
	case verify.StatusDone:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case verify.StatusDrift:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	case verify.StatusWorking:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	}
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
