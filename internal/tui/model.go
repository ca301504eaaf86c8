package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vito/progrock"
)

const (
	statusRunning   = "running"
	statusCompleted = "completed"
	statusCached    = "cached"
	statusFailed    = "failed"
)

// logTail is how many output lines are kept under a running or failed stage.
const logTail = 5

// VertexState represents the current state of a lifecycle stage in the TUI.
type VertexState struct {
	ID     string
	Name   string
	Status string // statusRunning, statusCompleted, statusCached, statusFailed
	Logs   []string
}

type styles struct {
	running   lipgloss.Style
	completed lipgloss.Style
	cached    lipgloss.Style
	failed    lipgloss.Style
	log       lipgloss.Style
}

// Model is the Bubble Tea model for the TUI, managing vertices and tape updates.
type Model struct {
	tape     TapeSource
	vertices []VertexState
	partial  map[string]string
	width    int
	height   int
	spinner  spinner.Model
	styles   styles
}

// NewModel creates a new TUI model with the given tape source.
func NewModel(tape TapeSource) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow"))

	return &Model{
		tape:    tape,
		partial: make(map[string]string),
		spinner: s,
		styles: styles{
			running:   lipgloss.NewStyle().Foreground(lipgloss.Color("yellow")),
			completed: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),  // Green
			cached:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),  // Blue
			failed:    lipgloss.NewStyle().Foreground(lipgloss.Color("160")), // Red
			log:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")), // Gray
		},
	}
}

// Init initializes the model and starts reading from the tape.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		WaitForTape(m.tape),
		m.spinner.Tick,
	)
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)
	case spinner.TickMsg:
		return m.handleSpinnerTick(msg)
	case MsgTapeUpdate:
		return m.handleTapeUpdate(msg)
	case MsgTapeEnded:
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	return m, nil
}

func (m *Model) handleSpinnerTick(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m *Model) handleTapeUpdate(msg MsgTapeUpdate) (tea.Model, tea.Cmd) {
	if msg.Update != nil {
		for _, v := range msg.Update.Vertexes {
			m.updateOrAddVertex(v)
		}
		for _, l := range msg.Update.Logs {
			m.appendLog(l.Vertex, string(l.Data))
		}
	}
	return m, WaitForTape(m.tape)
}

// updateOrAddVertex updates an existing vertex or adds a new one.
func (m *Model) updateOrAddVertex(v *progrock.Vertex) {
	idx := m.indexOf(v.Id)
	if idx < 0 {
		m.vertices = append(m.vertices, VertexState{
			ID:     v.Id,
			Name:   v.Name,
			Status: statusRunning,
		})
		idx = len(m.vertices) - 1
	}

	switch {
	case v.Error != nil:
		m.vertices[idx].Status = statusFailed
	case v.Cached:
		m.vertices[idx].Status = statusCached
	case v.Completed != nil:
		m.vertices[idx].Status = statusCompleted
	}
}

// appendLog splits data into lines for the vertex, holding back an
// unterminated trailing line until more data arrives.
func (m *Model) appendLog(id, data string) {
	idx := m.indexOf(id)
	if idx < 0 {
		return
	}

	text := m.partial[id] + data
	lines := strings.Split(text, "\n")
	m.partial[id] = lines[len(lines)-1]

	logs := append(m.vertices[idx].Logs, lines[:len(lines)-1]...)
	if len(logs) > logTail {
		logs = logs[len(logs)-logTail:]
	}
	m.vertices[idx].Logs = logs
}

func (m *Model) indexOf(id string) int {
	for i, v := range m.vertices {
		if v.ID == id {
			return i
		}
	}
	return -1
}

// View renders the current state of the model as a string.
func (m *Model) View() string {
	var lines []string

	for _, v := range m.vertices {
		var icon string
		var style lipgloss.Style
		switch v.Status {
		case statusCompleted:
			icon = "✓"
			style = m.styles.completed
		case statusCached:
			icon = "↺"
			style = m.styles.cached
		case statusFailed:
			icon = "✗"
			style = m.styles.failed
		default:
			icon = m.spinner.View()
			style = m.styles.running
		}

		lines = append(lines, fmt.Sprintf("%s %s", style.Render(icon), v.Name))

		if v.Status == statusRunning || v.Status == statusFailed {
			for _, l := range v.Logs {
				lines = append(lines, m.styles.log.Render("    "+l))
			}
		}
	}

	// Keep the newest lines when the window is too short.
	if m.height > 0 && len(lines) > m.height {
		lines = lines[len(lines)-m.height:]
	}

	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
