package tui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/bombahead/client/pkg/protocol"
	"github.com/bombahead/client/pkg/render"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

var quitKeys = key.NewBinding(
	key.WithKeys("ctrl+c", "esc", "q"),
	key.WithHelp("q/esc/ctrl+c", "quit"),
)

// ClientInterface defines the methods required from a client for TUI interaction
type ClientInterface interface {
	ID() string
	GetAddress() string
	StateName() string
	Disconnect()
}

const defaultMaxLogLines = 500

// TUI shows the latest snapshot above a scrolling log pane.
type TUI struct {
	client      ClientInterface
	viewport    viewport.Model
	board       string
	logs        []string
	logMutex    sync.Mutex
	maxLogLines int
	ready       bool
	width       int
	height      int
}

// New creates a new TUI instance
func New(client ClientInterface) *TUI {
	return &TUI{
		client:      client,
		logs:        []string{},
		maxLogLines: defaultMaxLogLines,
	}
}

func (t *TUI) Init() tea.Cmd {
	return nil
}

func (t *TUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, quitKeys) {
			t.client.Disconnect()
			return t, tea.Quit
		}

	case tea.WindowSizeMsg:
		t.width = msg.Width
		t.height = msg.Height
		if !t.ready {
			t.viewport = viewport.New(msg.Width, t.logHeight())
			t.viewport.SetContent(t.renderLogs())
			t.ready = true
		} else {
			t.viewport.Width = msg.Width
			t.viewport.Height = t.logHeight()
		}

	case LogMsg:
		t.AddLog(string(msg))
		t.refreshLogs()
		return t, nil

	case LobbyMsg:
		for _, line := range msg {
			t.AddLog(line)
		}
		t.refreshLogs()
		return t, nil

	case StateMsg:
		t.board = render.Snapshot(msg.State, msg.SelfID)
		if t.ready {
			t.viewport.Height = t.logHeight()
		}
		return t, nil
	}

	if t.ready {
		t.viewport, cmd = t.viewport.Update(msg)
	}
	return t, cmd
}

func (t *TUI) View() string {
	if !t.ready {
		return "Initializing..."
	}

	title := titleStyle.Render(fmt.Sprintf("Bomberman Client - %s", t.client.GetAddress()))
	id := t.client.ID()
	if id == "" {
		id = "unassigned"
	}
	status := statusStyle.Render(fmt.Sprintf("id: %s • connection: %s", id, t.client.StateName()))
	help := helpStyle.Render(quitKeys.Help().Key + ": " + quitKeys.Help().Desc)

	parts := []string{title, status}
	if t.board != "" {
		parts = append(parts, t.board)
	}
	parts = append(parts, t.viewport.View(), help)
	return strings.Join(parts, "\n")
}

// AddLog adds a log message to the TUI
func (t *TUI) AddLog(msg string) {
	t.logMutex.Lock()
	defer t.logMutex.Unlock()
	t.logs = append(t.logs, msg)
	if t.maxLogLines > 0 && len(t.logs) > t.maxLogLines {
		t.logs = t.logs[len(t.logs)-t.maxLogLines:]
	}
}

func (t *TUI) refreshLogs() {
	if !t.ready {
		return
	}
	// do not scroll if not at bottom, to prevent flickering
	wasAtBottom := t.viewport.AtBottom()
	t.viewport.SetContent(t.renderLogs())
	if wasAtBottom {
		t.viewport.GotoBottom()
	}
}

func (t *TUI) renderLogs() string {
	t.logMutex.Lock()
	defer t.logMutex.Unlock()
	return strings.Join(t.logs, "\n")
}

// logHeight leaves room for title, status, help and the board.
func (t *TUI) logHeight() int {
	h := t.height - 3 - lipgloss.Height(t.board)
	if t.board == "" {
		h = t.height - 3
	}
	if h < 1 {
		h = 1
	}
	return h
}

// LogMsg carries one log line
type LogMsg string

// LobbyMsg carries a rendered lobby roster
type LobbyMsg []string

// StateMsg carries the latest snapshot
type StateMsg struct {
	SelfID string
	State  protocol.ClassicStatePayload
}

// Writer is an io.Writer that sends output to the TUI
type Writer struct {
	program *tea.Program
}

func NewWriter(program *tea.Program) *Writer {
	return &Writer{program: program}
}

// Write implements io.Writer
func (w *Writer) Write(p []byte) (n int, err error) {
	msg := strings.TrimSuffix(string(p), "\n")
	if msg != "" {
		w.program.Send(LogMsg(msg))
	}
	return len(p), nil
}

// Sink forwards lobby rosters and snapshots into the program.
type Sink struct {
	program *tea.Program
}

func NewSink(program *tea.Program) *Sink {
	return &Sink{program: program}
}

func (s *Sink) RenderState(selfID string, state protocol.ClassicStatePayload) {
	s.program.Send(StateMsg{SelfID: selfID, State: state})
}

func (s *Sink) RenderLobby(selfID string, lobby protocol.LobbyUpdatePayload) {
	s.program.Send(LobbyMsg(render.LobbyLines(lobby, selfID)))
}

// Start creates a new TUI program, returning the program, a writer for logging
// and a sink for the dispatcher.
func Start(client ClientInterface) (*tea.Program, io.Writer, *Sink) {
	t := New(client)
	p := tea.NewProgram(t, tea.WithAltScreen())
	return p, NewWriter(p), NewSink(p)
}
