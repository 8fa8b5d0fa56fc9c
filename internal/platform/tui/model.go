package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pong-clone/internal/games/pong"
	"github.com/vovakirdan/pong-clone/internal/kbd"
	"github.com/vovakirdan/pong-clone/internal/platform"
)

// Model is the Bubble Tea model driving one game. Every tick runs one
// Update/Draw pair; key messages only feed the backend's key table and
// event queue, which the game drains on the next tick.
type Model struct {
	backend  *Backend
	game     *pong.Game
	timer    *pong.FrameTimer
	keys     KeyMap
	help     help.Model
	showHelp bool
	width    int
	height   int
	quitting bool
}

func newModel(b *Backend, g *pong.Game, clock platform.Clock) Model {
	cols, rows := b.Size()

	h := help.New()
	h.ShowAll = true

	return Model{
		backend: b,
		game:    g,
		timer:   pong.NewFrameTimer(clock),
		keys:    b.keyMap,
		help:    h,
		width:   cols,
		height:  rows,
	}
}

// Init sets the window title and starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(pong.WindowTitle),
		tickCmd(m.backend.tickRate),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	code, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.backend.events.Push(platform.Event{Type: platform.EventQuit, Key: code})
		return m, nil
	}

	if code == kbd.ScancodeF1 {
		m.showHelp = !m.showHelp
		m.layout()
		return m, nil
	}

	if code != kbd.ScancodeUnknown {
		m.backend.keys.Press(code)
		m.backend.events.Push(platform.Event{Type: platform.EventKey, Key: code})
	}
	return m, nil
}

// handleResize processes terminal resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.layout()

	m.backend.events.Push(platform.Event{Type: platform.EventResize, W: msg.Width, H: msg.Height})
	return m, nil
}

// layout gives the game every row the help footer does not use.
func (m *Model) layout() {
	m.help.Width = m.width

	rows := m.height
	if m.showHelp {
		rows -= lipgloss.Height(m.helpView())
	}
	m.backend.Resize(m.width, max(rows, 0))
}

// handleTick runs one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.game.Update(m.timer.Tick())
	m.game.Draw()

	if !m.game.Running() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.backend.tickRate)
}

func (m Model) helpView() string {
	return m.help.View(m.keys)
}

// saveScreenshot saves the current frame as plain text.
func (m Model) saveScreenshot() {
	dir := filepath.Join(os.Getenv("HOME"), ".pong", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.backend.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("pong_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.backend.screen.String()), 0o600); err != nil {
		m.backend.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.backend.logger.Info("screenshot saved", "path", path)
}

// View renders the last presented frame and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showHelp {
		return m.backend.Frame() + "\n" + m.helpView()
	}
	return m.backend.Frame()
}
