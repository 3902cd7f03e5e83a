package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// Layout around the board: title and stats above, status line below.
const (
	hudLines    = 2
	statusLines = 1
	panelWidth  = BoardWidth
	panelHeight = hudLines + BoardHeight + statusLines
)

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       *t2048.Game
	screen     *core.Screen
	canvas     *screenCanvas
	keys       *KeyMapper
	help       help.Model
	styles     styleCache
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	width      int
	height     int
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *t2048.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	screen := core.NewScreen(panelWidth, panelHeight)
	h := help.New()
	h.ShowAll = false

	return Model{
		game:       game,
		screen:     screen,
		canvas:     &screenCanvas{screen: screen, originY: hudLines},
		keys:       NewKeyMapper(DefaultKeyMap()),
		help:       h,
		styles:     make(styleCache),
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	// Initialize the game
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Actions are queued and applied on the
// next tick, except quit which takes effect at once.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.IsHelp(msg) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		result := m.game.Step(m.inputFrame, 0)
		m.inputFrame.Clear()
		m.gameState = result.State
		if m.gameState.Quit {
			m.quitting = true
			m.logger.Info("quit", "moves", m.gameState.Moves, "max", m.gameState.MaxTile)
			return m, tea.Quit
		}
	}
	return m, nil
}

// handleResize records the terminal size. The game keeps its state.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.logger.Debug("resize", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick runs one game frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// TooSmall reports whether the terminal cannot fit the board and help line.
func (m Model) TooSmall() bool {
	if m.width == 0 && m.height == 0 {
		return false
	}
	return m.width < panelWidth || m.height < panelHeight+1
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.TooSmall() {
		msg := fmt.Sprintf("Terminal too small\nneed %dx%d, have %dx%d", panelWidth, panelHeight+1, m.width, m.height)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
	}

	m.drawPanel()
	content := lipgloss.JoinVertical(lipgloss.Center,
		renderScreen(m.screen, m.styles),
		m.help.View(m.keys.Keys()),
	)
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// drawPanel draws the HUD, the board and the status line into the screen.
func (m Model) drawPanel() {
	m.screen.Clear()
	palette := m.game.Palette()

	m.screen.DrawTextColored(0, 0, "2048", palette.Outline)
	stats := fmt.Sprintf("max %d  moves %d", m.gameState.MaxTile, m.gameState.Moves)
	m.screen.DrawText(panelWidth-len(stats), 0, stats)

	m.game.Draw(m.canvas)

	status := "join the tiles"
	if m.gameState.Stuck {
		status = "no moves left, press r to restart"
	}
	m.screen.DrawTextColored((panelWidth-len(status))/2, panelHeight-1, status, palette.Font)
}

// Run starts the Bubble Tea program with the given game.
func Run(game *t2048.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
