package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// footerHeight is the number of rows below the game screen.
const footerHeight = 1

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configures a game Model.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Store   *storage.Store // Optional; scores are not recorded when nil
	Logger  *log.Logger    // Optional; events are discarded when nil
	Player  string         // Recorded with scores; empty means local
}

// Model is the Bubble Tea model for one 2048 game.
type Model struct {
	game       *t2048.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	player     string
	config     core.RuntimeConfig
	keys       GameKeyMap
	help       help.Model
	swipe      SwipeTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	highScore  int
	quitting   bool
	scoreSaved bool // Whether the current game's score has been recorded
}

// NewModel creates a new Bubble Tea model.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = opts.Config.Display.TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       t2048.New(opts.Config),
		screen:     core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		store:      opts.Store,
		logger:     logger,
		player:     opts.Player,
		config:     cfg,
		keys:       DefaultGameKeyMap(),
		help:       help.New(),
		swipe:      NewSwipeTracker(opts.Config.Input),
		inputFrame: core.NewInputFrame(),
	}
	m.help.Width = cfg.ScreenW

	if m.store != nil {
		high, err := m.store.HighScore(m.game.ID())
		if err != nil {
			logger.Warn("could not load high score", "error", err)
		}
		m.highScore = high
	}

	return m
}

func gameHeight(h int) int {
	return max(h-footerHeight, 0)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	gameCfg := m.config
	gameCfg.ScreenH = gameHeight(gameCfg.ScreenH)
	m.game.Reset(gameCfg)
	m.logger.Info("game started", "seed", m.config.Seed, "player", m.playerName())

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if g, ok := m.swipe.Track(msg); ok {
			m.inputFrame.AddGesture(g)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("game quit", "score", m.gameState.Score, "max_tile", m.gameState.MaxTile)
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize updates the screen size. The game in progress is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameHeight(msg.Height))
	m.game.Resize(msg.Width, gameHeight(msg.Height))
	m.help.Width = msg.Width
	m.swipe.Cancel()

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// A restart abandons the current game; keep its score
	if m.inputFrame.Has(core.ActionRestart) {
		m.recordScore()
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, ev := range result.Events {
		if ev.Kind == core.EventNewGame {
			m.scoreSaved = false
		}
		m.logEvent(ev)
	}

	if m.gameState.GameOver {
		m.recordScore()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordScore saves the current score once per game. Zero scores are
// not recorded.
func (m *Model) recordScore() {
	if m.scoreSaved || m.gameState.Score == 0 {
		return
	}
	m.scoreSaved = true

	if m.gameState.Score > m.highScore {
		m.highScore = m.gameState.Score
	}
	if m.store == nil {
		return
	}

	_, err := m.store.SaveScore(storage.ScoreEntry{
		GameID:  m.game.ID(),
		Player:  m.player,
		Score:   m.gameState.Score,
		MaxTile: m.gameState.MaxTile,
	})
	if err != nil {
		m.logger.Warn("could not save score", "error", err)
		return
	}
	m.logger.Info("score saved", "score", m.gameState.Score, "max_tile", m.gameState.MaxTile)
}

func (m Model) logEvent(ev core.Event) {
	switch ev.Kind {
	case core.EventMove:
		m.logger.Debug(ev.Kind.String(), "direction", ev.Direction, "score_delta", ev.ScoreDelta)
	case core.EventSpawn:
		m.logger.Debug(ev.Kind.String(), "value", ev.Value, "row", ev.Row, "col", ev.Col)
	case core.EventNewGame:
		m.logger.Debug(ev.Kind.String())
	case core.EventGameOver:
		m.logger.Info("game over", "score", m.gameState.Score, "max_tile", m.gameState.MaxTile)
	}
}

func (m Model) playerName() string {
	if m.player == "" {
		return storage.LocalPlayer
	}
	return m.player
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".tui-2048", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := fmt.Sprintf("Best: %d  %s", m.highScore, m.help.View(m.keys))
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(footer)
}

// Score returns the current score.
func (m Model) Score() int {
	return m.gameState.Score
}

// HighScore returns the best recorded score, including the current game
// once it has been recorded.
func (m Model) HighScore() int {
	return m.highScore
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Press/release pairs become swipes
	)

	_, err := p.Run()
	return err
}
