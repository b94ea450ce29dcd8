package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hiromasa5450/tetlris/internal/tetris"
)

type Screen int

const (
	screenMenu Screen = iota
	screenGame
	screenThemes
	screenConfig
)

// tickMsg carries the sequence it was armed with. Only a tick matching the
// model's current sequence may advance the game, so at most one is live.
type tickMsg struct {
	seq int
}

type Model struct {
	screen       Screen
	width        int
	height       int
	menuIndex    int
	configIndex  int
	themeIndex   int
	config       Config
	seed         int64
	game         *tetris.Game
	tickSeq      int
	lastDelta    int
	lastEvent    string
	lastEventTil time.Time
}

func NewModel(config Config, seed int64) Model {
	config = normalizeConfig(config)
	return Model{
		screen:     screenMenu,
		config:     config,
		seed:       seed,
		themeIndex: themeIndexByName(config.Theme),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		return m, m.handleTick(msg)
	case tea.KeyMsg:
		switch m.screen {
		case screenMenu:
			return m, m.updateMenu(msg)
		case screenGame:
			return m, m.updateGame(msg)
		case screenThemes:
			return m, m.updateThemes(msg)
		case screenConfig:
			return m, m.updateConfig(msg)
		}
	}
	return m, nil
}

func (m Model) View() string {
	switch m.screen {
	case screenMenu:
		return viewMenu(m)
	case screenGame:
		return viewGame(m)
	case screenThemes:
		return viewThemes(m)
	case screenConfig:
		return viewConfig(m)
	default:
		return ""
	}
}

func tickCmd(seq int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg { return tickMsg{seq: seq} })
}

// armTick invalidates any tick in flight and schedules a fresh one.
func (m *Model) armTick() tea.Cmd {
	m.tickSeq++
	return tickCmd(m.tickSeq, m.game.DropInterval())
}

// handleTick runs one drop step and schedules the next only after it has
// completed. Paused or finished games leave the timer idle.
func (m *Model) handleTick(msg tickMsg) tea.Cmd {
	if msg.seq != m.tickSeq || m.screen != screenGame || m.game == nil {
		return nil
	}
	if m.game.State() != tetris.Running {
		return nil
	}
	result := m.game.Tick()
	m.applyLockResult(result)
	if m.game.IsGameOver() {
		return nil
	}
	return tickCmd(m.tickSeq, m.game.DropInterval())
}

func (m *Model) newGame() *tetris.Game {
	opts := tetris.DefaultOptions()
	opts.DropInterval = m.config.dropInterval()
	opts.InputWhilePaused = m.config.InputWhilePaused
	opts.Source = tetris.NewRandomSource(m.seed)
	opts.Listener = debugListener()
	game, err := tetris.NewGame(opts)
	if err != nil {
		DebugLogf("game options rejected, using defaults: %v", err)
		game, _ = tetris.NewGame(tetris.Options{Listener: debugListener()})
	}
	return game
}

func (m *Model) startGame() tea.Cmd {
	m.game = m.newGame()
	m.clearEvent()
	m.screen = screenGame
	DebugLogf("game start interval=%s inputWhilePaused=%v", m.game.DropInterval(), m.config.InputWhilePaused)
	return m.armTick()
}

func (m *Model) updateMenu(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if m.menuIndex > 0 {
			m.menuIndex--
		}
	case "down", "j":
		if m.menuIndex < len(menuItems)-1 {
			m.menuIndex++
		}
	case "enter":
		switch m.menuIndex {
		case 0:
			return m.startGame()
		case 1:
			m.screen = screenThemes
		case 2:
			m.screen = screenConfig
		case 3:
			return tea.Quit
		}
	case "q", "esc", "ctrl+c":
		return tea.Quit
	}
	return nil
}

func (m *Model) updateGame(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "left", "h":
		m.game.MoveLeft()
	case "right", "l":
		m.game.MoveRight()
	case "down", "j":
		m.game.MoveDown()
	case "up", "x":
		m.game.RotateClockwise()
	case "z":
		m.game.RotateCounterClockwise()
	case " ":
		m.applyLockResult(m.game.HardDrop())
	case "p":
		state := m.game.TogglePause()
		DebugLogf("pause toggled: %s", state)
		if state == tetris.Running {
			return m.armTick()
		}
	case "r":
		m.game.Restart()
		m.clearEvent()
		return m.armTick()
	case "q", "esc":
		m.tickSeq++
		m.screen = screenMenu
	case "ctrl+c":
		return tea.Quit
	}
	return nil
}

func (m *Model) updateThemes(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if m.themeIndex > 0 {
			m.themeIndex--
		}
	case "down", "j":
		if m.themeIndex < len(themes)-1 {
			m.themeIndex++
		}
	case "enter":
		m.config.Theme = themes[m.themeIndex].Name
		m.persistConfig()
		m.screen = screenMenu
	case "q", "esc":
		m.themeIndex = themeIndexByName(m.config.Theme)
		m.screen = screenMenu
	}
	return nil
}

func (m *Model) updateConfig(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if m.configIndex > 0 {
			m.configIndex--
		}
	case "down", "j":
		if m.configIndex < len(configItems)-1 {
			m.configIndex++
		}
	case "enter":
		switch m.configIndex {
		case 0:
			m.config.Shadow = !m.config.Shadow
		case 1:
			m.adjustScale(1)
		case 2:
			m.adjustDropInterval(-dropIntervalStepMS)
		case 3:
			m.config.InputWhilePaused = !m.config.InputWhilePaused
		}
		m.persistConfig()
	case "left", "h":
		m.adjustConfigValue(-1)
	case "right", "l":
		m.adjustConfigValue(1)
	case "q", "esc":
		m.screen = screenMenu
	}
	return nil
}

const dropIntervalStepMS = 50

func (m *Model) adjustConfigValue(dir int) {
	switch m.configIndex {
	case 1:
		m.adjustScale(dir)
	case 2:
		m.adjustDropInterval(dir * dropIntervalStepMS)
	default:
		return
	}
	m.persistConfig()
}

func (m *Model) adjustScale(delta int) {
	m.config.Scale = clampScale(m.config.Scale + delta)
}

func (m *Model) adjustDropInterval(deltaMS int) {
	ms := m.config.DropIntervalMS + deltaMS
	if ms < minDropIntervalMS {
		ms = maxDropIntervalMS
	} else if ms > maxDropIntervalMS {
		ms = minDropIntervalMS
	}
	m.config.DropIntervalMS = ms
}

func (m *Model) persistConfig() {
	if err := saveConfig(m.config); err != nil {
		DebugLogf("config save error: %v", err)
	}
}

var menuItems = []string{
	"Start Game",
	"Themes",
	"Config",
	"Quit",
}

var configItems = []string{
	"Shadow",
	"Game Scale",
	"Drop Interval",
	"Input While Paused",
}

func (m *Model) applyLockResult(result tetris.LockResult) {
	if result.ScoreDelta > 0 {
		m.lastDelta = result.ScoreDelta
		m.lastEvent = "LINE CLEAR"
		duration := 900 * time.Millisecond
		if len(result.ClearedRows) >= 4 {
			m.lastEvent = "TETRIS"
			duration = 1400 * time.Millisecond
		}
		m.lastEventTil = time.Now().Add(duration)
	}
	if result.GameOver {
		DebugLogf("game over score=%d lines=%d", m.game.Score(), m.game.Lines())
	}
}

func (m *Model) clearEvent() {
	m.lastDelta = 0
	m.lastEvent = ""
	m.lastEventTil = time.Time{}
}

func (m Model) eventLabel() (string, int) {
	if m.lastEventTil.IsZero() || time.Now().After(m.lastEventTil) {
		return "", 0
	}
	return m.lastEvent, m.lastDelta
}
