package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// Menu rows, top to bottom.
const (
	menuRowMode = iota
	menuRowLevel
	menuRowDifficulty
	menuRowCount
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	menuDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// MenuSelection is what the player picked.
type MenuSelection struct {
	GameID     string
	StartLevel int                     // 1..config.MaxStartLevel
	Difficulty config.DifficultyPreset // "" keeps the configured values
}

// MenuModel is the Bubble Tea model for the start menu: pick a mode, a
// start level and a difficulty preset.
type MenuModel struct {
	modes     []registry.GameInfo
	presets   []config.DifficultyPreset
	best      map[string]int
	row       int
	modeIdx   int
	presetIdx int
	level     int

	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuSelection
	openScoreboard bool
}

// NewMenuModel creates a new menu model. store may be nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	modes := registry.List()
	best := make(map[string]int, len(modes))
	if store != nil {
		for _, g := range modes {
			if hs, err := store.HighScore(g.ID); err == nil {
				best[g.ID] = hs
			}
		}
	}

	return MenuModel{
		modes:     modes,
		presets:   append([]config.DifficultyPreset{""}, config.Presets()...),
		best:      best,
		level:     1,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.row > 0 {
			m.row--
		}

	case MenuActionDown:
		if m.row < menuRowCount-1 {
			m.row++
		}

	case MenuActionLeft:
		m.adjust(-1)

	case MenuActionRight:
		m.adjust(1)

	case MenuActionSelect:
		if len(m.modes) == 0 {
			return m, nil
		}
		m.selected = &MenuSelection{
			GameID:     m.modes[m.modeIdx].ID,
			StartLevel: m.level,
			Difficulty: m.presets[m.presetIdx],
		}
		return m, tea.Quit

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// adjust changes the value on the current row, wrapping mode and preset.
func (m *MenuModel) adjust(delta int) {
	switch m.row {
	case menuRowMode:
		if n := len(m.modes); n > 0 {
			m.modeIdx = (m.modeIdx + delta + n) % n
		}
	case menuRowLevel:
		m.level = core.Clamp(m.level+delta, 1, config.MaxStartLevel)
	case menuRowDifficulty:
		n := len(m.presets)
		m.presetIdx = (m.presetIdx + delta + n) % n
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("T E T R I S"), m.width))
	b.WriteString("\n\n")

	if len(m.modes) == 0 {
		b.WriteString(centerText("No game modes registered", m.width))
		b.WriteString("\n")
		return b.String()
	}

	mode := m.modes[m.modeIdx]
	preset := string(m.presets[m.presetIdx])
	if preset == "" {
		preset = "config"
	}

	rows := [menuRowCount]string{
		menuRowMode:       fmt.Sprintf("Mode:        < %s >", mode.Title),
		menuRowLevel:      fmt.Sprintf("Start level: < %d >", m.level),
		menuRowDifficulty: fmt.Sprintf("Difficulty:  < %s >", preset),
	}
	for i, row := range rows {
		line := "  " + row
		if i == m.row {
			line = menuSelectedStyle.Render("> " + row)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if hs := m.best[mode.ID]; hs > 0 {
		b.WriteString(centerText(fmt.Sprintf("Best: %d", hs), m.width))
	} else {
		b.WriteString(centerText(menuDimStyle.Render("No scores yet"), m.width))
	}
	b.WriteString("\n\n")

	controls := "Up/Down: Row  |  Left/Right: Change  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuDimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the player's choice, or nil if none was made.
func (m MenuModel) Selected() *MenuSelection {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within width, measuring printable cells only.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Selection       *MenuSelection
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(store, cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting() || m.Selected() == nil:
		result.Quit = true
	default:
		result.Selection = m.Selected()
	}
	return result, nil
}
