// Package tui provides the Bubble Tea interface for playing Yahtzee in
// the terminal, locally or over SSH.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-yahtzee/internal/dice"
	"github.com/vovakirdan/tui-yahtzee/internal/game"
	"github.com/vovakirdan/tui-yahtzee/internal/rules"
	"github.com/vovakirdan/tui-yahtzee/internal/storage"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	dieStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	heldDieStyle = dieStyle.
			BorderForeground(lipgloss.Color("229")).
			Bold(true)
	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))
	filledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
	potentialStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// PlayModel is the Bubble Tea model for one game of Yahtzee.
type PlayModel struct {
	registry *rules.Registry
	game     *game.Game
	store    *storage.Store
	keys     PlayKeyMap
	help     help.Model

	cursor   int // index into the category list
	width    int
	height   int
	message  string // transient status/error line
	saved    bool   // result persisted for the current game over
	quitting bool
}

// NewPlayModel creates a model for a fresh game. A nil store disables
// result persistence.
func NewPlayModel(reg *rules.Registry, store *storage.Store, seed int64) PlayModel {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	h := help.New()
	return PlayModel{
		registry: reg,
		game:     game.New(reg, seed),
		store:    store,
		keys:     DefaultPlayKeyMap(),
		help:     h,
	}
}

// Init initializes the model.
func (m PlayModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.message = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.NewGame):
		if m.game.Over() {
			m.game = game.New(m.registry, time.Now().UnixNano())
			m.cursor = 0
			m.saved = false
		}
		return m, nil

	case key.Matches(msg, m.keys.Roll):
		if err := m.game.Roll(); err != nil {
			m.message = err.Error()
		}
		return m, nil

	case key.Matches(msg, m.keys.Hold):
		// Keys "1".."5" address dice left to right.
		i := int(msg.String()[0] - '1')
		if err := m.game.ToggleHold(i); err != nil {
			m.message = err.Error()
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.Choose):
		return m.choose()
	}

	return m, nil
}

// moveCursor moves the category cursor, skipping filled slots.
func (m *PlayModel) moveCursor(delta int) {
	card := m.game.Card()
	if card.TurnsLeft() == 0 {
		return
	}
	cur := m.cursor
	for i := 0; i < rules.NumCategories; i++ {
		cur = (cur + delta + rules.NumCategories) % rules.NumCategories
		if !card.Filled(rules.Category(cur)) {
			m.cursor = cur
			return
		}
	}
}

// choose scores the current roll under the highlighted category.
func (m PlayModel) choose() (tea.Model, tea.Cmd) {
	cat := rules.Category(m.cursor)
	score, err := m.game.Choose(cat)
	if err != nil {
		m.message = err.Error()
		return m, nil
	}
	m.message = fmt.Sprintf("%s: %d points", cat.Title(), score)

	if m.game.Over() {
		m.saveResult()
	} else {
		m.moveCursor(1)
	}
	return m, nil
}

// saveResult persists the finished game (once, best effort).
func (m *PlayModel) saveResult() {
	if m.saved || m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, the sheet is still on screen
	m.store.SaveGame(storage.ResultFromCard(m.game.Card()))
	m.saved = true
}

// View renders the game screen.
func (m PlayModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("YAHTZEE"))
	b.WriteString(fmt.Sprintf("  Turn %d/13", min(m.game.Turn(), 13)))
	b.WriteString("\n\n")

	b.WriteString(m.renderDice())
	b.WriteString("\n")
	b.WriteString(m.renderSheet())
	b.WriteString("\n")

	if m.game.Over() {
		b.WriteString(titleStyle.Render(fmt.Sprintf("Game over! Final score: %d", m.game.Card().Total())))
		b.WriteString("  Press n for a new game.\n")
	} else if m.message != "" {
		b.WriteString(errStyle.Render(m.message))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderDice draws the five dice with hold markers.
func (m PlayModel) renderDice() string {
	if m.game.RollsUsed() == 0 {
		return fmt.Sprintf("Press r to roll. Rolls left: %d\n", m.game.RollsLeft())
	}

	roll := m.game.Dice()
	held := m.game.Held()
	boxes := make([]string, 0, dice.Count)
	for i, v := range roll {
		style := dieStyle
		if held[i] {
			style = heldDieStyle
		}
		boxes = append(boxes, style.Render(fmt.Sprintf("%d", v)))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
	marks := make([]string, 0, dice.Count)
	for i := range roll {
		if held[i] {
			marks = append(marks, " held")
		} else {
			marks = append(marks, "     ")
		}
	}

	return row + "\n" + strings.Join(marks, "") +
		fmt.Sprintf("\nRolls left: %d\n", m.game.RollsLeft())
}

// renderSheet draws the score sheet with potential scores for the
// current roll next to the open categories.
func (m PlayModel) renderSheet() string {
	card := m.game.Card()
	rolled := m.game.RollsUsed() > 0

	var pot [rules.NumCategories]int
	if rolled {
		pot = m.game.Potential()
	}

	var b strings.Builder
	for _, cat := range rules.Categories() {
		line := fmt.Sprintf("%-16s", cat.Title())
		switch {
		case card.Filled(cat):
			line += fmt.Sprintf("%4d", card.Score(cat))
			b.WriteString("  " + filledStyle.Render(line))
		case rolled:
			line += potentialStyle.Render(fmt.Sprintf("%4d?", pot[cat]))
			if int(cat) == m.cursor && !m.game.Over() {
				b.WriteString(cursorStyle.Render("> ") + line)
			} else {
				b.WriteString("  " + line)
			}
		default:
			line += "   -"
			if int(cat) == m.cursor && !m.game.Over() {
				b.WriteString(cursorStyle.Render("> ") + line)
			} else {
				b.WriteString("  " + line)
			}
		}
		b.WriteString("\n")

		// Separator between the sections
		if cat == rules.Sixes {
			b.WriteString(fmt.Sprintf("  %-16s%4d  (bonus %d)\n",
				"Upper total", card.UpperTotal(), card.UpperBonus()))
			b.WriteString("  " + strings.Repeat("-", 24) + "\n")
		}
	}

	b.WriteString("  " + strings.Repeat("-", 24) + "\n")
	b.WriteString(titleStyle.Render(fmt.Sprintf("  %-16s%4d", "Total", card.Total())))
	b.WriteString("\n")
	return b.String()
}

// Run starts the Bubble Tea program for a local game.
func Run(reg *rules.Registry, store *storage.Store, seed int64) error {
	model := NewPlayModel(reg, store, seed)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
