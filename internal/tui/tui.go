package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/samdwyer/ultimaconsole/internal/entity"
	"github.com/samdwyer/ultimaconsole/internal/game"
)

// Engine is the game as seen by a frontend.
type Engine interface {
	Do(ctx context.Context, cmd game.Command) (game.Outcome, error)
	Snapshot(ctx context.Context) (game.Snapshot, error)
	Resize(ctx context.Context, frameWidth, frameHeight int) error
}

// Model is the Bubble Tea model for the game.
type Model struct {
	ctx    context.Context
	engine Engine
	keys   keyMap

	viewport viewport.Model
	snap     game.Snapshot
	lines    []string // every log line seen this session, for scrollback

	width    int
	height   int
	ready    bool
	quitting bool
	err      error
}

// New creates a TUI model wired to the given engine.
func New(ctx context.Context, engine Engine) Model {
	m := Model{ctx: ctx, engine: engine, keys: defaultKeyMap()}
	m.snap, m.err = engine.Snapshot(ctx)
	m.lines = append(m.lines, m.snap.RecentLog...)
	return m
}

// Run starts the Bubble Tea program and blocks until the player quits or
// ctx is cancelled.
func Run(ctx context.Context, engine Engine) error {
	p := tea.NewProgram(New(ctx, engine), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		return m.err
	}
	return nil
}

// Err returns the engine error that ended the program, if any.
func (m Model) Err() error { return m.err }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.err != nil {
		return tea.Quit
	}
	return nil
}

// Update handles key presses and window resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		mapWidth, mapHeight := m.mapFrame()
		// The panel title takes one row of the frame.
		if err := m.engine.Resize(m.ctx, mapWidth, mapHeight-1); err != nil && !errors.Is(err, game.ErrFrameTooSmall) {
			return m.fail(err)
		}
		m = m.refresh(nil)

		logHeight := max(m.height-mapHeight-3, 1) // border + status bar
		if !m.ready {
			m.viewport = viewport.New(m.width-2, logHeight)
			m.viewport.KeyMap = viewportKeyMap()
			m.ready = true
		} else {
			m.viewport.Width = m.width - 2
			m.viewport.Height = logHeight
		}
		m.refreshViewport()

	case tea.KeyMsg:
		vk := m.viewport.KeyMap
		if key.Matches(msg, vk.PageUp, vk.PageDown, vk.HalfPageUp, vk.HalfPageDown) {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

		cmd, ok := m.keys.command(msg, m.snap.InventoryNames())
		if !ok {
			return m, nil
		}
		out, err := m.engine.Do(m.ctx, cmd)
		if err != nil {
			return m.fail(err)
		}
		m = m.refresh(out.Lines)
		if out.Quit {
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// refresh takes a new snapshot and appends lines to the scrollback.
func (m Model) refresh(lines []string) Model {
	snap, err := m.engine.Snapshot(m.ctx)
	if err != nil {
		m.err = err
		return m
	}
	m.snap = snap
	m.lines = append(m.lines, lines...)
	m.refreshViewport()
	return m
}

func (m Model) fail(err error) (tea.Model, tea.Cmd) {
	if !errors.Is(err, context.Canceled) && !errors.Is(err, game.ErrActorStopped) {
		m.err = err
	}
	m.quitting = true
	return m, tea.Quit
}

func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	styled := make([]string, len(m.lines))
	for i, line := range m.lines {
		styled[i] = renderLine(line)
	}
	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.GotoBottom()
}

// mapFrame returns the outer size of the map panel: 70% of the width and
// 80% of the height.
func (m Model) mapFrame() (int, int) {
	return m.width * 7 / 10, m.height * 8 / 10
}

// View renders map and side panels on top, the log below and a status bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	mapWidth, mapHeight := m.mapFrame()
	sideWidth := m.width - mapWidth
	statsHeight := mapHeight / 2

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		panel("Map", renderGrid(m.snap), mapWidth, mapHeight),
		lipgloss.JoinVertical(lipgloss.Left,
			panel("Stats", renderStats(m.snap.Stats), sideWidth, statsHeight),
			panel("Inventory", renderInventory(m.snap.Inventory), sideWidth, mapHeight-statsHeight),
		),
	)
	log := stylePanel.Width(max(m.width-2, 0)).Render(m.viewport.View())

	return lipgloss.JoinVertical(lipgloss.Left, top, log, m.renderStatusBar())
}

// panel draws a bordered box of the given outer size with a title line.
func panel(title, body string, width, height int) string {
	content := styleTitle.Render(title) + "\n" + body
	return stylePanel.
		Width(max(width-2, 0)).
		Height(max(height-2, 0)).
		MaxHeight(max(height, 0)).
		Render(content)
}

// renderGrid colours each glyph of the snapshot grid, drawing catalogue
// symbols for NPCs and items.
func renderGrid(snap game.Snapshot) string {
	overlay := snap.Overlay()

	rows := make([]string, len(snap.Grid))
	for y, row := range snap.Grid {
		var b strings.Builder
		for x, ch := range row {
			style := glyphStyle(ch)
			if m, ok := overlay[entity.Position{X: x, Y: y}]; ok {
				if m.Glyph != 0 {
					ch = m.Glyph
				}
				if m.Color != "" {
					style = style.Foreground(lipgloss.Color(m.Color))
				}
			}
			b.WriteString(style.Render(string(ch)))
		}
		rows[y] = b.String()
	}
	return strings.Join(rows, "\n")
}

func renderStats(s game.Stats) string {
	return strings.Join([]string{
		s.Name,
		fmt.Sprintf("Level %d  XP %d/%d", s.Level, s.Experience, s.NextLevel),
		fmt.Sprintf("Health %d  Mana %d", s.Health, s.Mana),
		fmt.Sprintf("Str %d  Agi %d  Cha %d", s.Strength, s.Agility, s.Charisma),
		fmt.Sprintf("Status: %s", s.Status),
	}, "\n")
}

func renderInventory(items []entity.Item) string {
	if len(items) == 0 {
		return "(empty)"
	}
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = fmt.Sprintf("%d. %s (%d)", i+1, it.Name, it.Value)
	}
	return strings.Join(lines, "\n")
}

// renderStatusBar produces a full-width inverted line with the position
// and the key help.
func (m Model) renderStatusBar() string {
	left := fmt.Sprintf(" %s at %s", m.snap.Stats.Name, m.snap.Stats.Position)

	var help []string
	for _, b := range m.keys.help() {
		h := b.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	right := strings.Join(help, "  ") + " "

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		right = ""
		gap = max(m.width-lipgloss.Width(left), 0)
	}
	return styleStatusBar.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}
