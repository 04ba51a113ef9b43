package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/ultimaconsole/internal/entity"
	"github.com/samdwyer/ultimaconsole/internal/game"
	"github.com/samdwyer/ultimaconsole/internal/gamedata"
	"github.com/samdwyer/ultimaconsole/internal/world"
)

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	playerStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws a snapshot into the panels of layout.
func (r *Renderer) Render(snap game.Snapshot, layout Layout) {
	r.screen.Clear()

	r.renderMap(snap, layout.Map)
	r.renderStats(snap.Stats, layout.Stats)
	r.renderInventory(snap.Inventory, layout.Inventory)
	r.renderLog(snap.RecentLog, layout.Log)

	r.screen.Show()
}

func (r *Renderer) renderMap(snap game.Snapshot, panel Rect) {
	r.screen.DrawBox(panel, "Map", borderStyle)
	inner := panel.Inner()
	overlay := snap.Overlay()

	for y, row := range snap.Grid {
		if y >= inner.Height {
			break
		}
		for x, ch := range row {
			if x >= inner.Width {
				break
			}
			style := tileStyle(ch)
			if m, ok := overlay[entity.Position{X: x, Y: y}]; ok {
				if m.Glyph != 0 {
					ch = m.Glyph
				}
				if c, err := gamedata.ParseHexColor(m.Color); err == nil {
					style = style.Foreground(c)
				}
			}
			r.screen.SetContent(inner.X+x, inner.Y+y, ch, style)
		}
	}
}

// tileStyle returns the default style for a grid glyph.
func tileStyle(ch rune) tcell.Style {
	switch ch {
	case world.GlyphPlayer:
		return playerStyle
	case world.GlyphNPC:
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	case world.GlyphObstacle:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case world.GlyphItem:
		return tcell.StyleDefault.Foreground(tcell.ColorAqua)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	}
}

func (r *Renderer) renderStats(s game.Stats, panel Rect) {
	r.screen.DrawBox(panel, "Stats", borderStyle)
	inner := panel.Inner()
	lines := []string{
		s.Name,
		fmt.Sprintf("Level: %d", s.Level),
		fmt.Sprintf("XP: %d/%d", s.Experience, s.NextLevel),
		fmt.Sprintf("Health: %d", s.Health),
		fmt.Sprintf("Mana: %d", s.Mana),
		fmt.Sprintf("Str %d  Agi %d  Cha %d", s.Strength, s.Agility, s.Charisma),
		fmt.Sprintf("Status: %s", s.Status),
	}
	r.drawLines(inner, lines)
}

func (r *Renderer) renderInventory(items []entity.Item, panel Rect) {
	r.screen.DrawBox(panel, "Inventory", borderStyle)
	inner := panel.Inner()
	if len(items) == 0 {
		r.drawLines(inner, []string{"(empty)"})
		return
	}
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = fmt.Sprintf("%d. %s (%d)", i+1, it.Name, it.Value)
	}
	r.drawLines(inner, lines)
}

// renderLog shows the newest lines that fit.
func (r *Renderer) renderLog(log []string, panel Rect) {
	r.screen.DrawBox(panel, "Log", borderStyle)
	inner := panel.Inner()
	if over := len(log) - inner.Height; over > 0 {
		log = log[over:]
	}
	r.drawLines(inner, log)
}

func (r *Renderer) drawLines(area Rect, lines []string) {
	for i, line := range lines {
		if i >= area.Height {
			return
		}
		r.screen.DrawText(area.X, area.Y+i, area.Width, line, textStyle)
	}
}
