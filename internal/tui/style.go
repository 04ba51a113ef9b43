package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/samdwyer/ultimaconsole/internal/world"
)

// Styles used throughout the TUI.
var (
	stylePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	styleTitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228")).
			Bold(true)

	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	stylePlayer = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Bold(true)

	styleNPC = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	styleWall = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	styleItem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51"))

	styleFloor = lipgloss.NewStyle().
			Foreground(lipgloss.Color("236"))

	styleText = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleDialogue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228"))

	styleCombat = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	styleReward = lipgloss.NewStyle().
			Foreground(lipgloss.Color("78")).
			Bold(true)

	styleRefused = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

// lineKind identifies the type of a log line for styling.
type lineKind int

const (
	kindText lineKind = iota
	kindDialogue
	kindCombat
	kindReward
	kindRefused
)

// classifyLine determines what kind of log line this is.
func classifyLine(line string) lineKind {
	switch {
	case strings.Contains(line, `: "`):
		return kindDialogue
	case strings.Contains(line, "damage") || strings.Contains(line, "defeated") || strings.HasPrefix(line, "You attack"):
		return kindCombat
	case strings.HasPrefix(line, "Congratulations") ||
		strings.HasPrefix(line, "Quest started") ||
		strings.HasPrefix(line, "You gained"):
		return kindReward
	case strings.HasPrefix(line, "You can't") ||
		strings.HasPrefix(line, "There is no") ||
		strings.HasPrefix(line, "You don't"):
		return kindRefused
	default:
		return kindText
	}
}

// renderLine applies the style for a line's kind.
func renderLine(line string) string {
	switch classifyLine(line) {
	case kindDialogue:
		return styleDialogue.Render(line)
	case kindCombat:
		return styleCombat.Render(line)
	case kindReward:
		return styleReward.Render(line)
	case kindRefused:
		return styleRefused.Render(line)
	default:
		return styleText.Render(line)
	}
}

// glyphStyle returns the style for a map glyph.
func glyphStyle(ch rune) lipgloss.Style {
	switch ch {
	case world.GlyphPlayer:
		return stylePlayer
	case world.GlyphNPC:
		return styleNPC
	case world.GlyphObstacle:
		return styleWall
	case world.GlyphItem:
		return styleItem
	default:
		return styleFloor
	}
}
