package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Sistema Level Up theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconSword   = "⚔️"
	IconSparkle = "✨"
	IconFire    = "🔥"
	IconTrophy  = "🏆"
	IconBolt    = "⚡"
	IconShield  = "🛡️"
	IconTarget  = "🎯"
	IconNote    = "📝"
	IconChart   = "📈"
	IconCrown   = "👑"
	IconHeart   = "💔"
	IconRocket  = "🚀"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconDone    = "✅"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
	cPurple  = lipgloss.Color("129") // purple
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
	BadgeRankUp  = lipgloss.NewStyle().Bold(true).Foreground(cPurple).Render("RANK UP")
)

var rankStyles = map[string]lipgloss.Style{
	"E":              Muted,
	"D":              lipgloss.NewStyle().Bold(true).Foreground(cPrimary),
	"C":              Good,
	"B":              Gold,
	"A":              Warn,
	"S":              Bad,
	"SHADOW_MONARCH": lipgloss.NewStyle().Bold(true).Foreground(cPurple),
}

// RankStyle returns the style for a rank tier, falling back to Muted.
func RankStyle(rank string) lipgloss.Style {
	if s, ok := rankStyles[rank]; ok {
		return s
	}
	return Muted
}

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// XPBar renders a fixed-width progress bar like [████░░░░░░].
func XPBar(current, target, width int) string {
	if width < 1 {
		width = 10
	}
	filled := 0
	if target > 0 {
		filled = current * width / target
	}
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + Gold.Render(strings.Repeat("█", filled)) + Muted.Render(strings.Repeat("░", width-filled)) + "]"
}

func MissionIcon(tag string) string {
	switch tag {
	case "sunrise":
		return "🌅"
	case "dumbbell":
		return "🏋️"
	case "apple":
		return "🍎"
	case "book":
		return "📖"
	case "brain":
		return "🧠"
	case "home":
		return "🏠"
	case "target":
		return "🎯"
	default:
		return IconSword
	}
}
