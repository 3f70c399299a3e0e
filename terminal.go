package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Terminal color palette, matching the CSS in dashboard.html.
const (
	colorOK     = lipgloss.Color("#34D399")
	colorAlert  = lipgloss.Color("#F87171")
	colorWeb    = lipgloss.Color("#60A5FA")
	colorWAS    = lipgloss.Color("#FBBF24")
	colorText   = lipgloss.Color("#F1F5F9")
	colorMuted  = lipgloss.Color("#94A3B8")
	colorFaint  = lipgloss.Color("#64748B")
	colorBorder = lipgloss.Color("#334155")
)

const terminalCardWidth = 56

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(colorFaint)
	labelStyle = lipgloss.NewStyle().Foreground(colorMuted)
	valueStyle = lipgloss.NewStyle().Foreground(colorText)
	arrowStyle = lipgloss.NewStyle().Foreground(colorFaint)

	terminalCardStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorBorder).
				Padding(0, 1).
				Width(terminalCardWidth)
)

func toneColor(t Tone) lipgloss.Color {
	switch t {
	case ToneOK, ToneDB:
		return colorOK
	case ToneAlert:
		return colorAlert
	case ToneWeb:
		return colorWeb
	case ToneWAS:
		return colorWAS
	default:
		return colorText
	}
}

func renderBadge(b Badge) string {
	return lipgloss.NewStyle().Foreground(toneColor(b.Tone)).Bold(true).Render("● " + b.Text)
}

func renderDiagram(nodes []Node) string {
	parts := make([]string, 0, 2*len(nodes))
	for i, n := range nodes {
		if i > 0 {
			parts = append(parts, arrowStyle.Render(" ──▶ "))
		}
		parts = append(parts, lipgloss.NewStyle().Foreground(toneColor(n.Tone)).Bold(true).Render(n.Label))
	}
	return strings.Join(parts, "")
}

func renderTerminalCard(c Card) string {
	inner := terminalCardWidth - 2

	title := lipgloss.NewStyle().Foreground(toneColor(c.Tone)).Bold(true).Render(c.Title)
	head := title + mutedStyle.Render("  "+c.Subtitle)
	if c.Badge != nil {
		badge := renderBadge(*c.Badge)
		if gap := inner - lipgloss.Width(head) - lipgloss.Width(badge); gap > 0 {
			head += strings.Repeat(" ", gap)
		} else {
			head += " "
		}
		head += badge
	}

	lines := []string{head, ""}
	for _, r := range c.Rows {
		style := valueStyle
		if r.Tone != "" {
			style = style.Foreground(toneColor(r.Tone))
		}
		lines = append(lines, labelStyle.Width(16).Render(r.Label)+style.Render(r.Value))
	}
	return terminalCardStyle.Render(strings.Join(lines, "\n"))
}

// renderTerminal draws v for a terminal. Colors degrade to plain text when
// stdout is not a TTY.
func renderTerminal(v View) string {
	var b strings.Builder

	b.WriteString(renderBadge(v.Banner))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(v.Title))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(v.Subtitle))
	b.WriteString("\n\n")
	b.WriteString(renderDiagram(v.Nodes))
	b.WriteString("\n\n")
	for _, c := range v.Cards {
		b.WriteString(renderTerminalCard(c))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(v.Note))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Last checked: " + v.Timestamp))
	b.WriteString("\n")
	return b.String()
}
