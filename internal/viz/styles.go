package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles are the lipgloss styles derived from a Theme.
type Styles struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Panel  lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Muted  lipgloss.Style
	Cursor lipgloss.Style
	Good   lipgloss.Style
	Warn   lipgloss.Style
	Bad    lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Text).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Border),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		Label:  lipgloss.NewStyle().Foreground(t.Muted),
		Value:  lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Muted:  lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		Cursor: lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		Good:   lipgloss.NewStyle().Foreground(t.Good),
		Warn:   lipgloss.NewStyle().Foreground(t.Warning),
		Bad:    lipgloss.NewStyle().Foreground(t.Bad),
	}
}

// MassBar renders a probability in [0, 1] as a colored bar of the given width.
func (s Styles) MassBar(p float64, width int) string {
	filled := int(p*float64(width) + 0.5)
	filled = max(0, min(width, filled))

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	switch {
	case p > 0.95:
		return s.Good.Render(bar)
	case p > 0.8:
		return s.Warn.Render(bar)
	default:
		return s.Bad.Render(bar)
	}
}

// Sparkline renders values scaled between their min and max.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	rng := hi - lo
	if rng == 0 {
		rng = 1
	}

	var b strings.Builder
	for _, v := range values {
		idx := int((v - lo) / rng * float64(len(chars)-1))
		b.WriteRune(chars[max(0, min(len(chars)-1, idx))])
	}
	return b.String()
}
