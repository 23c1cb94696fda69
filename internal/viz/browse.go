package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/invdyn/internal/analysis"
	"github.com/san-kum/invdyn/internal/mdp"
)

// Browser pages through the pairs of a dynamics table.
type Browser struct {
	title   string
	dyn     mdp.Dynamics
	pairs   []mdp.Pair
	reports []analysis.PairReport
	cursor  int
	theme   int
	styles  Styles

	width  int
	height int
}

func NewBrowser(title string, dyn mdp.Dynamics) *Browser {
	return &Browser{
		title:   title,
		dyn:     dyn,
		pairs:   dyn.Pairs(),
		reports: analysis.Truncation(dyn),
		styles:  NewStyles(Themes[0]),
		width:   80,
		height:  24,
	}
}

// Selected returns the pair under the cursor. ok is false for an empty table.
func (b *Browser) Selected() (mdp.Pair, bool) {
	if len(b.pairs) == 0 {
		return mdp.Pair{}, false
	}
	return b.pairs[b.cursor], true
}

func (b *Browser) Init() tea.Cmd { return nil }

func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return b.handleKey(msg)
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
	}
	return b, nil
}

func (b *Browser) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return b, tea.Quit
	case "up", "k":
		if b.cursor > 0 {
			b.cursor--
		}
	case "down", "j":
		if b.cursor < len(b.pairs)-1 {
			b.cursor++
		}
	case "left", "h":
		b.jumpState(-1)
	case "right", "l":
		b.jumpState(1)
	case "home", "g":
		b.cursor = 0
	case "end", "G":
		b.cursor = max(0, len(b.pairs)-1)
	case "t":
		b.theme = (b.theme + 1) % len(Themes)
		b.styles = NewStyles(Themes[b.theme])
	}
	return b, nil
}

// jumpState moves to the first pair of the neighbouring state in direction dir.
func (b *Browser) jumpState(dir int) {
	cur, ok := b.Selected()
	if !ok {
		return
	}
	i := b.cursor
	for i >= 0 && i < len(b.pairs) && b.pairs[i].State == cur.State {
		i += dir
	}
	if i < 0 || i >= len(b.pairs) {
		return
	}
	target := b.pairs[i].State
	for i > 0 && b.pairs[i-1].State == target {
		i--
	}
	b.cursor = i
}

func (b *Browser) View() string {
	st := b.styles
	var sb strings.Builder

	sb.WriteString(st.Title.Render("invdyn  " + b.title))
	sb.WriteString("\n\n")

	pair, ok := b.Selected()
	if !ok {
		sb.WriteString(st.Muted.Render("no admissible (state, action) pairs"))
		sb.WriteString("\n\n")
		sb.WriteString(st.Muted.Render("q quit"))
		return sb.String()
	}

	retained := make([]float64, len(b.reports))
	for i, r := range b.reports {
		retained[i] = r.Retained
	}
	sb.WriteString(st.Label.Render("retained "))
	sb.WriteString(Sparkline(retained))
	sb.WriteString("\n")
	sb.WriteString(st.Label.Render(fmt.Sprintf("pair %d/%d", b.cursor+1, len(b.pairs))))
	sb.WriteString("\n\n")

	sb.WriteString(RenderPair(st, pair, b.dyn[pair]))
	sb.WriteString("\n\n")
	sb.WriteString(st.Muted.Render(fmt.Sprintf("↑/↓ pair  ←/→ state  t theme (%s)  q quit", Themes[b.theme].Name)))
	return sb.String()
}

// RunBrowser starts the interactive browser on the alternate screen.
func RunBrowser(title string, dyn mdp.Dynamics, theme Theme) error {
	b := NewBrowser(title, dyn)
	for i, t := range Themes {
		if t.Name == theme.Name {
			b.theme = i
			b.styles = NewStyles(t)
		}
	}
	p := tea.NewProgram(b, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
