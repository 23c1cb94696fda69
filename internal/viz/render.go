package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/san-kum/invdyn/internal/analysis"
	"github.com/san-kum/invdyn/internal/mdp"
)

// RenderPair renders the outcomes of one pair, highest next state first,
// with the implied demand and the running probability mass.
func RenderPair(st Styles, pair mdp.Pair, trans mdp.Transitions) string {
	oul := pair.State + pair.Action

	rows := make([][]string, 0, len(trans))
	cum := 0.0
	for _, o := range trans.Outcomes() {
		p := trans[o]
		cum += p
		rows = append(rows, []string{
			fmt.Sprint(oul - o.Next),
			fmt.Sprint(o.Next),
			fmt.Sprintf("%g", o.Reward),
			fmt.Sprintf("%.6f", p),
			fmt.Sprintf("%.6f", cum),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(st.Label).
		Headers("DEMAND", "NEXT", "REWARD", "PROB", "CUM").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return st.Title.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	rep := analysis.ReportPair(pair, trans)
	var b strings.Builder
	b.WriteString(st.Title.Render(fmt.Sprintf("pair s=%d a=%d", pair.State, pair.Action)))
	b.WriteString(st.Label.Render(fmt.Sprintf("  order-up-to %d", oul)))
	b.WriteString("\n")
	b.WriteString(t.String())
	b.WriteString("\n")
	b.WriteString(st.Label.Render("retained "))
	b.WriteString(st.MassBar(rep.Retained, 20))
	b.WriteString(st.Value.Render(fmt.Sprintf(" %.4f", rep.Retained)))
	b.WriteString(st.Label.Render(fmt.Sprintf("  E[r]=%.4f  E[s']=%.4f", rep.ExpectedReward, rep.ExpectedNext)))
	return b.String()
}

func RenderSummary(st Styles, title string, sum analysis.Summary) string {
	lines := []string{
		st.Header.Render(title),
		field(st, "pairs", fmt.Sprint(sum.Pairs)),
		field(st, "outcomes", fmt.Sprint(sum.Outcomes)),
		field(st, "min retained", fmt.Sprintf("%.6f %s", sum.MinRetained, sum.Worst)),
		field(st, "mean dropped", fmt.Sprintf("%.6f", sum.MeanDropped)),
	}
	return st.Panel.Render(strings.Join(lines, "\n"))
}

func field(st Styles, label, value string) string {
	return st.Label.Render(fmt.Sprintf("%-13s", label)) + st.Value.Render(value)
}
