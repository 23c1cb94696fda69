package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/invdyn/internal/analysis"
	"github.com/san-kum/invdyn/internal/config"
	"github.com/san-kum/invdyn/internal/mdp"
)

type ExportData struct {
	Config  config.Config    `json:"config"`
	Summary analysis.Summary `json:"summary"`
	Pairs   []ExportPair     `json:"pairs"`
}

type ExportPair struct {
	State    int             `json:"state"`
	Action   int             `json:"action"`
	Outcomes []ExportOutcome `json:"outcomes"`
}

type ExportOutcome struct {
	NextState   int     `json:"next_state"`
	Reward      float64 `json:"reward"`
	Probability float64 `json:"probability"`
}

func NewExportData(cfg *config.Config, dyn mdp.Dynamics) ExportData {
	data := ExportData{
		Config:  *cfg,
		Summary: analysis.Summarize(dyn),
		Pairs:   make([]ExportPair, 0, len(dyn)),
	}

	for _, pair := range dyn.Pairs() {
		trans := dyn[pair]
		ep := ExportPair{
			State:    pair.State,
			Action:   pair.Action,
			Outcomes: make([]ExportOutcome, 0, len(trans)),
		}
		for _, o := range trans.Outcomes() {
			ep.Outcomes = append(ep.Outcomes, ExportOutcome{
				NextState:   o.Next,
				Reward:      o.Reward,
				Probability: trans[o],
			})
		}
		data.Pairs = append(data.Pairs, ep)
	}

	return data
}

func ExportJSON(path string, cfg *config.Config, dyn mdp.Dynamics) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteJSON(file, cfg, dyn)
}

func ExportJSONStdout(cfg *config.Config, dyn mdp.Dynamics) error {
	return WriteJSON(os.Stdout, cfg, dyn)
}

func WriteJSON(w io.Writer, cfg *config.Config, dyn mdp.Dynamics) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewExportData(cfg, dyn))
}

// Dynamics rebuilds the table from exported data.
func (e ExportData) Dynamics() mdp.Dynamics {
	dyn := make(mdp.Dynamics, len(e.Pairs))
	for _, ep := range e.Pairs {
		trans := make(mdp.Transitions, len(ep.Outcomes))
		for _, o := range ep.Outcomes {
			trans[mdp.Outcome{Next: o.NextState, Reward: o.Reward}] = o.Probability
		}
		dyn[mdp.Pair{State: ep.State, Action: ep.Action}] = trans
	}
	return dyn
}
