package app

import (
	"encoding/json"
	"fmt"

	"github.com/qgridlab/qcostgo/internal/estimator"
)

// estimateView is the JSON shape of a rendered estimate. Runtime is emitted
// as a plain nanosecond count so downstream tooling does not have to parse
// Go duration strings.
type estimateView struct {
	PhysicalQubits       int64   `json:"physical_qubits"`
	RuntimeNS            int64   `json:"runtime_ns"`
	NumFactories         int64   `json:"num_factories"`
	CodeDistance         int64   `json:"code_distance"`
	CodeConfiguration    string  `json:"code_configuration"`
	FactoryConfiguration string  `json:"factory_configuration"`
	AchievedError        float64 `json:"achieved_error"`
	BudgetTotal          float64 `json:"budget_total"`
	ContextName          string  `json:"context_name"`
	Seq                  int     `json:"seq"`
	CandidatesExamined   int64   `json:"candidates_examined"`
}

func (a *App) render(est *estimator.Estimate) error {
	if a.config.OutputFormat == "json" {
		return a.renderJSON(est)
	}
	return a.renderText(est)
}

func (a *App) renderJSON(est *estimator.Estimate) error {
	view := estimateView{
		PhysicalQubits:       est.PhysicalQubits,
		RuntimeNS:            est.Runtime.Nanoseconds(),
		NumFactories:         est.NumFactories,
		CodeDistance:         est.CodeDistance,
		CodeConfiguration:    est.CodeConfiguration,
		FactoryConfiguration: est.FactoryConfiguration,
		AchievedError:        est.AchievedError,
		BudgetTotal:          est.BudgetTotal,
		ContextName:          est.ContextName,
		Seq:                  est.Seq,
		CandidatesExamined:   est.CandidatesExamined,
	}
	enc := json.NewEncoder(a.outW)
	enc.SetIndent("", "  ")
	if err := enc.Encode(view); err != nil {
		return fmt.Errorf("failed to encode estimate: %w", err)
	}
	return nil
}

func (a *App) renderText(est *estimator.Estimate) error {
	_, err := fmt.Fprintf(a.outW,
		"Optimal configuration (context %s, error budget %g):\n"+
			"  physical qubits:     %d\n"+
			"  runtime:             %s\n"+
			"  factories:           %d\n"+
			"  code:                %s\n"+
			"  factory chain:       %s\n"+
			"  achieved error:      %g\n"+
			"  candidates examined: %d\n",
		est.ContextName, est.BudgetTotal,
		est.PhysicalQubits,
		est.Runtime,
		est.NumFactories,
		est.CodeConfiguration,
		est.FactoryConfiguration,
		est.AchievedError,
		est.CandidatesExamined,
	)
	if err != nil {
		return fmt.Errorf("failed to write estimate: %w", err)
	}
	return nil
}
