package estimator

import "time"

// Estimate is the final output of a search: the selected configuration's
// derived metrics plus enough of the configuration itself to reproduce it
// without searching again. Runtime is a time.Duration, so callers can
// convert it to and from a plain nanosecond count.
type Estimate struct {
	PhysicalQubits int64
	Runtime        time.Duration
	NumFactories   int64

	// CodeDistance is the winning code's distance parameter, 0 when the
	// code model has no "distance" field.
	CodeDistance int64
	// CodeConfiguration and FactoryConfiguration are stable reproducible
	// tokens of the winning instances.
	CodeConfiguration    string
	FactoryConfiguration string

	// AchievedError is the total logical failure probability of the
	// selected configuration; always at most BudgetTotal.
	AchievedError float64
	BudgetTotal   float64

	// ContextName is the technology preset the run was evaluated against.
	ContextName string

	// Seq is the winner's index in the canonical enumeration order (-1 for
	// EstimateCustom); CandidatesExamined counts every enumerated
	// combination, feasible or not.
	Seq                int
	CandidatesExamined int64
}
