package estimator

import "fmt"

// InvalidResourceProfileError reports a logical resource profile that is
// missing required counts or carries negative ones. It is raised before any
// enumeration starts.
type InvalidResourceProfileError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *InvalidResourceProfileError) Error() string {
	return fmt.Sprintf("invalid resource profile: %s: %s", e.Field, e.Reason)
}

// NoFeasibleConfigurationError reports a search in which every enumerated
// candidate violated the error budget. It carries the attempted budget and
// the number of candidates examined for diagnostics.
type NoFeasibleConfigurationError struct {
	Budget     float64
	Candidates int64
}

// Error implements the error interface.
func (e *NoFeasibleConfigurationError) Error() string {
	return fmt.Sprintf("no feasible configuration: all %d candidates violate the error budget %g", e.Candidates, e.Budget)
}
