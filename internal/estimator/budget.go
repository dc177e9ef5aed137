package estimator

import "fmt"

// Budget is the maximum tolerable probability of a logical failure across
// the whole estimated run, split across the three consumers of error:
// algorithm logic (code failures), rotation synthesis, and magic-state
// production.
type Budget struct {
	Total     float64
	Logic     float64
	Rotations float64
	Magic     float64
}

// NewBudget builds a budget from a single total in (0,1), split into equal
// thirds across logic, rotations and magic, the convention of the published
// estimators this engine's cost models follow.
func NewBudget(total float64) (Budget, error) {
	if total <= 0 || total >= 1 {
		return Budget{}, fmt.Errorf("error budget must be in (0,1), got %g", total)
	}
	third := total / 3
	return Budget{Total: total, Logic: third, Rotations: third, Magic: third}, nil
}

// NewSplitBudget builds a budget with explicit component shares. Components
// must be non-negative and sum to at most the total.
func NewSplitBudget(total, logic, rotations, magic float64) (Budget, error) {
	if total <= 0 || total >= 1 {
		return Budget{}, fmt.Errorf("error budget must be in (0,1), got %g", total)
	}
	for _, c := range []struct {
		name  string
		share float64
	}{
		{"logic", logic}, {"rotations", rotations}, {"magic", magic},
	} {
		if c.share < 0 {
			return Budget{}, fmt.Errorf("error budget component %s must not be negative, got %g", c.name, c.share)
		}
	}
	if sum := logic + rotations + magic; sum > total {
		return Budget{}, fmt.Errorf("error budget components sum to %g, exceeding the total %g", sum, total)
	}
	return Budget{Total: total, Logic: logic, Rotations: rotations, Magic: magic}, nil
}

func (b Budget) validate() error {
	if b.Total <= 0 || b.Total >= 1 {
		return fmt.Errorf("error budget must be in (0,1), got %g; construct it with NewBudget or NewSplitBudget", b.Total)
	}
	return nil
}
