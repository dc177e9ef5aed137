package registry

import (
	"fmt"

	"github.com/qgridlab/qcostgo/internal/config"
	"github.com/qgridlab/qcostgo/internal/space"
)

// IntField translates a block attribute into a schema field: a set or range
// attribute becomes a searchable domain, a plain number becomes a fixed
// field. Model builders use this for their tunable integer parameters.
func IntField(name string, a config.Attr) (space.Field, error) {
	switch {
	case a.Set != nil:
		vals := make([]space.Value, len(a.Set))
		for i, n := range a.Set {
			vals[i] = space.IntVal(n)
		}
		d, err := space.Explicit(vals...)
		if err != nil {
			return space.Field{}, fmt.Errorf("attribute %s: %w", name, err)
		}
		return space.Var(name, d), nil

	case a.Range != nil:
		d, err := space.IntRange(a.Range.Min, a.Range.Max, a.Range.Step)
		if err != nil {
			return space.Field{}, fmt.Errorf("attribute %s: %w", name, err)
		}
		return space.Var(name, d), nil

	case a.Num != nil:
		n := int64(*a.Num)
		if float64(n) != *a.Num {
			return space.Field{}, fmt.Errorf("attribute %s: expected an integer, got %g", name, *a.Num)
		}
		return space.Fixed(name, space.IntVal(n)), nil

	default:
		return space.Field{}, fmt.Errorf("attribute %s: empty attribute", name)
	}
}

// FloatParam reads a plain-number attribute used as a model parameter
// override. Domains are not allowed here: parameters tune the model, they
// are not searched.
func FloatParam(name string, a config.Attr) (float64, error) {
	if a.IsDomain() {
		return 0, fmt.Errorf("attribute %s: model parameters must be single numbers, not domains", name)
	}
	if a.Num == nil {
		return 0, fmt.Errorf("attribute %s: empty attribute", name)
	}
	return *a.Num, nil
}
