package space

import "iter"

// Domain is a finite, non-empty, ordered set of legal values for one field.
// Enumeration order is deterministic and stable across runs.
type Domain interface {
	// Values yields the domain members in their canonical order.
	Values() iter.Seq[Value]
	// Len is the number of members. Always >= 1.
	Len() int
	// Contains reports membership.
	Contains(v Value) bool
	// Kind is the scalar type shared by all members.
	Kind() Kind
}

// explicitDomain is an ordered literal list of values.
type explicitDomain struct {
	kind Kind
	vals []Value
}

// Explicit builds a domain from an ordered list of values. All values must
// share one kind and the list must be non-empty.
func Explicit(vals ...Value) (Domain, error) {
	if len(vals) == 0 {
		return nil, schemaErrf("explicit domain must not be empty")
	}
	kind := vals[0].Kind()
	for i, v := range vals {
		if v.Kind() != kind {
			return nil, schemaErrf("explicit domain mixes kinds: value %d is %s, expected %s", i, v.Kind(), kind)
		}
	}
	d := &explicitDomain{kind: kind, vals: make([]Value, len(vals))}
	copy(d.vals, vals)
	return d, nil
}

// MustExplicit is Explicit for statically known literals; it panics on error.
func MustExplicit(vals ...Value) Domain {
	d, err := Explicit(vals...)
	if err != nil {
		panic(err)
	}
	return d
}

func (d *explicitDomain) Values() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for _, v := range d.vals {
			if !yield(v) {
				return
			}
		}
	}
}

func (d *explicitDomain) Len() int { return len(d.vals) }

func (d *explicitDomain) Kind() Kind { return d.kind }

func (d *explicitDomain) Contains(v Value) bool {
	for _, m := range d.vals {
		if m.Equal(v) {
			return true
		}
	}
	return false
}

// intRangeDomain is an arithmetic progression of integers, materialized
// lazily so large ranges cost nothing to declare.
type intRangeDomain struct {
	min, max, step int64
}

// IntRange builds a domain covering min, min+step, ... up to and including
// max (when the progression lands on it). Step must be positive and max must
// not precede min.
func IntRange(min, max, step int64) (Domain, error) {
	if step <= 0 {
		return nil, schemaErrf("int range step must be positive, got %d", step)
	}
	if max < min {
		return nil, schemaErrf("int range max %d precedes min %d", max, min)
	}
	return &intRangeDomain{min: min, max: max, step: step}, nil
}

// MustIntRange is IntRange for statically known bounds; it panics on error.
func MustIntRange(min, max, step int64) Domain {
	d, err := IntRange(min, max, step)
	if err != nil {
		panic(err)
	}
	return d
}

func (d *intRangeDomain) Values() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for v := d.min; v <= d.max; v += d.step {
			if !yield(IntVal(v)) {
				return
			}
		}
	}
}

func (d *intRangeDomain) Len() int {
	return int((d.max-d.min)/d.step) + 1
}

func (d *intRangeDomain) Kind() Kind { return KindInt }

func (d *intRangeDomain) Contains(v Value) bool {
	if v.Kind() != KindInt {
		return false
	}
	n := v.Int()
	return n >= d.min && n <= d.max && (n-d.min)%d.step == 0
}
