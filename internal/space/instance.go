package space

import (
	"fmt"
	"strings"
)

// Instance is one fully assigned combination of a Spec's fields. Instances
// are built only by Enumerate, never mutated afterwards, and every value is a
// member of its field's domain by construction.
type Instance struct {
	spec   *Spec
	values []Value
}

// Spec returns the schema this instance was drawn from.
func (in Instance) Spec() *Spec { return in.spec }

// Lookup returns the value assigned to the named field.
func (in Instance) Lookup(name string) (Value, bool) {
	for i, f := range in.spec.fields {
		if f.Name == name {
			return in.values[i], true
		}
	}
	return Value{}, false
}

// Int returns the named int field. Missing fields or kind mismatches are
// programmer errors and panic.
func (in Instance) Int(name string) int64 {
	return in.mustLookup(name).Int()
}

// Float returns the named float field.
func (in Instance) Float(name string) float64 {
	return in.mustLookup(name).Float()
}

// Bool returns the named bool field.
func (in Instance) Bool(name string) bool {
	return in.mustLookup(name).Bool()
}

func (in Instance) mustLookup(name string) Value {
	v, ok := in.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("space: instance of %q has no field %q", in.spec.name, name))
	}
	return v
}

// String renders the assignment as a stable, reproducible token, e.g.
// "surface.main[distance=11]". Fields appear in declaration order.
func (in Instance) String() string {
	var b strings.Builder
	b.WriteString(in.spec.name)
	b.WriteByte('[')
	for i, f := range in.spec.fields {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(f.Name)
		b.WriteByte('=')
		b.WriteString(in.values[i].String())
	}
	b.WriteByte(']')
	return b.String()
}
