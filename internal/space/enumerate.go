package space

import "iter"

// Enumerate streams every instance of the spec in canonical order, paired
// with its zero-based sequence index. The order is an odometer over the
// fields in declaration order with the last field varying fastest; fixed
// fields contribute exactly their default. The full product is never
// materialized, only one value list per domain plus a counter per field.
func Enumerate(s *Spec) iter.Seq2[int, Instance] {
	// Per-field value lists. A fixed field is a single-element list, so the
	// odometer below needs no special cases.
	columns := make([][]Value, len(s.fields))
	for i, f := range s.fields {
		if f.Domain == nil {
			columns[i] = []Value{*f.Default}
			continue
		}
		col := make([]Value, 0, f.Domain.Len())
		for v := range f.Domain.Values() {
			col = append(col, v)
		}
		columns[i] = col
	}

	return func(yield func(int, Instance) bool) {
		idx := make([]int, len(columns))
		seq := 0
		for {
			values := make([]Value, len(columns))
			for i, col := range columns {
				values[i] = col[idx[i]]
			}
			if !yield(seq, Instance{spec: s, values: values}) {
				return
			}
			seq++

			// Advance the odometer, last field fastest.
			pos := len(idx) - 1
			for pos >= 0 {
				idx[pos]++
				if idx[pos] < len(columns[pos]) {
					break
				}
				idx[pos] = 0
				pos--
			}
			if pos < 0 {
				return
			}
		}
	}
}
