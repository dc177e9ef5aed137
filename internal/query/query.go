package query

import (
	"fmt"

	"github.com/qgridlab/qcostgo/internal/space"
)

// level is one stage of a (possibly composed) query: a schema to enumerate
// and the model that evaluates its instances.
type level struct {
	spec           *space.Spec
	model          Model
	consumesSource bool
}

// Query wraps an instance schema with a cost model, possibly chained onto
// inner source queries. Queries are immutable once built.
type Query struct {
	// levels is ordered innermost (source) first. A leaf has exactly one.
	levels []level
}

// Leaf builds an undecomposed query. consumesSource declares whether the
// model reads an inner result when composed; models that never do (error
// correcting codes) cannot be used as the outer side of Compose.
func Leaf(spec *space.Spec, model Model, consumesSource bool) (*Query, error) {
	if spec == nil {
		return nil, &space.SchemaError{Msg: "query spec must not be nil"}
	}
	if model == nil {
		return nil, &space.SchemaError{Msg: fmt.Sprintf("query %q has no model function", spec.Name())}
	}
	return &Query{levels: []level{{spec: spec, model: model, consumesSource: consumesSource}}}, nil
}

// Compose nests inner as the source of outer: every outer evaluation
// receives the inner level's result as its raw input. Composition is the
// only way to build multi-level chains and is associative. A mismatch (an
// outer query whose innermost model does not consume a source) is a
// schema-class construction error, never an enumeration failure.
func Compose(outer, inner *Query) (*Query, error) {
	if outer == nil || inner == nil {
		return nil, &space.SchemaError{Msg: "compose requires two non-nil queries"}
	}
	boundary := outer.levels[0]
	if !boundary.consumesSource {
		return nil, &space.SchemaError{Msg: fmt.Sprintf(
			"cannot compose: model %q does not consume a source result", boundary.spec.Name())}
	}
	levels := make([]level, 0, len(inner.levels)+len(outer.levels))
	levels = append(levels, inner.levels...)
	levels = append(levels, outer.levels...)
	return &Query{levels: levels}, nil
}

// Depth is the number of levels in the chain.
func (q *Query) Depth() int { return len(q.levels) }

// Cardinality is the size of the candidate set: the product of every
// level's instance-space cardinality.
func (q *Query) Cardinality() int {
	n := 1
	for _, lv := range q.levels {
		n *= lv.spec.Cardinality()
	}
	return n
}

// ConsumesSource reports whether the innermost level still expects an inner
// result, i.e. whether the chain is open for further composition underneath.
func (q *Query) ConsumesSource() bool { return q.levels[0].consumesSource }
