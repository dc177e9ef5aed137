// Package query is the composition algebra of the search engine. A Query
// wraps a field schema together with a pure cost-model function; queries
// compose into chains where each level's evaluated result feeds the next
// level as its raw input (a magic-state factory refined by another factory,
// to arbitrary depth).
//
// Internally a Query is a flattened list of levels ordered innermost first,
// so Compose(Compose(a,b),c) and Compose(a,Compose(b,c)) build the exact
// same value: associativity, including enumeration order, holds by
// construction rather than by argument.
//
// Candidates streams the nested cartesian product of every level's instance
// space: for every inner candidate, every outer instance, evaluated
// source-first. A model signals a physically impossible configuration by
// returning an infeasible result, never an error; infeasible candidates stay
// in the stream (cardinality is always the product of the level
// cardinalities) and are filtered by the estimator.
package query
