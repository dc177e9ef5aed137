// Package estimator is the top-level search of the resource-estimation
// engine. Given a logical resource profile, a technology context, an error
// budget, one code query and one or more factory-chain queries, it streams
// the cross product of code and chain candidates, filters the combinations
// that cannot meet the budget, and selects the survivor with the smallest
// physical-qubit footprint (ties broken by runtime, then by canonical
// enumeration order).
//
// Candidate evaluation is pure over immutable inputs, so the search fans out
// across a worker pool; every candidate carries its sequential index and the
// final reduction is defined over that index, which keeps a parallel run
// bit-identical to a sequential one.
//
// EstimateCustom evaluates one explicitly chosen configuration through the
// same metric computation, bypassing the search entirely.
package estimator
