// Package space models the search space of an estimation run: typed value
// domains, named field schemas, and the lazy cartesian enumeration that turns
// a schema into a deterministic stream of concrete instances.
//
// A Spec declares an ordered list of named fields. Each field carries either
// a fixed default value or a Domain of legal values (or both, in which case
// the domain wins). Enumerate walks the cartesian product of all field
// domains in declaration order without ever materializing the full product,
// and tags every instance with its position in that canonical order. That
// position is the tie-break key the estimator uses to keep parallel searches
// bit-identical to sequential ones.
//
// Malformed schemas (empty domains, fields with neither default nor domain,
// type mismatches) are construction-time SchemaErrors. Instances produced by
// Enumerate are valid by construction and immutable.
package space
