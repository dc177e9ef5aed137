// Package registry maps registered cost-model types to the builders that
// turn a job's model blocks into executable queries. Cost models live in
// pluggable modules; each module registers its builders here at startup, and
// the registry resolves a job's factory chain references into composed
// queries, rejecting unknown types, dangling sources and cycles before any
// search runs.
package registry
