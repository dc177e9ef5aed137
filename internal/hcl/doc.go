// Package hcl loads estimation job files written in HCL and translates them
// into the format-agnostic config model. It is the only package that knows
// the on-disk syntax; everything downstream consumes config.SearchJob.
package hcl
