// Package config defines the format-agnostic model of an estimation job:
// the logical resource profile, the error budget, the technology context
// selection, and the code/factory search-space declarations. Loaders (the
// HCL loader today) translate their on-disk syntax into this model; nothing
// downstream of the loader knows which format the job was written in.
package config
