// Package schema declares the HCL block structures of estimation job files.
// These structs exist purely for gohcl decoding; the loader translates them
// into the format-agnostic config model before anything else sees them.
package schema

import "github.com/hashicorp/hcl/v2"

// Profile represents the `profile` block: the algorithm's logical resource
// counts as produced by the compiler collaborator.
type Profile struct {
	LogicalQubits   int64 `hcl:"logical_qubits"`
	MagicStateCount int64 `hcl:"magic_state_count"`
	RotationCount   int64 `hcl:"rotation_count,optional"`
	LogicalDepth    int64 `hcl:"logical_depth"`
}

// Budget represents the `budget` block. Component shares are optional; an
// unsplit budget uses the engine's default split.
type Budget struct {
	Total     float64  `hcl:"total"`
	Logic     *float64 `hcl:"logic,optional"`
	Rotations *float64 `hcl:"rotations,optional"`
	Magic     *float64 `hcl:"magic,optional"`
}

// TechContext represents the `context` block: a named technology preset or
// an explicit `parameters` sub-block, never both.
type TechContext struct {
	Preset     string      `hcl:"preset,optional"`
	Parameters *Parameters `hcl:"parameters,block"`
}

// Parameters spells out a technology record. Times are nanosecond counts so
// they survive as plain integers.
type Parameters struct {
	OneQubitGateTimeNS int64 `hcl:"one_qubit_gate_time_ns"`
	TwoQubitGateTimeNS int64 `hcl:"two_qubit_gate_time_ns"`
	MeasurementTimeNS  int64 `hcl:"measurement_time_ns"`
	TGateTimeNS        int64 `hcl:"t_gate_time_ns"`

	OneQubitGateError float64 `hcl:"one_qubit_gate_error"`
	TwoQubitGateError float64 `hcl:"two_qubit_gate_error"`
	TGateError        float64 `hcl:"t_gate_error"`
}

// ModelBlock represents a `code` or `factory` block. The two labels are the
// registered model type and the instance name. Tunable attributes (domains
// and parameter overrides) stay in the remain body; their shape is model
// specific and the loader extracts them generically.
type ModelBlock struct {
	Type   string   `hcl:"type,label"`
	Name   string   `hcl:"name,label"`
	Source string   `hcl:"source,optional"`
	Body   hcl.Body `hcl:",remain"`
}

// Root is the top-level structure of a job file.
type Root struct {
	Profile   *Profile      `hcl:"profile,block"`
	Budget    *Budget       `hcl:"budget,block"`
	Context   *TechContext  `hcl:"context,block"`
	Codes     []*ModelBlock `hcl:"code,block"`
	Factories []*ModelBlock `hcl:"factory,block"`
	Remain    hcl.Body      `hcl:",remain"`
}
