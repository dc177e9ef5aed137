package config

import (
	"context"
	"fmt"
	"time"
)

// Loader translates job files from some on-disk format into the agnostic
// model. Implementations walk every given path (file or directory).
type Loader interface {
	Load(ctx context.Context, paths ...string) (*SearchJob, error)
}

// SearchJob is one complete estimation job.
type SearchJob struct {
	Profile   ProfileConfig
	Budget    BudgetConfig
	Context   ContextConfig
	Code      *ModelBlock
	Factories []*ModelBlock
}

// ProfileConfig mirrors the logical resource profile of the algorithm.
type ProfileConfig struct {
	LogicalQubits   int64
	MagicStateCount int64
	RotationCount   int64
	LogicalDepth    int64
}

// BudgetConfig is the error budget: a total, optionally split into named
// component shares. Nil components mean "use the default split".
type BudgetConfig struct {
	Total     float64
	Logic     *float64
	Rotations *float64
	Magic     *float64
}

// Split reports whether any explicit component share was given.
func (b BudgetConfig) Split() bool {
	return b.Logic != nil || b.Rotations != nil || b.Magic != nil
}

// Component returns an explicit share or zero when unset.
func Component(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// ContextConfig selects the technology parameters: either a named preset or
// an explicit record. Exactly one must be set.
type ContextConfig struct {
	Preset   string
	Explicit *ExplicitContext
}

// ExplicitContext is a fully spelled-out technology parameter record.
// Durations are given as nanosecond counts in job files and converted here.
type ExplicitContext struct {
	OneQubitGateTime time.Duration
	TwoQubitGateTime time.Duration
	MeasurementTime  time.Duration
	TGateTime        time.Duration

	OneQubitGateError float64
	TwoQubitGateError float64
	TGateError        float64
}

// ModelBlock is one declared cost-model search space: a registered model
// type, an instance name, the tunable attributes, and (for factories) an
// optional source reference to another factory block feeding this one.
type ModelBlock struct {
	Type   string
	Name   string
	Source string
	Attrs  map[string]Attr
}

// Label is the stable "type.name" identifier of the block.
func (m *ModelBlock) Label() string { return m.Type + "." + m.Name }

// Attr is one tunable attribute of a model block: a literal number, a
// literal set of integers, or an integer range. Exactly one of the variants
// is set; the model builder decides whether an attribute is a searchable
// domain or a fixed parameter.
type Attr struct {
	Num   *float64
	Set   []int64
	Range *RangeAttr
}

// RangeAttr is an inclusive arithmetic progression.
type RangeAttr struct {
	Min  int64
	Max  int64
	Step int64
}

// IsDomain reports whether the attribute declares a multi-valued search
// domain rather than a single number.
func (a Attr) IsDomain() bool { return a.Set != nil || a.Range != nil }

// Validate checks the structural invariants the loader must establish.
func (j *SearchJob) Validate() error {
	if j.Code == nil {
		return fmt.Errorf("job declares no code block")
	}
	if len(j.Factories) == 0 {
		return fmt.Errorf("job declares no factory blocks")
	}
	if j.Context.Preset == "" && j.Context.Explicit == nil {
		return fmt.Errorf("job context must name a preset or spell out explicit parameters")
	}
	if j.Context.Preset != "" && j.Context.Explicit != nil {
		return fmt.Errorf("job context must not set both a preset and explicit parameters")
	}
	seen := make(map[string]struct{}, len(j.Factories))
	for _, f := range j.Factories {
		if _, dup := seen[f.Name]; dup {
			return fmt.Errorf("duplicate factory block name %q", f.Name)
		}
		seen[f.Name] = struct{}{}
	}
	return nil
}
