package hcl

import (
	"fmt"
	"time"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/qgridlab/qcostgo/internal/config"
	"github.com/qgridlab/qcostgo/internal/schema"
)

func translateProfile(p *schema.Profile) config.ProfileConfig {
	return config.ProfileConfig{
		LogicalQubits:   p.LogicalQubits,
		MagicStateCount: p.MagicStateCount,
		RotationCount:   p.RotationCount,
		LogicalDepth:    p.LogicalDepth,
	}
}

func translateBudget(b *schema.Budget) config.BudgetConfig {
	return config.BudgetConfig{
		Total:     b.Total,
		Logic:     b.Logic,
		Rotations: b.Rotations,
		Magic:     b.Magic,
	}
}

func translateContext(c *schema.TechContext) (config.ContextConfig, error) {
	if c.Preset != "" && c.Parameters != nil {
		return config.ContextConfig{}, fmt.Errorf("context block sets both a preset and explicit parameters")
	}
	if c.Preset == "" && c.Parameters == nil {
		return config.ContextConfig{}, fmt.Errorf("context block must set a preset or a parameters block")
	}
	out := config.ContextConfig{Preset: c.Preset}
	if p := c.Parameters; p != nil {
		out.Explicit = &config.ExplicitContext{
			OneQubitGateTime:  time.Duration(p.OneQubitGateTimeNS) * time.Nanosecond,
			TwoQubitGateTime:  time.Duration(p.TwoQubitGateTimeNS) * time.Nanosecond,
			MeasurementTime:   time.Duration(p.MeasurementTimeNS) * time.Nanosecond,
			TGateTime:         time.Duration(p.TGateTimeNS) * time.Nanosecond,
			OneQubitGateError: p.OneQubitGateError,
			TwoQubitGateError: p.TwoQubitGateError,
			TGateError:        p.TGateError,
		}
	}
	return out, nil
}

// translateModelBlock extracts the tunable attributes of a code or factory
// block. An attribute is either a plain number (fixed parameter), a list of
// integers (explicit search domain), or an object {min, max, step}
// (range domain). What each attribute means is the model builder's business.
func translateModelBlock(b *schema.ModelBlock) (*config.ModelBlock, error) {
	out := &config.ModelBlock{
		Type:   b.Type,
		Name:   b.Name,
		Source: b.Source,
		Attrs:  make(map[string]config.Attr),
	}

	attrs, diags := b.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("block %s: %w", out.Label(), diags)
	}

	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("block %s attribute %s: %w", out.Label(), name, diags)
		}
		parsed, err := translateAttr(val)
		if err != nil {
			return nil, fmt.Errorf("block %s attribute %s: %w", out.Label(), name, err)
		}
		out.Attrs[name] = parsed
	}
	return out, nil
}

func translateAttr(val cty.Value) (config.Attr, error) {
	ty := val.Type()
	switch {
	case ty == cty.Number:
		var f float64
		if err := gocty.FromCtyValue(val, &f); err != nil {
			return config.Attr{}, err
		}
		return config.Attr{Num: &f}, nil

	case ty.IsTupleType() || ty.IsListType():
		var set []int64
		for it := val.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			var n int64
			if err := gocty.FromCtyValue(ev, &n); err != nil {
				return config.Attr{}, fmt.Errorf("set element must be an integer: %w", err)
			}
			set = append(set, n)
		}
		if len(set) == 0 {
			return config.Attr{}, fmt.Errorf("set domain must not be empty")
		}
		return config.Attr{Set: set}, nil

	case ty.IsObjectType():
		rng, err := translateRange(val)
		if err != nil {
			return config.Attr{}, err
		}
		return config.Attr{Range: rng}, nil

	default:
		return config.Attr{}, fmt.Errorf("unsupported attribute shape %s: want a number, a list, or {min, max, step}", ty.FriendlyName())
	}
}

func translateRange(val cty.Value) (*config.RangeAttr, error) {
	ty := val.Type()
	for _, field := range []string{"min", "max"} {
		if !ty.HasAttribute(field) {
			return nil, fmt.Errorf("range object must set %q", field)
		}
	}
	rng := &config.RangeAttr{Step: 1}
	if err := gocty.FromCtyValue(val.GetAttr("min"), &rng.Min); err != nil {
		return nil, fmt.Errorf("range min: %w", err)
	}
	if err := gocty.FromCtyValue(val.GetAttr("max"), &rng.Max); err != nil {
		return nil, fmt.Errorf("range max: %w", err)
	}
	if ty.HasAttribute("step") {
		if err := gocty.FromCtyValue(val.GetAttr("step"), &rng.Step); err != nil {
			return nil, fmt.Errorf("range step: %w", err)
		}
	}
	return rng, nil
}
