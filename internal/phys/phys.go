// Package phys holds the physical technology parameters shared by every
// candidate evaluation in one estimation run: gate and measurement durations
// and error rates for the underlying qubit hardware. A Context is selected
// once per run, passed by value, and never mutated by candidates.
package phys

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Context is the immutable technology-parameter record. Durations use
// time.Duration so callers can round-trip them through a plain nanosecond
// count.
type Context struct {
	// Name is the preset name this context came from, or "custom" for an
	// explicitly constructed record. Cost models never read it.
	Name string

	OneQubitGateTime time.Duration
	TwoQubitGateTime time.Duration
	MeasurementTime  time.Duration
	TGateTime        time.Duration

	OneQubitGateError float64
	TwoQubitGateError float64
	TGateError        float64
}

// Validate checks that every duration is positive and every error rate is a
// probability in (0,1).
func (c Context) Validate() error {
	durations := []struct {
		name string
		d    time.Duration
	}{
		{"one_qubit_gate_time", c.OneQubitGateTime},
		{"two_qubit_gate_time", c.TwoQubitGateTime},
		{"measurement_time", c.MeasurementTime},
		{"t_gate_time", c.TGateTime},
	}
	for _, dur := range durations {
		if dur.d <= 0 {
			return fmt.Errorf("context %s: %s must be positive, got %s", c.Name, dur.name, dur.d)
		}
	}
	rates := []struct {
		name string
		r    float64
	}{
		{"one_qubit_gate_error", c.OneQubitGateError},
		{"two_qubit_gate_error", c.TwoQubitGateError},
		{"t_gate_error", c.TGateError},
	}
	for _, rate := range rates {
		if rate.r <= 0 || rate.r >= 1 {
			return fmt.Errorf("context %s: %s must be in (0,1), got %g", c.Name, rate.name, rate.r)
		}
	}
	return nil
}

// WorstGateError is the pessimistic physical error rate cost models plug
// into suppression formulas.
func (c Context) WorstGateError() float64 {
	if c.OneQubitGateError > c.TwoQubitGateError {
		return c.OneQubitGateError
	}
	return c.TwoQubitGateError
}

// presets is the fixed table of named technology parameter sets. The ns-scale
// entries describe superconducting-style hardware, the us-scale entries
// trapped-ion-style hardware; the e3/e4 suffix is the gate error tier.
var presets = map[string]Context{
	"gate-ns-e3": {
		Name:              "gate-ns-e3",
		OneQubitGateTime:  50 * time.Nanosecond,
		TwoQubitGateTime:  50 * time.Nanosecond,
		MeasurementTime:   100 * time.Nanosecond,
		TGateTime:         50 * time.Nanosecond,
		OneQubitGateError: 1e-3,
		TwoQubitGateError: 1e-3,
		TGateError:        1e-3,
	},
	"gate-ns-e4": {
		Name:              "gate-ns-e4",
		OneQubitGateTime:  50 * time.Nanosecond,
		TwoQubitGateTime:  50 * time.Nanosecond,
		MeasurementTime:   100 * time.Nanosecond,
		TGateTime:         50 * time.Nanosecond,
		OneQubitGateError: 1e-4,
		TwoQubitGateError: 1e-4,
		TGateError:        1e-4,
	},
	"gate-us-e3": {
		Name:              "gate-us-e3",
		OneQubitGateTime:  100 * time.Microsecond,
		TwoQubitGateTime:  100 * time.Microsecond,
		MeasurementTime:   100 * time.Microsecond,
		TGateTime:         50 * time.Microsecond,
		OneQubitGateError: 1e-3,
		TwoQubitGateError: 1e-3,
		TGateError:        1e-3,
	},
	"gate-us-e4": {
		Name:              "gate-us-e4",
		OneQubitGateTime:  100 * time.Microsecond,
		TwoQubitGateTime:  100 * time.Microsecond,
		MeasurementTime:   100 * time.Microsecond,
		TGateTime:         50 * time.Microsecond,
		OneQubitGateError: 1e-4,
		TwoQubitGateError: 1e-4,
		TGateError:        1e-4,
	},
}

// Preset returns the named technology context. Unknown names report the
// valid alternatives.
func Preset(name string) (Context, error) {
	c, ok := presets[name]
	if !ok {
		return Context{}, fmt.Errorf("unknown technology preset %q, valid presets: %s", name, strings.Join(PresetNames(), ", "))
	}
	return c, nil
}

// PresetNames lists the available preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
