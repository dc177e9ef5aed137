package estimator

import (
	"fmt"
	"math"
)

// Profile is the logical resource profile of an algorithm, produced by an
// external compiler collaborator: how many error-corrected qubits it
// occupies, how many magic states and arbitrary rotations it consumes, and
// how many logical cycles it runs for. Unused counts are zero.
type Profile struct {
	LogicalQubits   int64
	MagicStateCount int64
	RotationCount   int64
	LogicalDepth    int64
}

// Validate checks the profile eagerly, before any enumeration. Negative
// counts and a missing qubit count or depth are InvalidResourceProfileErrors.
func (p Profile) Validate() error {
	if p.LogicalQubits <= 0 {
		return &InvalidResourceProfileError{Field: "logical_qubits", Reason: fmt.Sprintf("must be positive, got %d", p.LogicalQubits)}
	}
	if p.LogicalDepth <= 0 {
		return &InvalidResourceProfileError{Field: "logical_depth", Reason: fmt.Sprintf("must be positive, got %d", p.LogicalDepth)}
	}
	if p.MagicStateCount < 0 {
		return &InvalidResourceProfileError{Field: "magic_state_count", Reason: fmt.Sprintf("must not be negative, got %d", p.MagicStateCount)}
	}
	if p.RotationCount < 0 {
		return &InvalidResourceProfileError{Field: "rotation_count", Reason: fmt.Sprintf("must not be negative, got %d", p.RotationCount)}
	}
	return nil
}

// SynthesisCoefficients parameterize the per-rotation T-state cost of
// synthesizing an arbitrary rotation to precision eps as ceil(A·log2(n/eps)
// + B) T gates, the Ross-Selinger style bound. They are explicit fields so
// alternative synthesis protocols are a value change, not a code change.
type SynthesisCoefficients struct {
	A float64
	B float64
}

// DefaultSynthesis returns the published Ross-Selinger coefficients.
func DefaultSynthesis() SynthesisCoefficients {
	return SynthesisCoefficients{A: 0.53, B: 5.3}
}

// TotalMagicStates is the overall magic-state demand of the profile: the
// directly consumed states plus the synthesis cost of every rotation against
// the rotation share of the error budget. Rotation-free profiles never touch
// the rotation budget.
func (p Profile) TotalMagicStates(rotationBudget float64, c SynthesisCoefficients) (int64, error) {
	if p.RotationCount == 0 {
		return p.MagicStateCount, nil
	}
	if rotationBudget <= 0 {
		return 0, fmt.Errorf("profile consumes %d rotations but the rotation error budget is zero", p.RotationCount)
	}
	perRotation := int64(math.Ceil(c.A*math.Log2(float64(p.RotationCount)/rotationBudget) + c.B))
	if perRotation < 1 {
		perRotation = 1
	}
	return p.MagicStateCount + p.RotationCount*perRotation, nil
}
