package analysis

// epsilon is the small margin subtracted from the minimum child Δ when
// deriving a conservative parent interface.
const epsilon = 1e-6

// BDRInterface is a child component's synthesized (α, Δ) pair, as
// consumed by ValidateParent.
type BDRInterface struct {
	ComponentID string
	Alpha       float64
	Delta       int64
}

// ParentValidation is the result of Feng–Mok Theorem 1 composition of a
// set of sibling BDR interfaces sharing a core.
type ParentValidation struct {
	Pass            bool
	SumAlpha        float64
	DerivedAlpha    float64 // = SumAlpha, the conservative parent share
	DerivedDelta    float64 // = max(0, min Δᵢ − ε)
	ViolatingDeltas []string // component IDs with Δᵢ <= parent Δ (0)
}

// ValidateParent checks Σαᵢ <= α_parent (=1) ∧ ∀i Δᵢ > Δ_parent (=0),
// and derives a conservative parent interface (Σαᵢ, min Δᵢ − ε).
func ValidateParent(children []BDRInterface) ParentValidation {
	var sumAlpha float64
	var minDelta int64 = -1
	var violating []string

	for _, c := range children {
		sumAlpha += c.Alpha
		if c.Delta <= 0 {
			violating = append(violating, c.ComponentID)
		}
		if minDelta == -1 || c.Delta < minDelta {
			minDelta = c.Delta
		}
	}

	derivedDelta := float64(minDelta) - epsilon
	if derivedDelta < 0 {
		derivedDelta = 0
	}

	return ParentValidation{
		Pass:            sumAlpha <= 1 && len(violating) == 0,
		SumAlpha:        sumAlpha,
		DerivedAlpha:    sumAlpha,
		DerivedDelta:    derivedDelta,
		ViolatingDeltas: violating,
	}
}
