package analysis

import "fmt"

// BdrDomainError is returned by HalfHalf when α >= 1 is presented to
// the transform — the offending component is excluded from simulation
// rather than aborting the run.
type BdrDomainError struct {
	Alpha float64
}

func (e *BdrDomainError) Error() string {
	return fmt.Sprintf("analysis: half-half transform requires alpha < 1, got %v", e.Alpha)
}

// HalfHalf converts a BDR interface (α, Δ) into a periodic server
// (C_supply, T_supply):
//
//	T_supply = Δ / (2 · (1 − α))
//	C_supply = α · T_supply
//
// If delta <= 0 it is substituted with 1 to prevent degeneracy. If
// alpha >= 1 the transform fails with a *BdrDomainError.
func HalfHalf(alpha float64, delta int64) (cSupply, tSupply float64, err error) {
	if alpha >= 1 {
		return 0, 0, &BdrDomainError{Alpha: alpha}
	}
	if delta <= 0 {
		delta = 1
	}
	tSupply = float64(delta) / (2 * (1 - alpha))
	cSupply = alpha * tSupply
	return cSupply, tSupply, nil
}
