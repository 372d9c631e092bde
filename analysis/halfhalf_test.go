package analysis

import (
	"errors"
	"math"
	"testing"
)

func TestHalfHalfIdentity(t *testing.T) {
	// Identity: Cs/Ts = alpha, 2*(Ts-Cs) = delta.
	alpha, delta := 0.4, int64(3)
	cs, ts, err := HalfHalf(alpha, delta)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(cs/ts-alpha) > 1e-9 {
		t.Errorf("Cs/Ts = %v, want %v", cs/ts, alpha)
	}
	if math.Abs(2*(ts-cs)-float64(delta)) > 1e-9 {
		t.Errorf("2*(Ts-Cs) = %v, want %v", 2*(ts-cs), delta)
	}
}

func TestHalfHalfDegenerateDelta(t *testing.T) {
	cs, ts, err := HalfHalf(0.5, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// delta substituted with 1: Ts = 1/(2*0.5) = 1
	if math.Abs(ts-1) > 1e-9 || math.Abs(cs-0.5) > 1e-9 {
		t.Errorf("Cs=%v Ts=%v, want Cs=0.5 Ts=1", cs, ts)
	}
}

func TestHalfHalfDomainError(t *testing.T) {
	_, _, err := HalfHalf(1.0, 2)
	var domainErr *BdrDomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected *BdrDomainError, got %v", err)
	}
}
