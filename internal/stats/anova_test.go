package stats

import (
	"math"
	"testing"
)

func TestOneWayANOVADetectsSeparation(t *testing.T) {
	groups := [][]float64{
		{1.0, 1.1, 0.9, 1.2, 1.0},
		{3.0, 3.1, 2.9, 3.2, 3.0},
		{5.0, 5.1, 4.9, 5.2, 5.0},
	}
	res, ok := OneWayANOVA(groups)
	if !ok {
		t.Fatal("expected a defined result")
	}
	if res.F <= 1 {
		t.Errorf("separated groups should give large F, got %v", res.F)
	}
	if res.P >= 0.001 {
		t.Errorf("separated groups should give tiny p, got %v", res.P)
	}
	if res.EtaSquared <= 0.9 || res.EtaSquared > 1 {
		t.Errorf("eta-squared should be near 1, got %v", res.EtaSquared)
	}
	if res.DFBetween != 2 || res.DFWithin != 12 {
		t.Errorf("df = (%d, %d), want (2, 12)", res.DFBetween, res.DFWithin)
	}
}

func TestOneWayANOVAIdenticalGroups(t *testing.T) {
	g := []float64{1.0, 1.4, 0.8, 1.2}
	res, ok := OneWayANOVA([][]float64{g, g, g})
	if !ok {
		t.Fatal("expected a defined result")
	}
	if res.F > 1e-9 {
		t.Errorf("identical groups should give F near 0, got %v", res.F)
	}
	if res.P < 0.999 {
		t.Errorf("identical groups should give p near 1, got %v", res.P)
	}
}

func TestOneWayANOVADegenerateVariance(t *testing.T) {
	// Within-group spread zero, between-group spread positive.
	res, ok := OneWayANOVA([][]float64{{1, 1, 1}, {2, 2, 2}})
	if !ok {
		t.Fatal("expected a defined result")
	}
	if !math.IsInf(res.F, 1) || res.P != 0 {
		t.Errorf("zero within-spread should give F=+Inf, p=0, got (%v, %v)", res.F, res.P)
	}

	// All data equal everywhere.
	res, ok = OneWayANOVA([][]float64{{3, 3}, {3, 3}})
	if !ok {
		t.Fatal("expected a defined result")
	}
	if res.F != 0 || res.P != 1 || res.EtaSquared != 0 {
		t.Errorf("all-equal data should give F=0, p=1, eta=0, got (%v, %v, %v)", res.F, res.P, res.EtaSquared)
	}
}

func TestOneWayANOVATooFewGroups(t *testing.T) {
	if _, ok := OneWayANOVA([][]float64{{1, 2, 3}}); ok {
		t.Error("single group should be undefined")
	}
	if _, ok := OneWayANOVA(nil); ok {
		t.Error("no groups should be undefined")
	}
	if _, ok := OneWayANOVA([][]float64{{1}, {2}}); ok {
		t.Error("no within-group degrees of freedom should be undefined")
	}
}
