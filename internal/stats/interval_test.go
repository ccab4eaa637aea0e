package stats

import (
	"testing"
)

func TestConfidenceIntervalContainsMean(t *testing.T) {
	data := []float64{2.1, 2.5, 1.9, 2.3, 2.2, 2.6, 2.0, 2.4}
	lower, upper, ok := ConfidenceInterval(data, 0.95)
	if !ok {
		t.Fatal("expected a defined interval")
	}
	m := Mean(data)
	if lower >= m || upper <= m {
		t.Errorf("interval [%v, %v] should contain the mean %v", lower, upper, m)
	}
}

func TestConfidenceIntervalWidensWithConfidence(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	l95, u95, _ := ConfidenceInterval(data, 0.95)
	l99, u99, _ := ConfidenceInterval(data, 0.99)
	if (u99 - l99) <= (u95 - l95) {
		t.Error("99% interval should be wider than 95%")
	}
}

func TestConfidenceIntervalUndefinedForSmallN(t *testing.T) {
	if _, _, ok := ConfidenceInterval([]float64{1.5}, 0.95); ok {
		t.Error("n=1 interval should be undefined")
	}
	if _, _, ok := ConfidenceInterval(nil, 0.95); ok {
		t.Error("empty interval should be undefined")
	}
}

func TestBootstrapCIDeterministic(t *testing.T) {
	data := []float64{0.4, 0.9, 0.1, 0.7, 0.5, 0.3, 0.8, 0.2}
	p1, l1, u1, ok1 := BootstrapCI(data, Mean, 500, 0.95)
	p2, l2, u2, ok2 := BootstrapCI(data, Mean, 500, 0.95)
	if !ok1 || !ok2 {
		t.Fatal("expected defined intervals")
	}
	if p1 != p2 || l1 != l2 || u1 != u2 {
		t.Error("same data and seed must reproduce the identical interval")
	}
}

func TestBootstrapCIPointOnOriginalData(t *testing.T) {
	data := []float64{1, 2, 3, 4, 100}
	point, lower, upper, ok := BootstrapCI(data, Mean, 1000, 0.95)
	if !ok {
		t.Fatal("expected a defined interval")
	}
	if point != Mean(data) {
		t.Errorf("point estimate %v must equal the statistic on the original data %v", point, Mean(data))
	}
	if lower > upper {
		t.Errorf("lower %v above upper %v", lower, upper)
	}
}

func TestBootstrapCIUndefinedForEmpty(t *testing.T) {
	if _, _, _, ok := BootstrapCI(nil, Mean, 100, 0.95); ok {
		t.Error("empty sample should be undefined")
	}
}
