package stats

import (
	"math"
	"testing"
)

func TestStdDevPopulation(t *testing.T) {
	cases := []struct {
		desc     string
		values   []float64
		wantVar  float64
		wantSdev float64
	}{
		{
			desc:     "textbook example",
			values:   []float64{2, 4, 4, 4, 5, 5, 7, 9},
			wantVar:  4.0,
			wantSdev: 2.0,
		},
		{
			desc:     "zero spread",
			values:   []float64{3, 3, 3},
			wantVar:  0.0,
			wantSdev: 0.0,
		},
	}

	for _, c := range cases {
		s := NewStdDevFrom[float64, float64](Population, c.values)
		if got := s.Variance(); !closeEnough(got, c.wantVar) {
			t.Errorf("%s: variance got %v want %v", c.desc, got, c.wantVar)
		}
		if got := s.StdDev(); !closeEnough(got, c.wantSdev) {
			t.Errorf("%s: stddev got %v want %v", c.desc, got, c.wantSdev)
		}
	}
}

func TestStdDevMatchesVarianceRoot(t *testing.T) {
	values := []float64{1.5, 2.25, 8, 13.5, 0.25, 7}
	for _, variant := range []Variant{Population, Sample} {
		s := NewStdDevFrom[float64, float64](variant, values)
		if got, want := s.StdDev(), math.Sqrt(s.Variance()); !closeEnough(got, want) {
			t.Errorf("%s: stddev got %v want sqrt(variance) %v", variant, got, want)
		}
	}
}

func TestStdDevEmpty(t *testing.T) {
	s := NewStdDev[float64, float64](Sample)
	if got := s.Variance(); got != 0.0 {
		t.Errorf("empty variance got %v want 0", got)
	}
	if got := s.StdDev(); got != 0.0 {
		t.Errorf("empty stddev got %v want 0", got)
	}
	if got := s.Count(); got != 0 {
		t.Errorf("empty count got %d want 0", got)
	}
}

// Single observation under the Sample variant: the variance is NaN from the
// zero denominator, and the non-positive clamp leaves the stddev at 0.
func TestStdDevSampleSingleValue(t *testing.T) {
	s := NewStdDev[float64, float64](Sample)
	s.Add(7)
	if got := s.Variance(); !math.IsNaN(got) {
		t.Errorf("single-value sample variance got %v want NaN", got)
	}
	if got := s.StdDev(); got != 0.0 {
		t.Errorf("single-value sample stddev got %v want 0", got)
	}
}

func TestStdDevSharedRecompute(t *testing.T) {
	s := NewStdDev[float64, float64](Population)
	s.AddValues(2, 4, 4, 4, 5, 5, 7, 9)

	// Both getters between mutations must agree with each other and with
	// themselves on repeated reads.
	v1, d1 := s.Variance(), s.StdDev()
	v2, d2 := s.Variance(), s.StdDev()
	if v1 != v2 || d1 != d2 {
		t.Errorf("repeated reads differ: (%v, %v) then (%v, %v)", v1, d1, v2, d2)
	}

	s.Add(6)
	if got := s.Count(); got != 9 {
		t.Errorf("count got %d want 9", got)
	}
	if got, want := s.StdDev(), math.Sqrt(s.Variance()); !closeEnough(got, want) {
		t.Errorf("after add stddev got %v want %v", got, want)
	}
}

func TestStdDevClear(t *testing.T) {
	s := NewStdDevFrom[int, int](Population, []int{4, 8, 15, 16})
	if s.StdDev() == 0.0 {
		t.Fatal("expected non-zero stddev before clear")
	}
	s.Clear()
	if got := s.StdDev(); got != 0.0 {
		t.Errorf("stddev after clear got %v want 0", got)
	}
	if got := s.Count(); got != 0 {
		t.Errorf("count after clear got %d want 0", got)
	}
}
