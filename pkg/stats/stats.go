// Package stats provides streaming statistics accumulators that maintain
// running sums sufficient to compute variance and standard deviation in
// constant space, without storing the observed values.
package stats

// Value is the set of numeric types usable as the input or calculation
// representation of an accumulator.
type Value interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Variant selects the divisor used when computing variance. It is fixed for
// the lifetime of an accumulator.
type Variant int

const (
	// Population divides by n: the observations are the entire population.
	Population Variant = iota
	// Sample divides by n-1 (Bessel's correction): the observations are a
	// sample drawn from a larger population.
	Sample
)

// adjustment is the term subtracted from n in the variance denominator.
func (v Variant) adjustment() float64 {
	if v == Sample {
		return 1
	}
	return 0
}

func (v Variant) String() string {
	if v == Sample {
		return "sample"
	}
	return "population"
}
