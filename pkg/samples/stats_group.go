package samples

import (
	"fmt"
	"io"
	"sort"

	"github.com/HdrHistogram/hdrhistogram-go"

	"github.com/runstats/runstats/pkg/stats"
)

// histogramScale is the factor applied to values before recording them into
// the integer-valued HDR histogram, preserving three decimal places.
const histogramScale = 1000.0

// statGroup collects streaming statistics for one label. Spread comes from a
// running sum/sum-of-squares accumulator; values are also retained for the
// median and recorded into an HDR histogram for quantile reporting.
type statGroup struct {
	min    float64
	max    float64
	sum    float64
	count  int64
	values []float64

	spread *stats.StandardDeviation[float64, float64]

	valueHDRHistogram *hdrhistogram.Histogram
}

// newStatGroup returns a new statGroup with an initial size
func newStatGroup(size uint64) *statGroup {
	return &statGroup{
		values: make([]float64, 0, size),
		spread: stats.NewStdDev[float64, float64](stats.Sample),

		valueHDRHistogram: hdrhistogram.New(1, int64(1e9), 3),
	}
}

// push updates the group with a new value.
func (s *statGroup) push(n float64) {
	s.spread.Add(n)
	// Values outside the histogram's range (including negatives) only affect
	// the non-quantile statistics.
	_ = s.valueHDRHistogram.RecordValue(int64(n * histogramScale))

	if s.count == 0 {
		s.min = n
		s.max = n
		s.sum = n
		s.count = 1
		s.values = append(s.values, n)
		return
	}

	if n < s.min {
		s.min = n
	}
	if n > s.max {
		s.max = n
	}
	s.sum += n
	s.values = append(s.values, n)
	s.count++
}

// mean returns the arithmetic mean of the group, 0 if it is empty.
func (s *statGroup) mean() float64 {
	if s.count == 0 {
		return 0
	}
	return s.sum / float64(s.count)
}

// median returns the median value of the group.
func (s *statGroup) median() float64 {
	sort.Float64s(s.values[:s.count])
	if s.count == 0 {
		return 0
	} else if s.count%2 == 0 {
		idx := s.count / 2
		return (s.values[idx] + s.values[idx-1]) / 2.0
	} else {
		return s.values[s.count/2]
	}
}

// stdDev returns the sample standard deviation of the group.
func (s *statGroup) stdDev() float64 {
	return s.spread.StdDev()
}

// String makes a simple description of a statGroup.
func (s *statGroup) String() string {
	return fmt.Sprintf("min: %8.2f, med: %8.2f, mean: %8.2f, max: %7.2f, stddev: %8.2f, sum: %10.1f, count: %d", s.min, s.median(), s.mean(), s.max, s.stdDev(), s.sum, s.count)
}

func (s *statGroup) write(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s\n", s.String())
	return err
}

// writeStatGroupMap writes a map of statGroups in an ordered fashion by
// the key that they are stored by
func writeStatGroupMap(w io.Writer, statGroups map[string]*statGroup) error {
	maxKeyLength := 0
	keys := make([]string, 0, len(statGroups))
	for k := range statGroups {
		if len(k) > maxKeyLength {
			maxKeyLength = len(k)
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := statGroups[k]
		paddedKey := k
		for len(paddedKey) < maxKeyLength {
			paddedKey += " "
		}

		_, err := fmt.Fprintf(w, "%s:\n", paddedKey)
		if err != nil {
			return err
		}

		err = v.write(w)
		if err != nil {
			return err
		}
	}
	return nil
}
