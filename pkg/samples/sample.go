// Package samples reads streams of labelled numeric samples and aggregates
// them into per-label summary statistics.
package samples

import "sync"

// Sample represents one labelled measurement taken from the input stream.
type Sample struct {
	label []byte
	value float64
}

var samplePool = &sync.Pool{
	New: func() interface{} {
		return &Sample{
			label: make([]byte, 0, 1024),
			value: 0.0,
		}
	},
}

// GetSample returns a Sample for use from a pool
func GetSample() *Sample {
	return samplePool.Get().(*Sample).reset()
}

// Init safely initializes a Sample while minimizing heap allocations.
func (s *Sample) Init(label []byte, value float64) *Sample {
	s.label = s.label[:0] // clear
	s.label = append(s.label, label...)
	s.value = value
	return s
}

// Label returns the label the sample was recorded under.
func (s *Sample) Label() []byte {
	return s.label
}

// Value returns the measured value.
func (s *Sample) Value() float64 {
	return s.value
}

func (s *Sample) reset() *Sample {
	s.label = s.label[:0]
	s.value = 0.0
	return s
}
