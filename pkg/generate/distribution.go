// Package generate produces synthetic sample streams from statistical
// distributions, for feeding the summarize pipeline.
package generate

import "math/rand"

// Distribution provides an interface to model a statistical distribution.
type Distribution interface {
	Advance()
	Get() float64
}

// NormalDistribution models a normal distribution.
type NormalDistribution struct {
	Mean   float64
	StdDev float64

	rng *rand.Rand
	val float64
}

// NewNormalDistribution returns a normal distribution driven by rng, so runs
// are reproducible from the rng's seed.
func NewNormalDistribution(rng *rand.Rand, mean, stddev float64) *NormalDistribution {
	d := &NormalDistribution{Mean: mean, StdDev: stddev, rng: rng}
	d.Advance()
	return d
}

// Advance draws the next value from this distribution.
func (d *NormalDistribution) Advance() {
	d.val = d.rng.NormFloat64()*d.StdDev + d.Mean
}

func (d *NormalDistribution) Get() float64 {
	return d.val
}

// UniformDistribution models a uniform distribution.
type UniformDistribution struct {
	Low  float64
	High float64

	rng *rand.Rand
	val float64
}

// NewUniformDistribution returns a uniform distribution over [low, high)
// driven by rng.
func NewUniformDistribution(rng *rand.Rand, low, high float64) *UniformDistribution {
	d := &UniformDistribution{Low: low, High: high, rng: rng}
	d.Advance()
	return d
}

// Advance draws the next value from this distribution.
func (d *UniformDistribution) Advance() {
	x := d.rng.Float64() // uniform
	x *= d.High - d.Low
	x += d.Low
	d.val = x
}

func (d *UniformDistribution) Get() float64 {
	return d.val
}

// RandomWalkDistribution is a stateful random walk. Initialize it with a
// starting State and a Step distribution to add at each Advance.
type RandomWalkDistribution struct {
	State float64
	Step  Distribution
}

func (d *RandomWalkDistribution) Advance() {
	d.Step.Advance()
	d.State += d.Step.Get()
}

func (d *RandomWalkDistribution) Get() float64 {
	return d.State
}

// ClampedRandomWalkDistribution is a stateful random walk bounded to
// [Min, Max].
type ClampedRandomWalkDistribution struct {
	State float64
	Step  Distribution
	Min   float64
	Max   float64
}

func (d *ClampedRandomWalkDistribution) Advance() {
	d.Step.Advance()
	d.State += d.Step.Get()
	if d.State > d.Max {
		d.State = d.Max
	}
	if d.State < d.Min {
		d.State = d.Min
	}
}

func (d *ClampedRandomWalkDistribution) Get() float64 {
	return d.State
}
