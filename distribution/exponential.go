package distribution

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// ErrInvalidArgument is returned when a sampler is constructed or called with
// a numeric precondition violated. Callers should treat it as a programming
// error, not something to retry.
var ErrInvalidArgument = errors.New("invalid argument")

// Exponential draws values from an exponential distribution with a fixed
// mean. Every instance owns a PRNG so independent samplers never share a
// seed; pass one explicitly with NewExponentialFrom for deterministic output.
type Exponential struct {
	mean   float64
	lambda float64 // rate parameter, 1/mean
	prng   *rand.Rand
}

func NewPRNG() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func NewExponential(mean float64) (*Exponential, error) {
	return NewExponentialFrom(mean, NewPRNG())
}

func NewExponentialFrom(mean float64, prng *rand.Rand) (*Exponential, error) {
	if mean <= 0 {
		return nil, fmt.Errorf("mean must be positive, got %v: %w", mean, ErrInvalidArgument)
	}
	return &Exponential{
		mean:   mean,
		lambda: 1 / mean,
		prng:   prng,
	}, nil
}

func (e *Exponential) Mean() float64 {
	return e.mean
}

// Lambda returns the rate parameter of the distribution, equal to 1/mean.
func (e *Exponential) Lambda() float64 {
	return e.lambda
}

// Sample returns a single draw via inverse transform sampling. The uniform
// value is taken from (0, 1], so the log argument is never zero.
func (e *Exponential) Sample() float64 {
	u := 1 - e.prng.Float64()
	return -math.Log(u) / e.lambda
}

// SampleN returns n independent draws from the distribution.
func (e *Exponential) SampleN(n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("number of samples must be positive, got %d: %w", n, ErrInvalidArgument)
	}
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = e.Sample()
	}
	return samples, nil
}
