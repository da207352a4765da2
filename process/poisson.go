package process

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/fcangialosi/poisson/distribution"
)

// PoissonProcess generates event arrival times where the time between
// consecutive events is exponentially distributed with a configured mean.
// Arrival times are absolute, given as milliseconds since the unix epoch.
//
// A typical caller generates a batch of arrival times up front and then
// fires its own events as the wall clock passes each one:
//
//	proc, err := process.NewPoissonProcess(60 * 1000) // mean of 60s
//	arrivals, err := proc.ArrivalTimesMs(20)
//	// poll: fire event i once currentTimeMs >= arrivals[i]
type PoissonProcess struct {
	meanArrivalIntervalMs int64
	expDist               *distribution.Exponential
	nowMs                 func() int64 // swapped out in tests
}

func currentTimeMs() int64 {
	return time.Now().UnixNano() / int64(time.Millisecond)
}

func NewPoissonProcess(meanArrivalIntervalMs int64) (*PoissonProcess, error) {
	return NewPoissonProcessFrom(meanArrivalIntervalMs, distribution.NewPRNG())
}

// NewPoissonProcessFrom builds a process that draws entropy from the given
// PRNG. Processes used concurrently must not share one PRNG.
func NewPoissonProcessFrom(meanArrivalIntervalMs int64, prng *rand.Rand) (*PoissonProcess, error) {
	if meanArrivalIntervalMs <= 0 {
		return nil, fmt.Errorf("mean arrival interval (ms) must be positive, got %d: %w",
			meanArrivalIntervalMs, distribution.ErrInvalidArgument)
	}
	expDist, err := distribution.NewExponentialFrom(float64(meanArrivalIntervalMs), prng)
	if err != nil {
		return nil, err
	}
	return &PoissonProcess{
		meanArrivalIntervalMs: meanArrivalIntervalMs,
		expDist:               expDist,
		nowMs:                 currentTimeMs,
	}, nil
}

func (p *PoissonProcess) MeanArrivalIntervalMs() int64 {
	return p.meanArrivalIntervalMs
}

// ArrivalIntervalMs returns a single inter-event interval, rounded to the
// nearest millisecond. The value is a duration, not an absolute time, and
// can round down to 0.
func (p *PoissonProcess) ArrivalIntervalMs() int64 {
	return int64(math.Round(p.expDist.Sample()))
}

// ArrivalTimesMs returns arrival times relative to the current time.
func (p *PoissonProcess) ArrivalTimesMs(numArrivalTimes int) ([]int64, error) {
	return p.ArrivalTimesAfterMs(0, numArrivalTimes)
}

// ArrivalTimesAfterMs returns numArrivalTimes arrival times, the first of
// which falls after the current time plus initialDelayMs. Each interval is
// drawn fresh and rounded before it is accumulated, so the sequence is
// non-decreasing. Arguments are validated before any entropy is consumed.
func (p *PoissonProcess) ArrivalTimesAfterMs(initialDelayMs int64, numArrivalTimes int) ([]int64, error) {
	if initialDelayMs < 0 {
		return nil, fmt.Errorf("initial delay cannot be negative, got %d: %w",
			initialDelayMs, distribution.ErrInvalidArgument)
	}
	if numArrivalTimes <= 0 {
		return nil, fmt.Errorf("number of arrival times must be positive, got %d: %w",
			numArrivalTimes, distribution.ErrInvalidArgument)
	}

	arrivalTimesMs := make([]int64, numArrivalTimes)
	prev := p.nowMs() + initialDelayMs
	for i := range arrivalTimesMs {
		prev += p.ArrivalIntervalMs()
		arrivalTimesMs[i] = prev
	}
	return arrivalTimesMs, nil
}
