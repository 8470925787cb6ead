package domain

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// IntRange is an inclusive [Min, Max] interval.
type IntRange struct {
	Min int
	Max int
}

func (r IntRange) Validate() error {
	if r.Min < 0 || r.Max < 0 {
		return fmt.Errorf("range [%d, %d] has negative bound", r.Min, r.Max)
	}
	if r.Min > r.Max {
		return fmt.Errorf("range [%d, %d] has min greater than max", r.Min, r.Max)
	}

	return nil
}

func (r IntRange) Pick(rng *rand.Rand) int {
	if r.Max <= r.Min {
		return r.Min
	}

	return r.Min + rng.IntN(r.Max-r.Min+1)
}

func (r IntRange) PickSeconds(rng *rand.Rand) time.Duration {
	return time.Duration(r.Pick(rng)) * time.Second
}

func (r IntRange) String() string {
	return fmt.Sprintf("[%d, %d]", r.Min, r.Max)
}
