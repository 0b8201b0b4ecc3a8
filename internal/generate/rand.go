package generate

import (
	"math/rand"
	"time"
)

// Window bounds the time range trades and other timestamps are drawn from.
type Window struct {
	Start time.Time
	End   time.Time
}

// randTime draws a uniformly distributed second-granularity timestamp in
// [w.Start, w.End].
func randTime(rng *rand.Rand, w Window) time.Time {
	seconds := int64(w.End.Sub(w.Start) / time.Second)
	return w.Start.Add(time.Duration(rng.Int63n(seconds+1)) * time.Second)
}

func pick[T any](rng *rand.Rand, values []T) T {
	return values[rng.Intn(len(values))]
}
