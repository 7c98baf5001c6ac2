package timezone

import "time"

// Clock abstracts "now" so scheduling logic can be tested against a fixed
// instant.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
