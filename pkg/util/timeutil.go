package util

import "time"

// NowUTC is the default clock of the domain services. Dates and month keys
// are formatted from UTC so every instance agrees on what "today" is; tests
// swap the clock out for a fixed one.
func NowUTC() time.Time {
	return time.Now().UTC()
}
