package util

import "time"

// Clock returns the current time; swapped in tests.
type Clock func() time.Time

// NowUTC exposes time.Now for deterministic testing.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// MillisSince reports elapsed wall time from start according to clock.
func MillisSince(clock Clock, start time.Time) int64 {
	if clock == nil {
		clock = NowUTC
	}
	return clock().Sub(start).Milliseconds()
}
