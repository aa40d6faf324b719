package util

import "time"

// NowUTC exposes time.Now for deterministic testing.
var NowUTC = func() time.Time {
	return time.Now().UTC()
}

// ElapsedMillis returns the milliseconds passed since start according to NowUTC.
func ElapsedMillis(start time.Time) int64 {
	return NowUTC().Sub(start).Milliseconds()
}
