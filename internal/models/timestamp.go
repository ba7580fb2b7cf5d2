package models

import "time"

// TimestampPrecision is the resolution stored timestamps keep. PostgreSQL TIMESTAMPTZ holds microseconds.
const TimestampPrecision = time.Microsecond

// Stamp drops everything below TimestampPrecision, including the monotonic clock reading.
func Stamp(t time.Time) time.Time {
	return t.Truncate(TimestampPrecision)
}

// StampPtr is Stamp for an optional timestamp.
func StampPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	s := Stamp(*t)
	return &s
}
