package time_parser

import (
	"fmt"
	"time"
)

const dayTimeLayout = "15:04:05.000"

// ParseDayTime converts a time-of-day string ("HH:MM:SS.mmm") into the moment
// it names on the given day, in UTC. Server log lines carry no date, so the
// caller decides which day the time belongs to.
func ParseDayTime(dayTime string, day time.Time) (time.Time, error) {
	clock, err := time.Parse(dayTimeLayout, dayTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time of day %q: %w", dayTime, err)
	}

	day = day.UTC()

	return time.Date(
		day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), clock.Nanosecond(),
		time.UTC,
	), nil
}

// FromEpochMs converts epoch milliseconds back to a UTC time.Time.
func FromEpochMs(ms int64) time.Time {
	return time.Unix(0, ms*int64(time.Millisecond)).UTC()
}
