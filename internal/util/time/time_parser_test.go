package time_parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_ParseDayTime_WithValidTimes_CombinesWithDay(t *testing.T) {
	day := time.Date(2024, 3, 15, 9, 41, 7, 123456789, time.UTC)

	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{
			name:     "morning time",
			input:    "08:15:30.250",
			expected: time.Date(2024, 3, 15, 8, 15, 30, 250_000_000, time.UTC),
		},
		{
			name:     "midnight",
			input:    "00:00:00.000",
			expected: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "last millisecond of the day",
			input:    "23:59:59.999",
			expected: time.Date(2024, 3, 15, 23, 59, 59, 999_000_000, time.UTC),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result, err := ParseDayTime(test.input, day)

			assert.NoError(t, err)
			assert.Equal(t, test.expected, result)
			assert.Equal(t, time.UTC, result.Location())
		})
	}
}

func Test_ParseDayTime_DiscardsClockOfDayArgument(t *testing.T) {
	day := time.Date(2024, 3, 15, 22, 59, 58, 0, time.UTC)

	result, err := ParseDayTime("01:02:03.004", day)

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 1, 2, 3, 4_000_000, time.UTC), result)
}

func Test_ParseDayTime_WithNonUTCDay_NormalizesToUTC(t *testing.T) {
	zone := time.FixedZone("UTC+5", 5*60*60)
	// 2024-03-16 02:30 in UTC+5 is still 2024-03-15 in UTC
	day := time.Date(2024, 3, 16, 2, 30, 0, 0, zone)

	result, err := ParseDayTime("12:00:00.000", day)

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC), result)
}

func Test_ParseDayTime_WithInvalidInput_ReturnsError(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
	}{
		{name: "empty string", input: ""},
		{name: "missing milliseconds", input: "08:15:30"},
		{name: "out of range hour", input: "25:00:00.000"},
		{name: "garbage", input: "not a time"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseDayTime(test.input, day)

			assert.Error(t, err)
		})
	}
}

func Test_FromEpochMs_RoundTripsUnixMilli(t *testing.T) {
	moment := time.Date(2024, 3, 15, 8, 15, 30, 250_000_000, time.UTC)

	result := FromEpochMs(moment.UnixMilli())

	assert.Equal(t, moment, result)
	assert.Equal(t, time.UTC, result.Location())
}
