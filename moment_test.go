package diligentdate

import (
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func TestMomentString(t *testing.T) {
	date := Moment{Year: 2025, Month: time.June, Day: 18}
	clock := date
	clock.Hour = 5
	clock.HourIsSet = true
	clock.Minute = 7
	clock.MinuteIsSet = true
	clock.Second = 9
	clock.SecondIsSet = true

	tests := []struct {
		Moment   Moment
		Expected string
	}{
		{date, "2025-06-18"},
		{Moment{Year: 825, Month: time.January, Day: 2}, "0825-01-02"},
		{onlyHour(date, 5), "2025-06-18T05"},
		{clock, "2025-06-18T05:07:09"},
		{withNanosecond(clock, 120000000), "2025-06-18T05:07:09.12"},
		{withNanosecond(clock, 500), "2025-06-18T05:07:09.0000005"},
		{withNanosecond(clock, 0), "2025-06-18T05:07:09.0"},
		{withOffset(clock, 0), "2025-06-18T05:07:09Z"},
		{withOffset(clock, 345), "2025-06-18T05:07:09+05:45"},
		{withOffset(clock, -420), "2025-06-18T05:07:09-07:00"},
		{withOffset(clock, -30), "2025-06-18T05:07:09-00:30"},
	}

	for _, test := range tests {
		require.Equal(t, test.Expected, test.Moment.String(), test.Expected)
	}
}

func onlyHour(m Moment, hour int) Moment {
	m.Hour = hour
	m.HourIsSet = true
	return m
}

func withNanosecond(m Moment, nanosecond int) Moment {
	m.Nanosecond = nanosecond
	m.NanosecondIsSet = true
	return m
}

func withOffset(m Moment, offset int) Moment {
	m.Offset = offset
	m.OffsetIsSet = true
	return m
}

func TestMomentTime(t *testing.T) {
	moment, ok := Parse("2025-06-18T10:30:00+02:00")
	require.True(t, ok)
	instant, ok := moment.Time()
	require.True(t, ok)
	require.Equal(t, "2025-06-18T10:30:00+02:00", instant.Format(time.RFC3339))

	moment, ok = Parse("2025-06-18T10:30:00.5Z")
	require.True(t, ok)
	instant, ok = moment.Time()
	require.True(t, ok)
	require.Equal(t, "2025-06-18T10:30:00.5Z", instant.Format(time.RFC3339Nano))

	// Every clock field and the offset must be known to name an instant.
	partials := []string{
		"2025-06-18",
		"2025-06-18T10:30",
		"2025-06-18T10:30:00",
		"Wed, 18 Jun 2025 10:30:00 EST",
	}
	for _, partial := range partials {
		moment, ok = Parse(partial)
		require.True(t, ok, partial)
		_, ok = moment.Time()
		require.False(t, ok, partial)
	}
}

func TestMomentEqual(t *testing.T) {
	moment, ok := Parse("2025-06-18")
	require.True(t, ok)
	require.True(t, moment.Equal(moment))

	midnight := moment
	midnight.HourIsSet = true
	require.False(t, moment.Equal(midnight))

	utc := moment
	utc.OffsetIsSet = true
	require.False(t, moment.Equal(utc))
}

func TestMomentJSON(t *testing.T) {
	moment, ok := Parse("2025-06-18T10:30:00Z")
	require.True(t, ok)

	data, err := json.Marshal(moment)
	require.NoError(t, err)
	require.Equal(t, `"2025-06-18T10:30:00Z"`, string(data))

	var decoded Moment
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.True(t, moment.Equal(decoded))

	require.Error(t, json.Unmarshal([]byte(`"not a date"`), &decoded))
	require.Error(t, json.Unmarshal([]byte(`42`), &decoded))
}
