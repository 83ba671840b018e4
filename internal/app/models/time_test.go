package models

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTime_UnmarshalJSON(t *testing.T) {
	want := time.Date(2023, 11, 20, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    string
		want     time.Time
		zoneless bool
	}{
		{"RFC3339 UTC", `"2023-11-20T09:30:00Z"`, want, false},
		{"RFC3339 with offset", `"2023-11-20T10:30:00+01:00"`, want, false},
		{"RFC3339 with fraction", `"2023-11-20T09:30:00.250Z"`, want.Add(250 * time.Millisecond), false},
		{"Local date time", `"2023-11-20T09:30:00"`, want, true},
		{"Local date time with fraction", `"2023-11-20T09:30:00.1234567"`, want.Add(123456700 * time.Nanosecond), true},
		{"Booking timestamp", `"2023-11-20 09:30:00"`, want, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got DateTime
			require.NoError(t, json.Unmarshal([]byte(tt.input), &got))
			assert.True(t, tt.want.Equal(got.Time), "got %s", got.Time)
			assert.Equal(t, tt.zoneless, got.zoneless)
		})
	}
}

func TestDateTime_UnmarshalJSON_Invalid(t *testing.T) {
	var got DateTime
	assert.Error(t, json.Unmarshal([]byte(`"20/11/2023"`), &got))
	assert.Error(t, json.Unmarshal([]byte(`42`), &got))
}

func TestDateTime_Null(t *testing.T) {
	got := NewDateTime(time.Now())
	require.NoError(t, json.Unmarshal([]byte(`null`), &got))
	assert.True(t, got.IsZero())
}

func TestDateTime_RoundTripKeepsShape(t *testing.T) {
	for _, raw := range []string{
		`"2023-06-20T11:10:00"`,
		`"2023-06-20T11:10:00.5"`,
		`"2023-06-20T11:10:00Z"`,
		`"2023-06-20T11:10:00+02:00"`,
		`"2024-02-29T23:59:59.123Z"`,
		`"2023-06-20T11:10:00.1234567-05:00"`,
	} {
		var decoded DateTime
		require.NoError(t, json.Unmarshal([]byte(raw), &decoded), raw)

		encoded, err := json.Marshal(decoded)
		require.NoError(t, err, raw)
		assert.Equal(t, raw, string(encoded))
	}
}

func TestDateTime_NewDateTimeKeepsLocation(t *testing.T) {
	zone := time.FixedZone("WET", 0)
	original := NewDateTime(time.Date(2024, 7, 1, 10, 0, 0, 0, time.FixedZone("CEST", 2*3600)))

	encoded, err := json.Marshal(original)
	require.NoError(t, err)
	assert.Equal(t, `"2024-07-01T10:00:00+02:00"`, string(encoded))

	previous := time.Local
	time.Local = zone
	t.Cleanup(func() { time.Local = previous })

	assert.Equal(t, 8, original.WallClock().Hour())
}

func TestDateTime_WallClockKeepsZonelessValues(t *testing.T) {
	previous := time.Local
	time.Local = time.FixedZone("UTC+5", 5*3600)
	t.Cleanup(func() { time.Local = previous })

	zoneless, err := ParseDateTime("2023-06-20T11:10:00")
	require.NoError(t, err)
	assert.Equal(t, 11, zoneless.WallClock().Hour())

	withOffset, err := ParseDateTime("2023-06-20T11:10:00Z")
	require.NoError(t, err)
	assert.Equal(t, 16, withOffset.WallClock().Hour())
}
