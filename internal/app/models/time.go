package models

import (
	"bytes"
	"fmt"
	"time"

	"docplanner-gateway/internal/pkg/constvars"

	"github.com/goccy/go-json"
)

var dateTimeLayouts = []struct {
	layout   string
	zoneless bool
}{
	{time.RFC3339Nano, false},
	{constvars.LayoutLocalDateTime, true},
	{constvars.LayoutBookingTimestamp, true},
}

// DateTime is a timestamp that decodes every format the slot service is
// known to emit. Values with an offset keep it when encoded again; values
// without one are held as UTC wall clock and encoded without a zone.
type DateTime struct {
	time.Time
	zoneless bool
}

func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t}
}

func ParseDateTime(value string) (DateTime, error) {
	for _, candidate := range dateTimeLayouts {
		parsed, err := time.Parse(candidate.layout, value)
		if err == nil {
			return DateTime{Time: parsed, zoneless: candidate.zoneless}, nil
		}
	}
	return DateTime{}, fmt.Errorf("unsupported timestamp %q", value)
}

// WallClock returns zone-less values as read and converts the rest to
// time.Local, the configured application timezone.
func (d DateTime) WallClock() time.Time {
	if d.zoneless {
		return d.Time
	}
	return d.Time.In(time.Local)
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.zoneless {
		return json.Marshal(d.Time.Format(constvars.LayoutLocalDateTimeOut))
	}
	return json.Marshal(d.Time.Format(time.RFC3339Nano))
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = DateTime{}
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := ParseDateTime(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
