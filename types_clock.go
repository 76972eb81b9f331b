package ledger

import (
	"encoding/json"
	"fmt"
	"regexp"
	"time"
)

// ClockFormat is the 24-hour, zero-padded format of a time of day.
const ClockFormat = "15:04:05"

// Clock represents a wall-clock time of day with second precision and no time zone.
type Clock struct {
	h, m, s int
}

// NewClock returns the Clock for the given hour, minute and second.
// Out of range values are wrapped around a 24 hours day.
func NewClock(hour, min, sec int) Clock {
	n := ((hour*60+min)*60 + sec) % (24 * 3600)
	if n < 0 {
		n += 24 * 3600
	}
	return Clock{h: n / 3600, m: n / 60 % 60, s: n % 60}
}

// ClockOf returns the time of day of t, in t's location, truncated to the second.
func ClockOf(t time.Time) Clock { return NewClock(t.Clock()) }

// Hour returns the hour, in [0, 23].
func (c Clock) Hour() int { return c.h }

// Minute returns the minute, in [0, 59].
func (c Clock) Minute() int { return c.m }

// Second returns the second, in [0, 59].
func (c Clock) Second() int { return c.s }

// String formats the clock as HH:MM:SS.
func (c Clock) String() string { return fmt.Sprintf("%02d:%02d:%02d", c.h, c.m, c.s) }

// seconds returns the number of seconds since midnight.
func (c Clock) seconds() int { return (c.h*60+c.m)*60 + c.s }

// Before reports whether c is earlier in the day than x.
func (c Clock) Before(x Clock) bool { return c.seconds() < x.seconds() }

// After reports whether c is later in the day than x.
func (c Clock) After(x Clock) bool { return c.seconds() > x.seconds() }

// Compare returns -1, 0 or +1 depending on whether c is before, equal to or after x.
func (c Clock) Compare(x Clock) int { return cmpInt(c.seconds(), x.seconds()) }

var clockRE = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`)

// DecodeClock parses a time of day in the strict HH:MM:SS form used in the ledger file.
func DecodeClock(str string) (Clock, error) {
	if !clockRE.MatchString(str) {
		return Clock{}, fmt.Errorf("invalid time %q want format %q", str, ClockFormat)
	}
	t, err := time.Parse(ClockFormat, str)
	if err != nil {
		return Clock{}, fmt.Errorf("invalid time %q: %w", str, err)
	}
	return ClockOf(t), nil
}

func (c Clock) MarshalJSON() ([]byte, error) {
	str := c.String()
	return json.Marshal(&str)
}

// UnmarshalJSON reads a clock from its HH:MM:SS json string.
func (c *Clock) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	v, err := DecodeClock(str)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

var _ json.Marshaler = (*Clock)(nil)
var _ json.Unmarshaler = (*Clock)(nil)
