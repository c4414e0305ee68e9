package caldate

import (
	"fmt"
	"strconv"
	"strings"
)

// Clock is a wall-clock time at HH:MM resolution.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock accepts HH:MM, HH.MM and HH:MM:SS (seconds discarded). The salon
// API is known to emit all three.
func ParseClock(value string) (Clock, error) {
	s := strings.TrimSpace(value)
	s = strings.ReplaceAll(s, ".", ":")
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return Clock{}, fmt.Errorf("invalid clock time '%s'", value)
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return Clock{}, fmt.Errorf("invalid clock time '%s'", value)
	}
	return Clock{Hour: h, Minute: m}, nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

// DecimalHours returns the clock time as fractional hours (10:30 -> 10.5),
// the unit the grid builder lays intervals out in.
func (c Clock) DecimalHours() float64 {
	return float64(c.Hour) + float64(c.Minute)/60.0
}

func (c Clock) Before(other Clock) bool {
	return c.Minutes() < other.Minutes()
}

// MarshalText lets Clock render as "HH:MM" in JSON payloads.
func (c Clock) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Clock) UnmarshalText(text []byte) error {
	parsed, err := ParseClock(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
