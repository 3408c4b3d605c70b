package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// BirthLayout is the accepted registration format, e.g. "1990-01-15 08:30".
const BirthLayout = "2006-01-02 15:04"

var (
	ErrBadBirth      = errors.New("invalid birth timestamp")
	ErrBadNotifyTime = errors.New("invalid notify time")
)

// ParseBirth parses "YYYY-MM-DD HH:MM" in the given location.
func ParseBirth(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(BirthLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadBirth, s)
	}
	return t, nil
}

// ParseNotifyTime parses "HH:MM" into hour and minute.
func ParseNotifyTime(s string) (hour, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q, expected HH:MM", ErrBadNotifyTime, s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("%w: bad hour in %q", ErrBadNotifyTime, s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: bad minute in %q", ErrBadNotifyTime, s)
	}
	return hour, minute, nil
}
