package domain

import (
	"errors"
	"testing"
	"time"
)

func TestParseBirth_OK(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	got, err := ParseBirth("1990-01-15 08:30", loc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := time.Date(1990, time.January, 15, 8, 30, 0, 0, loc)
	if !got.Equal(want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestParseBirth_Invalid(t *testing.T) {
	loc := time.UTC
	for _, s := range []string{"", "2024-13-40 99:99", "yesterday", "2024-01-15", "15.01.1990 08:30"} {
		if _, err := ParseBirth(s, loc); !errors.Is(err, ErrBadBirth) {
			t.Fatalf("input %q: want ErrBadBirth, got %v", s, err)
		}
	}
}

func TestParseNotifyTime_OK(t *testing.T) {
	h, m, err := ParseNotifyTime("10:00")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if h != 10 || m != 0 {
		t.Fatalf("want 10:00, got %02d:%02d", h, m)
	}
}

func TestParseNotifyTime_Invalid(t *testing.T) {
	for _, s := range []string{"", "24:00", "10:60", "10", "ab:cd"} {
		if _, _, err := ParseNotifyTime(s); !errors.Is(err, ErrBadNotifyTime) {
			t.Fatalf("input %q: want ErrBadNotifyTime, got %v", s, err)
		}
	}
}
