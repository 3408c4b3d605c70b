package domain

import (
	"fmt"
	"time"
)

// Mean Gregorian month and year lengths in days. The stats are deliberately
// not calendar-aware: months and years are approximations over whole days.
const (
	meanMonthDays = 30.4375
	meanYearDays  = 365.2425
)

// Stats is the elapsed-time tuple derived from a reference timestamp.
// It is always recomputed, never stored.
type Stats struct {
	Days   int
	Weeks  int
	Months int
	Years  int
}

// ComputeStats returns the elapsed stats between ref and now.
// Days are whole 24-hour periods, truncated toward zero; weeks are integer
// division by 7. A reference in the future yields negative values, staying
// at zero until a full day has been crossed.
func ComputeStats(ref, now time.Time) Stats {
	days := int(now.Sub(ref) / (24 * time.Hour))
	return Stats{
		Days:   days,
		Weeks:  days / 7,
		Months: int(float64(days) / meanMonthDays),
		Years:  int(float64(days) / meanYearDays),
	}
}

// Line renders the stats as a single human-readable sentence.
func (s Stats) Line() string {
	return fmt.Sprintf("Day %d of life (week %d, month %d, year %d).",
		s.Days, s.Weeks, s.Months, s.Years)
}
