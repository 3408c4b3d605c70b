package domain

import (
	"testing"
	"time"
)

var msk = time.FixedZone("UTC+3", 3*60*60)

func TestComputeStats_OneWeek(t *testing.T) {
	ref := time.Date(2000, time.January, 1, 0, 0, 0, 0, msk)
	now := time.Date(2000, time.January, 8, 0, 0, 0, 0, msk)

	st := ComputeStats(ref, now)
	want := Stats{Days: 7, Weeks: 1, Months: 0, Years: 0}
	if st != want {
		t.Fatalf("want %+v, got %+v", want, st)
	}
}

func TestComputeStats_LeapYearSpan(t *testing.T) {
	ref := time.Date(2000, time.January, 1, 0, 0, 0, 0, msk)
	now := time.Date(2001, time.January, 1, 0, 0, 0, 0, msk)

	st := ComputeStats(ref, now)
	// 2000 is a leap year: 366 days; 366/30.4375 ≈ 12.02, 366/365.2425 ≈ 1.002.
	want := Stats{Days: 366, Weeks: 52, Months: 12, Years: 1}
	if st != want {
		t.Fatalf("want %+v, got %+v", want, st)
	}
}

func TestComputeStats_DecadesSpan(t *testing.T) {
	ref := time.Date(1990, time.January, 15, 8, 30, 0, 0, msk)
	now := time.Date(2024, time.January, 15, 8, 30, 0, 0, msk)

	st := ComputeStats(ref, now)
	if st.Days != 12418 {
		t.Fatalf("want 12418 days, got %d", st.Days)
	}
	if st.Weeks != st.Days/7 {
		t.Fatalf("weeks must equal days/7: %+v", st)
	}
	if st.Months != 407 || st.Years != 33 {
		t.Fatalf("want months=407 years=33, got %+v", st)
	}
}

func TestComputeStats_PartialDayTruncates(t *testing.T) {
	ref := time.Date(2024, time.March, 1, 10, 0, 0, 0, msk)
	now := time.Date(2024, time.March, 2, 9, 59, 0, 0, msk)

	if st := ComputeStats(ref, now); st.Days != 0 {
		t.Fatalf("want 0 full days, got %d", st.Days)
	}
}

func TestComputeStats_FutureReferenceGoesNegative(t *testing.T) {
	ref := time.Date(2030, time.January, 1, 0, 0, 0, 0, msk)
	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, msk)

	st := ComputeStats(ref, now)
	if st.Days >= 0 {
		t.Fatalf("future reference must yield negative days, got %d", st.Days)
	}
	if st.Days != -2192 {
		t.Fatalf("want -2192 days (truncated toward zero), got %d", st.Days)
	}
}

func TestComputeStats_FutureWithinADayIsZero(t *testing.T) {
	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, msk)
	ref := now.Add(time.Hour)

	// Truncation is toward zero, not a floor: one hour ahead is still day 0.
	if st := ComputeStats(ref, now); st.Days != 0 {
		t.Fatalf("want 0 days for a reference 1h ahead, got %d", st.Days)
	}
}

func TestComputeStats_Deterministic(t *testing.T) {
	ref := time.Date(1995, time.June, 10, 12, 0, 0, 0, msk)
	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, msk)

	if a, b := ComputeStats(ref, now), ComputeStats(ref, now); a != b {
		t.Fatalf("stats must be deterministic: %+v vs %+v", a, b)
	}
}
