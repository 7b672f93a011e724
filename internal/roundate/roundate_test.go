package roundate

import (
	"testing"

	"github.com/dround/dround/internal/calendar"
)

func TestRound_DurDay_ForwardWithinMonth(t *testing.T) {
	// rounding forward to day 31 from the 1st stays within March.
	v := calendar.NewYMD(2012, 3, 1)
	d := calendar.Duration{Tag: calendar.DurDay, DV: 31}
	got := Round(v, d, false)
	want := calendar.NewYMD(2012, 3, 31)
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRound_DurDay_BackwardRollsMonthAndClamps(t *testing.T) {
	// rounding backward to day 31 rolls into February and clamps to its leap-year ultimo.
	v := calendar.NewYMD(2012, 3, 1)
	d := calendar.Duration{Tag: calendar.DurDay, DV: -31}
	got := Round(v, d, false)
	want := calendar.NewYMD(2012, 2, 29)
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRound_DurYMCW_NextSunday(t *testing.T) {
	// a Thursday rounds forward to the following Sunday.
	v := calendar.NewYMD(2012, 3, 1)
	d := calendar.Duration{Tag: calendar.DurYMCW, TargetWeekday: 7}
	got := Round(v, d, false)
	want := calendar.NewYMD(2012, 3, 4)
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRound_DurYMCW_NextForcesAdvanceWhenAlreadyOnTarget(t *testing.T) {
	// already on a Sunday, but --next forces advance to the following one.
	v := calendar.NewYMD(2012, 3, 4)
	d := calendar.Duration{Tag: calendar.DurYMCW, TargetWeekday: 7}
	got := Round(v, d, true)
	want := calendar.NewYMD(2012, 3, 11)
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRound_DurYMCW_IdempotentOnBoundary(t *testing.T) {
	v := calendar.NewYMD(2012, 3, 4) // already a Sunday
	d := calendar.Duration{Tag: calendar.DurYMCW, TargetWeekday: 7}
	got := Round(v, d, false)
	if got != v {
		t.Errorf("already on target weekday with nextp=false must be identity: got %v", got)
	}
}

func TestRound_DurYMD_MonthOfYear_ClampsToUltimo(t *testing.T) {
	v := calendar.NewYMD(2024, 1, 31)
	d := calendar.Duration{Tag: calendar.DurYMD, TargetMonth: 2}
	got := Round(v, d, false)
	want := calendar.NewYMD(2024, 2, 29) // 2024 is a leap year
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRound_DurYMD_BackwardRollsYear(t *testing.T) {
	v := calendar.NewYMD(2024, 2, 15)
	d := calendar.Duration{Tag: calendar.DurYMD, TargetMonth: 11, Neg: true}
	got := Round(v, d, false)
	want := calendar.NewYMD(2023, 11, 15)
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRound_DurBizda_Forward(t *testing.T) {
	v := calendar.NewBizda(2012, 3, 1)
	d := calendar.Duration{Tag: calendar.DurBizda, DV: 20}
	got := Round(v, d, false)
	want := calendar.NewBizda(2012, 3, 20)
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRound_DurWeek_Forward(t *testing.T) {
	v := calendar.NewYWD(2021, 1, 3)
	d := calendar.Duration{Tag: calendar.DurWeek, DV: 52}
	got := Round(v, d, false)
	want := calendar.NewYWD(2021, 52, 3)
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRound_UnsupportedCombinationIsNoop(t *testing.T) {
	v := calendar.NewYMCW(2012, 3, 1, 4)
	d := calendar.Duration{Tag: calendar.DurDay, DV: 15} // DURD only applies to YMD
	got := Round(v, d, false)
	if got != v {
		t.Errorf("mismatched (duration tag, value tag) must be a no-op: got %v", got)
	}
}

func TestRound_PreservesRepresentationTag(t *testing.T) {
	for _, v := range []calendar.Value{
		calendar.NewYMD(2020, 6, 10),
		calendar.NewYMCW(2020, 6, 2, 3),
		calendar.NewBizda(2020, 6, 5),
		calendar.NewYWD(2020, 10, 3),
	} {
		d := calendar.Duration{Tag: calendar.DurYMCW, TargetWeekday: 5}
		got := Round(v, d, false)
		if got.Tag != v.Tag {
			t.Errorf("Round changed tag from %v to %v", v.Tag, got.Tag)
		}
	}
}
