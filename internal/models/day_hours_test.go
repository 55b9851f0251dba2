package models

import (
	"errors"
	"testing"
)

func TestDayHoursValidateWorking(t *testing.T) {
	hours := DayHours{Start: "09:00", End: "18:00", IsWorking: true}
	if err := hours.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDayHoursValidateMissingTimes(t *testing.T) {
	cases := []DayHours{
		{Start: "", End: "18:00", IsWorking: true},
		{Start: "09:00", End: "", IsWorking: true},
		{Start: "", End: "", IsWorking: true},
		{Start: "", End: "", IsWorking: false},
	}
	for i, hours := range cases {
		if err := hours.Validate(); !errors.Is(err, ErrInvalidDayHours) {
			t.Fatalf("case %d: expected ErrInvalidDayHours, got %v", i, err)
		}
	}
}

func TestDayHoursValidateStartNotBeforeEnd(t *testing.T) {
	hours := DayHours{Start: "18:00", End: "09:00", IsWorking: true}
	if err := hours.Validate(); !errors.Is(err, ErrInvalidDayHours) {
		t.Fatalf("expected ErrInvalidDayHours, got %v", err)
	}

	equal := DayHours{Start: "09:00", End: "09:00", IsWorking: true}
	if err := equal.Validate(); !errors.Is(err, ErrInvalidDayHours) {
		t.Fatalf("expected ErrInvalidDayHours for equal times, got %v", err)
	}
}

func TestDayHoursValidateMalformed(t *testing.T) {
	cases := []DayHours{
		{Start: "9 утра", End: "18:00", IsWorking: true},
		{Start: "09:00", End: "25:00", IsWorking: true},
		{Start: "09:61", End: "18:00", IsWorking: true},
	}
	for i, hours := range cases {
		if err := hours.Validate(); !errors.Is(err, ErrInvalidDayHours) {
			t.Fatalf("case %d: expected ErrInvalidDayHours, got %v", i, err)
		}
	}
}

func TestDayOffSentinelIsValid(t *testing.T) {
	sentinel := DayOff()
	if sentinel.IsWorking {
		t.Fatal("sentinel must not be a working day")
	}
	if sentinel.Start != "00:00" || sentinel.End != "00:00" {
		t.Fatalf("sentinel must carry both times, got %q-%q", sentinel.Start, sentinel.End)
	}
	// Сентинель обязан переживать мягкое чтение
	if err := sentinel.Validate(); err != nil {
		t.Fatalf("sentinel must validate: %v", err)
	}
}

func TestParseClock(t *testing.T) {
	minutes, err := ParseClock("09:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if minutes != 570 {
		t.Fatalf("expected 570, got %d", minutes)
	}

	if _, err := ParseClock("24:00"); err == nil {
		t.Fatal("expected error for 24:00")
	}
	if _, err := ParseClock("0900"); err == nil {
		t.Fatal("expected error for missing colon")
	}
}

func TestFormatClockRoundTrip(t *testing.T) {
	for _, clock := range []string{"00:00", "09:05", "18:00", "23:59"} {
		minutes, err := ParseClock(clock)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", clock, err)
		}
		if got := FormatClock(minutes); got != clock {
			t.Fatalf("round trip of %q produced %q", clock, got)
		}
	}
}

func TestRawDayHoursLegacyWorkingFlag(t *testing.T) {
	// Записи без is_working созданы до появления флага и считаются рабочими
	legacy := RawDayHours{Start: "09:00", End: "18:00"}
	if !legacy.Hours().IsWorking {
		t.Fatal("legacy entry without is_working must be treated as working")
	}

	off := false
	explicit := RawDayHours{Start: "00:00", End: "00:00", IsWorking: &off}
	if explicit.Hours().IsWorking {
		t.Fatal("explicit is_working=false must be kept")
	}
}

func TestWeeklyScheduleCloneIndependence(t *testing.T) {
	original := NewWeeklySchedule(1, true)
	original.Days[0] = DayHours{Start: "09:00", End: "18:00", IsWorking: true}
	original.Raw["Понедельник"] = DayHours{Start: "10:00", End: "19:00", IsWorking: true}

	copied := original.Clone()
	entry := copied.Days[0]
	entry.Start = "11:00"
	copied.Days[0] = entry

	if original.Days[0].Start != "09:00" {
		t.Fatal("mutating the clone changed the original")
	}
	if copied.EmployeeID != original.EmployeeID || copied.ShowSunday != original.ShowSunday {
		t.Fatal("clone lost schedule attributes")
	}
}
