package daykey

import (
	"errors"
	"testing"
)

func TestNormalizeNumericKeys(t *testing.T) {
	for n := 0; n <= 6; n++ {
		day, err := Normalize(WeekDay(n).Key())
		if err != nil {
			t.Fatalf("unexpected error for key %d: %v", n, err)
		}
		if int(day) != n {
			t.Fatalf("expected %d, got %d", n, day)
		}
	}
}

func TestNormalizeSevenFoldsToSunday(t *testing.T) {
	day, err := Normalize("7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if day != Sunday {
		t.Fatalf("expected Sunday, got %v", day)
	}

	zero, err := Normalize("0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if day != zero {
		t.Fatalf("key 7 and key 0 must normalize to the same day")
	}
}

func TestNormalizeFullNames(t *testing.T) {
	cases := map[string]WeekDay{
		"Понедельник": Monday,
		"вторник":     Tuesday,
		"СРЕДА":       Wednesday,
		"Четверг":     Thursday,
		"Пятница":     Friday,
		"Суббота":     Saturday,
		"Воскресенье": Sunday,
	}
	for raw, want := range cases {
		got, err := Normalize(raw)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", raw, err)
		}
		if got != want {
			t.Fatalf("%q: expected %v, got %v", raw, want, got)
		}
	}
}

func TestNormalizeAbbreviations(t *testing.T) {
	cases := map[string]WeekDay{
		"Пн": Monday,
		"вт": Tuesday,
		"Ср": Wednesday,
		"чт": Thursday,
		"Пт": Friday,
		"сб": Saturday,
		"Вс": Sunday,
	}
	for raw, want := range cases {
		got, err := Normalize(raw)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", raw, err)
		}
		if got != want {
			t.Fatalf("%q: expected %v, got %v", raw, want, got)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, day := range All() {
		again, err := Normalize(day.Key())
		if err != nil {
			t.Fatalf("unexpected error for %v: %v", day, err)
		}
		if again != day {
			t.Fatalf("normalize of canonical key changed %v to %v", day, again)
		}
	}
}

func TestNormalizeInvalid(t *testing.T) {
	for _, raw := range []string{"", "8", "-1", "Mondays", "Пнд", "завтра", "99"} {
		if _, err := Normalize(raw); !errors.Is(err, ErrInvalidDayKey) {
			t.Fatalf("expected ErrInvalidDayKey for %q, got %v", raw, err)
		}
	}
}

func TestFromIntRange(t *testing.T) {
	if _, err := FromInt(8); !errors.Is(err, ErrInvalidDayKey) {
		t.Fatal("expected error for 8")
	}
	if _, err := FromInt(-1); !errors.Is(err, ErrInvalidDayKey) {
		t.Fatal("expected error for -1")
	}
	day, err := FromInt(7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if day != Sunday {
		t.Fatalf("expected Sunday for 7, got %v", day)
	}
}

func TestKeyKind(t *testing.T) {
	cases := map[string]Kind{
		"3":           KindNumeric,
		"7":           KindNumeric,
		"Понедельник": KindFullName,
		"пятница":     KindFullName,
		"Сб":          KindAbbrev,
		"вс":          KindAbbrev,
		"ерунда":      KindUnknown,
	}
	for raw, want := range cases {
		if got := KeyKind(raw); got != want {
			t.Fatalf("%q: expected kind %d, got %d", raw, want, got)
		}
	}
}

func TestAllCoversWeek(t *testing.T) {
	days := All()
	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	seen := map[WeekDay]bool{}
	for _, d := range days {
		if seen[d] {
			t.Fatalf("duplicate day %v", d)
		}
		seen[d] = true
	}
}
