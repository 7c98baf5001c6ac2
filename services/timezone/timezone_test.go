package timezone

import (
	"testing"
	"time"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func mustLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("LoadLocation(%s): %v", name, err)
	}
	return loc
}

func TestIsValidTimezone(t *testing.T) {
	svc := NewService(nil)

	for _, id := range []string{"America/New_York", "Europe/Berlin", "UTC", "Asia/Tokyo"} {
		if !svc.IsValidTimezone(id) {
			t.Errorf("%s should be valid", id)
		}
	}
	for _, id := range []string{"", "Local", "Mars/Olympus", "America/NotACity"} {
		if svc.IsValidTimezone(id) {
			t.Errorf("%s should be invalid", id)
		}
	}
}

func TestNowInTimezone(t *testing.T) {
	// 12:00 UTC is 08:00 in New York during EDT.
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	svc := NewService(fixedClock{t: now})

	got, err := svc.NowInTimezone("America/New_York")
	if err != nil {
		t.Fatalf("NowInTimezone: %v", err)
	}
	if got.Hour() != 8 {
		t.Fatalf("expected 08:00 local, got %02d:00", got.Hour())
	}

	if _, err := svc.NowInTimezone("Nowhere/Nope"); err == nil {
		t.Fatal("expected error for unknown timezone")
	}
}

func TestIsTimeInPast(t *testing.T) {
	loc := mustLocation(t, "America/New_York")
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, loc)
	svc := NewService(fixedClock{t: now})

	past, err := svc.IsTimeInPast("11:59", "2026-06-15", "America/New_York")
	if err != nil || !past {
		t.Fatalf("11:59 should be past (err=%v)", err)
	}
	past, err = svc.IsTimeInPast("12:01", "2026-06-15", "America/New_York")
	if err != nil || past {
		t.Fatalf("12:01 should not be past (err=%v)", err)
	}
	// Same wall-clock time the next day.
	past, err = svc.IsTimeInPast("12:00", "2026-06-16", "America/New_York")
	if err != nil || past {
		t.Fatalf("tomorrow noon should not be past (err=%v)", err)
	}
}

func TestConvertAcrossTimezones(t *testing.T) {
	svc := NewService(nil)

	got, err := svc.Convert("09:00", "2026-06-15", "America/New_York", "America/Chicago")
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if got != "08:00" {
		t.Fatalf("expected 08:00, got %s", got)
	}

	got, err = svc.Convert("23:30", "2026-06-15", "America/Los_Angeles", "America/New_York")
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if got != "02:30" {
		t.Fatalf("expected 02:30, got %s", got)
	}
}

func TestLocalInstantEndOfDay(t *testing.T) {
	svc := NewService(nil)
	loc := mustLocation(t, "America/New_York")

	got, err := svc.LocalInstant("24:00", "2026-06-15", "America/New_York")
	if err != nil {
		t.Fatalf("LocalInstant: %v", err)
	}
	want := time.Date(2026, 6, 16, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
