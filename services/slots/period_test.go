package slots

import (
	"testing"

	"vetbook/models"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:05", 9*60 + 5, false},
		{"23:59", 23*60 + 59, false},
		{"24:00", EndOfDay, false},
		{"24:01", 0, true},
		{"9:00", 0, true},
		{"09:60", 0, true},
		{"0905", 0, true},
		{"", 0, true},
		{"ab:cd", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseTimeOfDay(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseTimeOfDay(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTimeOfDay(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseTimeOfDay(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestTimeOfDayString(t *testing.T) {
	if got := TimeOfDay(9*60 + 5).String(); got != "09:05" {
		t.Errorf("got %q, want 09:05", got)
	}
	if got := EndOfDay.String(); got != "24:00" {
		t.Errorf("got %q, want 24:00", got)
	}
}

func TestParsePeriodRules(t *testing.T) {
	if _, err := parsePeriod(models.Period{Start: "24:00", End: "24:00"}); err == nil {
		t.Error("end-of-day start must be rejected")
	}
	if _, err := parsePeriod(models.Period{Start: "10:00", End: "10:00"}); err == nil {
		t.Error("zero-length period must be rejected")
	}
	w, err := parsePeriod(models.Period{Start: "22:00", End: "24:00"})
	if err != nil {
		t.Fatalf("end-of-day period rejected: %v", err)
	}
	if w.end != EndOfDay {
		t.Errorf("period end = %d, want EndOfDay", w.end)
	}
}

func TestCarveDropsConflictingCandidates(t *testing.T) {
	w := window{start: 9 * 60, end: 12 * 60}
	conflict := window{start: 10 * 60, end: 10*60 + 30}

	carved, skipped := carve(w, 30, 0, []window{conflict})
	if skipped != 1 {
		t.Fatalf("expected 1 skipped, got %d", skipped)
	}
	for _, c := range carved {
		if c.overlaps(conflict) {
			t.Fatalf("carved window %v overlaps conflict", c)
		}
	}
	if len(carved) != 5 {
		t.Fatalf("expected 5 surviving windows, got %d", len(carved))
	}
}

func TestCarveRemainderMinutesAreDropped(t *testing.T) {
	// 100 minutes of availability fits three 30-minute slots; the trailing
	// 10 minutes are discarded.
	carved, _ := carve(window{start: 0, end: 100}, 30, 0, nil)
	if len(carved) != 3 {
		t.Fatalf("expected 3 windows, got %d", len(carved))
	}
}
