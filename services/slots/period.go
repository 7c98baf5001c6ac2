package slots

import (
	"fmt"
	"regexp"
	"strconv"

	"vetbook/models"
)

// TimeOfDay is a local time expressed as minutes from midnight. EndOfDay
// (1440) stands for the "24:00" end-of-day marker, which is valid only as a
// period or slot end, never as a start.
type TimeOfDay int

const (
	minutesPerDay           = 24 * 60
	EndOfDay      TimeOfDay = minutesPerDay
)

var hhmmRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// ParseTimeOfDay parses an "HH:mm" string. "24:00" is accepted and resolves
// to EndOfDay; everything else must be a well-formed 24-hour time.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if s == "24:00" {
		return EndOfDay, nil
	}
	m := hhmmRe.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("malformed time %q, want HH:mm", s)
	}
	h, _ := strconv.Atoi(m[1])
	min, _ := strconv.Atoi(m[2])
	return TimeOfDay(h*60 + min), nil
}

// String renders the time back to "HH:mm"; EndOfDay renders as "24:00".
func (t TimeOfDay) String() string {
	if t == EndOfDay {
		return "24:00"
	}
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// window is a half-open local time interval [start, end).
type window struct {
	start TimeOfDay
	end   TimeOfDay
}

func (w window) overlaps(o window) bool {
	return w.start < o.end && o.start < w.end
}

// parsePeriod validates and converts an input availability window.
func parsePeriod(p models.Period) (window, error) {
	start, err := ParseTimeOfDay(p.Start)
	if err != nil {
		return window{}, err
	}
	if start == EndOfDay {
		return window{}, fmt.Errorf("period start must not be %q", p.Start)
	}
	end, err := ParseTimeOfDay(p.End)
	if err != nil {
		return window{}, err
	}
	if end <= start {
		return window{}, fmt.Errorf("period end %q must be after start %q", p.End, p.Start)
	}
	return window{start: start, end: end}, nil
}

func parsePeriods(periods []models.Period) ([]window, error) {
	if len(periods) == 0 {
		return nil, fmt.Errorf("at least one period is required")
	}
	windows := make([]window, 0, len(periods))
	for i, p := range periods {
		w, err := parsePeriod(p)
		if err != nil {
			return nil, fmt.Errorf("period %d: %w", i+1, err)
		}
		windows = append(windows, w)
	}
	return windows, nil
}

// slotWindow converts a stored slot's times back into a window.
func slotWindow(s models.Slot) (window, error) {
	start, err := ParseTimeOfDay(s.StartTime)
	if err != nil {
		return window{}, err
	}
	end, err := ParseTimeOfDay(s.EndTime)
	if err != nil {
		return window{}, err
	}
	return window{start: start, end: end}, nil
}

// carve partitions w into consecutive slot windows of the given duration,
// advancing the cursor by duration+buffer, and drops any candidate that
// overlaps one of the conflict windows. It returns the surviving windows and
// the number of candidates dropped.
func carve(w window, duration, buffer int, conflicts []window) ([]window, int) {
	var out []window
	skipped := 0
	step := TimeOfDay(duration + buffer)
	for cur := w.start; cur+TimeOfDay(duration) <= w.end; cur += step {
		cand := window{start: cur, end: cur + TimeOfDay(duration)}
		if overlapsAny(cand, conflicts) {
			skipped++
			continue
		}
		out = append(out, cand)
	}
	return out, skipped
}

func overlapsAny(w window, conflicts []window) bool {
	for _, c := range conflicts {
		if w.overlaps(c) {
			return true
		}
	}
	return false
}
