package timezone

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the calendar date format slots are stored with.
	DateLayout = "2006-01-02"
	// TimeLayout is the local time-of-day format slots are stored with.
	TimeLayout = "15:04"
)

// Service answers timezone questions for the scheduling engine. It holds no
// persistent state; everything derives from the injected clock and the
// system's timezone database.
type Service struct {
	clock Clock
}

// NewService constructs a timezone service. A nil clock falls back to the
// system clock.
func NewService(clock Clock) *Service {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Service{clock: clock}
}

// Now returns the current instant from the injected clock.
func (s *Service) Now() time.Time {
	return s.clock.Now()
}

// IsValidTimezone reports whether id names a location in the timezone database.
func (s *Service) IsValidTimezone(id string) bool {
	if id == "" || id == "Local" {
		return false
	}
	_, err := time.LoadLocation(id)
	return err == nil
}

// NowInTimezone returns the current local time in the given timezone.
func (s *Service) NowInTimezone(id string) (time.Time, error) {
	loc, err := time.LoadLocation(id)
	if err != nil {
		return time.Time{}, fmt.Errorf("unknown timezone %q: %w", id, err)
	}
	return s.clock.Now().In(loc), nil
}

// TodayInTimezone returns the current calendar date in the given timezone.
func (s *Service) TodayInTimezone(id string) (string, error) {
	now, err := s.NowInTimezone(id)
	if err != nil {
		return "", err
	}
	return now.Format(DateLayout), nil
}

// LocalInstant composes a date and an HH:mm time-of-day into an absolute
// instant under tz. The end-of-day value "24:00" resolves to midnight of the
// following day.
func (s *Service) LocalInstant(hhmm, date, tz string) (time.Time, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.Time{}, fmt.Errorf("unknown timezone %q: %w", tz, err)
	}
	nextDay := false
	if hhmm == "24:00" {
		hhmm = "00:00"
		nextDay = true
	}
	t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, date+" "+hhmm, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid local time %q %q: %w", date, hhmm, err)
	}
	if nextDay {
		t = t.AddDate(0, 0, 1)
	}
	return t, nil
}

// IsTimeInPast reports whether the local time date+hhmm under tz has already
// passed.
func (s *Service) IsTimeInPast(hhmm, date, tz string) (bool, error) {
	t, err := s.LocalInstant(hhmm, date, tz)
	if err != nil {
		return false, err
	}
	return t.Before(s.clock.Now()), nil
}

// Convert re-expresses an HH:mm time-of-day on the given date from one
// timezone to another.
func (s *Service) Convert(hhmm, date, fromTz, toTz string) (string, error) {
	to, err := time.LoadLocation(toTz)
	if err != nil {
		return "", fmt.Errorf("unknown timezone %q: %w", toTz, err)
	}
	t, err := s.LocalInstant(hhmm, date, fromTz)
	if err != nil {
		return "", err
	}
	return t.In(to).Format(TimeLayout), nil
}
