package slots

import (
	"context"
	"testing"
	"time"

	"vetbook/models"
)

// Noon in New York, with the schedule starting the next day.
var (
	nyNoon   = time.Date(2026, 9, 10, 12, 0, 0, 0, mustLocation("America/New_York"))
	tomorrow = "2026-09-11"
)

func TestGenerateFloorCountPerDay(t *testing.T) {
	svc, stub := newTestService(nyNoon)

	// 90-minute period, 30-minute slots, no buffer: 3 slots per day over 3 days.
	summary, err := svc.Generate(context.Background(), "vet-1", GenerateRequest{
		Periods:      []models.Period{{Start: "09:00", End: "10:30"}},
		Range:        models.DateRange{Start: "2026-09-11", End: "2026-09-13"},
		Timezone:     "America/New_York",
		SlotDuration: 30,
		Buffer:       intPtr(0),
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if summary.Created != 9 {
		t.Fatalf("expected 9 slots, got %d", summary.Created)
	}
	if len(stub.slots) != 9 {
		t.Fatalf("expected 9 persisted slots, got %d", len(stub.slots))
	}
	for _, sl := range stub.slots {
		if sl.Status != models.SlotStatusAvailable {
			t.Errorf("slot %s/%s not AVAILABLE: %s", sl.Date, sl.StartTime, sl.Status)
		}
	}
}

func TestGenerateAppliesBufferBetweenSlots(t *testing.T) {
	svc, stub := newTestService(nyNoon)

	// One hour with 30-minute slots and a 5-minute buffer leaves room for one
	// slot only: the next cursor lands at 09:35 and 09:35+30 overruns 10:00.
	summary, err := svc.Generate(context.Background(), "vet-1", GenerateRequest{
		Periods:  []models.Period{{Start: "09:00", End: "10:00"}},
		Range:    models.DateRange{Start: tomorrow, End: tomorrow},
		Timezone: "America/New_York",
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if summary.Created != 1 {
		t.Fatalf("expected 1 slot, got %d", summary.Created)
	}
	if stub.slots[0].StartTime != "09:00" || stub.slots[0].EndTime != "09:30" {
		t.Fatalf("unexpected slot window %s-%s", stub.slots[0].StartTime, stub.slots[0].EndTime)
	}
}

func TestGenerateSkipsPastWindowsOnToday(t *testing.T) {
	svc, _ := newTestService(nyNoon)

	// 09:00-17:00 hourly on today with now at 12:00: everything ending at or
	// before noon is gone, leaving 12:00 through 17:00.
	summary, err := svc.Generate(context.Background(), "vet-1", GenerateRequest{
		Periods:      []models.Period{{Start: "09:00", End: "17:00"}},
		Range:        models.DateRange{Start: "2026-09-10", End: "2026-09-10"},
		Timezone:     "America/New_York",
		SlotDuration: 60,
		Buffer:       intPtr(0),
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if summary.Created != 5 {
		t.Fatalf("expected 5 slots, got %d", summary.Created)
	}
}

func TestGenerateShortPeriodYieldsNoSlots(t *testing.T) {
	svc, _ := newTestService(nyNoon)

	summary, err := svc.Generate(context.Background(), "vet-1", GenerateRequest{
		Periods:      []models.Period{{Start: "10:00", End: "10:20"}},
		Range:        models.DateRange{Start: tomorrow, End: tomorrow},
		Timezone:     "America/New_York",
		SlotDuration: 30,
		Buffer:       intPtr(0),
	})
	if err != nil {
		t.Fatalf("a too-short period must not error: %v", err)
	}
	if summary.Created != 0 {
		t.Fatalf("expected 0 slots, got %d", summary.Created)
	}
}

func TestGenerateEndOfDayPeriod(t *testing.T) {
	svc, stub := newTestService(nyNoon)

	summary, err := svc.Generate(context.Background(), "vet-1", GenerateRequest{
		Periods:      []models.Period{{Start: "23:00", End: "24:00"}},
		Range:        models.DateRange{Start: tomorrow, End: tomorrow},
		Timezone:     "America/New_York",
		SlotDuration: 30,
		Buffer:       intPtr(0),
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if summary.Created != 2 {
		t.Fatalf("expected 2 slots, got %d", summary.Created)
	}
	last := stub.slots[len(stub.slots)-1]
	if last.EndTime != "24:00" {
		t.Fatalf("expected end-of-day sentinel, got %q", last.EndTime)
	}
}

func TestGenerateValidation(t *testing.T) {
	cases := []struct {
		name string
		req  GenerateRequest
		code string
	}{
		{
			name: "invalid timezone",
			req: GenerateRequest{
				Periods:  []models.Period{{Start: "09:00", End: "10:00"}},
				Range:    models.DateRange{Start: tomorrow, End: tomorrow},
				Timezone: "Mars/Olympus",
			},
			code: CodeInvalidTimezone,
		},
		{
			name: "end before start",
			req: GenerateRequest{
				Periods:  []models.Period{{Start: "09:00", End: "10:00"}},
				Range:    models.DateRange{Start: "2026-09-13", End: "2026-09-11"},
				Timezone: "America/New_York",
			},
			code: CodeInvalidDateRange,
		},
		{
			name: "past range",
			req: GenerateRequest{
				Periods:  []models.Period{{Start: "09:00", End: "10:00"}},
				Range:    models.DateRange{Start: "2026-09-09", End: "2026-09-12"},
				Timezone: "America/New_York",
			},
			code: CodePastDateRange,
		},
		{
			name: "malformed period",
			req: GenerateRequest{
				Periods:  []models.Period{{Start: "9am", End: "10:00"}},
				Range:    models.DateRange{Start: tomorrow, End: tomorrow},
				Timezone: "America/New_York",
			},
			code: CodeInvalidPeriod,
		},
		{
			name: "period end not after start",
			req: GenerateRequest{
				Periods:  []models.Period{{Start: "10:00", End: "09:00"}},
				Range:    models.DateRange{Start: tomorrow, End: tomorrow},
				Timezone: "America/New_York",
			},
			code: CodeInvalidPeriod,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newTestService(nyNoon)
			_, err := svc.Generate(context.Background(), "vet-1", tc.req)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := ErrCode(err); got != tc.code {
				t.Fatalf("expected code %s, got %s (%v)", tc.code, got, err)
			}
		})
	}
}

func TestGenerateRejectsWholeRangeWithExistingSlots(t *testing.T) {
	svc, stub := newTestService(nyNoon)
	stub.add(models.Slot{
		VetID: "vet-1", Date: "2026-09-12", StartTime: "15:00", EndTime: "15:30",
		Timezone: "America/New_York", Status: models.SlotStatusAvailable,
	})

	_, err := svc.Generate(context.Background(), "vet-1", GenerateRequest{
		Periods:  []models.Period{{Start: "09:00", End: "10:00"}},
		Range:    models.DateRange{Start: "2026-09-11", End: "2026-09-13"},
		Timezone: "America/New_York",
	})
	if ErrCode(err) != CodeSlotsAlreadyExist {
		t.Fatalf("expected %s, got %v", CodeSlotsAlreadyExist, err)
	}
	if len(stub.slots) != 1 {
		t.Fatalf("no slots may be written on conflict, have %d", len(stub.slots))
	}
}

func TestGeneratedSlotsNeverOverlap(t *testing.T) {
	svc, stub := newTestService(nyNoon)

	_, err := svc.Generate(context.Background(), "vet-1", GenerateRequest{
		Periods: []models.Period{
			{Start: "08:00", End: "12:00"},
			{Start: "13:00", End: "18:00"},
		},
		Range:        models.DateRange{Start: "2026-09-11", End: "2026-09-14"},
		Timezone:     "America/New_York",
		SlotDuration: 45,
		Buffer:       intPtr(10),
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	byDay := make(map[string][]window)
	for _, sl := range stub.slots {
		w, err := slotWindow(sl)
		if err != nil {
			t.Fatalf("generated slot has malformed times: %v", err)
		}
		for _, other := range byDay[sl.Date] {
			if w.overlaps(other) {
				t.Fatalf("overlapping slots on %s: %v and %v", sl.Date, w, other)
			}
		}
		byDay[sl.Date] = append(byDay[sl.Date], w)
	}
}
