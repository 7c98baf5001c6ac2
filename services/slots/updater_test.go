package slots

import (
	"context"
	"testing"

	"vetbook/models"
)

func TestAddPeriodIsNoOpWhenPeriodOverlapsAnywhere(t *testing.T) {
	svc, stub := newTestService(nyNoon)
	// One existing slot on the middle day intrudes into the requested window.
	stub.add(models.Slot{
		VetID: "vet-1", Date: "2026-09-12", StartTime: "09:30", EndTime: "10:00",
		Timezone: "America/New_York", Status: models.SlotStatusAvailable,
	})

	result, err := svc.AddPeriod(context.Background(), "vet-1", AddPeriodRequest{
		Period:   models.Period{Start: "09:00", End: "10:00"},
		Range:    models.DateRange{Start: "2026-09-11", End: "2026-09-13"},
		Timezone: "America/New_York",
	})
	if err != nil {
		t.Fatalf("overlap must be a soft no-op, got error: %v", err)
	}
	if result.Created != 0 {
		t.Fatalf("expected 0 created, got %d", result.Created)
	}
	if result.Message == "" {
		t.Fatal("expected an explanatory message")
	}
	if len(stub.slots) != 1 {
		t.Fatalf("no slots may be written, have %d", len(stub.slots))
	}
}

func TestAddPeriodCreatesAcrossDays(t *testing.T) {
	svc, stub := newTestService(nyNoon)
	// An existing slot well outside the requested window must not block the add.
	stub.add(models.Slot{
		VetID: "vet-1", Date: "2026-09-11", StartTime: "14:00", EndTime: "15:00",
		Timezone: "America/New_York", Status: models.SlotStatusBooked,
	})

	result, err := svc.AddPeriod(context.Background(), "vet-1", AddPeriodRequest{
		Period:       models.Period{Start: "09:00", End: "10:00"},
		Range:        models.DateRange{Start: "2026-09-11", End: "2026-09-13"},
		Timezone:     "America/New_York",
		SlotDuration: 30,
		Buffer:       intPtr(0),
	})
	if err != nil {
		t.Fatalf("AddPeriod returned error: %v", err)
	}
	// Two 30-minute slots per day over three days.
	if result.Created != 6 {
		t.Fatalf("expected 6 created, got %d", result.Created)
	}
	if len(stub.slots) != 7 {
		t.Fatalf("expected 7 persisted slots, got %d", len(stub.slots))
	}
}

func TestAddPeriodAdvancesByDurationPlusBuffer(t *testing.T) {
	svc, stub := newTestService(nyNoon)

	_, err := svc.AddPeriod(context.Background(), "vet-1", AddPeriodRequest{
		Period:       models.Period{Start: "09:00", End: "11:00"},
		Range:        models.DateRange{Start: "2026-09-11", End: "2026-09-11"},
		Timezone:     "America/New_York",
		SlotDuration: 30,
		Buffer:       intPtr(15),
	})
	if err != nil {
		t.Fatalf("AddPeriod returned error: %v", err)
	}
	// Cursor: 09:00, 09:45, 10:30 (10:30+30 = 11:00 fits). Next is 11:15, out.
	want := []string{"09:00", "09:45", "10:30"}
	if len(stub.slots) != len(want) {
		t.Fatalf("expected %d slots, got %d", len(want), len(stub.slots))
	}
	for i, sl := range stub.slots {
		if sl.StartTime != want[i] {
			t.Errorf("slot %d starts at %s, want %s", i, sl.StartTime, want[i])
		}
	}
}

func TestAddPeriodValidation(t *testing.T) {
	svc, _ := newTestService(nyNoon)

	_, err := svc.AddPeriod(context.Background(), "vet-1", AddPeriodRequest{
		Period:   models.Period{Start: "24:00", End: "09:00"},
		Range:    models.DateRange{Start: "2026-09-11", End: "2026-09-11"},
		Timezone: "America/New_York",
	})
	if ErrCode(err) != CodeInvalidPeriod {
		t.Fatalf("expected %s, got %v", CodeInvalidPeriod, err)
	}

	_, err = svc.AddPeriod(context.Background(), "vet-1", AddPeriodRequest{
		Period:   models.Period{Start: "09:00", End: "10:00"},
		Range:    models.DateRange{Start: "2026-09-13", End: "2026-09-11"},
		Timezone: "America/New_York",
	})
	if ErrCode(err) != CodeInvalidDateRange {
		t.Fatalf("expected %s, got %v", CodeInvalidDateRange, err)
	}
}
