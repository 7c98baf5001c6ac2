package slots

import (
	"context"
	"fmt"
	"sort"
	"time"

	slotRepo "vetbook/database/repository/slot"
	"vetbook/models"
	"vetbook/services/timezone"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// slotRepoStub is an in-memory SlotRepository backed by a slice.
type slotRepoStub struct {
	slots     []models.Slot
	insertErr error
	nextID    int
}

func (s *slotRepoStub) key(sl models.Slot) string {
	return sl.VetID + "|" + sl.Date + "|" + sl.StartTime + "|" + sl.Timezone
}

func (s *slotRepoStub) has(sl models.Slot) bool {
	for _, existing := range s.slots {
		if s.key(existing) == s.key(sl) {
			return true
		}
	}
	return false
}

func (s *slotRepoStub) add(sl models.Slot) {
	s.nextID++
	if sl.ID == "" {
		sl.ID = fmt.Sprintf("slot-%d", s.nextID)
	}
	s.slots = append(s.slots, sl)
}

func (s *slotRepoStub) InsertMany(ctx context.Context, in []models.Slot) (int, error) {
	if s.insertErr != nil {
		return 0, s.insertErr
	}
	for _, sl := range in {
		s.add(sl)
	}
	return len(in), nil
}

func (s *slotRepoStub) InsertManyUnordered(ctx context.Context, in []models.Slot) (int, error) {
	if s.insertErr != nil {
		return 0, s.insertErr
	}
	created := 0
	for _, sl := range in {
		if s.has(sl) {
			continue
		}
		s.add(sl)
		created++
	}
	return created, nil
}

func (s *slotRepoStub) inRange(sl models.Slot, vetID, tz, startDate, endDate string) bool {
	return sl.VetID == vetID && sl.Timezone == tz && sl.Date >= startDate && sl.Date <= endDate
}

func (s *slotRepoStub) ExistsInRange(ctx context.Context, vetID, tz, startDate, endDate string) (bool, error) {
	for _, sl := range s.slots {
		if s.inRange(sl, vetID, tz, startDate, endDate) {
			return true, nil
		}
	}
	return false, nil
}

func (s *slotRepoStub) GetByVetAndRange(ctx context.Context, vetID, tz, startDate, endDate string) ([]models.Slot, error) {
	var out []models.Slot
	for _, sl := range s.slots {
		if s.inRange(sl, vetID, tz, startDate, endDate) {
			out = append(out, sl)
		}
	}
	sortSlots(out)
	return out, nil
}

func (s *slotRepoStub) ReplaceForRange(ctx context.Context, vetID, tz, startDate, endDate string, in []models.Slot) (int64, int, error) {
	var kept []models.Slot
	var deleted int64
	for _, sl := range s.slots {
		if s.inRange(sl, vetID, tz, startDate, endDate) && sl.Status != models.SlotStatusBooked {
			deleted++
			continue
		}
		kept = append(kept, sl)
	}
	s.slots = kept
	for _, sl := range in {
		s.add(sl)
	}
	return deleted, len(in), nil
}

func (s *slotRepoStub) List(ctx context.Context, f slotRepo.ListFilter) ([]models.Slot, int64, error) {
	var out []models.Slot
	for _, sl := range s.slots {
		if sl.VetID != f.VetID {
			continue
		}
		if f.Status != "" && sl.Status != f.Status {
			continue
		}
		if f.StartDate != "" && (sl.Date < f.StartDate || sl.Date > f.EndDate) {
			continue
		}
		out = append(out, sl)
	}
	sortSlots(out)
	total := int64(len(out))
	start := (f.Page - 1) * f.Limit
	if start > len(out) {
		start = len(out)
	}
	end := start + f.Limit
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], total, nil
}

func (s *slotRepoStub) UpdateStatusMany(ctx context.Context, f slotRepo.StatusFilter, status models.SlotStatus) (int64, error) {
	ids := make(map[string]bool, len(f.SlotIDs))
	for _, id := range f.SlotIDs {
		ids[id] = true
	}
	var modified int64
	for i := range s.slots {
		sl := &s.slots[i]
		if sl.VetID != f.VetID || sl.Status == models.SlotStatusBooked {
			continue
		}
		if len(ids) > 0 && !ids[sl.ID] {
			continue
		}
		if f.StartDate != "" && (sl.Date < f.StartDate || sl.Date > f.EndDate) {
			continue
		}
		if sl.Status != status {
			sl.Status = status
			modified++
		}
	}
	return modified, nil
}

func (s *slotRepoStub) EnsureIndexes() error { return nil }

func sortSlots(slots []models.Slot) {
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Date != slots[j].Date {
			return slots[i].Date < slots[j].Date
		}
		return slots[i].StartTime < slots[j].StartTime
	})
}

// newTestService pins the clock to now and returns the service plus its stub.
func newTestService(now time.Time) (*DefaultSlotService, *slotRepoStub) {
	stub := &slotRepoStub{}
	svc := &DefaultSlotService{
		Repo: stub,
		TZ:   timezone.NewService(fixedClock{t: now}),
	}
	return svc, stub
}

func intPtr(v int) *int { return &v }

func mustLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}
