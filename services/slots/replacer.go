package slots

import (
	"context"

	"vetbook/models"
	"vetbook/services/timezone"
)

// Replace regenerates a vet's full slot set for a range. Existing AVAILABLE
// and DISABLED slots are deleted and the freshly generated set inserted in
// one atomic transaction; BOOKED slots are never touched, and no new slot may
// overlap one.
func (s *DefaultSlotService) Replace(ctx context.Context, vetID string, req ReplaceRequest) (*ReplaceSummary, error) {
	duration := durationOrDefault(req.SlotDuration)
	buffer := intOrDefault(req.Buffer, DefaultReplaceBuffer)

	if !s.TZ.IsValidTimezone(req.Timezone) {
		return nil, newDomainError(CodeInvalidTimezone, "invalid timezone %q", req.Timezone)
	}
	span, err := s.parseRange(req.Range, req.Timezone)
	if err != nil {
		return nil, err
	}
	windows, err := parsePeriods(req.Periods)
	if err != nil {
		return nil, newDomainError(CodeInvalidPeriod, "%v", err)
	}

	existing, err := s.Repo.GetByVetAndRange(ctx, vetID, req.Timezone, span.startStr, span.endStr)
	if err != nil {
		return nil, wrapPersistence(err, "failed to load existing slots")
	}

	booked := 0
	bookedByDay := make(map[string][]window)
	for _, sl := range existing {
		if sl.Status != models.SlotStatusBooked {
			continue
		}
		booked++
		w, err := slotWindow(sl)
		if err != nil {
			continue
		}
		bookedByDay[sl.Date] = append(bookedByDay[sl.Date], w)
	}

	createdAt := s.TZ.Now().UTC()
	var replacement []models.Slot
	for day := span.start; !day.After(span.end); day = day.AddDate(0, 0, 1) {
		date := day.Format(timezone.DateLayout)
		for _, w := range windows {
			// Booked time is inviolable: candidates colliding with a booked
			// slot on this day are dropped.
			carved, _ := carve(w, duration, buffer, bookedByDay[date])
			for _, cand := range carved {
				replacement = append(replacement, models.Slot{
					VetID:     vetID,
					Date:      date,
					StartTime: cand.start.String(),
					EndTime:   cand.end.String(),
					Timezone:  req.Timezone,
					Status:    models.SlotStatusAvailable,
					CreatedAt: createdAt,
				})
			}
		}
	}

	deleted, created, err := s.Repo.ReplaceForRange(ctx, vetID, req.Timezone, span.startStr, span.endStr, replacement)
	if err != nil {
		return nil, wrapPersistence(err, "failed to replace schedule")
	}

	return &ReplaceSummary{
		Preserved: booked,
		Deleted:   int(deleted),
		Created:   created,
	}, nil
}
