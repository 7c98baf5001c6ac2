package slots

import (
	"context"

	"vetbook/models"
	"vetbook/services/timezone"
)

// AddPeriod incrementally adds slots for one availability window across a
// date range. Unlike Generate it tolerates other slots in the range: it only
// backs off, with a zero-created result, when the requested window itself
// already overlaps existing slots somewhere in the range.
func (s *DefaultSlotService) AddPeriod(ctx context.Context, vetID string, req AddPeriodRequest) (*AddPeriodResult, error) {
	duration := durationOrDefault(req.SlotDuration)
	buffer := intOrDefault(req.Buffer, DefaultGenerateBuffer)

	if !s.TZ.IsValidTimezone(req.Timezone) {
		return nil, newDomainError(CodeInvalidTimezone, "invalid timezone %q", req.Timezone)
	}
	span, err := s.parseRange(req.Range, req.Timezone)
	if err != nil {
		return nil, err
	}
	period, err := parsePeriod(req.Period)
	if err != nil {
		return nil, newDomainError(CodeInvalidPeriod, "%v", err)
	}

	existing, err := s.Repo.GetByVetAndRange(ctx, vetID, req.Timezone, span.startStr, span.endStr)
	if err != nil {
		return nil, wrapPersistence(err, "failed to load existing slots")
	}

	// Soft conflict: the period already has overlapping slots anywhere in the
	// range. Not an error, just nothing to do.
	byDay := make(map[string][]window)
	for _, sl := range existing {
		w, err := slotWindow(sl)
		if err != nil {
			continue
		}
		if w.overlaps(period) {
			return &AddPeriodResult{
				Created: 0,
				Message: "period overlaps existing slots; nothing created",
			}, nil
		}
		byDay[sl.Date] = append(byDay[sl.Date], w)
	}

	createdAt := s.TZ.Now().UTC()
	var toInsert []models.Slot
	skipped := 0
	for day := span.start; !day.After(span.end); day = day.AddDate(0, 0, 1) {
		date := day.Format(timezone.DateLayout)
		carved, dropped := carve(period, duration, buffer, byDay[date])
		skipped += dropped
		for _, cand := range carved {
			toInsert = append(toInsert, models.Slot{
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

	// Best-effort batch: a duplicate on one record must not abort the others.
	created, err := s.Repo.InsertManyUnordered(ctx, toInsert)
	if err != nil {
		return nil, wrapPersistence(err, "failed to insert period slots")
	}

	return &AddPeriodResult{Created: created, Skipped: skipped}, nil
}
