package slots

import (
	"context"

	slotRepo "vetbook/database/repository/slot"
	"vetbook/models"
	"vetbook/services/timezone"
)

// Generate bulk-creates AVAILABLE slots for every day of the range from the
// given periods. The operation is whole-range and all-or-nothing: it refuses
// to run if any slot already exists for the vet anywhere inside the range.
func (s *DefaultSlotService) Generate(ctx context.Context, vetID string, req GenerateRequest) (*GenerateSummary, error) {
	duration := durationOrDefault(req.SlotDuration)
	buffer := intOrDefault(req.Buffer, DefaultGenerateBuffer)

	if !s.TZ.IsValidTimezone(req.Timezone) {
		return nil, newDomainError(CodeInvalidTimezone, "invalid timezone %q", req.Timezone)
	}
	span, err := s.parseRange(req.Range, req.Timezone)
	if err != nil {
		return nil, err
	}

	nowLocal, err := s.TZ.NowInTimezone(req.Timezone)
	if err != nil {
		return nil, newDomainError(CodeInvalidTimezone, "invalid timezone %q", req.Timezone)
	}
	today := nowLocal.Format(timezone.DateLayout)
	if span.startStr < today {
		return nil, newDomainError(CodePastDateRange, "start date %q is before today (%s)", span.startStr, today)
	}

	windows, err := parsePeriods(req.Periods)
	if err != nil {
		return nil, newDomainError(CodeInvalidPeriod, "%v", err)
	}

	exists, err := s.Repo.ExistsInRange(ctx, vetID, req.Timezone, span.startStr, span.endStr)
	if err != nil {
		return nil, wrapPersistence(err, "failed to check for existing slots")
	}
	if exists {
		return nil, newDomainError(CodeSlotsAlreadyExist,
			"slots already exist for vet %s between %s and %s", vetID, span.startStr, span.endStr)
	}

	nowMinutes := TimeOfDay(nowLocal.Hour()*60 + nowLocal.Minute())
	createdAt := s.TZ.Now().UTC()

	var generated []models.Slot
	for day := span.start; !day.After(span.end); day = day.AddDate(0, 0, 1) {
		date := day.Format(timezone.DateLayout)
		for _, w := range windows {
			carved, _ := carve(w, duration, buffer, nil)
			for _, cand := range carved {
				// On today, windows that already ended are not offered.
				if date == today && cand.end <= nowMinutes {
					continue
				}
				generated = append(generated, models.Slot{
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

	created, err := s.Repo.InsertMany(ctx, generated)
	if err != nil {
		// The unique calendar index is the authoritative arbiter when two
		// generation calls race past the existence probe.
		if slotRepo.IsDuplicateKeyError(err) {
			return nil, newDomainError(CodeSlotsAlreadyExist,
				"slots already exist for vet %s between %s and %s", vetID, span.startStr, span.endStr)
		}
		return nil, wrapPersistence(err, "failed to insert generated slots")
	}

	return &GenerateSummary{
		Created:      created,
		StartDate:    span.startStr,
		EndDate:      span.endStr,
		Timezone:     req.Timezone,
		SlotDuration: duration,
		Buffer:       buffer,
	}, nil
}
