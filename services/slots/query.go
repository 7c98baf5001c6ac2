package slots

import (
	"context"
	"sort"

	slotRepo "vetbook/database/repository/slot"
	"vetbook/models"
)

// groupGapMinutes is the largest gap between one slot's end and the next
// slot's start that still merges them into the same display block.
const groupGapMinutes = 50

var listSortFields = map[string]bool{
	"date":      true,
	"startTime": true,
	"endTime":   true,
	"status":    true,
	"createdAt": true,
}

// List returns one page of a vet's slots. When a display timezone differing
// from a slot's own timezone is requested, the slot's times are converted for
// presentation only.
func (s *DefaultSlotService) List(ctx context.Context, vetID string, params ListParams) (*PagedSlots, error) {
	if params.Status != "" && !params.Status.Valid() {
		return nil, newDomainError(CodeInvalidStatus, "unknown status %q", params.Status)
	}
	if params.Timezone != "" && !s.TZ.IsValidTimezone(params.Timezone) {
		return nil, newDomainError(CodeInvalidTimezone, "invalid timezone %q", params.Timezone)
	}
	if (params.StartDate == "") != (params.EndDate == "") {
		return nil, newDomainError(CodeInvalidDateRange, "start and end date must be given together")
	}
	if params.StartDate != "" && params.EndDate < params.StartDate {
		return nil, newDomainError(CodeInvalidDateRange, "end date %q precedes start date %q", params.EndDate, params.StartDate)
	}

	sortBy := params.SortBy
	if !listSortFields[sortBy] {
		sortBy = "date"
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit < 1 {
		limit = 20
	}

	found, total, err := s.Repo.List(ctx, slotRepo.ListFilter{
		VetID:     vetID,
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
		Status:    params.Status,
		Search:    params.Search,
		Page:      page,
		Limit:     limit,
		SortBy:    sortBy,
		SortOrder: params.SortOrder,
	})
	if err != nil {
		return nil, wrapPersistence(err, "failed to list slots")
	}

	if params.Timezone != "" {
		for i := range found {
			if found[i].Timezone == params.Timezone {
				continue
			}
			start, err := s.TZ.Convert(found[i].StartTime, found[i].Date, found[i].Timezone, params.Timezone)
			if err != nil {
				continue
			}
			end, err := s.TZ.Convert(found[i].EndTime, found[i].Date, found[i].Timezone, params.Timezone)
			if err != nil {
				continue
			}
			found[i].StartTime = start
			found[i].EndTime = end
		}
	}

	return &PagedSlots{Slots: found, Total: total, Page: page, Limit: limit}, nil
}

// AvailableRespectingNotice returns the AVAILABLE slots in the range whose
// start lies at least noticePeriod minutes in the future. The boundary is
// inclusive: a slot starting exactly noticePeriod minutes from now qualifies.
func (s *DefaultSlotService) AvailableRespectingNotice(
	ctx context.Context,
	vetID string,
	noticePeriod int,
	rng models.DateRange,
	tz string,
) ([]models.Slot, error) {
	if !s.TZ.IsValidTimezone(tz) {
		return nil, newDomainError(CodeInvalidTimezone, "invalid timezone %q", tz)
	}
	span, err := s.parseRange(rng, tz)
	if err != nil {
		return nil, err
	}

	found, err := s.Repo.GetByVetAndRange(ctx, vetID, tz, span.startStr, span.endStr)
	if err != nil {
		return nil, wrapPersistence(err, "failed to load slots")
	}

	now := s.TZ.Now()
	bookable := make([]models.Slot, 0, len(found))
	for _, sl := range found {
		if sl.Status != models.SlotStatusAvailable {
			continue
		}
		instant, err := s.TZ.LocalInstant(sl.StartTime, sl.Date, sl.Timezone)
		if err != nil {
			continue
		}
		minutesFromNow := instant.Sub(now).Minutes()
		if minutesFromNow >= float64(noticePeriod) {
			bookable = append(bookable, sl)
		}
	}

	sort.Slice(bookable, func(i, j int) bool {
		if bookable[i].Date != bookable[j].Date {
			return bookable[i].Date < bookable[j].Date
		}
		return bookable[i].StartTime < bookable[j].StartTime
	})
	return bookable, nil
}

// GroupIntoPeriods merges each day's slots into contiguous display blocks.
// Consecutive slots join the same block when the gap between one slot's end
// and the next slot's start is at most groupGapMinutes.
func (s *DefaultSlotService) GroupIntoPeriods(slots []models.Slot) []DateGroup {
	type timed struct {
		slot models.Slot
		w    window
	}
	byDate := make(map[string][]timed)
	for _, sl := range slots {
		w, err := slotWindow(sl)
		if err != nil {
			continue
		}
		byDate[sl.Date] = append(byDate[sl.Date], timed{slot: sl, w: w})
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	groups := make([]DateGroup, 0, len(dates))
	for _, date := range dates {
		day := byDate[date]
		sort.Slice(day, func(i, j int) bool { return day[i].w.start < day[j].w.start })

		var blocks []PeriodBlock
		var cur *PeriodBlock
		var curEnd TimeOfDay
		for _, t := range day {
			if cur != nil && t.w.start-curEnd <= groupGapMinutes {
				cur.EndTime = t.w.end.String()
				cur.Duration += int(t.w.end - t.w.start)
				cur.Slots = append(cur.Slots, t.slot)
			} else {
				blocks = append(blocks, PeriodBlock{})
				cur = &blocks[len(blocks)-1]
				cur.StartTime = t.w.start.String()
				cur.EndTime = t.w.end.String()
				cur.Duration = int(t.w.end - t.w.start)
				cur.Slots = []models.Slot{t.slot}
			}
			curEnd = t.w.end
		}
		groups = append(groups, DateGroup{Date: date, Periods: blocks})
	}
	return groups
}
