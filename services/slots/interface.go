package slots

import (
	"context"
	"fmt"
	"time"

	slotRepo "vetbook/database/repository/slot"
	"vetbook/models"
	"vetbook/services/timezone"
)

// SlotService is the scheduling engine: it generates, amends, replaces and
// queries a vet's bookable slots. Booking a slot is an external operation
// outside this service.
type SlotService interface {
	Generate(ctx context.Context, vetID string, req GenerateRequest) (*GenerateSummary, error)
	AddPeriod(ctx context.Context, vetID string, req AddPeriodRequest) (*AddPeriodResult, error)
	Replace(ctx context.Context, vetID string, req ReplaceRequest) (*ReplaceSummary, error)
	List(ctx context.Context, vetID string, params ListParams) (*PagedSlots, error)
	AvailableRespectingNotice(ctx context.Context, vetID string, noticePeriod int, rng models.DateRange, tz string) ([]models.Slot, error)
	GroupIntoPeriods(slots []models.Slot) []DateGroup
	SetStatuses(ctx context.Context, vetID string, req BulkStatusRequest) (int64, error)
}

// DefaultSlotService is the production implementation.
type DefaultSlotService struct {
	Repo slotRepo.SlotRepository
	TZ   *timezone.Service
}

func NewDefaultSlotService(repo slotRepo.SlotRepository, tz *timezone.Service) (*DefaultSlotService, error) {
	if repo == nil || tz == nil {
		return nil, fmt.Errorf("slot service initialization error: one or more dependencies are nil")
	}
	return &DefaultSlotService{Repo: repo, TZ: tz}, nil
}

// dateSpan is a validated, timezone-local inclusive date range.
type dateSpan struct {
	start    time.Time
	end      time.Time
	startStr string
	endStr   string
}

// parseRange normalizes a date range to start-of-day bounds in tz. The
// timezone must already be validated.
func (s *DefaultSlotService) parseRange(r models.DateRange, tz string) (dateSpan, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return dateSpan{}, newDomainError(CodeInvalidTimezone, "invalid timezone %q", tz)
	}
	start, err := time.ParseInLocation(timezone.DateLayout, r.Start, loc)
	if err != nil {
		return dateSpan{}, newDomainError(CodeInvalidDateRange, "invalid start date %q", r.Start)
	}
	end, err := time.ParseInLocation(timezone.DateLayout, r.End, loc)
	if err != nil {
		return dateSpan{}, newDomainError(CodeInvalidDateRange, "invalid end date %q", r.End)
	}
	if end.Before(start) {
		return dateSpan{}, newDomainError(CodeInvalidDateRange, "end date %q precedes start date %q", r.End, r.Start)
	}
	return dateSpan{
		start:    start,
		end:      end,
		startStr: start.Format(timezone.DateLayout),
		endStr:   end.Format(timezone.DateLayout),
	}, nil
}

func intOrDefault(v *int, def int) int {
	if v == nil || *v < 0 {
		return def
	}
	return *v
}

func durationOrDefault(v int) int {
	if v <= 0 {
		return DefaultSlotDuration
	}
	return v
}
