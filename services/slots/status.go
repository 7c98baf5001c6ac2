package slots

import (
	"context"

	slotRepo "vetbook/database/repository/slot"
	"vetbook/models"
)

// SetStatuses flips the targeted slots between AVAILABLE and DISABLED in one
// bulk update. Booked slots are never matched; only the external booking
// process moves a slot in or out of BOOKED. Ownership of vetID must be
// established by the caller before this runs.
func (s *DefaultSlotService) SetStatuses(ctx context.Context, vetID string, req BulkStatusRequest) (int64, error) {
	if req.Status != models.SlotStatusAvailable && req.Status != models.SlotStatusDisabled {
		return 0, newDomainError(CodeInvalidStatus, "bulk edits may only set AVAILABLE or DISABLED, got %q", req.Status)
	}
	if len(req.SlotIDs) == 0 && req.Range == nil {
		return 0, newDomainError(CodeInvalidDateRange, "either slot ids or a date range is required")
	}

	f := slotRepo.StatusFilter{
		VetID:    vetID,
		Timezone: req.Timezone,
		SlotIDs:  req.SlotIDs,
	}
	if req.Range != nil {
		if req.Timezone != "" && !s.TZ.IsValidTimezone(req.Timezone) {
			return 0, newDomainError(CodeInvalidTimezone, "invalid timezone %q", req.Timezone)
		}
		tz := req.Timezone
		if tz == "" {
			tz = "UTC"
		}
		span, err := s.parseRange(*req.Range, tz)
		if err != nil {
			return 0, err
		}
		f.StartDate = span.startStr
		f.EndDate = span.endStr
	}

	modified, err := s.Repo.UpdateStatusMany(ctx, f, req.Status)
	if err != nil {
		return 0, wrapPersistence(err, "failed to update slot statuses")
	}
	return modified, nil
}
