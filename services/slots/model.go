package slots

import "vetbook/models"

// Defaults applied when a request omits duration or buffer.
const (
	DefaultSlotDuration   = 30 // minutes per slot
	DefaultGenerateBuffer = 5  // minutes between consecutive slots on generate/add
	DefaultReplaceBuffer  = 0  // minutes between consecutive slots on replace
)

// GenerateRequest asks for a full bookable schedule over a date range.
type GenerateRequest struct {
	Periods      []models.Period  `json:"periods" binding:"required"`
	Range        models.DateRange `json:"range" binding:"required"`
	Timezone     string           `json:"timezone" binding:"required"`
	SlotDuration int              `json:"slotDuration"`
	Buffer       *int             `json:"buffer"`
}

// GenerateSummary reports what a generation run produced.
type GenerateSummary struct {
	Created      int    `json:"created"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Timezone     string `json:"timezone"`
	SlotDuration int    `json:"slotDuration"`
	Buffer       int    `json:"buffer"`
}

// AddPeriodRequest incrementally adds one availability window across a range.
type AddPeriodRequest struct {
	Period       models.Period    `json:"period" binding:"required"`
	Range        models.DateRange `json:"range" binding:"required"`
	Timezone     string           `json:"timezone" binding:"required"`
	SlotDuration int              `json:"slotDuration"`
	Buffer       *int             `json:"buffer"`
}

// AddPeriodResult reports the outcome of an incremental add. Created is zero
// when the period already overlapped existing slots (a soft no-op, not an
// error).
type AddPeriodResult struct {
	Created int    `json:"created"`
	Skipped int    `json:"skipped"`
	Message string `json:"message,omitempty"`
}

// ReplaceRequest regenerates a vet's full slot set for a range.
type ReplaceRequest struct {
	Periods      []models.Period  `json:"periods" binding:"required"`
	Range        models.DateRange `json:"range" binding:"required"`
	Timezone     string           `json:"timezone" binding:"required"`
	SlotDuration int              `json:"slotDuration"`
	Buffer       *int             `json:"buffer"`
}

// ReplaceSummary reports what a schedule replacement changed.
type ReplaceSummary struct {
	Preserved int `json:"preserved"` // booked slots left untouched
	Deleted   int `json:"deleted"`
	Created   int `json:"created"`
}

// ListParams describes a paginated listing query. Timezone, when set and
// different from a slot's own timezone, converts displayed times only; stored
// values are never mutated.
type ListParams struct {
	StartDate string
	EndDate   string
	Timezone  string
	Status    models.SlotStatus
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
	Search    string
}

// PagedSlots is one page of a slot listing.
type PagedSlots struct {
	Slots []models.Slot `json:"slots"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

// PeriodBlock is a contiguous run of slots merged for display.
type PeriodBlock struct {
	StartTime string        `json:"startTime"`
	EndTime   string        `json:"endTime"`
	Duration  int           `json:"duration"` // total bookable minutes across member slots
	Slots     []models.Slot `json:"slots"`
}

// DateGroup holds one calendar day's display blocks.
type DateGroup struct {
	Date    string        `json:"date"`
	Periods []PeriodBlock `json:"periods"`
}

// BulkStatusRequest flips a set of non-booked slots between AVAILABLE and
// DISABLED. Targets may be named by ID, by date range, or both.
type BulkStatusRequest struct {
	SlotIDs  []string          `json:"slotIds"`
	Range    *models.DateRange `json:"range"`
	Timezone string            `json:"timezone"`
	Status   models.SlotStatus `json:"status" binding:"required"`
}
