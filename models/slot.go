package models

import "time"

// SlotStatus is the lifecycle status of a slot.
type SlotStatus string

const (
	SlotStatusAvailable SlotStatus = "AVAILABLE"
	SlotStatusBooked    SlotStatus = "BOOKED"
	SlotStatusDisabled  SlotStatus = "DISABLED"
)

// Valid reports whether s is one of the three known statuses.
func (s SlotStatus) Valid() bool {
	switch s {
	case SlotStatusAvailable, SlotStatusBooked, SlotStatusDisabled:
		return true
	}
	return false
}

// Slot represents one bookable window on a vet's calendar. Date together with
// Timezone defines when the slot occurs; the absolute instant is derived on
// demand, never stored.
type Slot struct {
	ID        string     `bson:"id" json:"id"`
	VetID     string     `bson:"vetId" json:"vetId"`
	Date      string     `bson:"date" json:"date"`           // e.g., "2025-02-25"
	StartTime string     `bson:"startTime" json:"startTime"` // "HH:mm", 24-hour
	EndTime   string     `bson:"endTime" json:"endTime"`     // "HH:mm"; "24:00" means end of day
	Timezone  string     `bson:"timezone" json:"timezone"`   // IANA identifier
	Status    SlotStatus `bson:"status" json:"status"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
}

// Period is a recurring daily availability window supplied by a vet.
// It is input only and never persisted as its own document.
type Period struct {
	Start string `json:"start" binding:"required"` // "HH:mm"
	End   string `json:"end" binding:"required"`   // "HH:mm" or "24:00"
}

// DateRange is an inclusive calendar date range interpreted in the vet's timezone.
type DateRange struct {
	Start string `json:"start" binding:"required"` // "2006-01-02"
	End   string `json:"end" binding:"required"`
}
