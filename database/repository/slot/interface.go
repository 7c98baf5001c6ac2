// File: database/repository/slot/interface.go
package slotRepo

import (
	"context"

	"vetbook/config"
	"vetbook/database"
	"vetbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ListFilter describes a filtered, paginated slot listing query.
type ListFilter struct {
	VetID     string
	Timezone  string
	StartDate string // inclusive, "2006-01-02"; empty means unbounded
	EndDate   string // inclusive
	Status    models.SlotStatus
	Search    string
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// StatusFilter selects the slots targeted by a bulk status update.
// Either SlotIDs or a date range (or both) may be set.
type StatusFilter struct {
	VetID     string
	Timezone  string
	SlotIDs   []string
	StartDate string
	EndDate   string
}

type SlotRepository interface {
	// InsertMany is the strict batch contract: one ordered bulk write, the
	// first failure aborts the remainder.
	InsertMany(ctx context.Context, slots []models.Slot) (int, error)
	// InsertManyUnordered is the best-effort batch contract: a duplicate-key
	// failure on one document does not abort the others.
	InsertManyUnordered(ctx context.Context, slots []models.Slot) (int, error)
	ExistsInRange(ctx context.Context, vetID, timezone, startDate, endDate string) (bool, error)
	GetByVetAndRange(ctx context.Context, vetID, timezone, startDate, endDate string) ([]models.Slot, error)
	// ReplaceForRange atomically deletes every non-booked slot in range and
	// inserts the given replacement set inside one transaction.
	ReplaceForRange(ctx context.Context, vetID, timezone, startDate, endDate string, slots []models.Slot) (deleted int64, created int, err error)
	List(ctx context.Context, f ListFilter) ([]models.Slot, int64, error)
	// UpdateStatusMany flips matching slots to the given status. Booked slots
	// are never matched.
	UpdateStatusMany(ctx context.Context, f StatusFilter, status models.SlotStatus) (int64, error)
	EnsureIndexes() error
}

type mongoSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotRepo constructs a new MongoDB SlotRepository.
func NewMongoSlotRepo() SlotRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoSlotRepo{
		coll: db.Collection("slots"),
	}
}

// IsDuplicateKeyError reports whether err is a MongoDB unique index violation.
func IsDuplicateKeyError(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
