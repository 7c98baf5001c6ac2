// FILE: database/repository/slot/indexes.go
package slotRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the slots collection.
// The unique compound index is the authoritative backstop for the
// check-then-act gap between the generator's existence probe and its write.
func (r *mongoSlotRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on slot ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Uniqueness of a slot's position on the calendar
		{
			Keys: bson.D{
				{Key: "vetId", Value: 1},
				{Key: "date", Value: 1},
				{Key: "startTime", Value: 1},
				{Key: "timezone", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("unique_vet_date_start_tz"),
		},
		// Primary query pattern: vet + timezone + date range
		{
			Keys:    bson.D{{Key: "vetId", Value: 1}, {Key: "timezone", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("vet_tz_date_idx"),
		},
		// Availability filtering
		{
			Keys:    bson.D{{Key: "vetId", Value: 1}, {Key: "status", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("vet_status_date_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create slot indexes: %w", err)
	}
	return nil
}
