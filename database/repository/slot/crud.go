// File: database/repository/slot/crud.go
package slotRepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vetbook/models"
)

func (r *mongoSlotRepo) InsertMany(ctx context.Context, slots []models.Slot) (int, error) {
	if len(slots) == 0 {
		return 0, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	res, err := r.coll.InsertMany(ctx, toDocs(slots), options.InsertMany().SetOrdered(true))
	if err != nil {
		return insertedCount(res), err
	}
	return len(res.InsertedIDs), nil
}

func (r *mongoSlotRepo) InsertManyUnordered(ctx context.Context, slots []models.Slot) (int, error) {
	if len(slots) == 0 {
		return 0, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	res, err := r.coll.InsertMany(ctx, toDocs(slots), options.InsertMany().SetOrdered(false))
	if err != nil {
		// Duplicate keys on individual documents are tolerated: the surviving
		// documents were still written.
		var bwe mongo.BulkWriteException
		if errors.As(err, &bwe) && allDuplicateKey(bwe) {
			return insertedCount(res), nil
		}
		return insertedCount(res), err
	}
	return len(res.InsertedIDs), nil
}

func (r *mongoSlotRepo) UpdateStatusMany(ctx context.Context, f StatusFilter, status models.SlotStatus) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{
		"vetId": f.VetID,
		// A booked slot is immutable to bulk edits.
		"status": bson.M{"$ne": models.SlotStatusBooked},
	}
	if f.Timezone != "" {
		filter["timezone"] = f.Timezone
	}
	if len(f.SlotIDs) > 0 {
		filter["id"] = bson.M{"$in": f.SlotIDs}
	}
	if f.StartDate != "" && f.EndDate != "" {
		filter["date"] = bson.M{"$gte": f.StartDate, "$lte": f.EndDate}
	}

	res, err := r.coll.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func toDocs(slots []models.Slot) []interface{} {
	docs := make([]interface{}, len(slots))
	for i, slot := range slots {
		if slot.ID == "" {
			slot.ID = uuid.New().String()
		}
		docs[i] = slot
	}
	return docs
}

func insertedCount(res *mongo.InsertManyResult) int {
	if res == nil {
		return 0
	}
	return len(res.InsertedIDs)
}

func allDuplicateKey(bwe mongo.BulkWriteException) bool {
	if len(bwe.WriteErrors) == 0 {
		return false
	}
	for _, we := range bwe.WriteErrors {
		if we.Code != 11000 {
			return false
		}
	}
	return true
}
