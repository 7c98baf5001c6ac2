// File: database/repository/slot/queries.go
package slotRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vetbook/models"
)

func rangeFilter(vetID, timezone, startDate, endDate string) bson.M {
	return bson.M{
		"vetId":    vetID,
		"timezone": timezone,
		"date":     bson.M{"$gte": startDate, "$lte": endDate},
	}
}

func (r *mongoSlotRepo) ExistsInRange(ctx context.Context, vetID, timezone, startDate, endDate string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := r.coll.FindOne(ctx, rangeFilter(vetID, timezone, startDate, endDate)).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to probe slots in range: %w", err)
	}
	return true, nil
}

func (r *mongoSlotRepo) GetByVetAndRange(ctx context.Context, vetID, timezone, startDate, endDate string) ([]models.Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "startTime", Value: 1}})
	cursor, err := r.coll.Find(ctx, rangeFilter(vetID, timezone, startDate, endDate), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch slots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.Slot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("error decoding slots: %w", err)
	}
	return slots, nil
}

func (r *mongoSlotRepo) List(ctx context.Context, f ListFilter) ([]models.Slot, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{"vetId": f.VetID}
	if f.Timezone != "" {
		filter["timezone"] = f.Timezone
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.StartDate != "" && f.EndDate != "" {
		filter["date"] = bson.M{"$gte": f.StartDate, "$lte": f.EndDate}
	}
	if f.Search != "" {
		rx := primitive.Regex{Pattern: f.Search, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"date": rx},
			bson.M{"startTime": rx},
			bson.M{"endTime": rx},
		}
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count slots: %w", err)
	}

	sortBy := f.SortBy
	if sortBy == "" {
		sortBy = "date"
	}
	order := 1
	if f.SortOrder == "desc" {
		order = -1
	}
	sort := bson.D{{Key: sortBy, Value: order}}
	if sortBy != "startTime" {
		sort = append(sort, bson.E{Key: "startTime", Value: order})
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	limit := f.Limit
	if limit < 1 {
		limit = 20
	}

	opts := options.Find().
		SetSort(sort).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list slots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.Slot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, 0, fmt.Errorf("error decoding slots: %w", err)
	}
	return slots, total, nil
}
