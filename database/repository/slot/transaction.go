// File: database/repository/slot/transaction.go
package slotRepo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"vetbook/models"
)

// ReplaceForRange deletes every AVAILABLE and DISABLED slot for the vet inside
// the date range and inserts the replacement set, all inside one MongoDB
// transaction. Booked slots are left untouched. On any failure the transaction
// aborts and the visible state is unchanged.
func (r *mongoSlotRepo) ReplaceForRange(
	ctx context.Context,
	vetID, timezone, startDate, endDate string,
	slots []models.Slot,
) (int64, int, error) {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return 0, 0, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	var deleted int64
	var created int

	txnFn := func(sc mongo.SessionContext) error {
		filter := rangeFilter(vetID, timezone, startDate, endDate)
		filter["status"] = bson.M{"$in": bson.A{models.SlotStatusAvailable, models.SlotStatusDisabled}}

		delRes, err := r.coll.DeleteMany(sc, filter)
		if err != nil {
			return fmt.Errorf("delete existing slots failed: %w", err)
		}
		deleted = delRes.DeletedCount

		if len(slots) > 0 {
			insRes, err := r.coll.InsertMany(sc, toDocs(slots))
			if err != nil {
				return fmt.Errorf("insert replacement slots failed: %w", err)
			}
			created = len(insRes.InsertedIDs)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return 0, 0, fmt.Errorf("schedule replace transaction failed: %w", err)
	}

	return deleted, created, nil
}
