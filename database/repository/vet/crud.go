// File: database/repository/vet/crud.go
package vetRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"vetbook/models"
)

func (r *mongoVetRepo) Create(ctx context.Context, vet *models.Vet) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if vet.ID == "" {
		vet.ID = uuid.New().String()
	}
	if vet.CreatedAt.IsZero() {
		vet.CreatedAt = time.Now().UTC()
	}

	if _, err := r.coll.InsertOne(ctx, vet); err != nil {
		return fmt.Errorf("failed to create vet: %w", err)
	}
	return nil
}

func (r *mongoVetRepo) GetByID(ctx context.Context, id string) (*models.Vet, error) {
	if vet := cachedVet(ctx, id); vet != nil {
		return vet, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var vet models.Vet
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&vet); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, mongo.ErrNoDocuments
		}
		return nil, fmt.Errorf("error fetching vet with id %s: %w", id, err)
	}

	cacheVet(ctx, &vet)
	return &vet, nil
}

func (r *mongoVetRepo) GetByEmail(ctx context.Context, email string) (*models.Vet, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var vet models.Vet
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&vet); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, mongo.ErrNoDocuments
		}
		return nil, fmt.Errorf("error fetching vet with email %s: %w", email, err)
	}
	return &vet, nil
}

func (r *mongoVetRepo) UpdateTokenHash(ctx context.Context, id, tokenHash string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"token_hash": tokenHash}})
	if err != nil {
		return fmt.Errorf("failed to update token hash: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	invalidateVet(ctx, id)
	return nil
}
