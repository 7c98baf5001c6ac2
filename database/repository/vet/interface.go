// File: database/repository/vet/interface.go
package vetRepo

import (
	"context"

	"vetbook/config"
	"vetbook/database"
	"vetbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type VetRepository interface {
	Create(ctx context.Context, vet *models.Vet) error
	GetByID(ctx context.Context, id string) (*models.Vet, error)
	GetByEmail(ctx context.Context, email string) (*models.Vet, error)
	UpdateTokenHash(ctx context.Context, id, tokenHash string) error
	EnsureIndexes() error
}

type mongoVetRepo struct {
	coll *mongo.Collection
}

// NewMongoVetRepo constructs a new MongoDB VetRepository.
func NewMongoVetRepo() VetRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoVetRepo{
		coll: db.Collection("vets"),
	}
}
