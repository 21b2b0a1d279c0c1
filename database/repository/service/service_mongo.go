package serviceRepo

import (
	"context"
	"fmt"

	"doctorsportal/database"
	"doctorsportal/database/repository"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll *mongo.Collection
}

func NewMongoServiceRepo(db *mongo.Database) ServiceRepository {
	return &MongoServiceRepo{coll: db.Collection(database.ServicesCollection)}
}

func (r *MongoServiceRepo) GetAll(ctx context.Context) ([]models.Service, error) {
	ctx, cancel := repository.WithTimeout(ctx, repository.ScanTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve services: %w", err)
	}
	services := []models.Service{}
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}

func (r *MongoServiceRepo) GetNames(ctx context.Context) ([]models.ServiceSummary, error) {
	ctx, cancel := repository.WithTimeout(ctx, repository.ScanTimeout)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"name": 1})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve service names: %w", err)
	}
	services := []models.ServiceSummary{}
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode service names: %w", err)
	}
	return services, nil
}
