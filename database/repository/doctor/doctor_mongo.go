package doctorRepo

import (
	"context"
	"fmt"

	"doctorsportal/database"
	"doctorsportal/database/repository"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDoctorRepo implements DoctorRepository using MongoDB.
type MongoDoctorRepo struct {
	coll *mongo.Collection
}

func NewMongoDoctorRepo(db *mongo.Database) DoctorRepository {
	return &MongoDoctorRepo{coll: db.Collection(database.DoctorsCollection)}
}

func (r *MongoDoctorRepo) GetAll(ctx context.Context) ([]models.Doctor, error) {
	ctx, cancel := repository.WithTimeout(ctx, repository.ScanTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve doctors: %w", err)
	}
	doctors := []models.Doctor{}
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, fmt.Errorf("failed to decode doctors: %w", err)
	}
	return doctors, nil
}

func (r *MongoDoctorRepo) Create(ctx context.Context, d *models.Doctor) (*models.WriteResult, error) {
	ctx, cancel := repository.WithTimeout(ctx, repository.SingleOpTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		d.ID = oid
	}
	return repository.FromInsert(res), nil
}

func (r *MongoDoctorRepo) DeleteByEmail(ctx context.Context, email string) (*models.WriteResult, error) {
	ctx, cancel := repository.WithTimeout(ctx, repository.SingleOpTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to delete doctor with email %s: %w", email, err)
	}
	return repository.FromDelete(res), nil
}
