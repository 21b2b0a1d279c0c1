package bookingRepo

import (
	"context"
	"fmt"

	"doctorsportal/database/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes on the booking collection.
func (r *MongoBookingRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := repository.WithTimeout(ctx, repository.ScanTimeout)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// At most one booking per patient, treatment and date.
		{
			Keys: bson.D{
				{Key: "treatment", Value: 1},
				{Key: "date", Value: 1},
				{Key: "patientEmail", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("unique_treatment_date_patient"),
		},
		{
			Keys:    bson.D{{Key: "date", Value: 1}},
			Options: options.Index().SetName("date_idx"),
		},
		{
			Keys:    bson.D{{Key: "patientEmail", Value: 1}},
			Options: options.Index().SetName("patient_email_idx"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
