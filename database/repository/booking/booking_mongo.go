package bookingRepo

import (
	"context"
	"errors"
	"fmt"

	"doctorsportal/database"
	"doctorsportal/database/repository"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

func NewMongoBookingRepo(db *mongo.Database) *MongoBookingRepo {
	return &MongoBookingRepo{coll: db.Collection(database.BookingCollection)}
}

func (r *MongoBookingRepo) FindByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"date": date})
}

func (r *MongoBookingRepo) FindByPatient(ctx context.Context, email string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"patientEmail": email})
}

func (r *MongoBookingRepo) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := repository.WithTimeout(ctx, repository.ScanTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) FindExisting(ctx context.Context, treatment, date, patientEmail string) (*models.Booking, error) {
	filter := bson.M{"treatment": treatment, "date": date, "patientEmail": patientEmail}
	return r.findOne(ctx, filter)
}

func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Not a valid ObjectID, so nothing can match.
		return nil, nil
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *MongoBookingRepo) findOne(ctx context.Context, filter bson.M) (*models.Booking, error) {
	ctx, cancel := repository.WithTimeout(ctx, repository.SingleOpTimeout)
	defer cancel()

	var b models.Booking
	if err := r.coll.FindOne(ctx, filter).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	return &b, nil
}

func (r *MongoBookingRepo) Create(ctx context.Context, b *models.Booking) (*models.WriteResult, error) {
	ctx, cancel := repository.WithTimeout(ctx, repository.SingleOpTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, b)
	if err != nil {
		return nil, insertError(err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		b.ID = oid
	}
	return repository.FromInsert(res), nil
}

// insertError maps a unique-index violation to ErrDuplicateBooking.
func insertError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateBooking
	}
	return fmt.Errorf("failed to create booking: %w", err)
}
