package database

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names shared with the web client's seed data.
const (
	ServicesCollection = "services"
	BookingCollection  = "booking"
	UsersCollection    = "users"
	DoctorsCollection  = "doctors"
)

// Store owns the MongoDB client for the lifetime of the process.
type Store struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// Connect opens and pings a MongoDB connection using the configured URL.
func Connect(ctx context.Context, cfg *config.Config) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(cfg.DatabaseURL).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)).
		// Free-form booking and profile fields decode as maps, not bson.D.
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return &Store{Client: client, DB: client.Database(cfg.DatabaseName)}, nil
}

// Close disconnects the client, waiting for in-flight operations up to the
// deadline carried by ctx.
func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.Client == nil {
		return nil
	}
	return s.Client.Disconnect(ctx)
}
