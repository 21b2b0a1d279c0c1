// Package repository holds helpers shared by the MongoDB repositories.
package repository

import (
	"context"
	"time"

	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Per-operation deadlines derived from the caller's context.
const (
	SingleOpTimeout = 5 * time.Second
	ScanTimeout     = 10 * time.Second
)

// WithTimeout bounds a single store operation by d on top of ctx.
func WithTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, d)
}

func FromInsert(res *mongo.InsertOneResult) *models.WriteResult {
	if res == nil {
		return &models.WriteResult{}
	}
	return &models.WriteResult{Acknowledged: true, InsertedID: res.InsertedID}
}

func FromUpdate(res *mongo.UpdateResult) *models.WriteResult {
	if res == nil {
		return &models.WriteResult{}
	}
	return &models.WriteResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}
}

func FromDelete(res *mongo.DeleteResult) *models.WriteResult {
	if res == nil {
		return &models.WriteResult{}
	}
	return &models.WriteResult{Acknowledged: true, DeletedCount: res.DeletedCount}
}
