// File: database/repository/user/userMongoCrud.go
package userRepo

import (
	"context"
	"fmt"

	"doctorsportal/database/repository"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Upsert sets the profile fields on the user document, creating it if absent.
func (r *MongoUserRepo) Upsert(ctx context.Context, email string, profile models.UserProfile) (*models.WriteResult, error) {
	ctx, cancel := repository.WithTimeout(ctx, repository.SingleOpTimeout)
	defer cancel()

	filter := bson.M{"email": email}
	result, err := r.coll.UpdateOne(ctx, filter, upsertUpdate(email, profile), options.Update().SetUpsert(true))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user with email %s: %w", email, err)
	}
	return repository.FromUpdate(result), nil
}

// upsertUpdate builds the $set document for a profile save. It never
// touches role, so a profile save cannot grant admin.
func upsertUpdate(email string, profile models.UserProfile) bson.M {
	set := bson.M{}
	for k, v := range profile.Sanitized() {
		set[k] = v
	}
	set["email"] = email
	return bson.M{"$set": set}
}

// SetRole sets the role field on an existing user. It does not insert.
func (r *MongoUserRepo) SetRole(ctx context.Context, email string, role models.Role) (*models.WriteResult, error) {
	ctx, cancel := repository.WithTimeout(ctx, repository.SingleOpTimeout)
	defer cancel()

	filter := bson.M{"email": email}
	update := bson.M{"$set": bson.M{"role": role}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("failed to set role for user %s: %w", email, err)
	}
	return repository.FromUpdate(result), nil
}
