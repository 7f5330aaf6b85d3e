package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/burakcnaksy0/classifieds-service/internal/listing/domain"
)

// UserRepository resolves listing owners to usernames. The users collection
// is owned by the user service; this is a read-only view of it.
type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{collection: db.Collection(usersCollection)}
}

func (r *UserRepository) UsernameByID(ctx context.Context, userID string) (string, error) {
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return "", fmt.Errorf("user %q: %w", userID, domain.ErrNotFound)
	}

	var doc struct {
		Username string `bson:"username"`
	}
	if err := r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", fmt.Errorf("user %q: %w", userID, domain.ErrNotFound)
		}
		return "", fmt.Errorf("failed to find user %q: %w", userID, err)
	}
	return doc.Username, nil
}
