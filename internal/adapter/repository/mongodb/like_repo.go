package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/swapspot/swapspot/internal/marketplace/domain"
)

const likesCollectionName = "likes"

// LikeRepository stores (client_id, listing_id) pairs. A unique compound
// index on the pair backs the idempotent upsert:
//
//	db.likes.createIndex({client_id: 1, listing_id: 1}, {unique: true})
type LikeRepository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

func NewLikeRepository(db *mongo.Database, logger *zap.Logger) *LikeRepository {
	return &LikeRepository{
		collection: db.Collection(likesCollectionName),
		logger:     logger,
	}
}

func (r *LikeRepository) Upsert(ctx context.Context, like *domain.Like) error {
	doc := likeDocument{
		ClientID:  like.ClientID,
		ListingID: like.ListingID,
		CreatedAt: like.CreatedAt,
	}
	filter := bson.M{"client_id": doc.ClientID, "listing_id": doc.ListingID}

	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, filter, bson.M{"$setOnInsert": doc}, opts)
	if err != nil {
		r.logger.Error("LikeRepository.Upsert: UpdateOne failed",
			zap.String("client_id", like.ClientID), zap.String("listing_id", like.ListingID), zap.Error(err))
		return fmt.Errorf("failed to upsert like: %w", err)
	}
	return nil
}

func (r *LikeRepository) Remove(ctx context.Context, clientID, listingID string) error {
	filter := bson.M{"client_id": clientID, "listing_id": listingID}
	// DeleteMany so that removing an absent pair is a no-op, not an error.
	_, err := r.collection.DeleteMany(ctx, filter)
	if err != nil {
		r.logger.Error("LikeRepository.Remove: DeleteMany failed",
			zap.String("client_id", clientID), zap.String("listing_id", listingID), zap.Error(err))
		return fmt.Errorf("failed to remove like: %w", err)
	}
	return nil
}

func (r *LikeRepository) RemoveAllForClient(ctx context.Context, clientID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"client_id": clientID})
	if err != nil {
		r.logger.Error("LikeRepository.RemoveAllForClient: DeleteMany failed",
			zap.String("client_id", clientID), zap.Error(err))
		return fmt.Errorf("failed to clear likes: %w", err)
	}
	return nil
}

func (r *LikeRepository) ListingIDsByClient(ctx context.Context, clientID string) ([]string, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"client_id": clientID}, opts)
	if err != nil {
		r.logger.Error("LikeRepository.ListingIDsByClient: Find failed",
			zap.String("client_id", clientID), zap.Error(err))
		return nil, fmt.Errorf("failed to list likes: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []likeDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode likes: %w", err)
	}
	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.ListingID)
	}
	return ids, nil
}
