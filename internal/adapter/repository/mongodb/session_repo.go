package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/swapspot/swapspot/internal/marketplace/domain"
)

const sessionsCollectionName = "client_sessions"

type SessionRepository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

func NewSessionRepository(db *mongo.Database, logger *zap.Logger) *SessionRepository {
	return &SessionRepository{
		collection: db.Collection(sessionsCollectionName),
		logger:     logger,
	}
}

func (r *SessionRepository) Create(ctx context.Context, session *domain.ClientSession) error {
	doc := sessionDocument{
		ID:        session.ID,
		CreatedAt: session.CreatedAt,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		r.logger.Error("SessionRepository.Create: InsertOne failed",
			zap.String("client_id", session.ID), zap.Error(err))
		return fmt.Errorf("failed to insert client session: %w", err)
	}
	return nil
}

func (r *SessionRepository) FindByID(ctx context.Context, id string) (*domain.ClientSession, error) {
	var doc sessionDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSessionNotFound
		}
		r.logger.Error("SessionRepository.FindByID: FindOne failed",
			zap.String("client_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to find client session: %w", err)
	}
	return &domain.ClientSession{ID: doc.ID, CreatedAt: doc.CreatedAt}, nil
}
