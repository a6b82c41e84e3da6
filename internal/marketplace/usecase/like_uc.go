package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/swapspot/swapspot/internal/adapter/messaging/nats"
	"github.com/swapspot/swapspot/internal/marketplace/domain"
)

type LikeUsecase struct {
	likeRepo    domain.LikeRepository
	listingRepo domain.ListingRepository
	sessionRepo domain.SessionRepository
	publisher   domain.EventPublisher
	logger      *zap.Logger
}

func NewLikeUsecase(likeRepo domain.LikeRepository, listingRepo domain.ListingRepository, sessionRepo domain.SessionRepository, publisher domain.EventPublisher, logger *zap.Logger) *LikeUsecase {
	return &LikeUsecase{
		likeRepo:    likeRepo,
		listingRepo: listingRepo,
		sessionRepo: sessionRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

// Like records the pair after verifying both the client session and the
// listing exist. Liking an already-liked listing is a no-op.
func (uc *LikeUsecase) Like(ctx context.Context, clientID, listingID string) error {
	if _, err := uc.sessionRepo.FindByID(ctx, clientID); err != nil {
		return err
	}
	if _, err := uc.listingRepo.FindByID(ctx, listingID); err != nil {
		return err
	}

	like := &domain.Like{
		ClientID:  clientID,
		ListingID: listingID,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.likeRepo.Upsert(ctx, like); err != nil {
		return fmt.Errorf("failed to add like: %w", err)
	}
	uc.logger.Info("Listing liked", zap.String("client_id", clientID), zap.String("listing_id", listingID))

	if err := uc.publisher.Publish(ctx, nats.SubjectLikeAdded, like); err != nil {
		uc.logger.Warn("LikeUsecase.Like: failed to publish event", zap.Error(err))
	}
	return nil
}

// Unlike removes the pair; removing an absent pair succeeds.
func (uc *LikeUsecase) Unlike(ctx context.Context, clientID, listingID string) error {
	if err := uc.likeRepo.Remove(ctx, clientID, listingID); err != nil {
		return fmt.Errorf("failed to remove like: %w", err)
	}

	event := &domain.Like{ClientID: clientID, ListingID: listingID}
	if err := uc.publisher.Publish(ctx, nats.SubjectLikeRemoved, event); err != nil {
		uc.logger.Warn("LikeUsecase.Unlike: failed to publish event", zap.Error(err))
	}
	return nil
}

func (uc *LikeUsecase) ClearAll(ctx context.Context, clientID string) error {
	if err := uc.likeRepo.RemoveAllForClient(ctx, clientID); err != nil {
		return fmt.Errorf("failed to clear likes: %w", err)
	}
	uc.logger.Info("Likes cleared", zap.String("client_id", clientID))
	return nil
}

// LikedListingIDs returns liked listing IDs, most recently liked first.
func (uc *LikeUsecase) LikedListingIDs(ctx context.Context, clientID string) ([]string, error) {
	ids, err := uc.likeRepo.ListingIDsByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch liked listing ids: %w", err)
	}
	return ids, nil
}
