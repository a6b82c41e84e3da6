package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.uber.org/zap"

	"github.com/swapspot/swapspot/internal/adapter/messaging/nats"
	"github.com/swapspot/swapspot/internal/marketplace/domain"
)

const listingCachePrefix = "listing:"

type CreateListingInput struct {
	Title              string
	Description        string
	HaveCategory       string
	HaveCondition      string
	HaveEstimatedValue *int64
	HaveImageURL       *string
	WantText           string
	WantTags           []string
	Location           *string
}

func (in CreateListingInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&in.Description, validation.Required),
		validation.Field(&in.HaveCategory, validation.Required),
		validation.Field(&in.HaveCondition, validation.Required),
		validation.Field(&in.WantText, validation.Required),
		validation.Field(&in.HaveEstimatedValue, validation.By(nonNegative)),
	)
}

func nonNegative(value interface{}) error {
	switch v := value.(type) {
	case *int64:
		if v != nil && *v < 0 {
			return errors.New("must be non-negative")
		}
	case int64:
		if v < 0 {
			return errors.New("must be non-negative")
		}
	}
	return nil
}

type ListingUsecase struct {
	repo      domain.ListingRepository
	cache     domain.Cache
	cacheTTL  time.Duration
	publisher domain.EventPublisher
	logger    *zap.Logger
}

func NewListingUsecase(repo domain.ListingRepository, cache domain.Cache, cacheTTL time.Duration, publisher domain.EventPublisher, logger *zap.Logger) *ListingUsecase {
	return &ListingUsecase{
		repo:      repo,
		cache:     cache,
		cacheTTL:  cacheTTL,
		publisher: publisher,
		logger:    logger,
	}
}

func (uc *ListingUsecase) CreateListing(ctx context.Context, input CreateListingInput) (*domain.Listing, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	listing := &domain.Listing{
		Title:              input.Title,
		Description:        input.Description,
		HaveCategory:       input.HaveCategory,
		HaveCondition:      input.HaveCondition,
		HaveEstimatedValue: input.HaveEstimatedValue,
		HaveImageURL:       input.HaveImageURL,
		WantText:           input.WantText,
		WantTags:           input.WantTags,
		Location:           input.Location,
		CreatedAt:          time.Now().UTC(),
	}
	if err := uc.repo.Create(ctx, listing); err != nil {
		uc.logger.Error("ListingUsecase.CreateListing: failed to create listing", zap.Error(err))
		return nil, err
	}
	uc.logger.Info("Listing created", zap.String("listing_id", listing.ID), zap.String("title", listing.Title))

	if err := uc.publisher.Publish(ctx, nats.SubjectListingCreated, listing); err != nil {
		// Event delivery is best-effort; the listing itself is committed.
		uc.logger.Warn("ListingUsecase.CreateListing: failed to publish event",
			zap.String("listing_id", listing.ID), zap.Error(err))
	}
	return listing, nil
}

// GetListingByID reads through the cache.
func (uc *ListingUsecase) GetListingByID(ctx context.Context, id string) (*domain.Listing, error) {
	key := listingCachePrefix + id
	if data, err := uc.cache.Get(ctx, key); err == nil {
		var listing domain.Listing
		if err := json.Unmarshal(data, &listing); err == nil {
			return &listing, nil
		}
		uc.logger.Warn("ListingUsecase.GetListingByID: corrupt cache entry", zap.String("key", key))
	} else if !errors.Is(err, domain.ErrCacheMiss) {
		uc.logger.Warn("ListingUsecase.GetListingByID: cache read failed", zap.String("key", key), zap.Error(err))
	}

	listing, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(listing); err == nil {
		if err := uc.cache.Set(ctx, key, data, uc.cacheTTL); err != nil {
			uc.logger.Warn("ListingUsecase.GetListingByID: cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return listing, nil
}

// GetListingsByIDs rehydrates a liked-items view from stored IDs. Stale IDs
// are simply absent from the result.
func (uc *ListingUsecase) GetListingsByIDs(ctx context.Context, ids []string) ([]*domain.Listing, error) {
	if len(ids) == 0 {
		return []*domain.Listing{}, nil
	}
	listings, err := uc.repo.FindByIDs(ctx, ids)
	if err != nil {
		uc.logger.Error("ListingUsecase.GetListingsByIDs: failed to fetch listings", zap.Error(err))
		return nil, err
	}
	return listings, nil
}

func (uc *ListingUsecase) SearchListings(ctx context.Context, filter domain.Filter) ([]*domain.Listing, error) {
	listings, err := uc.repo.FindByFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("ListingUsecase.SearchListings: failed to search listings", zap.Error(err))
		return nil, err
	}
	return listings, nil
}

// DeleteListing removes the listing and invalidates its cache entry. Likes
// pointing at the deleted listing stay behind; clients reconcile them away
// against the listing set they fetch.
func (uc *ListingUsecase) DeleteListing(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := uc.cache.Delete(ctx, listingCachePrefix+id); err != nil {
		uc.logger.Warn("ListingUsecase.DeleteListing: cache invalidation failed", zap.String("listing_id", id), zap.Error(err))
	}
	uc.logger.Info("Listing deleted", zap.String("listing_id", id))
	return nil
}

// AttachImageURL records an uploaded photo URL and invalidates the cache entry.
func (uc *ListingUsecase) AttachImageURL(ctx context.Context, id, url string) error {
	if err := uc.repo.SetImageURL(ctx, id, url); err != nil {
		return err
	}
	if err := uc.cache.Delete(ctx, listingCachePrefix+id); err != nil {
		uc.logger.Warn("ListingUsecase.AttachImageURL: cache invalidation failed", zap.String("listing_id", id), zap.Error(err))
	}
	return nil
}
