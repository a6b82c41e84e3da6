package domain

import (
	"context"
	"time"
)

type ListingRepository interface {
	Create(ctx context.Context, listing *Listing) error
	FindByID(ctx context.Context, id string) (*Listing, error)
	FindByIDs(ctx context.Context, ids []string) ([]*Listing, error)
	FindByFilter(ctx context.Context, filter Filter) ([]*Listing, error)
	SetImageURL(ctx context.Context, id, url string) error
	Delete(ctx context.Context, id string) error
}

type ProposalRepository interface {
	Create(ctx context.Context, proposal *Proposal) error
	FindByListingID(ctx context.Context, listingID string) ([]*Proposal, error)
}

type LikeRepository interface {
	// Upsert records the like, doing nothing if the pair already exists.
	Upsert(ctx context.Context, like *Like) error
	// Remove deletes the pair. Removing an absent pair is not an error.
	Remove(ctx context.Context, clientID, listingID string) error
	RemoveAllForClient(ctx context.Context, clientID string) error
	// ListingIDsByClient returns liked listing IDs, most recently liked first.
	ListingIDsByClient(ctx context.Context, clientID string) ([]string, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *ClientSession) error
	FindByID(ctx context.Context, id string) (*ClientSession, error)
}

// Cache is a byte-valued cache with TTL, backed by Redis in production.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// EventPublisher emits domain events for downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, subject string, data interface{}) error
}

// ImageStorage stores listing photos and returns a public URL.
type ImageStorage interface {
	Upload(ctx context.Context, fileName string, data []byte) (string, error)
}
