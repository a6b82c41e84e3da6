package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/swapspot/swapspot/internal/adapter/messaging/nats"
	"github.com/swapspot/swapspot/internal/marketplace/domain"
)

func newListingUsecaseForTest() (*ListingUsecase, *MockListingRepository, *MockCache, *MockPublisher) {
	repo := &MockListingRepository{}
	cache := &MockCache{}
	publisher := &MockPublisher{}
	uc := NewListingUsecase(repo, cache, time.Hour, publisher, zap.NewNop())
	return uc, repo, cache, publisher
}

func validListingInput() CreateListingInput {
	value := int64(400)
	return CreateListingInput{
		Title:              "PlayStation 5 Console",
		Description:        "PS5 Disc Edition in excellent condition.",
		HaveCategory:       "Electronics",
		HaveCondition:      "Like New",
		HaveEstimatedValue: &value,
		WantText:           "Looking for a high-end gaming laptop",
		WantTags:           []string{"laptop", "macbook"},
	}
}

func TestCreateListing_Success(t *testing.T) {
	uc, repo, _, publisher := newListingUsecaseForTest()
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*domain.Listing")).Return(nil)
	publisher.On("Publish", ctx, nats.SubjectListingCreated, mock.Anything).Return(nil)

	listing, err := uc.CreateListing(ctx, validListingInput())

	assert.NoError(t, err)
	assert.Equal(t, "PlayStation 5 Console", listing.Title)
	repo.AssertExpectations(t)
}

func TestCreateListing_RequiredFields(t *testing.T) {
	uc, repo, _, _ := newListingUsecaseForTest()

	input := validListingInput()
	input.WantText = ""
	_, err := uc.CreateListing(context.Background(), input)

	assert.Error(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateListing_NegativeValueRejected(t *testing.T) {
	uc, _, _, _ := newListingUsecaseForTest()

	input := validListingInput()
	bad := int64(-10)
	input.HaveEstimatedValue = &bad
	_, err := uc.CreateListing(context.Background(), input)

	assert.Error(t, err)
}

func TestGetListingByID_CacheHit(t *testing.T) {
	uc, repo, cache, _ := newListingUsecaseForTest()
	ctx := context.Background()

	cached, _ := json.Marshal(&domain.Listing{ID: "abc", Title: "Cached"})
	cache.On("Get", ctx, "listing:abc").Return(cached, nil)

	listing, err := uc.GetListingByID(ctx, "abc")

	assert.NoError(t, err)
	assert.Equal(t, "Cached", listing.Title)
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestGetListingByID_CacheMissFallsThrough(t *testing.T) {
	uc, repo, cache, _ := newListingUsecaseForTest()
	ctx := context.Background()

	cache.On("Get", ctx, "listing:abc").Return(nil, domain.ErrCacheMiss)
	repo.On("FindByID", ctx, "abc").Return(&domain.Listing{ID: "abc", Title: "Fresh"}, nil)
	cache.On("Set", ctx, "listing:abc", mock.Anything, time.Hour).Return(nil)

	listing, err := uc.GetListingByID(ctx, "abc")

	assert.NoError(t, err)
	assert.Equal(t, "Fresh", listing.Title)
	cache.AssertExpectations(t)
}

func TestGetListingsByIDs_EmptyInput(t *testing.T) {
	uc, repo, _, _ := newListingUsecaseForTest()

	listings, err := uc.GetListingsByIDs(context.Background(), nil)

	assert.NoError(t, err)
	assert.Empty(t, listings)
	repo.AssertNotCalled(t, "FindByIDs", mock.Anything, mock.Anything)
}

func TestDeleteListing_InvalidatesCache(t *testing.T) {
	uc, repo, cache, _ := newListingUsecaseForTest()
	ctx := context.Background()

	repo.On("Delete", ctx, "abc").Return(nil)
	cache.On("Delete", ctx, "listing:abc").Return(nil)

	assert.NoError(t, uc.DeleteListing(ctx, "abc"))
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestDeleteListing_NotFound(t *testing.T) {
	uc, repo, cache, _ := newListingUsecaseForTest()
	ctx := context.Background()

	repo.On("Delete", ctx, "ghost").Return(domain.ErrListingNotFound)

	err := uc.DeleteListing(ctx, "ghost")

	assert.ErrorIs(t, err, domain.ErrListingNotFound)
	cache.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestAttachImageURL_InvalidatesCache(t *testing.T) {
	uc, repo, cache, _ := newListingUsecaseForTest()
	ctx := context.Background()

	repo.On("SetImageURL", ctx, "abc", "http://img/x.jpg").Return(nil)
	cache.On("Delete", ctx, "listing:abc").Return(nil)

	assert.NoError(t, uc.AttachImageURL(ctx, "abc", "http://img/x.jpg"))
	cache.AssertExpectations(t)
}
