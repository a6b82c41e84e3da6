package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/swapspot/swapspot/internal/marketplace/domain"
)

const proposalsCollectionName = "proposals"

type ProposalRepository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

func NewProposalRepository(db *mongo.Database, logger *zap.Logger) *ProposalRepository {
	return &ProposalRepository{
		collection: db.Collection(proposalsCollectionName),
		logger:     logger,
	}
}

func (r *ProposalRepository) Create(ctx context.Context, proposal *domain.Proposal) error {
	doc := &proposalDocument{
		ListingID:       proposal.ListingID,
		ProposerName:    proposal.ProposerName,
		ProposerContact: proposal.ProposerContact,
		OfferText:       proposal.OfferText,
		CreatedAt:       proposal.CreatedAt,
	}

	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		r.logger.Error("ProposalRepository.Create: InsertOne failed",
			zap.String("listing_id", proposal.ListingID), zap.Error(err))
		return fmt.Errorf("failed to insert proposal: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return errors.New("failed to retrieve generated proposal ID")
	}
	proposal.ID = oid.Hex()
	return nil
}

func (r *ProposalRepository) FindByListingID(ctx context.Context, listingID string) ([]*domain.Proposal, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"listing_id": listingID}, opts)
	if err != nil {
		r.logger.Error("ProposalRepository.FindByListingID: Find failed",
			zap.String("listing_id", listingID), zap.Error(err))
		return nil, fmt.Errorf("failed to find proposals: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []*proposalDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode proposals: %w", err)
	}
	proposals := make([]*domain.Proposal, 0, len(docs))
	for _, doc := range docs {
		proposals = append(proposals, toDomainProposal(doc))
	}
	return proposals, nil
}
