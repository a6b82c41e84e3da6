package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/swapspot/swapspot/internal/marketplace/domain"
)

type listingDocument struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	Title              string             `bson:"title"`
	Description        string             `bson:"description"`
	HaveCategory       string             `bson:"have_category"`
	HaveCondition      string             `bson:"have_condition"`
	HaveEstimatedValue *int64             `bson:"have_estimated_value,omitempty"`
	HaveImageURL       *string            `bson:"have_image_url,omitempty"`
	WantText           string             `bson:"want_text"`
	WantTags           string             `bson:"want_tags"`
	Location           *string            `bson:"location,omitempty"`
	CreatedAt          time.Time          `bson:"created_at"`
}

func toListingDocument(l *domain.Listing) (*listingDocument, error) {
	doc := &listingDocument{
		Title:              l.Title,
		Description:        l.Description,
		HaveCategory:       l.HaveCategory,
		HaveCondition:      l.HaveCondition,
		HaveEstimatedValue: l.HaveEstimatedValue,
		HaveImageURL:       l.HaveImageURL,
		WantText:           l.WantText,
		WantTags:           domain.JoinTags(l.WantTags),
		Location:           l.Location,
		CreatedAt:          l.CreatedAt,
	}
	if l.ID != "" {
		oid, err := primitive.ObjectIDFromHex(l.ID)
		if err != nil {
			return nil, err
		}
		doc.ID = oid
	}
	return doc, nil
}

func toDomainListing(doc *listingDocument) *domain.Listing {
	return &domain.Listing{
		ID:                 doc.ID.Hex(),
		Title:              doc.Title,
		Description:        doc.Description,
		HaveCategory:       doc.HaveCategory,
		HaveCondition:      doc.HaveCondition,
		HaveEstimatedValue: doc.HaveEstimatedValue,
		HaveImageURL:       doc.HaveImageURL,
		WantText:           doc.WantText,
		WantTags:           domain.SplitTags(doc.WantTags),
		Location:           doc.Location,
		CreatedAt:          doc.CreatedAt,
	}
}

type proposalDocument struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	ListingID       string             `bson:"listing_id"`
	ProposerName    string             `bson:"proposer_name"`
	ProposerContact string             `bson:"proposer_contact"`
	OfferText       string             `bson:"offer_text"`
	CreatedAt       time.Time          `bson:"created_at"`
}

func toDomainProposal(doc *proposalDocument) *domain.Proposal {
	return &domain.Proposal{
		ID:              doc.ID.Hex(),
		ListingID:       doc.ListingID,
		ProposerName:    doc.ProposerName,
		ProposerContact: doc.ProposerContact,
		OfferText:       doc.OfferText,
		CreatedAt:       doc.CreatedAt,
	}
}

type likeDocument struct {
	ClientID  string    `bson:"client_id"`
	ListingID string    `bson:"listing_id"`
	CreatedAt time.Time `bson:"created_at"`
}

type sessionDocument struct {
	ID        string    `bson:"_id"`
	CreatedAt time.Time `bson:"created_at"`
}
