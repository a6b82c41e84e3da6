package usecase

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.uber.org/zap"

	"github.com/swapspot/swapspot/internal/adapter/messaging/nats"
	"github.com/swapspot/swapspot/internal/mailer"
	"github.com/swapspot/swapspot/internal/marketplace/domain"
)

type CreateProposalInput struct {
	ListingID       string
	ProposerName    string
	ProposerContact string
	OfferText       string
}

func (in CreateProposalInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.ListingID, validation.Required),
		validation.Field(&in.ProposerName, validation.Required, validation.Length(1, 100)),
		validation.Field(&in.ProposerContact, validation.Required),
		validation.Field(&in.OfferText, validation.Required),
	)
}

type ProposalUsecase struct {
	proposalRepo domain.ProposalRepository
	listingRepo  domain.ListingRepository
	publisher    domain.EventPublisher
	mail         mailer.Sender // nil disables notifications
	logger       *zap.Logger
}

func NewProposalUsecase(proposalRepo domain.ProposalRepository, listingRepo domain.ListingRepository, publisher domain.EventPublisher, mail mailer.Sender, logger *zap.Logger) *ProposalUsecase {
	return &ProposalUsecase{
		proposalRepo: proposalRepo,
		listingRepo:  listingRepo,
		publisher:    publisher,
		mail:         mail,
		logger:       logger,
	}
}

func (uc *ProposalUsecase) CreateProposal(ctx context.Context, input CreateProposalInput) (*domain.Proposal, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	listing, err := uc.listingRepo.FindByID(ctx, input.ListingID)
	if err != nil {
		return nil, err
	}

	proposal := &domain.Proposal{
		ListingID:       input.ListingID,
		ProposerName:    input.ProposerName,
		ProposerContact: input.ProposerContact,
		OfferText:       input.OfferText,
		CreatedAt:       time.Now().UTC(),
	}
	if err := uc.proposalRepo.Create(ctx, proposal); err != nil {
		uc.logger.Error("ProposalUsecase.CreateProposal: failed to create proposal",
			zap.String("listing_id", input.ListingID), zap.Error(err))
		return nil, err
	}
	uc.logger.Info("Proposal created",
		zap.String("proposal_id", proposal.ID), zap.String("listing_id", proposal.ListingID))

	if err := uc.publisher.Publish(ctx, nats.SubjectProposalCreated, proposal); err != nil {
		uc.logger.Warn("ProposalUsecase.CreateProposal: failed to publish event", zap.Error(err))
	}

	if uc.mail != nil {
		if err := uc.mail.SendProposalReceived(listing.Title, proposal.ProposerName, proposal.OfferText); err != nil {
			uc.logger.Warn("ProposalUsecase.CreateProposal: notification mail failed", zap.Error(err))
		}
	}
	return proposal, nil
}

func (uc *ProposalUsecase) GetProposals(ctx context.Context, listingID string) ([]*domain.Proposal, error) {
	if _, err := uc.listingRepo.FindByID(ctx, listingID); err != nil {
		return nil, err
	}
	return uc.proposalRepo.FindByListingID(ctx, listingID)
}
