package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/swapspot/swapspot/internal/marketplace/domain"
	"github.com/swapspot/swapspot/internal/marketplace/usecase"
)

type ProposalHandler struct {
	proposals *usecase.ProposalUsecase
	logger    *zap.Logger
}

func NewProposalHandler(proposals *usecase.ProposalUsecase, logger *zap.Logger) *ProposalHandler {
	return &ProposalHandler{proposals: proposals, logger: logger}
}

type createProposalRequest struct {
	ProposerName    string `json:"proposerName"`
	ProposerContact string `json:"proposerContact"`
	OfferText       string `json:"offerText"`
}

type proposalResponse struct {
	ID              string `json:"id"`
	ListingID       string `json:"listingId"`
	ProposerName    string `json:"proposerName"`
	ProposerContact string `json:"proposerContact"`
	OfferText       string `json:"offerText"`
	CreatedAt       string `json:"createdAt"`
}

func toProposalResponse(p *domain.Proposal) proposalResponse {
	return proposalResponse{
		ID:              p.ID,
		ListingID:       p.ListingID,
		ProposerName:    p.ProposerName,
		ProposerContact: p.ProposerContact,
		OfferText:       p.OfferText,
		CreatedAt:       p.CreatedAt.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}
}

func (h *ProposalHandler) HandleCreateProposal(w http.ResponseWriter, r *http.Request) {
	listingID := chi.URLParam(r, "id")

	var req createProposalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	proposal, err := h.proposals.CreateProposal(r.Context(), usecase.CreateProposalInput{
		ListingID:       listingID,
		ProposerName:    req.ProposerName,
		ProposerContact: req.ProposerContact,
		OfferText:       req.OfferText,
	})
	switch {
	case errors.Is(err, domain.ErrListingNotFound):
		writeError(w, h.logger, http.StatusNotFound, "Listing not found")
	case err != nil:
		h.logger.Warn("Proposal rejected", zap.String("listing_id", listingID), zap.Error(err))
		writeError(w, h.logger, http.StatusBadRequest, err.Error())
	default:
		writeJSON(w, h.logger, http.StatusCreated, toProposalResponse(proposal))
	}
}

func (h *ProposalHandler) HandleListProposals(w http.ResponseWriter, r *http.Request) {
	listingID := chi.URLParam(r, "id")

	proposals, err := h.proposals.GetProposals(r.Context(), listingID)
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			writeError(w, h.logger, http.StatusNotFound, "Listing not found")
			return
		}
		h.logger.Error("Failed to list proposals", zap.String("listing_id", listingID), zap.Error(err))
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to fetch proposals")
		return
	}

	out := make([]proposalResponse, 0, len(proposals))
	for _, p := range proposals {
		out = append(out, toProposalResponse(p))
	}
	writeJSON(w, h.logger, http.StatusOK, out)
}
