package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/swapspot/swapspot/internal/marketplace/domain"
	"github.com/swapspot/swapspot/internal/marketplace/usecase"
)

type LikeHandler struct {
	likes  *usecase.LikeUsecase
	logger *zap.Logger
}

func NewLikeHandler(likes *usecase.LikeUsecase, logger *zap.Logger) *LikeHandler {
	return &LikeHandler{likes: likes, logger: logger}
}

type likedIDsResponse struct {
	LikedIDs []string `json:"likedIds"`
}

// HandleListLikes returns the listing IDs the client has liked, newest first.
func (h *LikeHandler) HandleListLikes(w http.ResponseWriter, r *http.Request) {
	clientID := r.URL.Query().Get("clientId")
	if clientID == "" {
		writeError(w, h.logger, http.StatusBadRequest, "Missing clientId")
		return
	}

	ids, err := h.likes.LikedListingIDs(r.Context(), clientID)
	if err != nil {
		h.logger.Error("Failed to list likes", zap.String("client_id", clientID), zap.Error(err))
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to fetch likes")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, likedIDsResponse{LikedIDs: ids})
}

type likeRequest struct {
	ClientID  string `json:"clientId"`
	ListingID string `json:"listingId"`
	ClearAll  bool   `json:"clearAll"`
}

// HandleAddLike records a like; repeating a like is a no-op success.
func (h *LikeHandler) HandleAddLike(w http.ResponseWriter, r *http.Request) {
	var req likeRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	if req.ClientID == "" || req.ListingID == "" {
		writeError(w, h.logger, http.StatusBadRequest, "Missing clientId or listingId")
		return
	}

	err := h.likes.Like(r.Context(), req.ClientID, req.ListingID)
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		writeError(w, h.logger, http.StatusBadRequest, "Invalid clientId")
	case errors.Is(err, domain.ErrListingNotFound):
		writeError(w, h.logger, http.StatusNotFound, "Listing not found")
	case err != nil:
		h.logger.Error("Failed to add like", zap.String("client_id", req.ClientID), zap.Error(err))
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to add like")
	default:
		writeJSON(w, h.logger, http.StatusOK, successResponse{Success: true})
	}
}

// HandleRemoveLike unlikes one listing, or clears every like for the client
// when clearAll is set. Removing an absent like succeeds.
func (h *LikeHandler) HandleRemoveLike(w http.ResponseWriter, r *http.Request) {
	var req likeRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	if req.ClientID == "" {
		writeError(w, h.logger, http.StatusBadRequest, "Missing clientId")
		return
	}

	if req.ClearAll {
		if err := h.likes.ClearAll(r.Context(), req.ClientID); err != nil {
			h.logger.Error("Failed to clear likes", zap.String("client_id", req.ClientID), zap.Error(err))
			writeError(w, h.logger, http.StatusInternalServerError, "Failed to clear likes")
			return
		}
		writeJSON(w, h.logger, http.StatusOK, successResponse{Success: true})
		return
	}

	if req.ListingID == "" {
		writeError(w, h.logger, http.StatusBadRequest, "Missing listingId")
		return
	}

	if err := h.likes.Unlike(r.Context(), req.ClientID, req.ListingID); err != nil {
		h.logger.Error("Failed to remove like", zap.String("client_id", req.ClientID), zap.Error(err))
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to remove like")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, successResponse{Success: true})
}
