package httpapi

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/swapspot/swapspot/internal/marketplace/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

type successResponse struct {
	Success bool `json:"success"`
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, logger *zap.Logger, status int, message string) {
	writeJSON(w, logger, status, errorResponse{Error: message})
}

// listingResponse is the wire shape of a listing; want-tags stay in their
// stored comma-delimited form.
type listingResponse struct {
	ID                 string  `json:"id"`
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	HaveCategory       string  `json:"haveCategory"`
	HaveCondition      string  `json:"haveCondition"`
	HaveEstimatedValue *int64  `json:"haveEstimatedValue"`
	HaveImageURL       *string `json:"haveImageUrl"`
	WantText           string  `json:"wantText"`
	WantTags           string  `json:"wantTags"`
	Location           *string `json:"location"`
	CreatedAt          string  `json:"createdAt"`
}

func toListingResponse(l *domain.Listing) listingResponse {
	return listingResponse{
		ID:                 l.ID,
		Title:              l.Title,
		Description:        l.Description,
		HaveCategory:       l.HaveCategory,
		HaveCondition:      l.HaveCondition,
		HaveEstimatedValue: l.HaveEstimatedValue,
		HaveImageURL:       l.HaveImageURL,
		WantText:           l.WantText,
		WantTags:           domain.JoinTags(l.WantTags),
		Location:           l.Location,
		CreatedAt:          l.CreatedAt.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}
}

func toListingResponses(listings []*domain.Listing) []listingResponse {
	out := make([]listingResponse, 0, len(listings))
	for _, l := range listings {
		out = append(out, toListingResponse(l))
	}
	return out
}
