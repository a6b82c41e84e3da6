package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/swapspot/swapspot/internal/marketplace/domain"
	"github.com/swapspot/swapspot/internal/marketplace/usecase"
)

const maxPhotoUploadBytes = 10 << 20 // 10 MiB

type ListingHandler struct {
	listings *usecase.ListingUsecase
	photos   *usecase.PhotoUsecase
	logger   *zap.Logger
}

func NewListingHandler(listings *usecase.ListingUsecase, photos *usecase.PhotoUsecase, logger *zap.Logger) *ListingHandler {
	return &ListingHandler{listings: listings, photos: photos, logger: logger}
}

type createListingRequest struct {
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	HaveCategory       string  `json:"haveCategory"`
	HaveCondition      string  `json:"haveCondition"`
	HaveEstimatedValue *int64  `json:"haveEstimatedValue"`
	HaveImageURL       *string `json:"haveImageUrl"`
	WantText           string  `json:"wantText"`
	WantTags           string  `json:"wantTags"`
	Location           *string `json:"location"`
}

func (h *ListingHandler) HandleCreateListing(w http.ResponseWriter, r *http.Request) {
	var req createListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	listing, err := h.listings.CreateListing(r.Context(), usecase.CreateListingInput{
		Title:              req.Title,
		Description:        req.Description,
		HaveCategory:       req.HaveCategory,
		HaveCondition:      req.HaveCondition,
		HaveEstimatedValue: req.HaveEstimatedValue,
		HaveImageURL:       req.HaveImageURL,
		WantText:           req.WantText,
		WantTags:           domain.SplitTags(req.WantTags),
		Location:           req.Location,
	})
	if err != nil {
		h.logger.Warn("Listing creation rejected", zap.Error(err))
		writeError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, toListingResponse(listing))
}

// HandleListListings serves both the feed (optional q/category/condition
// filters) and liked-view rehydration via ?ids=comma,separated.
func (h *ListingHandler) HandleListListings(w http.ResponseWriter, r *http.Request) {
	if idsParam := r.URL.Query().Get("ids"); idsParam != "" {
		ids := make([]string, 0)
		for _, id := range strings.Split(idsParam, ",") {
			if id != "" {
				ids = append(ids, id)
			}
		}
		listings, err := h.listings.GetListingsByIDs(r.Context(), ids)
		if err != nil {
			writeError(w, h.logger, http.StatusInternalServerError, "Failed to fetch listings")
			return
		}
		writeJSON(w, h.logger, http.StatusOK, toListingResponses(listings))
		return
	}

	filter := domain.Filter{
		Query:     r.URL.Query().Get("q"),
		Category:  r.URL.Query().Get("category"),
		Condition: r.URL.Query().Get("condition"),
	}
	listings, err := h.listings.SearchListings(r.Context(), filter)
	if err != nil {
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to fetch listings")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, toListingResponses(listings))
}

func (h *ListingHandler) HandleGetListing(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	listing, err := h.listings.GetListingByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			writeError(w, h.logger, http.StatusNotFound, "Listing not found")
			return
		}
		h.logger.Error("Failed to fetch listing", zap.String("id", id), zap.Error(err))
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to fetch listing")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, toListingResponse(listing))
}

func (h *ListingHandler) HandleDeleteListing(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.listings.DeleteListing(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			writeError(w, h.logger, http.StatusNotFound, "Listing not found")
			return
		}
		h.logger.Error("Failed to delete listing", zap.String("id", id), zap.Error(err))
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to delete listing")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, successResponse{Success: true})
}

type photoUploadResponse struct {
	URL string `json:"url"`
}

func (h *ListingHandler) HandleUploadPhoto(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := r.ParseMultipartForm(maxPhotoUploadBytes); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	file, header, err := r.FormFile("photo")
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Missing photo file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxPhotoUploadBytes))
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "Failed to read photo")
		return
	}

	url, err := h.photos.UploadListingPhoto(r.Context(), id, header.Filename, data)
	switch {
	case errors.Is(err, domain.ErrListingNotFound):
		writeError(w, h.logger, http.StatusNotFound, "Listing not found")
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, h.logger, http.StatusBadRequest, "Unsupported image")
	case err != nil:
		h.logger.Error("Photo upload failed", zap.String("listing_id", id), zap.Error(err))
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to upload photo")
	default:
		writeJSON(w, h.logger, http.StatusCreated, photoUploadResponse{URL: url})
	}
}
