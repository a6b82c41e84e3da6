package httpapi

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/swapspot/swapspot/internal/adapter/httpapi/middleware"
)

type Handlers struct {
	Sessions  *SessionHandler
	Likes     *LikeHandler
	Listings  *ListingHandler
	Proposals *ProposalHandler
}

// NewRouter wires the JSON API consumed by the browser client.
func NewRouter(h Handlers, logger *zap.Logger) *chi.Mux {
	mux := chi.NewRouter()
	mux.Use(middleware.Tracing())
	mux.Use(middleware.Logger(logger))

	mux.Post("/api/client-session", h.Sessions.HandleEnsureSession)

	mux.Get("/api/likes", h.Likes.HandleListLikes)
	mux.Post("/api/likes", h.Likes.HandleAddLike)
	mux.Delete("/api/likes", h.Likes.HandleRemoveLike)

	mux.Get("/api/listings", h.Listings.HandleListListings)
	mux.Post("/api/listings", h.Listings.HandleCreateListing)
	mux.Get("/api/listings/{id}", h.Listings.HandleGetListing)
	mux.Delete("/api/listings/{id}", h.Listings.HandleDeleteListing)
	mux.Post("/api/listings/{id}/photos", h.Listings.HandleUploadPhoto)
	mux.Get("/api/listings/{id}/proposals", h.Proposals.HandleListProposals)
	mux.Post("/api/listings/{id}/proposals", h.Proposals.HandleCreateProposal)

	return mux
}
