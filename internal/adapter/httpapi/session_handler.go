package httpapi

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/swapspot/swapspot/internal/marketplace/usecase"
)

type SessionHandler struct {
	sessions *usecase.SessionUsecase
	logger   *zap.Logger
}

func NewSessionHandler(sessions *usecase.SessionUsecase, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{sessions: sessions, logger: logger}
}

type clientSessionRequest struct {
	ClientID string `json:"clientId"`
}

type clientSessionResponse struct {
	ClientID string `json:"clientId"`
}

// HandleEnsureSession creates a new client session or confirms an existing
// one. A malformed or empty body is treated as a request for a fresh session.
func (h *SessionHandler) HandleEnsureSession(w http.ResponseWriter, r *http.Request) {
	var req clientSessionRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	session, err := h.sessions.EnsureSession(r.Context(), req.ClientID)
	if err != nil {
		h.logger.Error("Failed to ensure client session", zap.Error(err))
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to create or retrieve client session")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, clientSessionResponse{ClientID: session.ID})
}
