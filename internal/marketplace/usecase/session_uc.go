package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/swapspot/swapspot/internal/marketplace/domain"
)

type SessionUsecase struct {
	repo   domain.SessionRepository
	logger *zap.Logger
}

func NewSessionUsecase(repo domain.SessionRepository, logger *zap.Logger) *SessionUsecase {
	return &SessionUsecase{repo: repo, logger: logger}
}

// EnsureSession returns the existing session when existingID resolves, and
// otherwise mints a new one. An unknown or empty existingID is not an error:
// the client may carry a stale cached identifier.
func (uc *SessionUsecase) EnsureSession(ctx context.Context, existingID string) (*domain.ClientSession, error) {
	if existingID != "" {
		session, err := uc.repo.FindByID(ctx, existingID)
		if err == nil {
			return session, nil
		}
		if !errors.Is(err, domain.ErrSessionNotFound) {
			uc.logger.Error("SessionUsecase.EnsureSession: lookup failed",
				zap.String("client_id", existingID), zap.Error(err))
			return nil, err
		}
	}

	session := &domain.ClientSession{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.repo.Create(ctx, session); err != nil {
		uc.logger.Error("SessionUsecase.EnsureSession: failed to create session", zap.Error(err))
		return nil, err
	}
	uc.logger.Info("Client session created", zap.String("client_id", session.ID))
	return session, nil
}
