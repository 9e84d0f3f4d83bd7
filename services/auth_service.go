package services

import (
	"context"
	"strings"
	"time"

	"github/itish2003/companion/models"

	"go.uber.org/zap"
)

// AuthService accepts any non-empty username. There is no password; the
// returned username becomes the client-side session key.
type AuthService interface {
	Login(c context.Context, req models.LoginRequest) (*models.LoginResponse, error)
}

type authServiceImpl struct {
	now    func() time.Time
	logger *zap.Logger
}

// NewAuthService creates a new login service instance
func NewAuthService(now func() time.Time, logger *zap.Logger) AuthService {
	if now == nil {
		now = time.Now
	}
	return &authServiceImpl{now: now, logger: logger.With(zap.String("component", "auth_service"))}
}

func (a *authServiceImpl) Login(_ context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, ErrUsernameRequired
	}

	a.logger.Info("user logged in", zap.String("username", username))
	return &models.LoginResponse{
		Success: true,
		UserData: models.UserData{
			Username:  username,
			LoginTime: models.FormatTimestamp(a.now()),
		},
	}, nil
}
