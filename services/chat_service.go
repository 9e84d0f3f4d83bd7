package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github/itish2003/companion/models"

	"go.uber.org/zap"
)

// ChatService answers a chat message using the sender's stored notes as
// context.
type ChatService interface {
	Chat(c context.Context, req models.ChatRequest) (*models.ChatResponse, error)
}

type chatServiceImpl struct {
	store  NoteStore
	engine ResponseEngine
	now    func() time.Time
	logger *zap.Logger
}

// NewChatService creates a new chat service instance
func NewChatService(store NoteStore, engine ResponseEngine, now func() time.Time, logger *zap.Logger) ChatService {
	if now == nil {
		now = time.Now
	}
	return &chatServiceImpl{
		store:  store,
		engine: engine,
		now:    now,
		logger: logger.With(zap.String("component", "chat_service")),
	}
}

func (s *chatServiceImpl) Chat(c context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	username := strings.TrimSpace(req.Username)

	history, err := s.store.List(c, username)
	if err != nil {
		return nil, fmt.Errorf("could not load history for %s: %w", username, err)
	}

	decision := s.engine.Decide(message, history)
	s.logger.Debug("selected reply",
		zap.String("username", username),
		zap.String("category", string(decision.Category)),
		zap.Int("historySize", len(history)),
	)

	return &models.ChatResponse{
		Success:       true,
		Response:      decision.Text,
		Timestamp:     models.FormatTimestamp(s.now()),
		HasStoredInfo: len(history) > 0,
	}, nil
}
