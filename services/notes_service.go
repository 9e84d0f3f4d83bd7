package services

import (
	"context"
	"fmt"
	"strings"

	"github/itish2003/companion/logger"
	"github/itish2003/companion/models"

	"go.uber.org/zap"
)

const storedInfoMessage = "Information stored successfully"

// NotesService stores and lists the free-text information users save.
type NotesService interface {
	StoreInfo(c context.Context, req models.StoreInfoRequest) (*models.StoreInfoResponse, error)
	GetStoredInfo(c context.Context, username string) (*models.GetStoredInfoResponse, error)
}

type notesServiceImpl struct {
	store  NoteStore
	logger *zap.Logger
}

// NewNotesService creates a new notes service instance
func NewNotesService(store NoteStore, log *zap.Logger) NotesService {
	return &notesServiceImpl{
		store:  store,
		logger: log.With(zap.String("component", "notes_service")),
	}
}

func (n *notesServiceImpl) StoreInfo(c context.Context, req models.StoreInfoRequest) (*models.StoreInfoResponse, error) {
	username := strings.TrimSpace(req.Username)
	info := strings.TrimSpace(req.Info)

	rec, err := n.store.Append(c, username, info)
	if err != nil {
		return nil, fmt.Errorf("could not store note for %s: %w", username, err)
	}

	n.logger.Info("stored information",
		zap.String("username", username),
		zap.String("entryId", rec.ID),
		zap.String("preview", logger.Preview(info, 100)),
	)
	return &models.StoreInfoResponse{
		Success:   true,
		Message:   storedInfoMessage,
		EntryID:   rec.ID,
		Timestamp: models.FormatTimestamp(rec.CreatedAt),
	}, nil
}

func (n *notesServiceImpl) GetStoredInfo(c context.Context, username string) (*models.GetStoredInfoResponse, error) {
	username = strings.TrimSpace(username)

	notes, err := n.store.List(c, username)
	if err != nil {
		return nil, fmt.Errorf("could not list notes for %s: %w", username, err)
	}

	entries := make([]models.NoteEntry, 0, len(notes))
	for _, rec := range notes {
		entries = append(entries, models.NewNoteEntry(rec))
	}

	n.logger.Debug("listed stored information", zap.String("username", username), zap.Int("count", len(entries)))
	return &models.GetStoredInfoResponse{
		Success: true,
		Data:    entries,
		Count:   len(entries),
	}, nil
}
