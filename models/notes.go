package models

import "time"

// NoteRecord is a single piece of information a user stored. Records are
// immutable once created.
type NoteRecord struct {
	ID        string
	Text      string
	CreatedAt time.Time
}

// NoteEntry is the wire form of a NoteRecord.
type NoteEntry struct {
	ID        string `json:"id"`
	Info      string `json:"info"`
	Timestamp string `json:"timestamp"`
}

// NewNoteEntry converts a stored record to its wire form.
func NewNoteEntry(rec NoteRecord) NoteEntry {
	return NoteEntry{
		ID:        rec.ID,
		Info:      rec.Text,
		Timestamp: FormatTimestamp(rec.CreatedAt),
	}
}

// GetStoredInfoResponse is the structure for the response of the GET /store-info endpoint.
type GetStoredInfoResponse struct {
	Success bool        `json:"success"`
	Data    []NoteEntry `json:"data"`
	Count   int         `json:"count"`
}
