package models

type LoginRequest struct {
	Username string `json:"username" binding:"required,notblank"`
}

type StoreInfoRequest struct {
	Username string `json:"username" binding:"required,notblank"`
	Info     string `json:"info" binding:"required,notblank"`
}

// ChatRequest fields are declared in validation order: a request missing
// both reports the message first.
type ChatRequest struct {
	Message  string `json:"message" binding:"required,notblank"`
	Username string `json:"username" binding:"required,notblank"`
}
