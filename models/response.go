package models

// ErrorResponse is the envelope returned for every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type UserData struct {
	Username  string `json:"username"`
	LoginTime string `json:"loginTime"`
}

type LoginResponse struct {
	Success  bool     `json:"success"`
	UserData UserData `json:"userData"`
}

type StoreInfoResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	EntryID   string `json:"entryId"`
	Timestamp string `json:"timestamp"`
}

type ChatResponse struct {
	Success       bool   `json:"success"`
	Response      string `json:"response"`
	Timestamp     string `json:"timestamp"`
	HasStoredInfo bool   `json:"hasStoredInfo"`
}
