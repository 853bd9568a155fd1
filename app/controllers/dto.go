package controllers

import "blogd/app/models"

// CredentialsRequest is the signup and login payload.
type CredentialsRequest struct {
	Username string `json:"username" validate:"required,min=1,max=64"`
	Password string `json:"password" validate:"required,min=1"`
}

// TokenResponse is the login response.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// PostRequest is the full-upsert payload. Author and timestamps are never
// accepted from the client.
type PostRequest struct {
	ID      string                 `json:"id" validate:"required,max=128"`
	Title   string                 `json:"title" validate:"required,max=200"`
	Content map[string]interface{} `json:"content" validate:"required"`
	Status  models.Status          `json:"status" validate:"omitempty,oneof=Draft Published"`
}

// PatchRequest is the partial-update payload; absent fields stay untouched.
type PatchRequest struct {
	Title   *string                `json:"title"`
	Content map[string]interface{} `json:"content"`
}

// AIRequest is the summarization payload.
type AIRequest struct {
	Text string `json:"text" validate:"required"`
}

// MessageResponse is the generic success envelope.
type MessageResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

// SummaryResponse carries the AI proxy's output.
type SummaryResponse struct {
	Summary string `json:"summary"`
}
