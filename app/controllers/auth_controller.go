package controllers

import (
	"errors"
	"net/http"

	"blogd/app/repositories"
	"blogd/app/services"
)

// AuthController handles signup and login requests
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Signup handles account creation
func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		sendError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := c.authService.Register(req.Username, req.Password); err != nil {
		if errors.Is(err, repositories.ErrDuplicateUser) {
			sendError(w, http.StatusBadRequest, "Username already registered")
			return
		}
		sendError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	sendJSON(w, http.StatusOK, MessageResponse{Message: "User created successfully"})
}

// Login verifies credentials and returns a bearer token
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		sendError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	token, err := c.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			sendError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		sendError(w, http.StatusInternalServerError, "login failed")
		return
	}

	sendJSON(w, http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}
