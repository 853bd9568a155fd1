package controllers

import (
	"errors"
	"net/http"

	"blogd/app/middleware"
	"blogd/app/models"
	"blogd/app/repositories"
	"blogd/app/services"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for blog posts
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

// Create handles the full upsert of a post document
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var req PostRequest
	if err := decodeJSON(r, &req); err != nil {
		sendError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	post := &models.Post{
		ID:      req.ID,
		Title:   req.Title,
		Content: req.Content,
		Status:  req.Status,
	}

	principal := middleware.Principal(r.Context())
	if err := pc.postService.SavePost(post, principal); err != nil {
		if errors.Is(err, repositories.ErrNotFoundOrUnauthorized) {
			sendError(w, http.StatusNotFound, "Post not found or unauthorized")
			return
		}
		sendError(w, http.StatusBadRequest, err.Error())
		return
	}

	sendJSON(w, http.StatusOK, MessageResponse{Message: "Draft saved", ID: post.ID})
}

// Patch handles the editor's auto-save partial updates
func (pc *PostController) Patch(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req PatchRequest
	if err := decodeJSON(r, &req); err != nil {
		sendError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	patch := &models.PostPatch{Title: req.Title, Content: req.Content}
	principal := middleware.Principal(r.Context())

	if err := pc.postService.PatchPost(id, patch, principal); err != nil {
		if errors.Is(err, repositories.ErrNotFoundOrUnauthorized) {
			sendError(w, http.StatusNotFound, "Post not found or unauthorized")
			return
		}
		sendError(w, http.StatusBadRequest, err.Error())
		return
	}

	sendJSON(w, http.StatusOK, MessageResponse{Message: "Auto-save successful"})
}

// Publish transitions a draft to the published state
func (pc *PostController) Publish(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	principal := middleware.Principal(r.Context())

	if err := pc.postService.PublishPost(id, principal); err != nil {
		if errors.Is(err, repositories.ErrNotFoundOrUnauthorized) {
			sendError(w, http.StatusNotFound, "Post not found or unauthorized")
			return
		}
		sendError(w, http.StatusInternalServerError, "failed to publish post")
		return
	}

	sendJSON(w, http.StatusOK, MessageResponse{Message: "Published"})
}

// Index lists the authenticated user's posts
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	principal := middleware.Principal(r.Context())

	posts, err := pc.postService.ListPosts(principal)
	if err != nil {
		sendError(w, http.StatusInternalServerError, "failed to fetch posts")
		return
	}

	sendJSON(w, http.StatusOK, posts)
}
