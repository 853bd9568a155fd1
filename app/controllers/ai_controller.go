package controllers

import (
	"net/http"

	"blogd/app/services"
)

// AIController proxies summarization requests to the AI provider
type AIController struct {
	summaryService *services.SummaryService
}

// NewAIController creates a new AIController
func NewAIController(summaryService *services.SummaryService) *AIController {
	return &AIController{summaryService: summaryService}
}

// Generate summarizes the submitted text
func (c *AIController) Generate(w http.ResponseWriter, r *http.Request) {
	var req AIRequest
	if err := decodeJSON(r, &req); err != nil {
		sendError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	summary, err := c.summaryService.Summarize(r.Context(), req.Text)
	if err != nil {
		sendError(w, http.StatusInternalServerError, "AI Service Error")
		return
	}

	sendJSON(w, http.StatusOK, SummaryResponse{Summary: summary})
}
