package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"scripvault/middleware"
	"scripvault/models"
	"scripvault/repository"
)

type AskExpertsHandler struct {
	queries repository.Queries
}

func NewAskExpertsHandler(queries repository.Queries) *AskExpertsHandler {
	return &AskExpertsHandler{queries: queries}
}

type queryInput struct {
	Question       string   `json:"question" binding:"required"`
	InvestmentType string   `json:"investmentType"`
	GoalType       string   `json:"goalType"`
	Tags           []string `json:"tags"`
}

// Submit files a new query. It always starts Pending with the canned
// response; the answer transition belongs to an out-of-band admin tool.
func (h *AskExpertsHandler) Submit(c *gin.Context) {
	var input queryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	category := input.InvestmentType
	if category == "" {
		category = "General"
	}
	goalType := input.GoalType
	if goalType == "" {
		goalType = "General"
	}
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	query := models.Query{
		UserID:   middleware.UserID(c),
		Text:     input.Question,
		Category: category,
		GoalType: goalType,
		Tags:     tags,
		Status:   models.QueryPending,
		Response: models.PendingResponse,
	}
	if err := h.queries.Create(c.Request.Context(), &query); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to submit query"})
		return
	}
	c.JSON(http.StatusCreated, query)
}

// List returns all of the caller's queries, newest first.
func (h *AskExpertsHandler) List(c *gin.Context) {
	queries, err := h.queries.ForUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch queries"})
		return
	}
	c.JSON(http.StatusOK, queries)
}
