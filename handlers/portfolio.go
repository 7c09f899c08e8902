package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"scripvault/middleware"
	"scripvault/models"
	"scripvault/repository"
)

type PortfolioHandler struct {
	portfolios repository.Portfolios
}

func NewPortfolioHandler(portfolios repository.Portfolios) *PortfolioHandler {
	return &PortfolioHandler{portfolios: portfolios}
}

// Get returns the caller's portfolio with holdings expanded. A user who
// has never invested gets an empty portfolio, never a 404.
func (h *PortfolioHandler) Get(c *gin.Context) {
	portfolio, err := h.portfolios.ForUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, portfolio)
}

type investInput struct {
	Name          string     `json:"name" binding:"required"`
	Type          string     `json:"type" binding:"required,oneof='Mutual Fund' Stock ETF NFO NPS 'Fixed Deposit' Other"`
	Symbol        string     `json:"symbol"`
	Frequency     string     `json:"frequency" binding:"required,oneof=One-Time SIP"`
	Amount        float64    `json:"amount" binding:"min=0"`
	InvestedValue float64    `json:"investedValue" binding:"min=0"`
	MarketValue   float64    `json:"marketValue" binding:"min=0"`
	Logo          string     `json:"logo"`
	PurchaseDate  *time.Time `json:"purchaseDate"`
}

func (h *PortfolioHandler) Invest(c *gin.Context) {
	var input investInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	purchaseDate := time.Now()
	if input.PurchaseDate != nil {
		purchaseDate = *input.PurchaseDate
	}

	investment := models.Investment{
		UserID:        middleware.UserID(c),
		Name:          input.Name,
		Type:          input.Type,
		Symbol:        input.Symbol,
		Frequency:     input.Frequency,
		Amount:        input.Amount,
		InvestedValue: input.InvestedValue,
		MarketValue:   input.MarketValue,
		Logo:          input.Logo,
		PurchaseDate:  purchaseDate,
	}

	portfolio, err := h.portfolios.Invest(c.Request.Context(), investment.UserID, &investment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add investment"})
		return
	}
	c.JSON(http.StatusCreated, portfolio)
}
