package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"scripvault/middleware"
	"scripvault/models"
	"scripvault/repository"
)

type InvestmentHandler struct {
	investments repository.Investments
}

func NewInvestmentHandler(investments repository.Investments) *InvestmentHandler {
	return &InvestmentHandler{investments: investments}
}

// load resolves the id parameter and enforces ownership: 404 when the
// holding does not exist, 403 when it belongs to someone else.
func (h *InvestmentHandler) load(c *gin.Context) (*models.Investment, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid investment id"})
		return nil, false
	}

	inv, err := h.investments.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Investment not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return nil, false
	}

	if inv.UserID != middleware.UserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
		return nil, false
	}
	return inv, true
}

func (h *InvestmentHandler) Get(c *gin.Context) {
	inv, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, inv)
}

type investmentUpdateInput struct {
	Name          *string  `json:"name"`
	Amount        *float64 `json:"amount" binding:"omitempty,min=0"`
	InvestedValue *float64 `json:"investedValue" binding:"omitempty,min=0"`
	MarketValue   *float64 `json:"marketValue" binding:"omitempty,min=0"`
	Logo          *string  `json:"logo"`
}

func (h *InvestmentHandler) Update(c *gin.Context) {
	inv, ok := h.load(c)
	if !ok {
		return
	}

	var input investmentUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	fields := make(map[string]interface{})
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Amount != nil {
		fields["amount"] = *input.Amount
	}
	if input.InvestedValue != nil {
		fields["invested_value"] = *input.InvestedValue
	}
	if input.MarketValue != nil {
		fields["market_value"] = *input.MarketValue
	}
	if input.Logo != nil {
		fields["logo"] = *input.Logo
	}

	if len(fields) == 0 {
		c.JSON(http.StatusOK, inv)
		return
	}

	updated, err := h.investments.Update(c.Request.Context(), inv, fields)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update investment"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *InvestmentHandler) Delete(c *gin.Context) {
	inv, ok := h.load(c)
	if !ok {
		return
	}

	if err := h.investments.Delete(c.Request.Context(), inv); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete investment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Investment deleted successfully"})
}
