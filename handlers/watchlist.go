package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"scripvault/cache"
	"scripvault/middleware"
	"scripvault/models"
	"scripvault/repository"
)

type WatchlistHandler struct {
	watchlists repository.Watchlists
	catalog    cache.CatalogCache
}

func NewWatchlistHandler(watchlists repository.Watchlists, catalog cache.CatalogCache) *WatchlistHandler {
	return &WatchlistHandler{watchlists: watchlists, catalog: catalog}
}

func (h *WatchlistHandler) Get(c *gin.Context) {
	watchlist, err := h.watchlists.ForUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, watchlist)
}

type watchlistAddInput struct {
	Symbol  string `json:"symbol" binding:"required"`
	Name    string `json:"name"`
	Type    string `json:"type" binding:"omitempty,oneof=Stock 'Mutual Fund' ETF NFO"`
	SubType string `json:"subType"`
	Risk    string `json:"risk" binding:"omitempty,oneof='Low Risk' 'Medium Risk' 'High Risk'"`

	// marketPrice on the wire maps to the catalog's currentPrice.
	MarketPrice     float64 `json:"marketPrice" binding:"min=0"`
	DayChange       float64 `json:"dayChange"`
	OneYearReturn   float64 `json:"oneYearReturn"`
	ThreeYearReturn float64 `json:"threeYearReturn"`
	FiveYearReturn  float64 `json:"fiveYearReturn"`

	Logo      string    `json:"logo"`
	TrendData []float64 `json:"trendData"`
}

// Add resolves or creates the catalog entry by symbol and set-adds it
// to the caller's watchlist; adding the same symbol twice leaves one
// reference.
func (h *WatchlistHandler) Add(c *gin.Context) {
	var input watchlistAddInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	stock := models.Stock{
		Symbol:          strings.ToUpper(strings.TrimSpace(input.Symbol)),
		Name:            input.Name,
		Type:            input.Type,
		SubType:         input.SubType,
		Risk:            input.Risk,
		CurrentPrice:    input.MarketPrice,
		DayChange:       input.DayChange,
		OneYearReturn:   input.OneYearReturn,
		ThreeYearReturn: input.ThreeYearReturn,
		FiveYearReturn:  input.FiveYearReturn,
		Logo:            input.Logo,
		TrendData:       input.TrendData,
	}

	watchlist, created, err := h.watchlists.Add(c.Request.Context(), middleware.UserID(c), &stock)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add to watchlist"})
		return
	}

	// A new catalog row makes the cached explore listing stale.
	if created && h.catalog != nil {
		h.catalog.Invalidate(c.Request.Context())
	}

	c.JSON(http.StatusCreated, watchlist)
}

// Remove drops the reference from the caller's watchlist only; the
// catalog row may be on other users' lists and is never deleted here.
func (h *WatchlistHandler) Remove(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid stock id"})
		return
	}

	err = h.watchlists.Remove(c.Request.Context(), middleware.UserID(c), uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Stock not found in watchlist"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to remove from watchlist"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stock removed from watchlist"})
}
