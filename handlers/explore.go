package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"scripvault/cache"
	"scripvault/repository"
)

type ExploreHandler struct {
	stocks  repository.Stocks
	catalog cache.CatalogCache
}

func NewExploreHandler(stocks repository.Stocks, catalog cache.CatalogCache) *ExploreHandler {
	return &ExploreHandler{stocks: stocks, catalog: catalog}
}

// Get returns the full catalog; filtering and sorting happen
// client-side. The listing is read-mostly, so it is served from Redis
// when warm.
func (h *ExploreHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	if h.catalog != nil {
		if stocks, ok := h.catalog.Get(ctx); ok {
			c.JSON(http.StatusOK, stocks)
			return
		}
	}

	stocks, err := h.stocks.All(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch catalog"})
		return
	}

	if h.catalog != nil {
		h.catalog.Set(ctx, stocks)
	}
	c.JSON(http.StatusOK, stocks)
}
