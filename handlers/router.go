package handlers

import (
	"github.com/gin-gonic/gin"

	"scripvault/cache"
	"scripvault/middleware"
	"scripvault/repository"
)

// NewRouter builds the full route table. Only register and login are
// public; everything else sits behind the bearer-token middleware.
func NewRouter(repos *repository.Repositories, catalog cache.CatalogCache, secret string) *gin.Engine {
	auth := NewAuthHandler(repos.Users, secret)
	profile := NewProfileHandler(repos.Users)
	portfolio := NewPortfolioHandler(repos.Portfolios)
	investment := NewInvestmentHandler(repos.Investments)
	watchlist := NewWatchlistHandler(repos.Watchlists, catalog)
	explore := NewExploreHandler(repos.Stocks, catalog)
	askExperts := NewAskExpertsHandler(repos.Queries)

	router := gin.Default()

	router.POST("/auth/register", auth.Register)
	router.POST("/auth/login", auth.Login)

	authed := router.Group("/")
	authed.Use(middleware.JWTAuth(secret))
	{
		authed.GET("/auth/dashboard", auth.Dashboard)

		authed.GET("/api/profile", profile.Get)
		authed.PUT("/api/profile", profile.Update)

		authed.GET("/api/portfolio", portfolio.Get)
		authed.POST("/api/portfolio/invest", portfolio.Invest)

		authed.GET("/api/investment/:id", investment.Get)
		authed.PUT("/api/investment/:id", investment.Update)
		authed.DELETE("/api/investment/:id", investment.Delete)

		authed.GET("/api/explore", explore.Get)

		authed.GET("/api/watchlist", watchlist.Get)
		authed.POST("/api/watchlist/add", watchlist.Add)
		authed.DELETE("/api/watchlist/remove/:id", watchlist.Remove)

		authed.GET("/api/ask-experts", askExperts.List)
		authed.POST("/api/ask-experts/submit-query", askExperts.Submit)
	}

	return router
}
