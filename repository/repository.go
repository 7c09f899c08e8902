package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"scripvault/models"
)

// ErrNotFound is returned when a lookup resolves no row. Implementations
// translate their driver's sentinel so handlers never import gorm.
var ErrNotFound = errors.New("record not found")

// Users stores account records.
type Users interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
	Save(ctx context.Context, user *models.User) error
}

// Stocks reads the shared instrument catalog.
type Stocks interface {
	All(ctx context.Context) ([]models.Stock, error)
}

// Portfolios manages the one-per-user investment aggregate. Invest runs
// the create-holding and append-reference steps in one transaction.
type Portfolios interface {
	ForUser(ctx context.Context, userID uint) (*models.Portfolio, error)
	Invest(ctx context.Context, userID uint, inv *models.Investment) (*models.Portfolio, error)
}

// Investments manages individual holdings. Delete also pulls the
// reference out of the owner's portfolio.
type Investments interface {
	FindByID(ctx context.Context, id uint) (*models.Investment, error)
	Update(ctx context.Context, inv *models.Investment, fields map[string]interface{}) (*models.Investment, error)
	Delete(ctx context.Context, inv *models.Investment) error
}

// Watchlists manages the one-per-user catalog-reference set. Add
// resolves or creates the catalog row and reports whether it created
// one.
type Watchlists interface {
	ForUser(ctx context.Context, userID uint) (*models.Watchlist, error)
	Add(ctx context.Context, userID uint, stock *models.Stock) (*models.Watchlist, bool, error)
	Remove(ctx context.Context, userID, stockID uint) error
}

// Queries stores the ask-an-expert inbox.
type Queries interface {
	Create(ctx context.Context, q *models.Query) error
	ForUser(ctx context.Context, userID uint) ([]models.Query, error)
}

// Repositories bundles the GORM-backed implementations.
type Repositories struct {
	Users       Users
	Stocks      Stocks
	Portfolios  Portfolios
	Investments Investments
	Watchlists  Watchlists
	Queries     Queries
}

func New(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:       &userRepo{db: db},
		Stocks:      &stockRepo{db: db},
		Portfolios:  &portfolioRepo{db: db},
		Investments: &investmentRepo{db: db},
		Watchlists:  &watchlistRepo{db: db},
		Queries:     &queryRepo{db: db},
	}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// refreshSummaries recomputes the denormalized total-invested and
// net-worth figures on the user row from that user's holdings. Runs
// inside the caller's transaction.
func refreshSummaries(tx *gorm.DB, userID uint) error {
	var totals struct {
		Invested float64
		Market   float64
	}
	err := tx.Model(&models.Investment{}).
		Select("COALESCE(SUM(invested_value), 0) AS invested, COALESCE(SUM(market_value), 0) AS market").
		Where("user_id = ?", userID).
		Scan(&totals).Error
	if err != nil {
		return err
	}
	return tx.Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"total_invested": totals.Invested,
			"net_worth":      totals.Market,
		}).Error
}
