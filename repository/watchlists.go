package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"scripvault/models"
)

type watchlistRepo struct {
	db *gorm.DB
}

func (r *watchlistRepo) ForUser(ctx context.Context, userID uint) (*models.Watchlist, error) {
	var w models.Watchlist
	err := r.db.WithContext(ctx).
		Preload("Stocks").
		Where("user_id = ?", userID).
		First(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.Watchlist{UserID: userID, Stocks: []models.Stock{}}, nil
	}
	if err != nil {
		return nil, err
	}
	if w.Stocks == nil {
		w.Stocks = []models.Stock{}
	}
	return &w, nil
}

// Add resolves the catalog row by symbol (creating it when unknown) and
// set-adds the reference to the user's watchlist. The join table's
// composite key makes a repeated add a no-op. Returns whether a new
// catalog row was created so callers can invalidate caches.
func (r *watchlistRepo) Add(ctx context.Context, userID uint, stock *models.Stock) (*models.Watchlist, bool, error) {
	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Stock
		err := tx.Where("symbol = ?", stock.Symbol).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := tx.Create(stock).Error; err != nil {
				return err
			}
			existing = *stock
			created = true
		} else if err != nil {
			return err
		}
		*stock = existing

		var w models.Watchlist
		if err := tx.Where(models.Watchlist{UserID: userID}).FirstOrCreate(&w).Error; err != nil {
			return err
		}
		return tx.Model(&w).Association("Stocks").Append(&existing)
	})
	if err != nil {
		return nil, false, err
	}

	w, err := r.ForUser(ctx, userID)
	return w, created, err
}

// Remove drops the reference only; the catalog row is shared with other
// users and survives.
func (r *watchlistRepo) Remove(ctx context.Context, userID, stockID uint) error {
	var w models.Watchlist
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&w).Error
	if err != nil {
		return translate(err)
	}

	var matched []models.Stock
	err = r.db.WithContext(ctx).Model(&w).
		Association("Stocks").
		Find(&matched, "stocks.id = ?", stockID)
	if err != nil {
		return err
	}
	if len(matched) == 0 {
		return ErrNotFound
	}

	stock := models.Stock{Model: gorm.Model{ID: stockID}}
	return r.db.WithContext(ctx).Model(&w).Association("Stocks").Delete(&stock)
}
