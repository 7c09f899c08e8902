package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"scripvault/models"
)

type portfolioRepo struct {
	db *gorm.DB
}

// ForUser returns the user's portfolio with holdings expanded. A user
// with no portfolio yet gets an empty one back, never an error.
func (r *portfolioRepo) ForUser(ctx context.Context, userID uint) (*models.Portfolio, error) {
	var p models.Portfolio
	err := r.db.WithContext(ctx).
		Preload("Investments").
		Where("user_id = ?", userID).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.Portfolio{UserID: userID, Investments: []models.Investment{}}, nil
	}
	if err != nil {
		return nil, err
	}
	if p.Investments == nil {
		p.Investments = []models.Investment{}
	}
	return &p, nil
}

// Invest creates the holding, upserts the portfolio, appends the
// reference, and refreshes the user's summary figures, all in one
// transaction so a failure can never leave an orphaned holding.
func (r *portfolioRepo) Invest(ctx context.Context, userID uint, inv *models.Investment) (*models.Portfolio, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(inv).Error; err != nil {
			return err
		}

		var p models.Portfolio
		if err := tx.Where(models.Portfolio{UserID: userID}).FirstOrCreate(&p).Error; err != nil {
			return err
		}
		if err := tx.Model(&p).Association("Investments").Append(inv); err != nil {
			return err
		}

		return refreshSummaries(tx, userID)
	})
	if err != nil {
		return nil, err
	}

	return r.ForUser(ctx, userID)
}
