package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"scripvault/models"
)

type investmentRepo struct {
	db *gorm.DB
}

func (r *investmentRepo) FindByID(ctx context.Context, id uint) (*models.Investment, error) {
	var inv models.Investment
	if err := r.db.WithContext(ctx).First(&inv, id).Error; err != nil {
		return nil, translate(err)
	}
	return &inv, nil
}

func (r *investmentRepo) Update(ctx context.Context, inv *models.Investment, fields map[string]interface{}) (*models.Investment, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(inv).Updates(fields).Error; err != nil {
			return err
		}
		return refreshSummaries(tx, inv.UserID)
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, inv.ID)
}

// Delete removes the holding and its portfolio reference together so no
// dangling reference survives.
func (r *investmentRepo) Delete(ctx context.Context, inv *models.Investment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p models.Portfolio
		err := tx.Where("user_id = ?", inv.UserID).First(&p).Error
		if err == nil {
			if err := tx.Model(&p).Association("Investments").Delete(inv); err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Delete(inv).Error; err != nil {
			return err
		}
		return refreshSummaries(tx, inv.UserID)
	})
}
