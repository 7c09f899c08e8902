package repository

import (
	"context"

	"gorm.io/gorm"

	"scripvault/models"
)

type stockRepo struct {
	db *gorm.DB
}

func (r *stockRepo) All(ctx context.Context) ([]models.Stock, error) {
	var stocks []models.Stock
	if err := r.db.WithContext(ctx).Order("id").Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}
