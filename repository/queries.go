package repository

import (
	"context"

	"gorm.io/gorm"

	"scripvault/models"
)

type queryRepo struct {
	db *gorm.DB
}

func (r *queryRepo) Create(ctx context.Context, q *models.Query) error {
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *queryRepo) ForUser(ctx context.Context, userID uint) ([]models.Query, error) {
	var queries []models.Query
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&queries).Error
	if err != nil {
		return nil, err
	}
	return queries, nil
}
