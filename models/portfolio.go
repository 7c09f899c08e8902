package models

import "gorm.io/gorm"

// Portfolio is the one-per-user aggregate of investment references. The
// join table keeps the reference array out of the investments table so
// membership changes never touch the holding rows.
type Portfolio struct {
	gorm.Model
	UserID      uint         `gorm:"uniqueIndex" json:"user"`
	Investments []Investment `gorm:"many2many:portfolio_investments" json:"investments"`
}

// Watchlist is the one-per-user set of catalog references. The join
// table's composite primary key makes adds idempotent.
type Watchlist struct {
	gorm.Model
	UserID uint    `gorm:"uniqueIndex" json:"user"`
	Stocks []Stock `gorm:"many2many:watchlist_stocks" json:"stocks"`
}
