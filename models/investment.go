package models

import (
	"time"

	"gorm.io/gorm"
)

// Contribution frequencies.
const (
	FrequencyOneTime = "One-Time"
	FrequencySIP     = "SIP"
)

// Investment is a single holding. It is owned by exactly one user and
// referenced by that user's portfolio; the name/type fields are
// denormalized rather than linked to the catalog.
type Investment struct {
	gorm.Model
	UserID uint `gorm:"index" json:"user"`

	Name      string `json:"name"`
	Type      string `json:"type"`
	Symbol    string `json:"symbol"`
	Frequency string `json:"frequency"`

	// Amount is the SIP installment for recurring holdings or the
	// per-unit purchase price for one-time ones.
	Amount        float64 `json:"amount"`
	InvestedValue float64 `json:"investedValue"`
	MarketValue   float64 `json:"marketValue"`

	Logo         string    `json:"logo"`
	PurchaseDate time.Time `json:"purchaseDate"`
}
