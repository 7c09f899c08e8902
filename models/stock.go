package models

import "gorm.io/gorm"

// Catalog instrument categories.
const (
	TypeStock      = "Stock"
	TypeMutualFund = "Mutual Fund"
	TypeETF        = "ETF"
	TypeNFO        = "NFO"
)

// Catalog risk tiers.
const (
	RiskLow    = "Low Risk"
	RiskMedium = "Medium Risk"
	RiskHigh   = "High Risk"
)

// Stock is a shared catalog entry. Symbols are stored uppercase and are
// globally unique; the row is never owned by a user.
type Stock struct {
	gorm.Model
	Symbol  string `gorm:"uniqueIndex" json:"symbol"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	SubType string `json:"subType"`
	Risk    string `gorm:"default:Medium Risk" json:"risk"`

	CurrentPrice    float64 `json:"currentPrice"`
	DayChange       float64 `json:"dayChange"`
	OneYearReturn   float64 `json:"oneYearReturn"`
	ThreeYearReturn float64 `json:"threeYearReturn"`
	FiveYearReturn  float64 `json:"fiveYearReturn"`

	Logo      string    `json:"logo"`
	TrendData []float64 `gorm:"serializer:json" json:"trendData"`
}
