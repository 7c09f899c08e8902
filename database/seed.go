package database

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"scripvault/models"
)

//go:embed explore.json
var exploreData []byte

// seedEntry mirrors the catalog dataset, which carries display-formatted
// strings ("+24.5%", "₹2,456.75") rather than plain numbers.
type seedEntry struct {
	Symbol          string    `json:"symbol"`
	Name            string    `json:"name"`
	Type            string    `json:"type"`
	SubType         string    `json:"subType"`
	Risk            string    `json:"risk"`
	MarketPrice     string    `json:"marketPrice"`
	DayChange       string    `json:"dayChange"`
	OneYearReturn   string    `json:"oneYearReturn"`
	ThreeYearReturn string    `json:"threeYearReturn"`
	FiveYearReturn  string    `json:"fiveYearReturn"`
	Logo            string    `json:"logo"`
	TrendData       []float64 `json:"trendData"`
}

// SeedCatalog populates the stock catalog from the embedded dataset. It
// runs only against an empty catalog; restarting with data in place is a
// no-op.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Stock{}).Count(&count).Error; err != nil {
		return fmt.Errorf("counting catalog: %w", err)
	}
	if count > 0 {
		return nil
	}

	var entries []seedEntry
	if err := json.Unmarshal(exploreData, &entries); err != nil {
		return fmt.Errorf("decoding catalog dataset: %w", err)
	}

	stocks := make([]models.Stock, 0, len(entries))
	for _, e := range entries {
		stocks = append(stocks, models.Stock{
			Symbol:          strings.ToUpper(strings.TrimSpace(e.Symbol)),
			Name:            e.Name,
			Type:            e.Type,
			SubType:         e.SubType,
			Risk:            e.Risk,
			CurrentPrice:    parseMoney(e.MarketPrice),
			DayChange:       parsePercent(e.DayChange),
			OneYearReturn:   parsePercent(e.OneYearReturn),
			ThreeYearReturn: parsePercent(e.ThreeYearReturn),
			FiveYearReturn:  parsePercent(e.FiveYearReturn),
			Logo:            e.Logo,
			TrendData:       e.TrendData,
		})
	}

	if err := db.CreateInBatches(stocks, 100).Error; err != nil {
		return fmt.Errorf("seeding catalog: %w", err)
	}
	return nil
}

// parsePercent turns strings like "+24.5%" or "-0.8%" into a float.
// Malformed values become 0 rather than failing the whole seed.
func parsePercent(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimPrefix(s, "+")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseMoney turns strings like "₹2,456.75" into a float.
func parseMoney(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "₹")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
