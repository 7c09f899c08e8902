package models

import (
	"time"

	"gorm.io/gorm"
)

// Risk tolerance values accepted on a user profile.
const (
	RiskConservative = "conservative"
	RiskModerate     = "moderate"
	RiskAggressive   = "aggressive"
)

const DefaultProfilePic = "https://placehold.co/80x80/cccccc/white?text=Profile"

// PreferredInvestments is the per-category preference map on a user
// profile.
type PreferredInvestments struct {
	MutualFunds   bool `json:"mutualFunds"`
	Stocks        bool `json:"stocks"`
	FixedDeposits bool `json:"fixedDeposits"`
	ETFs          bool `json:"etfs"`
	NFOs          bool `json:"nfos"`
	NPS           bool `json:"nps"`
}

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex" json:"email"`
	Password string `json:"-"`

	FullName    string     `json:"fullName"`
	Phone       string     `json:"phone"`
	Address     string     `json:"address"`
	DateOfBirth *time.Time `json:"dateOfBirth"`

	RiskTolerance        string               `gorm:"default:moderate" json:"riskTolerance"`
	PreferredInvestments PreferredInvestments `gorm:"embedded;embeddedPrefix:pref_" json:"preferredInvestments"`
	TwoFactorAuth        bool                 `json:"twoFactorAuth"`
	ProfilePic           string               `json:"profilePic"`

	// Denormalized dashboard summaries, refreshed whenever the user's
	// investments change.
	TotalInvested float64 `json:"investments"`
	NetWorth      float64 `json:"networth"`
}
