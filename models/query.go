package models

import "gorm.io/gorm"

// Query status values. The Pending -> Answered transition is performed
// by an out-of-band admin tool; no endpoint here flips it.
const (
	QueryPending  = "Pending"
	QueryAnswered = "Answered"
)

// PendingResponse is the canned reply attached to every new query until
// an expert answers it.
const PendingResponse = "Your query is being reviewed by our experts. " +
	"You'll receive a detailed response within 24 hours. Thank you for your patience!"

// Query is a user-submitted question in the ask-an-expert inbox.
type Query struct {
	gorm.Model
	UserID uint `gorm:"index" json:"user"`

	Text     string   `json:"text"`
	Category string   `gorm:"default:General" json:"category"`
	GoalType string   `gorm:"default:General" json:"goalType"`
	Tags     []string `gorm:"serializer:json" json:"tags"`

	Status     string `gorm:"default:Pending" json:"status"`
	IsAnswered bool   `json:"isAnswered"`

	Expert       string `json:"expert"`
	ExpertAvatar string `json:"expertAvatar"`
	Response     string `json:"response"`
}
