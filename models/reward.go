package models

import "time"

// Requirement types a reward can be gated on. Thresholds are informational:
// unlocking is a manual action, the server never evaluates them.
const (
	RequirementHours   = "hours"
	RequirementStreak  = "streak"
	RequirementEntries = "entries"
)

// Reward is an unlockable treat. RedemptionCode is assigned when unlocked.
type Reward struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"size:128;not null" json:"name"`
	RequirementType  string    `gorm:"size:16;not null" json:"requirement_type"`
	RequirementValue int       `gorm:"not null" json:"requirement_value"`
	Unlocked         bool      `gorm:"default:false" json:"unlocked"`
	RedemptionCode   string    `gorm:"size:36" json:"redemption_code,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
