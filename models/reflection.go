package models

import "time"

// Reflection is the daily journal record. At most one row exists per
// (user, date); later saves overwrite all text fields via upsert.
type Reflection struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_reflections_user_date" json:"user_id"`
	EntryDate   string    `gorm:"size:10;not null;uniqueIndex:idx_reflections_user_date" json:"entry_date"`
	Text        string    `gorm:"type:text" json:"text"`
	Win         string    `gorm:"size:512" json:"win"`
	Improvement string    `gorm:"size:512" json:"improvement"`
	Mood        string    `gorm:"size:32;not null" json:"mood"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
