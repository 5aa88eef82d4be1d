package models

import "time"

// Habit is a named activity a user spends time on. A user cannot own two
// habits with the same name.
type Habit struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	UserID    uint         `gorm:"not null;uniqueIndex:idx_habits_user_name" json:"user_id"`
	Name      string       `gorm:"size:128;not null;uniqueIndex:idx_habits_user_name" json:"name"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	Entries   []HabitEntry `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

// HabitEntry is one logged block of time against a habit. Entries are
// append-only; EntryDate is a YYYY-MM-DD string so date equality behaves the
// same on MySQL and SQLite.
type HabitEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	HabitID   uint      `gorm:"index;not null" json:"habit_id"`
	EntryDate string    `gorm:"size:10;index;not null" json:"entry_date"`
	Hours     float64   `gorm:"not null" json:"hours"`
	Note      string    `gorm:"size:512" json:"note"`
	Sticker   string    `gorm:"size:16" json:"sticker"`
	CreatedAt time.Time `json:"created_at"`
}
