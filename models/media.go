package models

import "time"

// Media kinds.
const (
	MediaBook  = "book"
	MediaMovie = "movie"
)

// Media is a rated book or movie review. Rating is clamped to [1,5] before
// it reaches the store.
type Media struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Type      string    `gorm:"size:16;not null" json:"type"`
	Rating    int       `gorm:"not null" json:"rating"`
	Review    string    `gorm:"type:text" json:"review"`
	CreatedAt time.Time `json:"created_at"`
}
