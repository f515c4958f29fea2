package models

import "time"

// DiaryEntryDB represents one plant-care diary entry.
// entry_date and entry_time are kept as text on the wire (YYYY-MM-DD and
// HH:MM:SS) to match the API shape; the store columns are DATE and TIME.
// Multiple entries per user per day are permitted.
type DiaryEntryDB struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"user_id" db:"user_id"`
	EntryDate   string    `json:"entry_date" db:"entry_date"`
	EntryTime   *string   `json:"entry_time" db:"entry_time"`
	Watering    bool      `json:"watering" db:"watering"`
	Misting     bool      `json:"misting" db:"misting"`
	Fertilizing bool      `json:"fertilizing" db:"fertilizing"`
	Rotating    bool      `json:"rotating" db:"rotating"`
	Notes       string    `json:"notes" db:"notes"`
	ImagePath   *string   `json:"image_path" db:"image_path"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
