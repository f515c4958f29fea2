package models

import "time"

// UserDB represents a student record in the database.
// The password column holds a bcrypt hash and is never serialized.
type UserDB struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key
	Name      string    `json:"name" db:"name"`             // Display name
	Year      int       `json:"year" db:"year"`             // School year
	Class     string    `json:"class" db:"class"`           // Class label
	Email     string    `json:"email" db:"email"`           // Unique email
	Password  string    `json:"-" db:"password"`            // Bcrypt hash
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Registration timestamp
}
