package models

import "time"

// Course represents a catalog course. Category plus the optional
// instructor/year pair cover both catalog schema generations.
type Course struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Title       string    `json:"title" gorm:"not null"`
	Code        string    `json:"code" gorm:"uniqueIndex;not null"`
	Category    string    `json:"category"` // e.g. BIT, Business, Arts
	Instructor  string    `json:"instructor,omitempty"`
	Year        int       `json:"year,omitempty"`
	Description string    `json:"description"`
}
