package models

import "time"

// Module represents a section/module within a course
type Module struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	CourseID    uint      `json:"course_id" gorm:"index;not null"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	OrderIndex  int       `json:"order_index" gorm:"default:0"` // Module order in course
}
