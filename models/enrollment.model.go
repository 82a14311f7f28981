package models

import "time"

// Enrollment links a user to a course. The composite unique index is the
// source of truth for the one-enrollment-per-pair invariant: a losing
// concurrent insert fails on it and is answered as already-enrolled.
type Enrollment struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_enrollments_user_course"`
	CourseID  uint      `json:"course_id" gorm:"not null;uniqueIndex:idx_enrollments_user_course"`
	Course    Course    `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}
