package models

import "time"

// RevokedSession is the logout denylist. A token whose jti is listed here is
// rejected by the auth middleware until its natural expiry, after which the
// cleanup job removes the row.
type RevokedSession struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"created_at"`
	JTI       string    `json:"jti" gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"index;not null"`
}
