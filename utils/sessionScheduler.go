package utils

import (
	"log"
	"time"

	"github.com/Magar0077/EduManage/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[SESSION-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// purgeExpiredSessions drops revoked sessions whose tokens have expired;
// the middleware rejects those tokens anyway
func purgeExpiredSessions(db *gorm.DB) {
	result := db.Where("expires_at < ?", time.Now()).Delete(&models.RevokedSession{})
	if result.Error != nil {
		logScheduler("Error purging expired sessions: " + result.Error.Error())
		return
	}
	if result.RowsAffected > 0 {
		logScheduler("Purged expired revoked sessions")
	}
}

// StartSessionCleanup schedules the hourly purge of expired revoked sessions
func StartSessionCleanup(db *gorm.DB) *cron.Cron {
	c := cron.New()
	if _, err := c.AddFunc("@hourly", func() { purgeExpiredSessions(db) }); err != nil {
		logScheduler("Error scheduling session cleanup: " + err.Error())
		return c
	}
	c.Start()
	logScheduler("Session cleanup scheduled")
	return c
}
