package utils

import (
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// NotifyEnrollment posts an enrollment event to the configured webhook.
// Callers run it in a goroutine; delivery is best effort.
func NotifyEnrollment(webhookURL, username, courseCode, courseTitle string) {
	client := resty.New().SetTimeout(10 * time.Second)

	resp, err := client.R().
		SetBody(map[string]string{
			"event":        "enrollment.created",
			"username":     username,
			"course_code":  courseCode,
			"course_title": courseTitle,
		}).
		Post(webhookURL)
	if err != nil {
		log.Printf("Error calling enrollment webhook: %v", err)
		return
	}
	if resp.StatusCode() >= 400 {
		log.Printf("Enrollment webhook failed: %s", resp.String())
	}
}
