package utils

import (
	"fmt"

	"github.com/Magar0077/EduManage/config"
	"github.com/Magar0077/EduManage/models"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendContactEmail forwards an admissions inquiry to the admissions office
func SendContactEmail(cfg *config.Config, msg *models.ContactMessage) error {
	from := mail.NewEmail("EduManage", cfg.EmailSender)
	to := mail.NewEmail("Admissions Office", cfg.AdmissionsEmail)
	subject := fmt.Sprintf("Admissions inquiry from %s", msg.Name)

	plain := fmt.Sprintf("From: %s <%s>\n\n%s", msg.Name, msg.Email, msg.Message)
	html := fmt.Sprintf(
		`<p><strong>From:</strong> %s &lt;%s&gt;</p><p>%s</p>`,
		msg.Name, msg.Email, msg.Message,
	)

	message := mail.NewSingleEmail(from, subject, to, plain, html)
	client := sendgrid.NewSendClient(cfg.SendGridKey)

	resp, err := client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
