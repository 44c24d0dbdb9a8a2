package utils

import (
	"eduvest/config"
	"fmt"
	"log"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail delivers an HTML email through Sendgrid. Without an API key
// configured the message is logged and dropped, which keeps local
// development and tests offline.
func SendEmail(toEmail, toName, subject, htmlBody string) error {
	if config.AppConfig == nil || config.AppConfig.SendgridApiKey == "" {
		log.Printf("[EMAIL] Sendgrid disabled, skipping %q to %s", subject, toEmail)
		return nil
	}

	from := mail.NewEmail("EduVest", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendgridApiKey)
	response, err := client.Send(message)
	if err != nil {
		log.Printf("[EMAIL] Error sending %q to %s: %v", subject, toEmail, err)
		return err
	}
	if response.StatusCode >= 400 {
		log.Printf("[EMAIL] Sendgrid rejected %q to %s: %d %s", subject, toEmail, response.StatusCode, response.Body)
		return fmt.Errorf("sendgrid error: %d", response.StatusCode)
	}

	log.Printf("[EMAIL] Sent %q to %s", subject, toEmail)
	return nil
}

func getEmailTemplate(title, bodyContent string) string {
	return fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);">
					<h2 style="color: #333333; text-align: center;">%s</h2>
					%s
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">Thank you for learning with EduVest.</p>
				</div>
			</body>
		</html>
	`, title, bodyContent)
}

// SendEnrollmentEmail sends a confirmation when a user enrolls in a course
func SendEnrollmentEmail(email, userName, courseTitle string, deadline time.Time) error {
	body := fmt.Sprintf(`
		<p style="font-size: 16px; color: #555555;">Hi %s,</p>
		<p style="font-size: 16px; color: #555555;">You are enrolled in <strong>%s</strong>.</p>
		<p style="font-size: 14px; color: #999999;">Complete the course before <strong>%s</strong> to stay on track.</p>
	`, userName, courseTitle, deadline.Format("January 2, 2006"))

	return SendEmail(email, userName, "Course Enrollment Confirmation - EduVest", getEmailTemplate("Enrollment Confirmed", body))
}

// SendRewardDistributedEmail notifies a student that a reward was paid out
func SendRewardDistributedEmail(email, userName string, amount float64, courseTitle string) error {
	body := fmt.Sprintf(`
		<p style="font-size: 16px; color: #555555;">Hi %s,</p>
		<p style="font-size: 16px; color: #555555;">Your reward for completing <strong>%s</strong> has been credited.</p>
		<h1 style="text-align: center; color: #4CAF50; font-size: 40px; margin: 20px 0;">$%.2f</h1>
		<p style="font-size: 14px; color: #999999;">The amount is available in your credit balance.</p>
	`, userName, courseTitle, amount)

	return SendEmail(email, userName, "Reward Credited - EduVest", getEmailTemplate("Reward Credited", body))
}
