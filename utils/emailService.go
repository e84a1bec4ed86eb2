package utils

import (
	"edulan/config"
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

// SendEmail sends an HTML mail through the configured SMTP account. When no
// sender is configured the mail is skipped, not failed.
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	if from == "" {
		log.Printf("Email sender not configured, skipping mail %q to %v", subject, to)
		return nil
	}

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: EduLAN <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg)); err != nil {
		log.Printf("Error sending email: %v", err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #1A3C5E; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A3C5E; line-height: 1.6; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>%s</h1></div>
			<div class="content">%s</div>
			<div class="footer">EduLAN Learning Platform</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}

// SendEnrollmentEmail notifies a user that their enrollment went through.
func SendEnrollmentEmail(email, userName, className string) error {
	body := fmt.Sprintf(`
		<h2>Enrollment Successful</h2>
		<p>Dear %s,</p>
		<p>You have been enrolled in:</p>
		<h3>%s</h3>
		<p>You can now access all chapters and track your progress. Happy learning!</p>
	`, userName, className)

	return SendEmail([]string{email}, "Enrollment Confirmation - EduLAN", getEmailTemplate("EduLAN", body))
}

// SendCompletionEmail notifies a user that they finished every chapter in a class.
func SendCompletionEmail(email, userName, className string) error {
	body := fmt.Sprintf(`
		<h2>Course Completed</h2>
		<p>Dear %s,</p>
		<p>Congratulations! You have completed all chapters of:</p>
		<h3>%s</h3>
	`, userName, className)

	return SendEmail([]string{email}, "Course Completed - EduLAN", getEmailTemplate("EduLAN", body))
}
