package mail

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/runtix/runtix/internal/pkg/env"
)

// SendMail sends an email via SMTP.
func SendMail(to string, subject string, body string) error {
	host := env.GetEnv("SMTP_HOST", "")
	port := env.GetEnv("SMTP_PORT", "")
	username := env.GetEnv("SMTP_USERNAME", "")
	password := env.GetEnv("SMTP_PASSWORD", "")
	sender := env.GetEnv("SMTP_SENDER", "")

	if sender == "" {
		sender = fmt.Sprintf("no-reply@%s", "localhost")
		log.Printf("SMTP_SENDER not set, using default sender: %s", sender)
	}

	var auth smtp.Auth
	if username != "" && password != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	addr := fmt.Sprintf("%s:%s", host, port)

	msg := []byte(
		fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n", sender, to, subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/plain; charset=UTF-8\r\n\r\n" +
			body,
	)

	err := smtp.SendMail(addr, auth, sender, []string{to}, msg)
	if err != nil {
		log.Printf("SMTP send error: %v", err)
	} else {
		log.Printf("Email sent to %s via %s", to, addr)
	}
	return err
}

// SendRegistrationConfirmation notifies a runner that their event registration
// was recorded.
func SendRegistrationConfirmation(to string, eventName string, registrationID uint) error {
	subject := "Registration Confirmation"
	body := fmt.Sprintf("You have successfully registered for the event: %s. Your registration ID is %d.", eventName, registrationID)
	return SendMail(to, subject, body)
}

// SendEventReminder notifies a runner about an event taking place tomorrow.
func SendEventReminder(to string, eventName string) error {
	subject := "Event Reminder"
	body := fmt.Sprintf("Don't forget: the event %s takes place tomorrow!", eventName)
	return SendMail(to, subject, body)
}
