// FILE: internal/pkg/mailer/email_service.go
package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendIdeaReceived(toEmail, ideaTitle string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

// SendIdeaReceived confirms a portal submission to its author.
func (s *emailService) SendIdeaReceived(toEmail, ideaTitle string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "We received your idea")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Thanks for your idea!</h2>
			<p>Your submission <strong>%s</strong> is now on our board as <em>under consideration</em>.</p>
			<p>Other users can vote for it, and we review the most requested ideas every planning cycle.</p>
		</div>
	`, ideaTitle)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send idea confirmation to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Idea confirmation sent to %s\n", toEmail)
	return nil
}
