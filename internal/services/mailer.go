package services

import (
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"resumeworks/ats-parser/internal/logger"
	"resumeworks/ats-parser/internal/models"
)

type Mailer interface {
	Send(recipient, subject, body string) error
}

type smtpMailer struct {
	host     string
	port     string
	sender   string
	password string
}

func NewMailer(host, port, sender, password string) Mailer {
	return &smtpMailer{
		host:     host,
		port:     port,
		sender:   sender,
		password: password,
	}
}

// Send implements Mailer. When credentials are not configured it logs a
// warning and returns nil, so environments without SMTP keep working.
func (m *smtpMailer) Send(recipient, subject, body string) error {
	if m.sender == "" || m.password == "" {
		logger.Warn().Msg("Email credentials are not set, skipping notification")
		return nil
	}

	msg := strings.Join([]string{
		fmt.Sprintf("From: %s", m.sender),
		fmt.Sprintf("To: %s", recipient),
		fmt.Sprintf("Subject: %s", subject),
		"",
		body,
	}, "\r\n")

	addr := net.JoinHostPort(m.host, m.port)
	auth := smtp.PlainAuth("", m.sender, m.password, m.host)

	if err := smtp.SendMail(addr, auth, m.sender, []string{recipient}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", recipient, err)
	}

	logger.Info().Str("recipient", recipient).Msg("Email sent successfully")
	return nil
}

// StatusNotification builds the mail sent to a candidate after a status
// transition.
func StatusNotification(candidate *models.Candidate) Notification {
	name := candidate.Name
	if name == "" {
		name = "Candidate"
	}

	var body string
	switch candidate.Status {
	case models.StatusShortlisted:
		body = fmt.Sprintf("Dear %s,\n\nYour application has been shortlisted. We will contact you with next steps shortly.", name)
	case models.StatusInterviewScheduled:
		body = fmt.Sprintf("Dear %s,\n\nAn interview has been scheduled for your application. Details will follow in a separate message.", name)
	case models.StatusHired:
		body = fmt.Sprintf("Dear %s,\n\nCongratulations! We are pleased to move forward with an offer.", name)
	case models.StatusRejected:
		body = fmt.Sprintf("Dear %s,\n\nThank you for your interest. We have decided not to move forward with your application at this time.", name)
	default:
		body = fmt.Sprintf("Dear %s,\n\nWe have received your application and it is under review.", name)
	}

	return Notification{
		Recipient: candidate.Email,
		Subject:   fmt.Sprintf("Application update: %s", candidate.Status),
		Body:      body,
	}
}
