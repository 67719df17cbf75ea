package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeworks/ats-parser/internal/models"
)

type recordingMailer struct {
	sent chan Notification
}

func (m *recordingMailer) Send(recipient, subject, body string) error {
	m.sent <- Notification{Recipient: recipient, Subject: subject, Body: body}
	return nil
}

func TestNotifierDeliversNotifications(t *testing.T) {
	mailer := &recordingMailer{sent: make(chan Notification, 10)}
	notifier := NewNotifier(mailer, 2)

	notifier.Start(context.Background())
	defer notifier.Stop()

	notifier.Enqueue(Notification{
		Recipient: "jane.doe@example.com",
		Subject:   "Application update: shortlisted",
		Body:      "Dear Jane",
	})

	select {
	case sent := <-mailer.sent:
		assert.Equal(t, "jane.doe@example.com", sent.Recipient)
		assert.Equal(t, "Application update: shortlisted", sent.Subject)
	case <-time.After(2 * time.Second):
		t.Fatal("notification was not delivered")
	}
}

func TestNotifierDropsMissingRecipient(t *testing.T) {
	mailer := &recordingMailer{sent: make(chan Notification, 10)}
	notifier := NewNotifier(mailer, 1)

	notifier.Start(context.Background())
	defer notifier.Stop()

	notifier.Enqueue(Notification{Subject: "no recipient"})

	select {
	case <-mailer.sent:
		t.Fatal("notification without recipient should be dropped")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestMailerSkipsWithoutCredentials(t *testing.T) {
	mailer := NewMailer("smtp.example.com", "587", "", "")

	err := mailer.Send("jane.doe@example.com", "subject", "body")

	require.NoError(t, err)
}

func TestStatusNotification(t *testing.T) {
	tests := []struct {
		name          string
		status        models.CandidateStatus
		candidateName string
		wantInBody    string
	}{
		{"Shortlisted", models.StatusShortlisted, "Jane Doe", "shortlisted"},
		{"Interview scheduled", models.StatusInterviewScheduled, "Jane Doe", "interview"},
		{"Hired", models.StatusHired, "Jane Doe", "Congratulations"},
		{"Rejected", models.StatusRejected, "Jane Doe", "not to move forward"},
		{"Applied fallback", models.StatusApplied, "", "under review"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := &models.Candidate{
				Name:   tt.candidateName,
				Email:  "jane.doe@example.com",
				Status: tt.status,
			}

			notification := StatusNotification(candidate)

			assert.Equal(t, "jane.doe@example.com", notification.Recipient)
			assert.Contains(t, notification.Subject, string(tt.status))
			assert.Contains(t, notification.Body, tt.wantInBody)
		})
	}
}
