package services

import (
	"context"
	"sync"

	"resumeworks/ats-parser/internal/logger"
)

// Notification is one outbound mail job.
type Notification struct {
	Recipient string
	Subject   string
	Body      string
}

// Notifier dispatches notification mails on background workers so HTTP
// handlers never block on SMTP.
type Notifier interface {
	Start(ctx context.Context)
	Stop()
	Enqueue(notification Notification)
}

type notifier struct {
	mailer      Mailer
	queue       chan Notification
	concurrency int
	wg          sync.WaitGroup
	stopChan    chan struct{}
}

func NewNotifier(mailer Mailer, concurrency int) Notifier {
	return &notifier{
		mailer:      mailer,
		queue:       make(chan Notification, 100),
		concurrency: concurrency,
		stopChan:    make(chan struct{}),
	}
}

// Start implements Notifier.
func (n *notifier) Start(ctx context.Context) {
	logger.Info().Int("concurrency", n.concurrency).Msg("Starting notification workers")

	for i := 0; i < n.concurrency; i++ {
		n.wg.Add(1)
		go n.processNotifications(ctx, i+1)
	}
}

// Stop implements Notifier.
func (n *notifier) Stop() {
	logger.Info().Msg("Stopping notification workers")
	close(n.stopChan)
	n.wg.Wait()
	logger.Info().Msg("Notification workers stopped")
}

// Enqueue implements Notifier. Notifications for candidates without an email
// address are dropped.
func (n *notifier) Enqueue(notification Notification) {
	if notification.Recipient == "" {
		logger.Warn().Msg("Notification without recipient dropped")
		return
	}

	select {
	case n.queue <- notification:
	case <-n.stopChan:
		logger.Warn().Str("recipient", notification.Recipient).Msg("Notifier stopped, notification dropped")
	}
}

func (n *notifier) processNotifications(ctx context.Context, workerID int) {
	defer n.wg.Done()

	for {
		select {
		case <-n.stopChan:
			return
		case <-ctx.Done():
			return
		case notification := <-n.queue:
			if err := n.mailer.Send(notification.Recipient, notification.Subject, notification.Body); err != nil {
				logger.Error().Err(err).Int("worker", workerID).Str("recipient", notification.Recipient).Msg("Failed to send notification")
			}
		}
	}
}
