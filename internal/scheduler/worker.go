package scheduler

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"tradegate_backend/internal/email"
	"tradegate_backend/platform/config"
	"tradegate_backend/platform/logger"
)

// Worker processes queued notification tasks and delivers the emails.
type Worker struct {
	server       *asynq.Server
	mux          *asynq.ServeMux
	sender       email.Sender
	adminAddress string
	log          *logger.Logger
}

// NewWorker creates an asynq worker bound to the notification tasks.
func NewWorker(cfg config.SchedulerConfig, smtpCfg config.SMTPConfig, sender email.Sender, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL)
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queue: 1,
		},
	})

	mux := asynq.NewServeMux()
	w := &Worker{
		server:       server,
		mux:          mux,
		sender:       sender,
		adminAddress: smtpCfg.GetAdminNotifyAddress(),
		log:          log,
	}

	mux.HandleFunc(TaskQuoteNotification, w.handleQuoteNotification)
	mux.HandleFunc(TaskContactNotification, w.handleContactNotification)

	return w, nil
}

// Run serves tasks until the context is cancelled.
func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}

func (w *Worker) handleQuoteNotification(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseQuoteNotificationPayload(task)
	if err != nil {
		return err
	}
	if w.adminAddress == "" {
		return nil
	}

	return w.sender.SendQuoteNotification(ctx, w.adminAddress, email.QuoteNotificationData{
		QuoteID:       payload.QuoteID,
		CustomerName:  payload.CustomerName,
		CustomerEmail: payload.CustomerEmail,
		ItemCount:     payload.ItemCount,
	})
}

func (w *Worker) handleContactNotification(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseContactNotificationPayload(task)
	if err != nil {
		return err
	}
	if w.adminAddress == "" {
		return nil
	}

	return w.sender.SendContactNotification(ctx, w.adminAddress, email.ContactNotificationData{
		MessageID: payload.MessageID,
		Name:      payload.Name,
		Email:     payload.Email,
		Subject:   payload.Subject,
	})
}
