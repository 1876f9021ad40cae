package scheduler

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TaskQuoteNotification = "notifications.quote"

const TaskContactNotification = "notifications.contact"

// QuoteNotificationPayload is the task payload for a quote notification email.
type QuoteNotificationPayload struct {
	QuoteID       string `json:"quoteId"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	ItemCount     int    `json:"itemCount"`
}

// ContactNotificationPayload is the task payload for a contact notification email.
type ContactNotificationPayload struct {
	MessageID string `json:"messageId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
}

func NewQuoteNotificationTask(payload QuoteNotificationPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskQuoteNotification, data), nil
}

func ParseQuoteNotificationPayload(task *asynq.Task) (QuoteNotificationPayload, error) {
	var payload QuoteNotificationPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return QuoteNotificationPayload{}, err
	}
	return payload, nil
}

func NewContactNotificationTask(payload ContactNotificationPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskContactNotification, data), nil
}

func ParseContactNotificationPayload(task *asynq.Task) (ContactNotificationPayload, error) {
	var payload ContactNotificationPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return ContactNotificationPayload{}, err
	}
	return payload, nil
}
