package queue

import (
	"encoding/json"

	"github.com/mebel-next/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderConfirm delayed order confirmation task
	TaskOrderConfirm = constants.TaskOrderConfirm
)

// OrderConfirmPayload carries the order to confirm.
type OrderConfirmPayload struct {
	OrderNo   string `json:"order_no"`
	SessionID string `json:"session_id"`
}

// NewOrderConfirmTask creates an order confirmation task.
func NewOrderConfirmTask(payload OrderConfirmPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderConfirm, body), nil
}
