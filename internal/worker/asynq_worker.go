package worker

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/mebel-next/internal/logger"
	"github.com/mebel-next/internal/provider"
	"github.com/mebel-next/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer handles async queue tasks.
type Consumer struct {
	*provider.Container
}

// NewConsumer creates a consumer.
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register registers task handlers.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderConfirm, c.handleOrderConfirm)
}

func (c *Consumer) handleOrderConfirm(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_confirm_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderConfirmPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_confirm_unmarshal_failed", "error", err)
		return err
	}
	if strings.TrimSpace(payload.SessionID) == "" {
		logger.Debugw("worker_order_confirm_skip_invalid_payload", "order_no", payload.OrderNo)
		return nil
	}
	if c.CheckoutService == nil {
		logger.Warnw("worker_order_confirm_skip_checkout_service_nil", "order_no", payload.OrderNo)
		return nil
	}
	if err := c.CheckoutService.ConfirmOrder(payload.OrderNo, payload.SessionID); err != nil {
		logger.Warnw("worker_order_confirm_failed",
			"order_no", payload.OrderNo,
			"session_id", payload.SessionID,
			"error", err,
		)
		return err
	}
	return nil
}
