package worker

import (
	"context"

	"shivasadhana-api/internal/broker"
	"shivasadhana-api/internal/models"
	"shivasadhana-api/internal/util"

	"go.uber.org/zap"
)

// Notifier delivers an outbound alert for a newly created enquiry.
type Notifier interface {
	SendEnquiryAlert(ctx context.Context, event *models.EnquiryCreatedEvent) error
}

// NotifyWorker consumes enquiry events and triggers outbound
// notifications. Delivery failures are counted and swallowed; an
// enquiry is never rolled back because its alert did not go out.
type NotifyWorker struct {
	consumer     *broker.Consumer
	eventHandler *broker.EventHandler
	logger       *zap.Logger
}

// NewNotifyWorker creates a new notification worker
func NewNotifyWorker(consumer *broker.Consumer, notifier Notifier) *NotifyWorker {
	logger := util.GetLogger()
	eventHandler := broker.NewEventHandler()

	eventHandler.OnEnquiryCreated(func(ctx context.Context, event *models.EnquiryCreatedEvent) error {
		if err := notifier.SendEnquiryAlert(ctx, event); err != nil {
			util.NotificationsFailedTotal.Inc()
			logger.Error("Failed to deliver enquiry alert",
				zap.String("enquiry_id", event.EnquiryID),
				zap.Error(err))
			return nil
		}
		util.NotificationsSentTotal.Inc()
		return nil
	})

	eventHandler.OnEnquiryStatusChanged(func(ctx context.Context, event *models.EnquiryStatusChangedEvent) error {
		logger.Info("Enquiry moved",
			zap.String("enquiry_id", event.EnquiryID),
			zap.String("from", event.FromStatus),
			zap.String("to", event.ToStatus))
		return nil
	})

	return &NotifyWorker{
		consumer:     consumer,
		eventHandler: eventHandler,
		logger:       logger,
	}
}

// Start starts the worker
func (w *NotifyWorker) Start(ctx context.Context) error {
	w.logger.Info("Starting notify worker")
	return w.consumer.StartConsuming(ctx, w.eventHandler.HandleMessage)
}

// Stop stops the worker
func (w *NotifyWorker) Stop() error {
	w.logger.Info("Stopping notify worker")
	return w.consumer.Close()
}
