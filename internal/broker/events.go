package broker

import (
	"context"
	"encoding/json"
	"fmt"

	"shivasadhana-api/internal/models"
	"shivasadhana-api/internal/util"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// EventPublisher handles publishing enquiry domain events
type EventPublisher struct {
	producer *Producer
}

// NewEventPublisher creates a new event publisher
func NewEventPublisher(producer *Producer) *EventPublisher {
	return &EventPublisher{producer: producer}
}

// PublishEnquiryCreated publishes an EnquiryCreated event
func (ep *EventPublisher) PublishEnquiryCreated(ctx context.Context, event *models.EnquiryCreatedEvent) error {
	key := fmt.Sprintf("enquiry-%s", event.EnquiryID)
	return ep.producer.PublishEvent(ctx, key, event)
}

// PublishEnquiryStatusChanged publishes an EnquiryStatusChanged event
func (ep *EventPublisher) PublishEnquiryStatusChanged(ctx context.Context, event *models.EnquiryStatusChangedEvent) error {
	key := fmt.Sprintf("enquiry-%s", event.EnquiryID)
	return ep.producer.PublishEvent(ctx, key, event)
}

// EventHandler routes incoming enquiry events to registered callbacks
type EventHandler struct {
	onEnquiryCreated       func(context.Context, *models.EnquiryCreatedEvent) error
	onEnquiryStatusChanged func(context.Context, *models.EnquiryStatusChangedEvent) error
}

// NewEventHandler creates a new event handler
func NewEventHandler() *EventHandler {
	return &EventHandler{}
}

// OnEnquiryCreated registers a handler for EnquiryCreated events
func (eh *EventHandler) OnEnquiryCreated(handler func(context.Context, *models.EnquiryCreatedEvent) error) {
	eh.onEnquiryCreated = handler
}

// OnEnquiryStatusChanged registers a handler for EnquiryStatusChanged events
func (eh *EventHandler) OnEnquiryStatusChanged(handler func(context.Context, *models.EnquiryStatusChangedEvent) error) {
	eh.onEnquiryStatusChanged = handler
}

// HandleMessage routes messages to appropriate handlers
func (eh *EventHandler) HandleMessage(ctx context.Context, msg kafka.Message) error {
	var baseEvent models.BaseEvent
	if err := json.Unmarshal(msg.Value, &baseEvent); err != nil {
		return fmt.Errorf("failed to unmarshal base event: %w", err)
	}

	switch baseEvent.EventType {
	case models.EventTypeEnquiryCreated:
		if eh.onEnquiryCreated != nil {
			var event models.EnquiryCreatedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return fmt.Errorf("failed to unmarshal EnquiryCreated event: %w", err)
			}
			return eh.onEnquiryCreated(ctx, &event)
		}

	case models.EventTypeEnquiryStatusChanged:
		if eh.onEnquiryStatusChanged != nil {
			var event models.EnquiryStatusChangedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return fmt.Errorf("failed to unmarshal EnquiryStatusChanged event: %w", err)
			}
			return eh.onEnquiryStatusChanged(ctx, &event)
		}

	default:
		util.GetLogger().Warn("Unhandled event type", zap.String("type", baseEvent.EventType))
	}

	return nil
}
