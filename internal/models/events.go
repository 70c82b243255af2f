package models

import "time"

// Event types published to the enquiry topic
const (
	EventTypeEnquiryCreated       = "enquiry.created"
	EventTypeEnquiryStatusChanged = "enquiry.status_changed"
)

// BaseEvent contains common event fields
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// EnquiryCreatedEvent is published after a new enquiry is stored; the
// notification worker turns it into an outbound WhatsApp message.
type EnquiryCreatedEvent struct {
	BaseEvent
	EnquiryID   string `json:"enquiry_id"`
	UserID      string `json:"user_id"`
	ServiceType string `json:"service_type"`
	ServiceID   string `json:"service_id,omitempty"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	ServiceDate string `json:"service_date"`
	Message     string `json:"message"`
}

// EnquiryStatusChangedEvent is published when an update moves an enquiry
// from one status to another.
type EnquiryStatusChangedEvent struct {
	BaseEvent
	EnquiryID  string `json:"enquiry_id"`
	UserID     string `json:"user_id"`
	FromStatus string `json:"from_status"`
	ToStatus   string `json:"to_status"`
}
