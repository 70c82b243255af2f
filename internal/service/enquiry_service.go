package service

import (
	"context"
	"time"

	"shivasadhana-api/internal/models"
	"shivasadhana-api/internal/store"
	"shivasadhana-api/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EventPublisher publishes enquiry lifecycle events. Publishing is best
// effort: a failure is logged and never fails the store operation.
type EventPublisher interface {
	PublishEnquiryCreated(ctx context.Context, event *models.EnquiryCreatedEvent) error
	PublishEnquiryStatusChanged(ctx context.Context, event *models.EnquiryStatusChangedEvent) error
}

// EnquiryService handles the enquiry lifecycle: creation by an acting
// user and status/notes updates by administrators. Transitions between
// statuses are deliberately unguarded; administrators may move an
// enquiry to any status at any time.
type EnquiryService struct {
	store  *store.Store
	events EventPublisher
	logger *zap.Logger
}

// NewEnquiryService creates a new enquiry service
func NewEnquiryService(store *store.Store, events EventPublisher) *EnquiryService {
	return &EnquiryService{
		store:  store,
		events: events,
		logger: util.GetLogger(),
	}
}

// CreateEnquiryRequest represents a new enquiry submission
type CreateEnquiryRequest struct {
	UserID      string `json:"userId"`
	ServiceType string `json:"serviceType" binding:"required,oneof=store travel accommodation shraddha"`
	ServiceID   string `json:"serviceId"`
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"required"`
	ServiceDate string `json:"serviceDate" binding:"required"`
	Message     string `json:"message" binding:"required"`
}

// Create stores a new enquiry for the acting user and publishes the
// creation event. With no acting user the call fails before touching
// the store.
func (s *EnquiryService) Create(ctx context.Context, actor *models.User, req *CreateEnquiryRequest) (models.Enquiry, error) {
	ctx, span := util.StartSpan(ctx, "EnquiryService.Create")
	defer span.End()

	if actor == nil {
		return models.Enquiry{}, ErrUnauthenticated
	}

	userID := req.UserID
	if userID == "" {
		userID = actor.ID
	}

	enquiry := s.store.CreateEnquiry(models.Enquiry{
		UserID:      userID,
		ServiceType: req.ServiceType,
		ServiceID:   req.ServiceID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		ServiceDate: req.ServiceDate,
		Message:     req.Message,
	})

	util.EnquiriesCreatedTotal.WithLabelValues(enquiry.ServiceType).Inc()
	s.logger.Info("Enquiry created",
		zap.String("enquiry_id", enquiry.ID),
		zap.String("service_type", enquiry.ServiceType))

	event := &models.EnquiryCreatedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypeEnquiryCreated,
			Timestamp: time.Now(),
		},
		EnquiryID:   enquiry.ID,
		UserID:      enquiry.UserID,
		ServiceType: enquiry.ServiceType,
		ServiceID:   enquiry.ServiceID,
		Name:        enquiry.Name,
		Email:       enquiry.Email,
		Phone:       enquiry.Phone,
		ServiceDate: enquiry.ServiceDate,
		Message:     enquiry.Message,
	}
	if err := s.events.PublishEnquiryCreated(ctx, event); err != nil {
		s.logger.Error("Failed to publish EnquiryCreated event", zap.Error(err))
	}

	return enquiry, nil
}

// Update merges status and admin notes onto an enquiry. A status change
// is published for the notification pipeline.
func (s *EnquiryService) Update(ctx context.Context, id string, updates *models.EnquiryUpdate) (models.Enquiry, error) {
	ctx, span := util.StartSpan(ctx, "EnquiryService.Update")
	defer span.End()

	prev, _ := s.store.GetEnquiry(id)

	enquiry, err := s.store.UpdateEnquiry(id, updates)
	if err != nil {
		return models.Enquiry{}, err
	}

	if prev.Status != "" && prev.Status != enquiry.Status {
		util.EnquiryStatusTransitionsTotal.WithLabelValues(prev.Status, enquiry.Status).Inc()
		s.logger.Info("Enquiry status changed",
			zap.String("enquiry_id", enquiry.ID),
			zap.String("from", prev.Status),
			zap.String("to", enquiry.Status))

		event := &models.EnquiryStatusChangedEvent{
			BaseEvent: models.BaseEvent{
				EventID:   uuid.New().String(),
				EventType: models.EventTypeEnquiryStatusChanged,
				Timestamp: time.Now(),
			},
			EnquiryID:  enquiry.ID,
			UserID:     enquiry.UserID,
			FromStatus: prev.Status,
			ToStatus:   enquiry.Status,
		}
		if err := s.events.PublishEnquiryStatusChanged(ctx, event); err != nil {
			s.logger.Error("Failed to publish EnquiryStatusChanged event", zap.Error(err))
		}
	}

	return enquiry, nil
}
