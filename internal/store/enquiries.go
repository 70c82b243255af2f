package store

import (
	"fmt"
	"sort"
	"time"

	"shivasadhana-api/internal/models"
)

// GetEnquiries returns all enquiries, newest first.
func (s *Store) GetEnquiries() []models.Enquiry {
	enquiries := s.enquiries.list()
	sortNewestFirst(enquiries)
	return enquiries
}

// GetEnquiry retrieves an enquiry by id
func (s *Store) GetEnquiry(id string) (models.Enquiry, bool) {
	return s.enquiries.get(id)
}

// GetUserEnquiries returns the enquiries owned by userId, newest first.
func (s *Store) GetUserEnquiries(userID string) []models.Enquiry {
	enquiries := s.enquiries.filter(func(e models.Enquiry) bool {
		return e.UserID == userID
	})
	sortNewestFirst(enquiries)
	return enquiries
}

// CreateEnquiry assigns a fresh id, defaults the status to pending and
// stamps both timestamps.
func (s *Store) CreateEnquiry(enquiry models.Enquiry) models.Enquiry {
	enquiry.ID = newID()
	if enquiry.Status == "" {
		enquiry.Status = models.EnquiryStatusPending
	}
	now := time.Now()
	enquiry.CreatedAt = now
	enquiry.UpdatedAt = now
	s.enquiries.insert(enquiry.ID, enquiry)
	return enquiry
}

// UpdateEnquiry merges the supplied fields onto the stored enquiry and
// refreshes updatedAt. Returns ErrNotFound for absent ids.
func (s *Store) UpdateEnquiry(id string, updates *models.EnquiryUpdate) (models.Enquiry, error) {
	enquiry, ok := s.enquiries.update(id, func(e *models.Enquiry) {
		updates.Apply(e)
		e.UpdatedAt = time.Now()
	})
	if !ok {
		return models.Enquiry{}, fmt.Errorf("enquiry %s: %w", id, ErrNotFound)
	}
	return enquiry, nil
}

// DeleteEnquiry removes the enquiry if present.
func (s *Store) DeleteEnquiry(id string) {
	s.enquiries.remove(id)
}

func sortNewestFirst(enquiries []models.Enquiry) {
	sort.SliceStable(enquiries, func(i, j int) bool {
		return enquiries[i].CreatedAt.After(enquiries[j].CreatedAt)
	})
}
