package store

import (
	"time"

	"shivasadhana-api/internal/models"
)

// GetUser retrieves a user by id
func (s *Store) GetUser(id string) (models.User, bool) {
	return s.users.get(id)
}

// GetUserByEmail scans for an exact email match. Used for both login
// lookup and duplicate-registration detection.
func (s *Store) GetUserByEmail(email string) (models.User, bool) {
	return s.users.find(func(u models.User) bool {
		return u.Email == email
	})
}

// CreateUser assigns a fresh id and creation timestamp and stores the
// user. Role defaults to customer when unset. Email uniqueness is the
// caller's responsibility.
func (s *Store) CreateUser(user models.User) models.User {
	user.ID = newID()
	if user.Role == "" {
		user.Role = models.RoleCustomer
	}
	user.CreatedAt = time.Now()
	s.users.insert(user.ID, user)
	return user
}
