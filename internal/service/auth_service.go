package service

import (
	"context"
	"fmt"

	"shivasadhana-api/internal/models"
	"shivasadhana-api/internal/store"
	"shivasadhana-api/internal/util"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration and credential checks. Passwords are
// stored only as bcrypt hashes; the login contract stays email+password
// in, user-without-password out.
type AuthService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(store *store.Store) *AuthService {
	return &AuthService{
		store:  store,
		logger: util.GetLogger(),
	}
}

// RegisterRequest represents a registration payload
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"omitempty,oneof=customer admin"`
}

// LoginRequest represents a login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new account. The email must not already be in use;
// role defaults to customer when unset.
func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (models.User, error) {
	if _, exists := s.store.GetUserByEmail(req.Email); exists {
		util.RegistrationsTotal.WithLabelValues("conflict").Inc()
		return models.User{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		util.RegistrationsTotal.WithLabelValues("error").Inc()
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := s.store.CreateUser(models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
	})

	util.RegistrationsTotal.WithLabelValues("success").Inc()
	s.logger.Info("User registered",
		zap.String("user_id", user.ID),
		zap.String("role", user.Role))
	return user, nil
}

// Login verifies credentials and returns the matching user.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (models.User, error) {
	user, ok := s.store.GetUserByEmail(req.Email)
	if !ok {
		util.LoginsTotal.WithLabelValues("failure").Inc()
		return models.User{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		util.LoginsTotal.WithLabelValues("failure").Inc()
		return models.User{}, ErrInvalidCredentials
	}

	util.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info("User logged in", zap.String("user_id", user.ID))
	return user, nil
}
