package service

import (
	"context"
	"testing"

	"shivasadhana-api/internal/models"
	"shivasadhana-api/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	svc := NewAuthService(store.NewStore())
	ctx := context.Background()

	user, err := svc.Register(ctx, &RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, models.RoleCustomer, user.Role)
	assert.NotEqual(t, "secret", user.PasswordHash)

	got, err := svc.Login(ctx, &LoginRequest{Email: "asha@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	st := store.NewStore()
	svc := NewAuthService(st)
	ctx := context.Background()

	first, err := svc.Register(ctx, &RegisterRequest{Name: "Asha", Email: "asha@example.com", Password: "secret"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &RegisterRequest{Name: "Impostor", Email: "asha@example.com", Password: "other"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	// The original record is untouched by the rejected attempt.
	got, ok := st.GetUser(first.ID)
	require.True(t, ok)
	assert.Equal(t, "Asha", got.Name)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewAuthService(store.NewStore())
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterRequest{Name: "Asha", Email: "asha@example.com", Password: "secret"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &LoginRequest{Email: "asha@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(store.NewStore())

	_, err := svc.Login(context.Background(), &LoginRequest{Email: "nobody@example.com", Password: "secret"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterKeepsRequestedRole(t *testing.T) {
	svc := NewAuthService(store.NewStore())

	user, err := svc.Register(context.Background(), &RegisterRequest{
		Name:     "Root",
		Email:    "root@example.com",
		Password: "secret",
		Role:     models.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
}
