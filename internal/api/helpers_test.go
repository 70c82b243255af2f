package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"shivasadhana-api/internal/models"
	"shivasadhana-api/internal/service"
	"shivasadhana-api/internal/store"

	"github.com/gin-gonic/gin"
)

// fakeSessions is an in-memory SessionStore for handler tests.
type fakeSessions struct {
	users map[string]*models.User
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{users: make(map[string]*models.User)}
}

func (f *fakeSessions) Create(_ context.Context, user models.User) (string, error) {
	token := "tok-" + user.ID
	u := user
	f.users[token] = &u
	return token, nil
}

func (f *fakeSessions) Resolve(_ context.Context, token string) (*models.User, error) {
	return f.users[token], nil
}

func (f *fakeSessions) Destroy(_ context.Context, token string) error {
	delete(f.users, token)
	return nil
}

func (f *fakeSessions) add(token string, user models.User) {
	f.users[token] = &user
}

type nopPublisher struct{}

func (nopPublisher) PublishEnquiryCreated(context.Context, *models.EnquiryCreatedEvent) error {
	return nil
}

func (nopPublisher) PublishEnquiryStatusChanged(context.Context, *models.EnquiryStatusChangedEvent) error {
	return nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *store.Store, *fakeSessions) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewStore()
	sessions := newFakeSessions()
	handler := NewHandler(st, service.NewAuthService(st), service.NewEnquiryService(st, nopPublisher{}), sessions)

	router := gin.New()
	handler.SetupRoutes(router)
	return router, st, sessions
}

func doRequest(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var payload *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		payload = bytes.NewReader(raw)
	} else {
		payload = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, payload)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
