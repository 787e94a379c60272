package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chargepilot/chargepilot/backend/internal/api/middleware"
)

type fakeParser struct {
	userID string
	role   string
	err    error
}

func (f *fakeParser) ParseToken(token string) (string, string, error) {
	if f.err != nil {
		return "", "", f.err
	}
	return f.userID, f.role, nil
}

func TestRequireAuth_MissingToken(t *testing.T) {
	called := false
	handler := middleware.RequireAuth(&fakeParser{}, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest("GET", "/api/vehicles", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	handler := middleware.RequireAuth(&fakeParser{err: errors.New("expired")}, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})

	req := httptest.NewRequest("GET", "/api/vehicles", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	w := httptest.NewRecorder()
	handler(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_InjectsIdentity(t *testing.T) {
	parser := &fakeParser{userID: "u1", role: "owner"}
	handler := middleware.RequireAuth(parser, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "u1", middleware.UserID(r.Context()))
		assert.Equal(t, "owner", middleware.Role(r.Context()))
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/api/vehicles", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	handler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole_Enforced(t *testing.T) {
	parser := &fakeParser{userID: "u1", role: "user"}
	handler := middleware.RequireRole(parser, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}, "admin")

	req := httptest.NewRequest("GET", "/api/reports", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	handler(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)

	parser.role = "admin"
	w2 := httptest.NewRecorder()
	handler(w2, req)
	assert.Equal(t, http.StatusOK, w2.Code)
}
