package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chargepilot/chargepilot/backend/internal/adapters/store"
	"github.com/chargepilot/chargepilot/backend/internal/api/handlers"
	"github.com/chargepilot/chargepilot/backend/internal/api/middleware"
	"github.com/chargepilot/chargepilot/backend/internal/application/services"
	"github.com/chargepilot/chargepilot/backend/internal/infrastructure/clients/jsonfile"
	"github.com/chargepilot/chargepilot/backend/pkg/config"
)

func newAuthHandler(t *testing.T) (*handlers.AuthHandler, *services.AuthService) {
	t.Helper()
	client, err := jsonfile.NewClient(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, err)
	svc := services.NewAuthService(store.NewUserAdapter(client), config.AuthConfig{
		JWTSecret:       "test-secret",
		TokenTTLMinutes: 60,
	})
	return handlers.NewAuthHandler(svc), svc
}

func TestAuthHandler_Register(t *testing.T) {
	handler, _ := newAuthHandler(t)

	body := `{"name":"Asha","email":"asha@example.com","password":"secret123"}`
	req := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.Register(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		User struct {
			ID    string `json:"id"`
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.NotEmpty(t, response.User.ID)
	assert.Equal(t, "asha@example.com", response.User.Email)
	assert.Equal(t, "user", response.User.Role)
	assert.NotEmpty(t, response.Token)
	assert.NotContains(t, w.Body.String(), "password_hash")
}

func TestAuthHandler_RegisterDuplicate(t *testing.T) {
	handler, _ := newAuthHandler(t)

	body := `{"name":"Asha","email":"asha@example.com","password":"secret123"}`
	req := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(body))
	handler.Register(httptest.NewRecorder(), req)

	req2 := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.Register(w, req2)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_LoginWrongPassword(t *testing.T) {
	handler, _ := newAuthHandler(t)

	register := `{"name":"Asha","email":"asha@example.com","password":"secret123"}`
	handler.Register(httptest.NewRecorder(), httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(register)))

	login := `{"email":"asha@example.com","password":"wrong"}`
	w := httptest.NewRecorder()
	handler.Login(w, httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(login)))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_InvalidJSON(t *testing.T) {
	handler, _ := newAuthHandler(t)

	w := httptest.NewRecorder()
	handler.Register(w, httptest.NewRequest("POST", "/api/auth/register", strings.NewReader("{not json")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Me(t *testing.T) {
	handler, svc := newAuthHandler(t)

	register := `{"name":"Asha","email":"asha@example.com","password":"secret123"}`
	w := httptest.NewRecorder()
	handler.Register(w, httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(register)))

	var created struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))

	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	req = req.WithContext(middleware.WithIdentity(req.Context(), created.User.ID, "user"))
	w2 := httptest.NewRecorder()
	handler.Me(w2, req)

	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, w2.Body.String(), "asha@example.com")

	// Token issued at registration resolves to the same identity.
	userID, role, err := svc.ParseToken(extractToken(t, register, handler))
	require.NoError(t, err)
	assert.Equal(t, created.User.ID, userID)
	assert.Equal(t, "user", role)
}

// extractToken logs in with the registered credentials and returns the token.
func extractToken(t *testing.T, registerBody string, handler *handlers.AuthHandler) string {
	t.Helper()
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	require.NoError(t, json.Unmarshal([]byte(registerBody), &creds))

	login, err := json.Marshal(creds)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	handler.Login(w, httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(string(login))))
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	return response.Token
}
