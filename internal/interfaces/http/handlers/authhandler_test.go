package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agewithcare/policyhub/internal/application/auth/usecases"
	"github.com/agewithcare/policyhub/internal/domain/audit"
	"github.com/agewithcare/policyhub/internal/domain/user"
	"github.com/agewithcare/policyhub/internal/domain/user/valueobjects"
	"github.com/agewithcare/policyhub/internal/shared/config"
	"github.com/agewithcare/policyhub/internal/shared/constants"
	"github.com/agewithcare/policyhub/internal/shared/logger"
)

type stubHasher struct{}

func (stubHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (stubHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

type stubUserRepo struct {
	usersByEmail map[string]*user.User
}

func (m *stubUserRepo) Create(ctx context.Context, u *user.User) error { return nil }
func (m *stubUserRepo) Update(ctx context.Context, u *user.User) error { return nil }
func (m *stubUserRepo) Delete(ctx context.Context, id uint) error      { return nil }
func (m *stubUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	for _, u := range m.usersByEmail {
		if u.ID() == id {
			return u, nil
		}
	}
	return nil, nil
}
func (m *stubUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return m.usersByEmail[email], nil
}
func (m *stubUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := m.usersByEmail[email]
	return ok, nil
}
func (m *stubUserRepo) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	return nil, 0, nil
}

type stubSessionRepo struct {
	sessions map[string]*user.Session
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{sessions: map[string]*user.Session{}}
}

func (m *stubSessionRepo) Create(s *user.Session) error {
	m.sessions[s.ID] = s
	return nil
}
func (m *stubSessionRepo) GetByID(id string) (*user.Session, error) { return m.sessions[id], nil }
func (m *stubSessionRepo) GetByUserID(userID uint) ([]*user.Session, error) {
	return nil, nil
}
func (m *stubSessionRepo) Update(s *user.Session) error {
	m.sessions[s.ID] = s
	return nil
}
func (m *stubSessionRepo) Delete(id string) error {
	delete(m.sessions, id)
	return nil
}
func (m *stubSessionRepo) DeleteByUserID(userID uint) error { return nil }
func (m *stubSessionRepo) DeleteExpired() error             { return nil }

type stubAuditor struct{}

func (stubAuditor) Record(ctx context.Context, entry *audit.Entry) error { return nil }
func (stubAuditor) List(ctx context.Context, actorID uint, limit int) ([]*audit.Entry, error) {
	return nil, nil
}

func newLoginTestEngine(t *testing.T, sessionRepo *stubSessionRepo) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	email, err := valueobjects.NewEmail("admin@agewithcare.com")
	require.NoError(t, err)
	admin, err := user.ReconstructUser(1, email, "Administrator", valueobjects.StatusActive, "hashed:changeme123", time.Now(), time.Now())
	require.NoError(t, err)

	userRepo := &stubUserRepo{usersByEmail: map[string]*user.User{
		"admin@agewithcare.com": admin,
	}}

	log := logger.NewLogger()
	loginUC := usecases.NewLoginUseCase(userRepo, sessionRepo, stubHasher{}, stubAuditor{}, time.Hour, log)
	logoutUC := usecases.NewLogoutUseCase(sessionRepo, stubAuditor{}, log)

	handler := NewAuthHandler(loginUC, logoutUC, nil, config.CookieConfig{SameSite: "Lax"})

	engine := gin.New()
	engine.POST("/api/auth/login", handler.Login)
	return engine
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == constants.SessionCookieName {
			return c
		}
	}
	return nil
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("valid credentials set the session cookie", func(t *testing.T) {
		sessionRepo := newStubSessionRepo()
		engine := newLoginTestEngine(t, sessionRepo)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
			strings.NewReader(`{"email":"admin@agewithcare.com","password":"changeme123"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		cookie := sessionCookie(rec.Result())
		require.NotNil(t, cookie, "session cookie must be set on success")
		assert.Len(t, cookie.Value, 64)
		assert.True(t, cookie.HttpOnly)

		_, ok := sessionRepo.sessions[cookie.Value]
		assert.True(t, ok, "cookie value must reference a stored session")

		// The session id travels only in the cookie.
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		data, _ := body["data"].(map[string]any)
		assert.NotContains(t, data, "session_id")
	})

	t.Run("wrong password is a 401 with no cookie", func(t *testing.T) {
		sessionRepo := newStubSessionRepo()
		engine := newLoginTestEngine(t, sessionRepo)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
			strings.NewReader(`{"email":"admin@agewithcare.com","password":"wrong"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, sessionCookie(rec.Result()))
		assert.Empty(t, sessionRepo.sessions)
	})

	t.Run("missing body is a validation error", func(t *testing.T) {
		engine := newLoginTestEngine(t, newStubSessionRepo())

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
