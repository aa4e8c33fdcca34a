package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	permissionapp "github.com/agewithcare/policyhub/internal/application/permission"
	"github.com/agewithcare/policyhub/internal/domain/permission"
	"github.com/agewithcare/policyhub/internal/domain/user"
	"github.com/agewithcare/policyhub/internal/shared/constants"
	"github.com/agewithcare/policyhub/internal/shared/logger"
)

type fakeSessionRepo struct {
	sessions map[string]*user.Session
	purged   int
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]*user.Session{}}
}

func (m *fakeSessionRepo) Create(s *user.Session) error {
	m.sessions[s.ID] = s
	return nil
}
func (m *fakeSessionRepo) GetByID(id string) (*user.Session, error) { return m.sessions[id], nil }
func (m *fakeSessionRepo) GetByUserID(userID uint) ([]*user.Session, error) {
	return nil, nil
}
func (m *fakeSessionRepo) Update(s *user.Session) error {
	m.sessions[s.ID] = s
	return nil
}
func (m *fakeSessionRepo) Delete(id string) error {
	delete(m.sessions, id)
	return nil
}
func (m *fakeSessionRepo) DeleteByUserID(userID uint) error { return nil }
func (m *fakeSessionRepo) DeleteExpired() error {
	m.purged++
	return nil
}

type fakeRoleRepo struct {
	rolesByUser map[uint][]*permission.Role
}

func (m *fakeRoleRepo) GetByID(ctx context.Context, id uint) (*permission.Role, error) {
	return nil, nil
}
func (m *fakeRoleRepo) GetBySlug(ctx context.Context, slug string) (*permission.Role, error) {
	return nil, nil
}
func (m *fakeRoleRepo) List(ctx context.Context) ([]*permission.Role, error) { return nil, nil }
func (m *fakeRoleRepo) Create(ctx context.Context, role *permission.Role) error {
	return nil
}
func (m *fakeRoleRepo) GetUserRoles(ctx context.Context, userID uint) ([]*permission.Role, error) {
	return m.rolesByUser[userID], nil
}
func (m *fakeRoleRepo) ReplaceUserRoles(ctx context.Context, userID uint, roleIDs []uint, assignedBy uint) error {
	return nil
}
func (m *fakeRoleRepo) GetAssignments(ctx context.Context, userID uint) ([]*permission.RoleAssignment, error) {
	return nil, nil
}

func makeTestRole(t *testing.T, id uint, slug string, perms []string) *permission.Role {
	t.Helper()
	role, err := permission.ReconstructRole(id, slug, slug, "", perms, true, time.Now(), time.Now())
	require.NoError(t, err)
	return role
}

func makeTestSession(t *testing.T, userID uint, ttl time.Duration) *user.Session {
	t.Helper()
	session, err := user.NewSession(userID, "127.0.0.1", "test", time.Hour)
	require.NoError(t, err)
	session.ExpiresAt = time.Now().UTC().Add(ttl)
	return session
}

func newGateTestEngine(sessionRepo *fakeSessionRepo, roleRepo *fakeRoleRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.NewLogger()
	sessionAuth := NewSessionAuth(sessionRepo, permissionapp.NewService(roleRepo, log), log)

	engine := gin.New()
	engine.GET("/admin/users",
		sessionAuth.Required(),
		RequirePermission(permission.PermManageUsers),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)
	engine.GET("/dashboard", sessionAuth.Required(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": CurrentUserID(c)})
	})
	return engine
}

func requestWithSession(path, sessionID string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: sessionID})
	}
	return req
}

func TestSessionAuth_Required(t *testing.T) {
	t.Run("no cookie is unauthorized", func(t *testing.T) {
		engine := newGateTestEngine(newFakeSessionRepo(), &fakeRoleRepo{})

		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, requestWithSession("/dashboard", ""))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid session authenticates and touches activity", func(t *testing.T) {
		sessionRepo := newFakeSessionRepo()
		session := makeTestSession(t, 7, time.Hour)
		before := session.LastActivityAt
		require.NoError(t, sessionRepo.Create(session))

		roleRepo := &fakeRoleRepo{rolesByUser: map[uint][]*permission.Role{
			7: {makeTestRole(t, 1, "reader", []string{permission.PermView})},
		}}
		engine := newGateTestEngine(sessionRepo, roleRepo)

		time.Sleep(5 * time.Millisecond)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, requestWithSession("/dashboard", session.ID))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, sessionRepo.sessions[session.ID].LastActivityAt.After(before))
	})

	t.Run("expired session is unauthorized and the row is removed", func(t *testing.T) {
		sessionRepo := newFakeSessionRepo()
		session := makeTestSession(t, 7, -time.Minute)
		require.NoError(t, sessionRepo.Create(session))

		engine := newGateTestEngine(sessionRepo, &fakeRoleRepo{})

		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, requestWithSession("/dashboard", session.ID))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.NotContains(t, sessionRepo.sessions, session.ID)
	})
}

func TestRequirePermission(t *testing.T) {
	t.Run("reader is forbidden from admin routes", func(t *testing.T) {
		sessionRepo := newFakeSessionRepo()
		session := makeTestSession(t, 7, time.Hour)
		require.NoError(t, sessionRepo.Create(session))

		roleRepo := &fakeRoleRepo{rolesByUser: map[uint][]*permission.Role{
			7: {makeTestRole(t, 1, "reader", []string{permission.PermView})},
		}}
		engine := newGateTestEngine(sessionRepo, roleRepo)

		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, requestWithSession("/admin/users", session.ID))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("wildcard role passes every gate", func(t *testing.T) {
		sessionRepo := newFakeSessionRepo()
		session := makeTestSession(t, 9, time.Hour)
		require.NoError(t, sessionRepo.Create(session))

		roleRepo := &fakeRoleRepo{rolesByUser: map[uint][]*permission.Role{
			9: {makeTestRole(t, 2, "system_owner", []string{permission.Wildcard})},
		}}
		engine := newGateTestEngine(sessionRepo, roleRepo)

		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, requestWithSession("/admin/users", session.ID))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("user with the named permission passes", func(t *testing.T) {
		sessionRepo := newFakeSessionRepo()
		session := makeTestSession(t, 11, time.Hour)
		require.NoError(t, sessionRepo.Create(session))

		roleRepo := &fakeRoleRepo{rolesByUser: map[uint][]*permission.Role{
			11: {makeTestRole(t, 3, "administrator", []string{permission.PermView, permission.PermManageUsers})},
		}}
		engine := newGateTestEngine(sessionRepo, roleRepo)

		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, requestWithSession("/admin/users", session.ID))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
