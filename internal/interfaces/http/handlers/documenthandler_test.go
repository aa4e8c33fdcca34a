package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agewithcare/policyhub/internal/application/document/usecases"
	permissionapp "github.com/agewithcare/policyhub/internal/application/permission"
	"github.com/agewithcare/policyhub/internal/domain/document"
	vo "github.com/agewithcare/policyhub/internal/domain/document/valueobjects"
	"github.com/agewithcare/policyhub/internal/domain/permission"
	"github.com/agewithcare/policyhub/internal/domain/user"
	"github.com/agewithcare/policyhub/internal/interfaces/http/middleware"
	"github.com/agewithcare/policyhub/internal/shared/constants"
	"github.com/agewithcare/policyhub/internal/shared/logger"
)

type stubDocumentRepo struct {
	lastFilter document.SearchFilter
}

func (m *stubDocumentRepo) Create(ctx context.Context, doc *document.Document) error { return nil }
func (m *stubDocumentRepo) Update(ctx context.Context, doc *document.Document) error { return nil }
func (m *stubDocumentRepo) Delete(ctx context.Context, id uint) error                { return nil }
func (m *stubDocumentRepo) GetByID(ctx context.Context, id uint) (*document.Document, error) {
	return nil, nil
}
func (m *stubDocumentRepo) GetBySlug(ctx context.Context, slug string) (*document.Document, error) {
	return nil, nil
}
func (m *stubDocumentRepo) ExistsBySlug(ctx context.Context, slug string, excludeID uint) (bool, error) {
	return false, nil
}
func (m *stubDocumentRepo) Search(ctx context.Context, filter document.SearchFilter) ([]*document.Document, int64, error) {
	m.lastFilter = filter
	return nil, 0, nil
}
func (m *stubDocumentRepo) ListRelated(ctx context.Context, categoryID, excludeID uint, limit int) ([]*document.Document, error) {
	return nil, nil
}
func (m *stubDocumentRepo) ListRecent(ctx context.Context, limit int) ([]*document.Document, error) {
	return nil, nil
}
func (m *stubDocumentRepo) CountByStatus(ctx context.Context) (map[vo.DocumentStatus]int64, error) {
	return nil, nil
}

type stubRoleRepo struct {
	rolesByUser map[uint][]*permission.Role
}

func (m *stubRoleRepo) GetByID(ctx context.Context, id uint) (*permission.Role, error) {
	return nil, nil
}
func (m *stubRoleRepo) GetBySlug(ctx context.Context, slug string) (*permission.Role, error) {
	return nil, nil
}
func (m *stubRoleRepo) List(ctx context.Context) ([]*permission.Role, error) { return nil, nil }
func (m *stubRoleRepo) Create(ctx context.Context, role *permission.Role) error {
	return nil
}
func (m *stubRoleRepo) GetUserRoles(ctx context.Context, userID uint) ([]*permission.Role, error) {
	return m.rolesByUser[userID], nil
}
func (m *stubRoleRepo) ReplaceUserRoles(ctx context.Context, userID uint, roleIDs []uint, assignedBy uint) error {
	return nil
}
func (m *stubRoleRepo) GetAssignments(ctx context.Context, userID uint) ([]*permission.RoleAssignment, error) {
	return nil, nil
}

func newSearchTestEngine(t *testing.T, docRepo *stubDocumentRepo, sessionRepo *stubSessionRepo, roleRepo *stubRoleRepo) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewLogger()
	searchUC := usecases.NewSearchDocumentsUseCase(docRepo, log)
	handler := NewDocumentHandler(nil, nil, nil, searchUC, nil, nil, nil, nil, nil, nil)
	sessionAuth := middleware.NewSessionAuth(sessionRepo, permissionapp.NewService(roleRepo, log), log)

	engine := gin.New()
	engine.GET("/api/search", sessionAuth.Optional(), handler.Search)
	return engine
}

func readerSession(t *testing.T, sessionRepo *stubSessionRepo, roleRepo *stubRoleRepo, userID uint) *user.Session {
	t.Helper()
	session, err := user.NewSession(userID, "127.0.0.1", "test", time.Hour)
	require.NoError(t, err)
	require.NoError(t, sessionRepo.Create(session))

	role, err := permission.ReconstructRole(1, "reader", "reader", "", []string{permission.PermView}, true, time.Now(), time.Now())
	require.NoError(t, err)
	roleRepo.rolesByUser = map[uint][]*permission.Role{userID: {role}}
	return session
}

func TestDocumentHandler_Search(t *testing.T) {
	t.Run("short parameter names filter type and category", func(t *testing.T) {
		docRepo := &stubDocumentRepo{}
		engine := newSearchTestEngine(t, docRepo, newStubSessionRepo(), &stubRoleRepo{})

		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/search?type=policy&category=3", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, vo.TypePolicy, docRepo.lastFilter.ContentType)
		assert.Equal(t, uint(3), docRepo.lastFilter.CategoryID)
	})

	t.Run("long parameter names keep working", func(t *testing.T) {
		docRepo := &stubDocumentRepo{}
		engine := newSearchTestEngine(t, docRepo, newStubSessionRepo(), &stubRoleRepo{})

		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/search?content_type=procedure&category_id=2", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, vo.TypeProcedure, docRepo.lastFilter.ContentType)
		assert.Equal(t, uint(2), docRepo.lastFilter.CategoryID)
	})

	t.Run("anonymous search is restricted to public documents", func(t *testing.T) {
		docRepo := &stubDocumentRepo{}
		engine := newSearchTestEngine(t, docRepo, newStubSessionRepo(), &stubRoleRepo{})

		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/search?q=policy", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, docRepo.lastFilter.PublicOnly)
	})

	t.Run("reader session searches internal documents", func(t *testing.T) {
		docRepo := &stubDocumentRepo{}
		sessionRepo := newStubSessionRepo()
		roleRepo := &stubRoleRepo{}
		session := readerSession(t, sessionRepo, roleRepo, 7)
		engine := newSearchTestEngine(t, docRepo, sessionRepo, roleRepo)

		req := httptest.NewRequest(http.MethodGet, "/api/search?q=policy", nil)
		req.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: session.ID})
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, docRepo.lastFilter.PublicOnly)
	})
}
