package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agewithcare/policyhub/internal/domain/audit"
	"github.com/agewithcare/policyhub/internal/domain/user"
	"github.com/agewithcare/policyhub/internal/domain/user/valueobjects"
	"github.com/agewithcare/policyhub/internal/shared/errors"
	"github.com/agewithcare/policyhub/internal/shared/logger"
)

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (fakeHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

type mockUserRepo struct {
	usersByEmail map[string]*user.User
}

func (m *mockUserRepo) Create(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepo) Update(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepo) Delete(ctx context.Context, id uint) error      { return nil }
func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	for _, u := range m.usersByEmail {
		if u.ID() == id {
			return u, nil
		}
	}
	return nil, nil
}
func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return m.usersByEmail[email], nil
}
func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := m.usersByEmail[email]
	return ok, nil
}
func (m *mockUserRepo) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	return nil, 0, nil
}

type mockSessionRepo struct {
	sessions map[string]*user.Session
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{sessions: map[string]*user.Session{}}
}

func (m *mockSessionRepo) Create(s *user.Session) error {
	m.sessions[s.ID] = s
	return nil
}
func (m *mockSessionRepo) GetByID(id string) (*user.Session, error) { return m.sessions[id], nil }
func (m *mockSessionRepo) GetByUserID(userID uint) ([]*user.Session, error) {
	var out []*user.Session
	for _, s := range m.sessions {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}
func (m *mockSessionRepo) Update(s *user.Session) error {
	m.sessions[s.ID] = s
	return nil
}
func (m *mockSessionRepo) Delete(id string) error {
	delete(m.sessions, id)
	return nil
}
func (m *mockSessionRepo) DeleteByUserID(userID uint) error { return nil }
func (m *mockSessionRepo) DeleteExpired() error             { return nil }

type mockAuditor struct {
	entries []*audit.Entry
}

func (m *mockAuditor) Record(ctx context.Context, entry *audit.Entry) error {
	m.entries = append(m.entries, entry)
	return nil
}
func (m *mockAuditor) List(ctx context.Context, actorID uint, limit int) ([]*audit.Entry, error) {
	return m.entries, nil
}

func makeTestUser(t *testing.T, id uint, emailAddr, password string) *user.User {
	t.Helper()
	email, err := valueobjects.NewEmail(emailAddr)
	require.NoError(t, err)
	u, err := user.ReconstructUser(id, email, "Test User", valueobjects.StatusActive, "hashed:"+password, time.Now(), time.Now())
	require.NoError(t, err)
	return u
}

func TestLoginUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	log := logger.NewLogger()

	newUseCase := func(userRepo *mockUserRepo, sessionRepo *mockSessionRepo, auditor *mockAuditor) *LoginUseCase {
		return NewLoginUseCase(userRepo, sessionRepo, fakeHasher{}, auditor, time.Hour, log)
	}

	t.Run("valid credentials create a session", func(t *testing.T) {
		userRepo := &mockUserRepo{usersByEmail: map[string]*user.User{
			"admin@agewithcare.com": makeTestUser(t, 1, "admin@agewithcare.com", "correct horse"),
		}}
		sessionRepo := newMockSessionRepo()
		auditor := &mockAuditor{}
		uc := newUseCase(userRepo, sessionRepo, auditor)

		result, err := uc.Execute(ctx, LoginCommand{
			Email:    "admin@agewithcare.com",
			Password: "correct horse",
		})
		require.NoError(t, err)
		assert.Equal(t, uint(1), result.UserID)
		assert.Len(t, result.SessionID, 64)
		assert.WithinDuration(t, time.Now().Add(time.Hour), result.ExpiresAt, 5*time.Second)

		stored, err := sessionRepo.GetByID(result.SessionID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, uint(1), stored.UserID)

		require.Len(t, auditor.entries, 1)
		assert.Equal(t, audit.ActionLogin, auditor.entries[0].Action)
	})

	t.Run("wrong password is unauthorized with no session", func(t *testing.T) {
		userRepo := &mockUserRepo{usersByEmail: map[string]*user.User{
			"admin@agewithcare.com": makeTestUser(t, 1, "admin@agewithcare.com", "correct horse"),
		}}
		sessionRepo := newMockSessionRepo()
		uc := newUseCase(userRepo, sessionRepo, &mockAuditor{})

		_, err := uc.Execute(ctx, LoginCommand{
			Email:    "admin@agewithcare.com",
			Password: "battery staple",
		})
		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
		assert.Empty(t, sessionRepo.sessions)
	})

	t.Run("unknown email gets the same message as a wrong password", func(t *testing.T) {
		uc := newUseCase(&mockUserRepo{usersByEmail: map[string]*user.User{}}, newMockSessionRepo(), &mockAuditor{})

		_, err := uc.Execute(ctx, LoginCommand{Email: "nobody@agewithcare.com", Password: "whatever"})
		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, "invalid email or password", appErr.Message)
	})

	t.Run("suspended account cannot log in", func(t *testing.T) {
		email, err := valueobjects.NewEmail("locked@agewithcare.com")
		require.NoError(t, err)
		locked, err := user.ReconstructUser(2, email, "Locked", valueobjects.StatusSuspended, "hashed:pw123456", time.Now(), time.Now())
		require.NoError(t, err)

		uc := newUseCase(&mockUserRepo{usersByEmail: map[string]*user.User{
			"locked@agewithcare.com": locked,
		}}, newMockSessionRepo(), &mockAuditor{})

		_, err = uc.Execute(ctx, LoginCommand{Email: "locked@agewithcare.com", Password: "pw123456"})
		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
	})

	t.Run("missing fields are rejected before any lookup", func(t *testing.T) {
		uc := newUseCase(&mockUserRepo{}, newMockSessionRepo(), &mockAuditor{})

		_, err := uc.Execute(ctx, LoginCommand{Email: "", Password: "x"})
		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	})
}
