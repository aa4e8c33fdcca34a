package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agewithcare/policyhub/internal/domain/permission"
	"github.com/agewithcare/policyhub/internal/shared/errors"
	"github.com/agewithcare/policyhub/internal/shared/logger"
)

func TestChangeStatusUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	log := logger.NewLogger()

	contributorPerms := permission.NewPermissionSetFromTokens(permission.SeededRolePermissions[permission.RoleContributor])
	approverPerms := permission.NewPermissionSetFromTokens(permission.SeededRolePermissions[permission.RoleApprover])
	adminPerms := permission.NewPermissionSetFromTokens(permission.SeededRolePermissions[permission.RoleAdministrator])

	setup := func(t *testing.T) (*mockDocumentRepo, *ChangeStatusUseCase, uint) {
		repo := newMockDocumentRepo()
		create := NewCreateDocumentUseCase(repo, &mockAuditor{}, log)
		created, err := create.Execute(ctx, CreateDocumentCommand{
			Title:       "Incident Reporting Procedure",
			ContentType: "procedure",
			CategoryID:  1,
			ActorID:     1,
		})
		require.NoError(t, err)
		return repo, NewChangeStatusUseCase(repo, &mockAuditor{}, log), created.ID
	}

	advance := func(t *testing.T, uc *ChangeStatusUseCase, id uint, statuses ...string) {
		t.Helper()
		for _, status := range statuses {
			_, err := uc.Execute(ctx, ChangeStatusCommand{DocumentID: id, NewStatus: status, Permissions: adminPerms, ActorID: 1})
			require.NoError(t, err)
		}
	}

	t.Run("draft moves to pending review", func(t *testing.T) {
		_, uc, id := setup(t)

		result, err := uc.Execute(ctx, ChangeStatusCommand{DocumentID: id, NewStatus: "pending_review", Permissions: contributorPerms, ActorID: 1})
		require.NoError(t, err)
		assert.Equal(t, "draft", result.OldStatus)
		assert.Equal(t, "pending_review", result.NewStatus)
	})

	t.Run("draft cannot jump straight to published", func(t *testing.T) {
		_, uc, id := setup(t)

		_, err := uc.Execute(ctx, ChangeStatusCommand{DocumentID: id, NewStatus: "published", Permissions: adminPerms, ActorID: 1})
		require.Error(t, err)
		assert.True(t, errors.IsValidation(err))
	})

	t.Run("contributor cannot approve or publish", func(t *testing.T) {
		repo, uc, id := setup(t)
		advance(t, uc, id, "pending_review", "approved")

		_, err := uc.Execute(ctx, ChangeStatusCommand{DocumentID: id, NewStatus: "published", Permissions: contributorPerms, ActorID: 1})
		require.Error(t, err)
		assert.True(t, errors.IsForbidden(err))

		doc, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "approved", doc.Status().String())

		_, err = uc.Execute(ctx, ChangeStatusCommand{DocumentID: id, NewStatus: "approved", Permissions: contributorPerms, ActorID: 1})
		require.Error(t, err)
		assert.True(t, errors.IsForbidden(err))
	})

	t.Run("approver publishes but cannot archive", func(t *testing.T) {
		_, uc, id := setup(t)
		advance(t, uc, id, "pending_review", "approved")

		_, err := uc.Execute(ctx, ChangeStatusCommand{DocumentID: id, NewStatus: "published", Permissions: approverPerms, ActorID: 2})
		require.NoError(t, err)

		_, err = uc.Execute(ctx, ChangeStatusCommand{DocumentID: id, NewStatus: "archived", Permissions: approverPerms, ActorID: 2})
		require.Error(t, err)
		assert.True(t, errors.IsForbidden(err))

		_, err = uc.Execute(ctx, ChangeStatusCommand{DocumentID: id, NewStatus: "archived", Permissions: adminPerms, ActorID: 3})
		require.NoError(t, err)
	})

	t.Run("publishing stamps review due date", func(t *testing.T) {
		repo, uc, id := setup(t)
		advance(t, uc, id, "pending_review", "approved", "published")

		doc, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, doc.EffectiveDate())
		require.NotNil(t, doc.ReviewDue())
	})

	t.Run("expired is never a writable status", func(t *testing.T) {
		_, uc, id := setup(t)

		_, err := uc.Execute(ctx, ChangeStatusCommand{DocumentID: id, NewStatus: "expired", Permissions: adminPerms, ActorID: 1})
		require.Error(t, err)
		assert.True(t, errors.IsValidation(err))
	})

	t.Run("unknown document is not found", func(t *testing.T) {
		_, uc, _ := setup(t)

		_, err := uc.Execute(ctx, ChangeStatusCommand{DocumentID: 999, NewStatus: "pending_review", Permissions: adminPerms, ActorID: 1})
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
	})
}
