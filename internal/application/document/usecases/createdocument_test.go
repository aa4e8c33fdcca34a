package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agewithcare/policyhub/internal/domain/audit"
	"github.com/agewithcare/policyhub/internal/shared/errors"
	"github.com/agewithcare/policyhub/internal/shared/logger"
)

func TestCreateDocumentUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	log := logger.NewLogger()

	baseCommand := func() CreateDocumentCommand {
		return CreateDocumentCommand{
			Title:       "Consumer Rights Policy",
			Summary:     "How consumer rights are upheld.",
			ContentType: "policy",
			CategoryID:  1,
			ActorID:     7,
		}
	}

	t.Run("creates a draft with a derived slug", func(t *testing.T) {
		repo := newMockDocumentRepo()
		auditor := &mockAuditor{}
		uc := NewCreateDocumentUseCase(repo, auditor, log)

		result, err := uc.Execute(ctx, baseCommand())
		require.NoError(t, err)
		assert.Equal(t, "consumer-rights-policy", result.Slug)
		assert.Equal(t, "draft", result.Status)

		stored, err := repo.GetByID(ctx, result.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, uint(7), stored.OwnerID())

		require.Len(t, auditor.entries, 1)
		assert.Equal(t, audit.ActionDocumentCreate, auditor.entries[0].Action)
	})

	t.Run("second document with the same title gets a suffixed slug", func(t *testing.T) {
		repo := newMockDocumentRepo()
		uc := NewCreateDocumentUseCase(repo, &mockAuditor{}, log)

		first, err := uc.Execute(ctx, baseCommand())
		require.NoError(t, err)
		assert.Equal(t, "consumer-rights-policy", first.Slug)

		second, err := uc.Execute(ctx, baseCommand())
		require.NoError(t, err)
		assert.Equal(t, "consumer-rights-policy-1", second.Slug)
	})

	t.Run("invalid content type is a validation error", func(t *testing.T) {
		uc := NewCreateDocumentUseCase(newMockDocumentRepo(), &mockAuditor{}, log)

		cmd := baseCommand()
		cmd.ContentType = "memo"
		_, err := uc.Execute(ctx, cmd)
		require.Error(t, err)
		assert.True(t, errors.IsValidation(err))
	})

	t.Run("missing title is a validation error", func(t *testing.T) {
		uc := NewCreateDocumentUseCase(newMockDocumentRepo(), &mockAuditor{}, log)

		cmd := baseCommand()
		cmd.Title = "   "
		_, err := uc.Execute(ctx, cmd)
		require.Error(t, err)
		assert.True(t, errors.IsValidation(err))
	})
}
