package usecases

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agewithcare/policyhub/internal/shared/errors"
	"github.com/agewithcare/policyhub/internal/shared/logger"
)

func TestUploadVersionUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	log := logger.NewLogger()

	setup := func(t *testing.T) (*mockDocumentRepo, *mockVersionRepo, *mockObjectStore, *UploadVersionUseCase, uint) {
		docRepo := newMockDocumentRepo()
		versionRepo := newMockVersionRepo()
		store := newMockObjectStore()

		create := NewCreateDocumentUseCase(docRepo, &mockAuditor{}, log)
		created, err := create.Execute(ctx, CreateDocumentCommand{
			Title:       "Hand Hygiene Procedure",
			ContentType: "procedure",
			CategoryID:  1,
			ActorID:     3,
		})
		require.NoError(t, err)

		uc := NewUploadVersionUseCase(docRepo, versionRepo, store, &mockAuditor{}, log)
		return docRepo, versionRepo, store, uc, created.ID
	}

	t.Run("first upload becomes version 1 and current", func(t *testing.T) {
		docRepo, versionRepo, store, uc, id := setup(t)

		content := "PDF bytes here"
		result, err := uc.Execute(ctx, UploadVersionCommand{
			DocumentID: id,
			Filename:   "hand-hygiene.pdf",
			Content:    strings.NewReader(content),
			ActorID:    3,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, result.VersionNumber)
		assert.Equal(t, "documents/1/v1/hand-hygiene.pdf", result.StorageKey)

		sum := sha256.Sum256([]byte(content))
		assert.Equal(t, hex.EncodeToString(sum[:]), result.Checksum)

		stored, ok := store.objects[result.StorageKey]
		require.True(t, ok)
		assert.Equal(t, content, string(stored))

		current, err := versionRepo.GetCurrent(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, current)
		assert.Equal(t, 1, current.VersionNumber)

		doc, err := docRepo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "pdf", doc.FileType().String())
	})

	t.Run("second upload flips the current flag", func(t *testing.T) {
		_, versionRepo, _, uc, id := setup(t)

		_, err := uc.Execute(ctx, UploadVersionCommand{
			DocumentID: id, Filename: "v1.docx", Content: strings.NewReader("one"), ActorID: 3,
		})
		require.NoError(t, err)

		result, err := uc.Execute(ctx, UploadVersionCommand{
			DocumentID: id, Filename: "v2.docx", Content: strings.NewReader("two"), ActorID: 3,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, result.VersionNumber)

		versions, err := versionRepo.List(ctx, id)
		require.NoError(t, err)
		require.Len(t, versions, 2)

		currentCount := 0
		for _, v := range versions {
			if v.IsCurrent {
				currentCount++
				assert.Equal(t, 2, v.VersionNumber)
			}
		}
		assert.Equal(t, 1, currentCount)
	})

	t.Run("empty file is rejected", func(t *testing.T) {
		_, _, _, uc, id := setup(t)

		_, err := uc.Execute(ctx, UploadVersionCommand{
			DocumentID: id, Filename: "empty.pdf", Content: strings.NewReader(""), ActorID: 3,
		})
		require.Error(t, err)
		assert.True(t, errors.IsValidation(err))
	})

	t.Run("unknown document is not found", func(t *testing.T) {
		_, _, _, uc, _ := setup(t)

		_, err := uc.Execute(ctx, UploadVersionCommand{
			DocumentID: 999, Filename: "x.pdf", Content: strings.NewReader("data"), ActorID: 3,
		})
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
	})
}
