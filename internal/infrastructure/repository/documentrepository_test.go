package repository

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/agewithcare/policyhub/internal/domain/document"
	vo "github.com/agewithcare/policyhub/internal/domain/document/valueobjects"
	"github.com/agewithcare/policyhub/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.DocumentModel{},
		&models.DocumentVersionModel{},
		&models.DocumentTagModel{},
		&models.BookmarkModel{},
		&models.TagModel{},
	)
	require.NoError(t, err)

	return db
}

func createTestDocument(t *testing.T, repo document.Repository, title, slug string, status vo.DocumentStatus, tagIDs ...uint) *document.Document {
	t.Helper()

	doc, err := document.NewDocument(document.NewDocumentParams{
		Title:       title,
		Summary:     "Summary for " + title,
		ContentType: vo.TypePolicy,
		OwnerID:     1,
		CategoryID:  1,
		TagIDs:      tagIDs,
	})
	require.NoError(t, err)
	require.NoError(t, doc.SetSlug(slug))

	// Walk the workflow instead of writing the status directly.
	if status != vo.StatusDraft {
		require.NoError(t, doc.ChangeStatus(vo.StatusPendingReview))
	}
	if status == vo.StatusApproved || status == vo.StatusPublished || status == vo.StatusArchived {
		require.NoError(t, doc.ChangeStatus(vo.StatusApproved))
	}
	if status == vo.StatusPublished || status == vo.StatusArchived {
		require.NoError(t, doc.ChangeStatus(vo.StatusPublished))
	}
	if status == vo.StatusArchived {
		require.NoError(t, doc.ChangeStatus(vo.StatusArchived))
	}

	require.NoError(t, repo.Create(context.Background(), doc))
	return doc
}

func TestDocumentRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDocumentRepository(db)
	ctx := context.Background()

	doc := createTestDocument(t, repo, "Consumer Rights Policy", "consumer-rights-policy", vo.StatusDraft, 3, 7)
	assert.NotZero(t, doc.ID())

	found, err := repo.GetBySlug(ctx, "consumer-rights-policy")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, doc.ID(), found.ID())
	assert.Equal(t, "Consumer Rights Policy", found.Title())
	assert.ElementsMatch(t, []uint{3, 7}, found.TagIDs())

	missing, err := repo.GetBySlug(ctx, "no-such-slug")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDocumentRepository_ExistsBySlug(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDocumentRepository(db)
	ctx := context.Background()

	doc := createTestDocument(t, repo, "Medication Management", "medication-management", vo.StatusDraft)

	exists, err := repo.ExistsBySlug(ctx, "medication-management", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	// The document being edited does not collide with its own slug.
	exists, err = repo.ExistsBySlug(ctx, "medication-management", doc.ID())
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.ExistsBySlug(ctx, "medication-management-1", 0)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDocumentRepository_SearchExcludesArchivedByDefault(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDocumentRepository(db)
	ctx := context.Background()

	createTestDocument(t, repo, "Draft Policy", "draft-policy", vo.StatusDraft)
	createTestDocument(t, repo, "Published Policy", "published-policy", vo.StatusPublished)
	createTestDocument(t, repo, "Archived Policy", "archived-policy", vo.StatusArchived)

	docs, total, err := repo.Search(ctx, document.SearchFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	for _, doc := range docs {
		assert.False(t, doc.Status().IsArchived())
	}

	t.Run("explicit archived status returns archived documents", func(t *testing.T) {
		docs, total, err := repo.Search(ctx, document.SearchFilter{Status: vo.StatusArchived})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, docs, 1)
		assert.Equal(t, "archived-policy", docs[0].Slug())
	})

	t.Run("include archived flag returns everything", func(t *testing.T) {
		_, total, err := repo.Search(ctx, document.SearchFilter{IncludeArchived: true})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
	})
}

func TestDocumentRepository_SearchByQueryAndTags(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDocumentRepository(db)
	ctx := context.Background()

	createTestDocument(t, repo, "Infection Control Procedure", "infection-control", vo.StatusPublished, 1)
	createTestDocument(t, repo, "Falls Prevention Policy", "falls-prevention", vo.StatusPublished, 2)

	t.Run("free text matches title case-insensitively through search text", func(t *testing.T) {
		docs, total, err := repo.Search(ctx, document.SearchFilter{Query: "infection"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, docs, 1)
		assert.Equal(t, "infection-control", docs[0].Slug())
	})

	t.Run("tag filter narrows to tagged documents", func(t *testing.T) {
		docs, total, err := repo.Search(ctx, document.SearchFilter{TagIDs: []uint{2}})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, docs, 1)
		assert.Equal(t, "falls-prevention", docs[0].Slug())
	})

	t.Run("no match returns empty slice", func(t *testing.T) {
		docs, total, err := repo.Search(ctx, document.SearchFilter{Query: "nonexistent"})
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, docs)
	})
}

func TestDocumentRepository_CountByStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDocumentRepository(db)
	ctx := context.Background()

	createTestDocument(t, repo, "Doc A", "doc-a", vo.StatusDraft)
	createTestDocument(t, repo, "Doc B", "doc-b", vo.StatusDraft)
	createTestDocument(t, repo, "Doc C", "doc-c", vo.StatusPublished)

	counts, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[vo.StatusDraft])
	assert.Equal(t, int64(1), counts[vo.StatusPublished])
	assert.Zero(t, counts[vo.StatusArchived])
}

func TestDocumentVersionRepository_Add(t *testing.T) {
	db := setupTestDB(t)
	docRepo := NewDocumentRepository(db)
	versionRepo := NewDocumentVersionRepository(db)
	ctx := context.Background()

	doc := createTestDocument(t, docRepo, "Versioned Policy", "versioned-policy", vo.StatusDraft)

	next, err := versionRepo.NextVersionNumber(ctx, doc.ID())
	require.NoError(t, err)
	assert.Equal(t, 1, next)

	v1, err := document.NewVersion(doc.ID(), 1, "policy.pdf", 1024, "abc123", 1, "initial upload")
	require.NoError(t, err)
	require.NoError(t, versionRepo.Add(ctx, v1))
	assert.NotZero(t, v1.ID)

	v2, err := document.NewVersion(doc.ID(), 2, "policy-v2.pdf", 2048, "def456", 1, "revised wording")
	require.NoError(t, err)
	require.NoError(t, versionRepo.Add(ctx, v2))

	t.Run("only the latest version is current", func(t *testing.T) {
		current, err := versionRepo.GetCurrent(ctx, doc.ID())
		require.NoError(t, err)
		require.NotNil(t, current)
		assert.Equal(t, 2, current.VersionNumber)

		var currentCount int64
		err = db.Model(&models.DocumentVersionModel{}).
			Where("document_id = ? AND is_current = ?", doc.ID(), true).
			Count(&currentCount).Error
		require.NoError(t, err)
		assert.Equal(t, int64(1), currentCount)
	})

	t.Run("next version number advances past the highest stored", func(t *testing.T) {
		next, err := versionRepo.NextVersionNumber(ctx, doc.ID())
		require.NoError(t, err)
		assert.Equal(t, 3, next)
	})

	t.Run("versions list newest first", func(t *testing.T) {
		versions, err := versionRepo.List(ctx, doc.ID())
		require.NoError(t, err)
		require.Len(t, versions, 2)
		assert.Equal(t, 2, versions[0].VersionNumber)
		assert.Equal(t, "documents/1/v2/policy-v2.pdf", versions[0].StorageKey)
	})
}
