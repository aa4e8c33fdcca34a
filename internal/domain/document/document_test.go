package document

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/agewithcare/policyhub/internal/domain/document/valueobjects"
)

func newTestDocument(t *testing.T) *Document {
	t.Helper()
	doc, err := NewDocument(NewDocumentParams{
		Title:       "Consumer Rights Policy",
		Summary:     "How consumer rights are upheld",
		ContentType: vo.TypePolicy,
		OwnerID:     1,
		CategoryID:  2,
	})
	require.NoError(t, err)
	return doc
}

func TestNewDocument_Defaults(t *testing.T) {
	doc := newTestDocument(t)

	assert.Equal(t, vo.StatusDraft, doc.Status())
	assert.Equal(t, vo.FileOther, doc.FileType())
	assert.Contains(t, doc.SearchText(), "consumer rights policy")
	assert.Contains(t, doc.SearchText(), "upheld")
}

func TestNewDocument_Validation(t *testing.T) {
	_, err := NewDocument(NewDocumentParams{Title: "", ContentType: vo.TypePolicy, OwnerID: 1, CategoryID: 1})
	assert.Error(t, err)

	_, err = NewDocument(NewDocumentParams{Title: "x", ContentType: "novel", OwnerID: 1, CategoryID: 1})
	assert.Error(t, err)

	_, err = NewDocument(NewDocumentParams{Title: "x", ContentType: vo.TypePolicy, OwnerID: 0, CategoryID: 1})
	assert.Error(t, err)

	_, err = NewDocument(NewDocumentParams{Title: "x", ContentType: vo.TypePolicy, OwnerID: 1, CategoryID: 0})
	assert.Error(t, err)
}

func TestChangeStatus_WalksWorkflow(t *testing.T) {
	doc := newTestDocument(t)

	require.NoError(t, doc.ChangeStatus(vo.StatusPendingReview))
	require.NoError(t, doc.ChangeStatus(vo.StatusApproved))
	require.NoError(t, doc.ChangeStatus(vo.StatusPublished))
	require.NoError(t, doc.ChangeStatus(vo.StatusArchived))
}

func TestChangeStatus_RejectsInvalidEdges(t *testing.T) {
	doc := newTestDocument(t)

	err := doc.ChangeStatus(vo.StatusPublished)
	assert.Error(t, err, "draft cannot go straight to published")
	assert.Equal(t, vo.StatusDraft, doc.Status())

	require.NoError(t, doc.ChangeStatus(vo.StatusPendingReview))
	require.NoError(t, doc.ChangeStatus(vo.StatusApproved))
	require.NoError(t, doc.ChangeStatus(vo.StatusPublished))
	require.NoError(t, doc.ChangeStatus(vo.StatusArchived))

	err = doc.ChangeStatus(vo.StatusPublished)
	assert.Error(t, err, "archived is terminal")
}

func TestChangeStatus_PublishStampsReviewDue(t *testing.T) {
	doc := newTestDocument(t)
	require.NoError(t, doc.ChangeStatus(vo.StatusPendingReview))
	require.NoError(t, doc.ChangeStatus(vo.StatusApproved))

	require.Nil(t, doc.ReviewDue())
	require.NoError(t, doc.ChangeStatus(vo.StatusPublished))

	require.NotNil(t, doc.EffectiveDate())
	require.NotNil(t, doc.ReviewDue())
	// policy review cycle is 24 months
	expected := doc.EffectiveDate().AddDate(2, 0, 0)
	assert.WithinDuration(t, expected, *doc.ReviewDue(), 31*24*time.Hour)
}

func TestIsExpired(t *testing.T) {
	doc := newTestDocument(t)
	require.NoError(t, doc.ChangeStatus(vo.StatusPendingReview))
	require.NoError(t, doc.ChangeStatus(vo.StatusApproved))
	require.NoError(t, doc.ChangeStatus(vo.StatusPublished))

	assert.False(t, doc.IsExpired(time.Now().UTC()))
	assert.True(t, doc.IsExpired(doc.ReviewDue().Add(time.Hour)))
}

func TestIsExpired_OnlyWhenPublished(t *testing.T) {
	past := time.Now().UTC().AddDate(-1, 0, 0)
	doc, err := NewDocument(NewDocumentParams{
		Title:       "Old Draft",
		ContentType: vo.TypeProcedure,
		OwnerID:     1,
		CategoryID:  1,
		ReviewDue:   &past,
	})
	require.NoError(t, err)

	assert.False(t, doc.IsExpired(time.Now().UTC()), "a draft never reads as expired")
}

func TestNewVersion_BuildsStorageKey(t *testing.T) {
	v, err := NewVersion(42, 3, "policy.pdf", 1024, "abc123", 7, "updated wording")
	require.NoError(t, err)

	assert.Equal(t, "documents/42/v3/policy.pdf", v.StorageKey)
	assert.Equal(t, vo.FilePDF, v.FileType)
	assert.True(t, v.IsCurrent)
}

func TestNewVersion_Validation(t *testing.T) {
	_, err := NewVersion(0, 1, "f.pdf", 1, "c", 1, "")
	assert.Error(t, err)

	_, err = NewVersion(1, 0, "f.pdf", 1, "c", 1, "")
	assert.Error(t, err)

	_, err = NewVersion(1, 1, "", 1, "c", 1, "")
	assert.Error(t, err)

	_, err = NewVersion(1, 1, "f.pdf", 1, "", 1, "")
	assert.Error(t, err)
}
