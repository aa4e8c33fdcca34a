package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentStatus_Transitions(t *testing.T) {
	tests := []struct {
		from    DocumentStatus
		to      DocumentStatus
		allowed bool
	}{
		{StatusDraft, StatusPendingReview, true},
		{StatusDraft, StatusApproved, false},
		{StatusDraft, StatusPublished, false},
		{StatusPendingReview, StatusApproved, true},
		{StatusPendingReview, StatusDraft, true},
		{StatusPendingReview, StatusPublished, false},
		{StatusApproved, StatusPublished, true},
		{StatusApproved, StatusDraft, true},
		{StatusApproved, StatusArchived, false},
		{StatusPublished, StatusArchived, true},
		{StatusPublished, StatusDraft, false},
		// archived is terminal: nothing may leave it, in particular not back to published
		{StatusArchived, StatusPublished, false},
		{StatusArchived, StatusDraft, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestDocumentStatus_Terminal(t *testing.T) {
	assert.True(t, StatusArchived.IsTerminal())
	assert.False(t, StatusDraft.IsTerminal())
	assert.False(t, StatusPublished.IsTerminal())
}

func TestNewDocumentStatus(t *testing.T) {
	s, err := NewDocumentStatus("pending_review")
	assert.NoError(t, err)
	assert.Equal(t, StatusPendingReview, s)

	_, err = NewDocumentStatus("expired")
	assert.Error(t, err, "expired is computed, not a stored status")

	_, err = NewDocumentStatus("bogus")
	assert.Error(t, err)
}

func TestContentType_ReviewInterval(t *testing.T) {
	assert.Equal(t, 24, TypePolicy.ReviewIntervalMonths())
	assert.Equal(t, 6, TypeRegister.ReviewIntervalMonths())
	assert.Equal(t, 12, ContentType("unknown").ReviewIntervalMonths())
}

func TestDetectFileType(t *testing.T) {
	tests := []struct {
		filename string
		want     FileType
	}{
		{"Consumer Rights Policy.pdf", FilePDF},
		{"form.DOCX", FileWord},
		{"register.xlsx", FileExcel},
		{"slides.pptx", FilePowerPoint},
		{"notes.txt", FileText},
		{"readme.md", FileMarkdown},
		{"archive.zip", FileOther},
		{"noextension", FileOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectFileType(tt.filename), tt.filename)
	}
}
