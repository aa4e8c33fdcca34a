package usecases

import (
	"time"

	"github.com/agewithcare/policyhub/internal/domain/document"
	"github.com/agewithcare/policyhub/internal/shared/biztime"
)

// DocumentSummary is the list-item projection of a document. Expired is
// computed from the review-due date at read time, never stored.
type DocumentSummary struct {
	ID            uint       `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Summary       string     `json:"summary"`
	ContentType   string     `json:"content_type"`
	Status        string     `json:"status"`
	FileType      string     `json:"file_type"`
	OwnerID       uint       `json:"owner_id"`
	CategoryID    uint       `json:"category_id"`
	EffectiveDate *time.Time `json:"effective_date,omitempty"`
	ReviewDue     *time.Time `json:"review_due,omitempty"`
	Expired       bool       `json:"expired"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// DocumentDetail extends the summary with the full metadata set.
type DocumentDetail struct {
	DocumentSummary
	Body            string    `json:"body"`
	BodyHTML        string    `json:"body_html"`
	ReviewerID      *uint     `json:"reviewer_id,omitempty"`
	ApproverID      *uint     `json:"approver_id,omitempty"`
	SubcategoryID   *uint     `json:"subcategory_id,omitempty"`
	BusinessUnitID  *uint     `json:"business_unit_id,omitempty"`
	TagIDs          []uint    `json:"tag_ids"`
	DownloadAllowed bool      `json:"download_allowed"`
	PublicAccess    bool      `json:"public_access"`
	AllowedStatuses []string  `json:"allowed_transitions"`
	CreatedAt       time.Time `json:"created_at"`
}

// VersionInfo is the response projection of a stored revision.
type VersionInfo struct {
	ID            uint      `json:"id"`
	VersionNumber int       `json:"version_number"`
	Filename      string    `json:"filename"`
	SizeBytes     int64     `json:"size_bytes"`
	Checksum      string    `json:"checksum"`
	FileType      string    `json:"file_type"`
	UploadedBy    uint      `json:"uploaded_by"`
	IsCurrent     bool      `json:"is_current"`
	ChangeNote    string    `json:"change_note,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func toSummary(doc *document.Document) DocumentSummary {
	return DocumentSummary{
		ID:            doc.ID(),
		Title:         doc.Title(),
		Slug:          doc.Slug(),
		Summary:       doc.Summary(),
		ContentType:   doc.ContentType().String(),
		Status:        doc.Status().String(),
		FileType:      doc.FileType().String(),
		OwnerID:       doc.OwnerID(),
		CategoryID:    doc.CategoryID(),
		EffectiveDate: doc.EffectiveDate(),
		ReviewDue:     doc.ReviewDue(),
		Expired:       doc.IsExpired(biztime.NowUTC()),
		UpdatedAt:     doc.UpdatedAt(),
	}
}

func toSummaries(docs []*document.Document) []DocumentSummary {
	summaries := make([]DocumentSummary, 0, len(docs))
	for _, doc := range docs {
		summaries = append(summaries, toSummary(doc))
	}
	return summaries
}

func toVersionInfo(v *document.Version) VersionInfo {
	return VersionInfo{
		ID:            v.ID,
		VersionNumber: v.VersionNumber,
		Filename:      v.Filename,
		SizeBytes:     v.SizeBytes,
		Checksum:      v.Checksum,
		FileType:      v.FileType.String(),
		UploadedBy:    v.UploadedBy,
		IsCurrent:     v.IsCurrent,
		ChangeNote:    v.ChangeNote,
		CreatedAt:     v.CreatedAt,
	}
}
