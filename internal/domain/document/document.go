package document

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/agewithcare/policyhub/internal/domain/document/valueobjects"
	"github.com/agewithcare/policyhub/internal/shared/biztime"
)

// Document is the aggregate root for a controlled policy/procedure document.
// File content lives in the object store; this holds metadata, workflow state
// and taxonomy references.
type Document struct {
	id             uint
	title          string
	slug           string
	summary        string
	body           string
	contentType    vo.ContentType
	status         vo.DocumentStatus
	fileType       vo.FileType
	ownerID        uint
	reviewerID     *uint
	approverID     *uint
	effectiveDate  *time.Time
	reviewDue      *time.Time
	categoryID     uint
	subcategoryID  *uint
	businessUnitID *uint
	tagIDs         []uint
	downloadAllowed bool
	publicAccess    bool
	searchText      string
	createdAt       time.Time
	updatedAt       time.Time
}

// NewDocumentParams carries the required and optional fields for creation.
type NewDocumentParams struct {
	Title          string
	Summary        string
	Body           string
	ContentType    vo.ContentType
	OwnerID        uint
	CategoryID     uint
	SubcategoryID  *uint
	BusinessUnitID *uint
	ReviewerID     *uint
	ApproverID     *uint
	EffectiveDate  *time.Time
	ReviewDue      *time.Time
	TagIDs         []uint
	DownloadAllowed bool
	PublicAccess    bool
}

func NewDocument(p NewDocumentParams) (*Document, error) {
	if strings.TrimSpace(p.Title) == "" {
		return nil, fmt.Errorf("title is required")
	}
	if len(p.Title) > 255 {
		return nil, fmt.Errorf("title exceeds maximum length of 255 characters")
	}
	if !p.ContentType.IsValid() {
		return nil, fmt.Errorf("invalid content type: %s", p.ContentType)
	}
	if p.OwnerID == 0 {
		return nil, fmt.Errorf("owner is required")
	}
	if p.CategoryID == 0 {
		return nil, fmt.Errorf("category is required")
	}

	now := biztime.NowUTC()
	doc := &Document{
		title:           strings.TrimSpace(p.Title),
		summary:         p.Summary,
		body:            p.Body,
		contentType:     p.ContentType,
		status:          vo.StatusDraft,
		fileType:        vo.FileOther,
		ownerID:         p.OwnerID,
		reviewerID:      p.ReviewerID,
		approverID:      p.ApproverID,
		effectiveDate:   p.EffectiveDate,
		reviewDue:       p.ReviewDue,
		categoryID:      p.CategoryID,
		subcategoryID:   p.SubcategoryID,
		businessUnitID:  p.BusinessUnitID,
		tagIDs:          append([]uint(nil), p.TagIDs...),
		downloadAllowed: p.DownloadAllowed,
		publicAccess:    p.PublicAccess,
		createdAt:       now,
		updatedAt:       now,
	}
	doc.RebuildSearchText()
	return doc, nil
}

// ReconstructParams mirrors the persisted columns for rehydration.
type ReconstructParams struct {
	ID              uint
	Title           string
	Slug            string
	Summary         string
	Body            string
	ContentType     vo.ContentType
	Status          vo.DocumentStatus
	FileType        vo.FileType
	OwnerID         uint
	ReviewerID      *uint
	ApproverID      *uint
	EffectiveDate   *time.Time
	ReviewDue       *time.Time
	CategoryID      uint
	SubcategoryID   *uint
	BusinessUnitID  *uint
	TagIDs          []uint
	DownloadAllowed bool
	PublicAccess    bool
	SearchText      string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func ReconstructDocument(p ReconstructParams) (*Document, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("document ID cannot be zero")
	}
	return &Document{
		id:              p.ID,
		title:           p.Title,
		slug:            p.Slug,
		summary:         p.Summary,
		body:            p.Body,
		contentType:     p.ContentType,
		status:          p.Status,
		fileType:        p.FileType,
		ownerID:         p.OwnerID,
		reviewerID:      p.ReviewerID,
		approverID:      p.ApproverID,
		effectiveDate:   p.EffectiveDate,
		reviewDue:       p.ReviewDue,
		categoryID:      p.CategoryID,
		subcategoryID:   p.SubcategoryID,
		businessUnitID:  p.BusinessUnitID,
		tagIDs:          append([]uint(nil), p.TagIDs...),
		downloadAllowed: p.DownloadAllowed,
		publicAccess:    p.PublicAccess,
		searchText:      p.SearchText,
		createdAt:       p.CreatedAt,
		updatedAt:       p.UpdatedAt,
	}, nil
}

func (d *Document) ID() uint                      { return d.id }
func (d *Document) Title() string                 { return d.title }
func (d *Document) Slug() string                  { return d.slug }
func (d *Document) Summary() string               { return d.summary }
func (d *Document) Body() string                  { return d.body }
func (d *Document) ContentType() vo.ContentType   { return d.contentType }
func (d *Document) Status() vo.DocumentStatus     { return d.status }
func (d *Document) FileType() vo.FileType         { return d.fileType }
func (d *Document) OwnerID() uint                 { return d.ownerID }
func (d *Document) ReviewerID() *uint             { return d.reviewerID }
func (d *Document) ApproverID() *uint             { return d.approverID }
func (d *Document) EffectiveDate() *time.Time     { return d.effectiveDate }
func (d *Document) ReviewDue() *time.Time         { return d.reviewDue }
func (d *Document) CategoryID() uint              { return d.categoryID }
func (d *Document) SubcategoryID() *uint          { return d.subcategoryID }
func (d *Document) BusinessUnitID() *uint         { return d.businessUnitID }
func (d *Document) TagIDs() []uint                { return append([]uint(nil), d.tagIDs...) }
func (d *Document) DownloadAllowed() bool         { return d.downloadAllowed }
func (d *Document) PublicAccess() bool            { return d.publicAccess }
func (d *Document) SearchText() string            { return d.searchText }
func (d *Document) CreatedAt() time.Time          { return d.createdAt }
func (d *Document) UpdatedAt() time.Time          { return d.updatedAt }

func (d *Document) SetID(id uint) error {
	if d.id != 0 {
		return fmt.Errorf("document ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("document ID cannot be zero")
	}
	d.id = id
	return nil
}

// SetSlug assigns the unique slug chosen by the slug assignment procedure.
func (d *Document) SetSlug(slug string) error {
	if slug == "" {
		return fmt.Errorf("slug cannot be empty")
	}
	d.slug = slug
	return nil
}

// ChangeStatus moves the document along the workflow, rejecting edges outside
// the transition table. Publishing stamps the effective date and derives the
// review-due date from the content type's review cycle when not set.
func (d *Document) ChangeStatus(target vo.DocumentStatus) error {
	if !target.IsValid() {
		return fmt.Errorf("invalid document status: %s", target)
	}
	if d.status == target {
		return nil
	}
	if !d.status.CanTransitionTo(target) {
		return fmt.Errorf("cannot transition document from %s to %s", d.status, target)
	}

	d.status = target
	d.updatedAt = biztime.NowUTC()

	if target.IsPublished() {
		if d.effectiveDate == nil {
			now := biztime.StartOfDay(biztime.NowUTC())
			d.effectiveDate = &now
		}
		if d.reviewDue == nil {
			due := biztime.AddMonths(*d.effectiveDate, d.contentType.ReviewIntervalMonths())
			d.reviewDue = &due
		}
	}
	return nil
}

// IsExpired reports whether a published document is past its review-due date.
func (d *Document) IsExpired(now time.Time) bool {
	return d.status.IsPublished() && d.reviewDue != nil && now.After(*d.reviewDue)
}

// UpdateDetailsParams carries the editable metadata fields.
type UpdateDetailsParams struct {
	Title           string
	Summary         string
	Body            string
	ContentType     vo.ContentType
	CategoryID      uint
	SubcategoryID   *uint
	BusinessUnitID  *uint
	ReviewerID      *uint
	ApproverID      *uint
	EffectiveDate   *time.Time
	ReviewDue       *time.Time
	TagIDs          []uint
	DownloadAllowed bool
	PublicAccess    bool
}

func (d *Document) UpdateDetails(p UpdateDetailsParams) error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if !p.ContentType.IsValid() {
		return fmt.Errorf("invalid content type: %s", p.ContentType)
	}
	if p.CategoryID == 0 {
		return fmt.Errorf("category is required")
	}

	d.title = strings.TrimSpace(p.Title)
	d.summary = p.Summary
	d.body = p.Body
	d.contentType = p.ContentType
	d.categoryID = p.CategoryID
	d.subcategoryID = p.SubcategoryID
	d.businessUnitID = p.BusinessUnitID
	d.reviewerID = p.ReviewerID
	d.approverID = p.ApproverID
	d.effectiveDate = p.EffectiveDate
	d.reviewDue = p.ReviewDue
	d.tagIDs = append([]uint(nil), p.TagIDs...)
	d.downloadAllowed = p.DownloadAllowed
	d.publicAccess = p.PublicAccess
	d.updatedAt = biztime.NowUTC()
	d.RebuildSearchText()
	return nil
}

// SetFileType records the format of the current version's file.
func (d *Document) SetFileType(ft vo.FileType) {
	d.fileType = ft
	d.updatedAt = biztime.NowUTC()
}

// RebuildSearchText refreshes the denormalized free-text search body from
// title, summary and document body.
func (d *Document) RebuildSearchText() {
	parts := []string{d.title, d.summary, d.body}
	d.searchText = strings.ToLower(strings.Join(parts, " "))
}
