package models

import (
	"time"

	"github.com/agewithcare/policyhub/internal/shared/constants"
)

// DocumentModel is the persistence model for document metadata. File content
// lives in the object store.
type DocumentModel struct {
	ID              uint    `gorm:"primarykey"`
	Title           string  `gorm:"not null;size:255"`
	Slug            string  `gorm:"uniqueIndex;not null;size:255"`
	Summary         string  `gorm:"type:text"`
	Body            string  `gorm:"type:text"`
	ContentType     string  `gorm:"not null;size:30;index"`
	Status          string  `gorm:"not null;default:draft;size:20;index"`
	FileType        string  `gorm:"size:20"`
	OwnerID         uint    `gorm:"not null;index"`
	ReviewerID      *uint
	ApproverID      *uint
	EffectiveDate   *time.Time
	ReviewDue       *time.Time `gorm:"index"`
	CategoryID      uint       `gorm:"not null;index"`
	SubcategoryID   *uint
	BusinessUnitID  *uint `gorm:"index"`
	DownloadAllowed bool  `gorm:"default:true"`
	PublicAccess    bool  `gorm:"default:false"`
	SearchText      string `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (DocumentModel) TableName() string {
	return constants.TableDocuments
}

// DocumentVersionModel stores one revision of a document's file. The
// (document_id, version_number) pair is unique.
type DocumentVersionModel struct {
	ID            uint   `gorm:"primarykey"`
	DocumentID    uint   `gorm:"not null;uniqueIndex:idx_document_version;index"`
	VersionNumber int    `gorm:"not null;uniqueIndex:idx_document_version"`
	Filename      string `gorm:"not null;size:255"`
	StorageKey    string `gorm:"not null;size:512"`
	SizeBytes     int64
	Checksum      string `gorm:"size:64"`
	FileType      string `gorm:"size:20"`
	UploadedBy    uint   `gorm:"not null"`
	IsCurrent     bool   `gorm:"not null;default:false;index"`
	ChangeNote    string `gorm:"type:text"`
	CreatedAt     time.Time
}

func (DocumentVersionModel) TableName() string {
	return constants.TableDocumentVersions
}

// DocumentTagModel joins documents to tags.
type DocumentTagModel struct {
	DocumentID uint `gorm:"primarykey"`
	TagID      uint `gorm:"primarykey;index"`
}

func (DocumentTagModel) TableName() string {
	return constants.TableDocumentTags
}
