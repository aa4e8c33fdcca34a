package mappers

import (
	"fmt"

	"github.com/agewithcare/policyhub/internal/domain/document"
	vo "github.com/agewithcare/policyhub/internal/domain/document/valueobjects"
	"github.com/agewithcare/policyhub/internal/infrastructure/persistence/models"
)

// DocumentMapper handles the conversion between Document aggregates and
// persistence models. Tag links live in a join table, so the tag IDs are
// passed alongside the row on rehydration.
type DocumentMapper interface {
	ToModel(entity *document.Document) *models.DocumentModel
	ToDomain(model *models.DocumentModel, tagIDs []uint) (*document.Document, error)
	VersionToModel(entity *document.Version) *models.DocumentVersionModel
	VersionToDomain(model *models.DocumentVersionModel) *document.Version
}

type documentMapperImpl struct{}

func NewDocumentMapper() DocumentMapper {
	return &documentMapperImpl{}
}

func (m *documentMapperImpl) ToModel(entity *document.Document) *models.DocumentModel {
	if entity == nil {
		return nil
	}
	return &models.DocumentModel{
		ID:              entity.ID(),
		Title:           entity.Title(),
		Slug:            entity.Slug(),
		Summary:         entity.Summary(),
		Body:            entity.Body(),
		ContentType:     entity.ContentType().String(),
		Status:          entity.Status().String(),
		FileType:        entity.FileType().String(),
		OwnerID:         entity.OwnerID(),
		ReviewerID:      entity.ReviewerID(),
		ApproverID:      entity.ApproverID(),
		EffectiveDate:   entity.EffectiveDate(),
		ReviewDue:       entity.ReviewDue(),
		CategoryID:      entity.CategoryID(),
		SubcategoryID:   entity.SubcategoryID(),
		BusinessUnitID:  entity.BusinessUnitID(),
		DownloadAllowed: entity.DownloadAllowed(),
		PublicAccess:    entity.PublicAccess(),
		SearchText:      entity.SearchText(),
		CreatedAt:       entity.CreatedAt(),
		UpdatedAt:       entity.UpdatedAt(),
	}
}

func (m *documentMapperImpl) ToDomain(model *models.DocumentModel, tagIDs []uint) (*document.Document, error) {
	if model == nil {
		return nil, nil
	}

	contentType, err := vo.NewContentType(model.ContentType)
	if err != nil {
		return nil, fmt.Errorf("invalid content type in database for document %d: %w", model.ID, err)
	}
	status, err := vo.NewDocumentStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid status in database for document %d: %w", model.ID, err)
	}

	fileType := vo.FileType(model.FileType)
	if fileType == "" {
		fileType = vo.FileOther
	}

	return document.ReconstructDocument(document.ReconstructParams{
		ID:              model.ID,
		Title:           model.Title,
		Slug:            model.Slug,
		Summary:         model.Summary,
		Body:            model.Body,
		ContentType:     contentType,
		Status:          status,
		FileType:        fileType,
		OwnerID:         model.OwnerID,
		ReviewerID:      model.ReviewerID,
		ApproverID:      model.ApproverID,
		EffectiveDate:   model.EffectiveDate,
		ReviewDue:       model.ReviewDue,
		CategoryID:      model.CategoryID,
		SubcategoryID:   model.SubcategoryID,
		BusinessUnitID:  model.BusinessUnitID,
		TagIDs:          tagIDs,
		DownloadAllowed: model.DownloadAllowed,
		PublicAccess:    model.PublicAccess,
		SearchText:      model.SearchText,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	})
}

func (m *documentMapperImpl) VersionToModel(entity *document.Version) *models.DocumentVersionModel {
	if entity == nil {
		return nil
	}
	return &models.DocumentVersionModel{
		ID:            entity.ID,
		DocumentID:    entity.DocumentID,
		VersionNumber: entity.VersionNumber,
		Filename:      entity.Filename,
		StorageKey:    entity.StorageKey,
		SizeBytes:     entity.SizeBytes,
		Checksum:      entity.Checksum,
		FileType:      entity.FileType.String(),
		UploadedBy:    entity.UploadedBy,
		IsCurrent:     entity.IsCurrent,
		ChangeNote:    entity.ChangeNote,
		CreatedAt:     entity.CreatedAt,
	}
}

func (m *documentMapperImpl) VersionToDomain(model *models.DocumentVersionModel) *document.Version {
	if model == nil {
		return nil
	}
	return &document.Version{
		ID:            model.ID,
		DocumentID:    model.DocumentID,
		VersionNumber: model.VersionNumber,
		Filename:      model.Filename,
		StorageKey:    model.StorageKey,
		SizeBytes:     model.SizeBytes,
		Checksum:      model.Checksum,
		FileType:      vo.FileType(model.FileType),
		UploadedBy:    model.UploadedBy,
		IsCurrent:     model.IsCurrent,
		ChangeNote:    model.ChangeNote,
		CreatedAt:     model.CreatedAt,
	}
}
