package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/agewithcare/policyhub/internal/domain/document"
	vo "github.com/agewithcare/policyhub/internal/domain/document/valueobjects"
	"github.com/agewithcare/policyhub/internal/infrastructure/persistence/mappers"
	"github.com/agewithcare/policyhub/internal/infrastructure/persistence/models"
	"github.com/agewithcare/policyhub/internal/shared/errors"
)

type DocumentRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.DocumentMapper
}

func NewDocumentRepository(db *gorm.DB) document.Repository {
	return &DocumentRepositoryImpl{
		db:     db,
		mapper: mappers.NewDocumentMapper(),
	}
}

func (r *DocumentRepositoryImpl) Create(ctx context.Context, doc *document.Document) error {
	model := r.mapper.ToModel(doc)
	tagIDs := doc.TagIDs()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to create document: %w", err)
		}
		for _, tagID := range tagIDs {
			if err := tx.Create(&models.DocumentTagModel{DocumentID: model.ID, TagID: tagID}).Error; err != nil {
				return fmt.Errorf("failed to link tag %d: %w", tagID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := doc.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set document ID: %w", err)
	}

	return nil
}

func (r *DocumentRepositoryImpl) Update(ctx context.Context, doc *document.Document) error {
	model := r.mapper.ToModel(doc)
	tagIDs := doc.TagIDs()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Save(model)
		if result.Error != nil {
			return fmt.Errorf("failed to update document: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("document not found")
		}

		if err := tx.Where("document_id = ?", doc.ID()).Delete(&models.DocumentTagModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear document tags: %w", err)
		}
		for _, tagID := range tagIDs {
			if err := tx.Create(&models.DocumentTagModel{DocumentID: doc.ID(), TagID: tagID}).Error; err != nil {
				return fmt.Errorf("failed to link tag %d: %w", tagID, err)
			}
		}
		return nil
	})
}

func (r *DocumentRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("document_id = ?", id).Delete(&models.DocumentTagModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete document tags: %w", err)
		}
		if err := tx.Where("document_id = ?", id).Delete(&models.DocumentVersionModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete document versions: %w", err)
		}
		if err := tx.Where("document_id = ?", id).Delete(&models.BookmarkModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete document bookmarks: %w", err)
		}

		result := tx.Delete(&models.DocumentModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete document: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("document not found")
		}
		return nil
	})
}

func (r *DocumentRepositoryImpl) GetByID(ctx context.Context, id uint) (*document.Document, error) {
	var model models.DocumentModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get document by ID: %w", err)
	}

	return r.hydrate(ctx, &model)
}

func (r *DocumentRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*document.Document, error) {
	var model models.DocumentModel

	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get document by slug: %w", err)
	}

	return r.hydrate(ctx, &model)
}

func (r *DocumentRepositoryImpl) ExistsBySlug(ctx context.Context, slug string, excludeID uint) (bool, error) {
	query := r.db.WithContext(ctx).Model(&models.DocumentModel{}).Where("slug = ?", slug)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check document slug: %w", err)
	}
	return count > 0, nil
}

func (r *DocumentRepositoryImpl) Search(ctx context.Context, filter document.SearchFilter) ([]*document.Document, int64, error) {
	query := r.buildSearchQuery(ctx, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count documents: %w", err)
	}

	order := filter.OrderClause()
	if order == "" {
		order = "updated_at DESC"
	}

	var modelList []*models.DocumentModel
	if err := query.Order(order).
		Limit(filter.Limit()).
		Offset(filter.Offset()).
		Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to search documents: %w", err)
	}

	docs, err := r.hydrateAll(ctx, modelList)
	if err != nil {
		return nil, 0, err
	}

	return docs, total, nil
}

// buildSearchQuery translates the filter into a gorm query. Archived
// documents are excluded unless asked for explicitly.
func (r *DocumentRepositoryImpl) buildSearchQuery(ctx context.Context, filter document.SearchFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&models.DocumentModel{})

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where("title LIKE ? OR summary LIKE ? OR search_text LIKE ?", pattern, pattern, pattern)
	}
	if filter.ContentType != "" {
		query = query.Where("content_type = ?", filter.ContentType.String())
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	} else if !filter.IncludeArchived {
		query = query.Where("status <> ?", vo.StatusArchived.String())
	}
	if filter.CategoryID > 0 {
		query = query.Where("category_id = ? OR subcategory_id = ?", filter.CategoryID, filter.CategoryID)
	}
	if filter.BusinessUnitID > 0 {
		query = query.Where("business_unit_id = ?", filter.BusinessUnitID)
	}
	if filter.OwnerID > 0 {
		query = query.Where("owner_id = ?", filter.OwnerID)
	}
	if len(filter.TagIDs) > 0 {
		sub := r.db.Model(&models.DocumentTagModel{}).
			Select("document_id").
			Where("tag_id IN ?", filter.TagIDs)
		query = query.Where("id IN (?)", sub)
	}
	if filter.EffectiveFrom != nil {
		query = query.Where("effective_date >= ?", filter.EffectiveFrom)
	}
	if filter.EffectiveTo != nil {
		query = query.Where("effective_date <= ?", filter.EffectiveTo)
	}
	if filter.PublicOnly {
		query = query.Where("public_access = ? AND status = ?", true, vo.StatusPublished.String())
	}

	return query
}

func (r *DocumentRepositoryImpl) ListRelated(ctx context.Context, categoryID, excludeID uint, limit int) ([]*document.Document, error) {
	var modelList []*models.DocumentModel

	err := r.db.WithContext(ctx).
		Where("(category_id = ? OR subcategory_id = ?) AND id <> ? AND status = ?",
			categoryID, categoryID, excludeID, vo.StatusPublished.String()).
		Order("updated_at DESC").
		Limit(limit).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list related documents: %w", err)
	}

	return r.hydrateAll(ctx, modelList)
}

func (r *DocumentRepositoryImpl) ListRecent(ctx context.Context, limit int) ([]*document.Document, error) {
	var modelList []*models.DocumentModel

	err := r.db.WithContext(ctx).
		Where("status = ?", vo.StatusPublished.String()).
		Order("updated_at DESC").
		Limit(limit).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent documents: %w", err)
	}

	return r.hydrateAll(ctx, modelList)
}

func (r *DocumentRepositoryImpl) CountByStatus(ctx context.Context) (map[vo.DocumentStatus]int64, error) {
	type statusCount struct {
		Status string
		Count  int64
	}

	var rows []statusCount
	err := r.db.WithContext(ctx).Model(&models.DocumentModel{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count documents by status: %w", err)
	}

	counts := make(map[vo.DocumentStatus]int64, len(rows))
	for _, row := range rows {
		counts[vo.DocumentStatus(row.Status)] = row.Count
	}

	return counts, nil
}

func (r *DocumentRepositoryImpl) hydrate(ctx context.Context, model *models.DocumentModel) (*document.Document, error) {
	tagIDs, err := r.loadTagIDs(ctx, model.ID)
	if err != nil {
		return nil, err
	}
	return r.mapper.ToDomain(model, tagIDs)
}

func (r *DocumentRepositoryImpl) hydrateAll(ctx context.Context, modelList []*models.DocumentModel) ([]*document.Document, error) {
	if len(modelList) == 0 {
		return []*document.Document{}, nil
	}

	ids := make([]uint, 0, len(modelList))
	for _, model := range modelList {
		ids = append(ids, model.ID)
	}

	var rows []*models.DocumentTagModel
	if err := r.db.WithContext(ctx).Where("document_id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load document tags: %w", err)
	}

	tagsByDoc := make(map[uint][]uint, len(modelList))
	for _, row := range rows {
		tagsByDoc[row.DocumentID] = append(tagsByDoc[row.DocumentID], row.TagID)
	}

	docs := make([]*document.Document, 0, len(modelList))
	for _, model := range modelList {
		doc, err := r.mapper.ToDomain(model, tagsByDoc[model.ID])
		if err != nil {
			return nil, fmt.Errorf("failed to map document model: %w", err)
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

func (r *DocumentRepositoryImpl) loadTagIDs(ctx context.Context, documentID uint) ([]uint, error) {
	var rows []*models.DocumentTagModel
	if err := r.db.WithContext(ctx).Where("document_id = ?", documentID).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load document tags: %w", err)
	}

	tagIDs := make([]uint, 0, len(rows))
	for _, row := range rows {
		tagIDs = append(tagIDs, row.TagID)
	}
	return tagIDs, nil
}
