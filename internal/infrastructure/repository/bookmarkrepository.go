package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/agewithcare/policyhub/internal/domain/bookmark"
	"github.com/agewithcare/policyhub/internal/infrastructure/persistence/models"
)

type BookmarkRepositoryImpl struct {
	db *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) bookmark.Repository {
	return &BookmarkRepositoryImpl{db: db}
}

// Add is idempotent: re-bookmarking an already-bookmarked document is a no-op.
func (r *BookmarkRepositoryImpl) Add(ctx context.Context, b *bookmark.Bookmark) error {
	model := &models.BookmarkModel{
		UserID:     b.UserID,
		DocumentID: b.DocumentID,
		CreatedAt:  b.CreatedAt,
	}

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(model).Error; err != nil {
		return fmt.Errorf("failed to add bookmark: %w", err)
	}

	return nil
}

func (r *BookmarkRepositoryImpl) Remove(ctx context.Context, userID, documentID uint) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND document_id = ?", userID, documentID).
		Delete(&models.BookmarkModel{}).Error; err != nil {
		return fmt.Errorf("failed to remove bookmark: %w", err)
	}
	return nil
}

func (r *BookmarkRepositoryImpl) ListDocumentIDs(ctx context.Context, userID uint) ([]uint, error) {
	var rows []*models.BookmarkModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}

	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.DocumentID)
	}
	return ids, nil
}

func (r *BookmarkRepositoryImpl) Exists(ctx context.Context, userID, documentID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.BookmarkModel{}).
		Where("user_id = ? AND document_id = ?", userID, documentID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check bookmark: %w", err)
	}
	return count > 0, nil
}
