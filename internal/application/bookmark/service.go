// Package bookmark lets users pin documents and list their pinned set.
package bookmark

import (
	"context"
	"fmt"

	"github.com/agewithcare/policyhub/internal/domain/bookmark"
	"github.com/agewithcare/policyhub/internal/domain/document"
	"github.com/agewithcare/policyhub/internal/shared/errors"
	"github.com/agewithcare/policyhub/internal/shared/logger"
)

type Service struct {
	bookmarkRepo bookmark.Repository
	docRepo      document.Repository
	logger       logger.Interface
}

func NewService(bookmarkRepo bookmark.Repository, docRepo document.Repository, logger logger.Interface) *Service {
	return &Service{
		bookmarkRepo: bookmarkRepo,
		docRepo:      docRepo,
		logger:       logger,
	}
}

// Add pins a document. Adding an existing bookmark succeeds silently.
func (s *Service) Add(ctx context.Context, userID, documentID uint) error {
	doc, err := s.docRepo.GetByID(ctx, documentID)
	if err != nil {
		s.logger.Errorw("failed to get document for bookmark", "document_id", documentID, "error", err)
		return errors.NewInternalError("failed to add bookmark")
	}
	if doc == nil {
		return errors.NewNotFoundError(fmt.Sprintf("document %d not found", documentID))
	}

	b, err := bookmark.NewBookmark(userID, documentID)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}
	if err := s.bookmarkRepo.Add(ctx, b); err != nil {
		s.logger.Errorw("failed to add bookmark", "user_id", userID, "document_id", documentID, "error", err)
		return errors.NewInternalError("failed to add bookmark")
	}
	return nil
}

func (s *Service) Remove(ctx context.Context, userID, documentID uint) error {
	if err := s.bookmarkRepo.Remove(ctx, userID, documentID); err != nil {
		s.logger.Errorw("failed to remove bookmark", "user_id", userID, "document_id", documentID, "error", err)
		return errors.NewInternalError("failed to remove bookmark")
	}
	return nil
}

// ListDocuments returns the user's bookmarked documents, skipping any that
// were deleted since bookmarking.
func (s *Service) ListDocuments(ctx context.Context, userID uint) ([]*document.Document, error) {
	ids, err := s.bookmarkRepo.ListDocumentIDs(ctx, userID)
	if err != nil {
		s.logger.Errorw("failed to list bookmarks", "user_id", userID, "error", err)
		return nil, errors.NewInternalError("failed to list bookmarks")
	}

	docs := make([]*document.Document, 0, len(ids))
	for _, id := range ids {
		doc, err := s.docRepo.GetByID(ctx, id)
		if err != nil {
			s.logger.Warnw("failed to load bookmarked document", "document_id", id, "error", err)
			continue
		}
		if doc == nil {
			continue
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (s *Service) IsBookmarked(ctx context.Context, userID, documentID uint) (bool, error) {
	exists, err := s.bookmarkRepo.Exists(ctx, userID, documentID)
	if err != nil {
		return false, errors.NewInternalError("failed to check bookmark")
	}
	return exists, nil
}
