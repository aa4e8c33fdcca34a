package usecases

import (
	"context"

	"github.com/agewithcare/policyhub/internal/domain/bookmark"
	"github.com/agewithcare/policyhub/internal/domain/document"
	"github.com/agewithcare/policyhub/internal/shared/errors"
	"github.com/agewithcare/policyhub/internal/shared/logger"
)

const recentDocumentsLimit = 10

type DashboardResult struct {
	Recent       []DocumentSummary `json:"recent"`
	Bookmarked   []DocumentSummary `json:"bookmarked"`
	StatusCounts map[string]int64  `json:"status_counts"`
}

// DashboardUseCase assembles the landing page: recently published documents,
// the user's bookmarks and workflow counts.
type DashboardUseCase struct {
	docRepo      document.Repository
	bookmarkRepo bookmark.Repository
	logger       logger.Interface
}

func NewDashboardUseCase(docRepo document.Repository, bookmarkRepo bookmark.Repository, logger logger.Interface) *DashboardUseCase {
	return &DashboardUseCase{
		docRepo:      docRepo,
		bookmarkRepo: bookmarkRepo,
		logger:       logger,
	}
}

func (uc *DashboardUseCase) Execute(ctx context.Context, userID uint) (*DashboardResult, error) {
	recent, err := uc.docRepo.ListRecent(ctx, recentDocumentsLimit)
	if err != nil {
		uc.logger.Errorw("failed to list recent documents", "error", err)
		return nil, errors.NewInternalError("failed to load dashboard")
	}

	var bookmarked []*document.Document
	if userID != 0 {
		ids, err := uc.bookmarkRepo.ListDocumentIDs(ctx, userID)
		if err != nil {
			uc.logger.Warnw("failed to list bookmarks", "user_id", userID, "error", err)
		} else {
			for _, id := range ids {
				doc, err := uc.docRepo.GetByID(ctx, id)
				if err != nil || doc == nil {
					continue
				}
				bookmarked = append(bookmarked, doc)
			}
		}
	}

	counts, err := uc.docRepo.CountByStatus(ctx)
	if err != nil {
		uc.logger.Warnw("failed to count documents by status", "error", err)
	}
	statusCounts := make(map[string]int64, len(counts))
	for status, count := range counts {
		statusCounts[status.String()] = count
	}

	return &DashboardResult{
		Recent:       toSummaries(recent),
		Bookmarked:   toSummaries(bookmarked),
		StatusCounts: statusCounts,
	}, nil
}
