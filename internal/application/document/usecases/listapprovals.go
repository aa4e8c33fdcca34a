package usecases

import (
	"context"

	"github.com/agewithcare/policyhub/internal/domain/document"
	vo "github.com/agewithcare/policyhub/internal/domain/document/valueobjects"
	"github.com/agewithcare/policyhub/internal/shared/errors"
	"github.com/agewithcare/policyhub/internal/shared/logger"
	"github.com/agewithcare/policyhub/internal/shared/query"
)

type ListApprovalsCommand struct {
	Page     int
	PageSize int
}

type ListApprovalsResult struct {
	Documents []DocumentSummary `json:"documents"`
	Total     int64             `json:"total"`
}

// ListApprovalsUseCase lists documents waiting in the review queue.
type ListApprovalsUseCase struct {
	docRepo document.Repository
	logger  logger.Interface
}

func NewListApprovalsUseCase(docRepo document.Repository, logger logger.Interface) *ListApprovalsUseCase {
	return &ListApprovalsUseCase{
		docRepo: docRepo,
		logger:  logger,
	}
}

func (uc *ListApprovalsUseCase) Execute(ctx context.Context, cmd ListApprovalsCommand) (*ListApprovalsResult, error) {
	filter := document.SearchFilter{
		Status:     vo.StatusPendingReview,
		BaseFilter: query.NewBaseFilter(query.WithPage(cmd.Page, cmd.PageSize), query.WithSort("updated_at", "asc")),
	}

	docs, total, err := uc.docRepo.Search(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list approval queue", "error", err)
		return nil, errors.NewInternalError("failed to list approvals")
	}

	return &ListApprovalsResult{
		Documents: toSummaries(docs),
		Total:     total,
	}, nil
}
