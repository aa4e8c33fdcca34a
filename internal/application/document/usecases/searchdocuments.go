package usecases

import (
	"context"
	"time"

	"github.com/agewithcare/policyhub/internal/domain/document"
	vo "github.com/agewithcare/policyhub/internal/domain/document/valueobjects"
	"github.com/agewithcare/policyhub/internal/shared/errors"
	"github.com/agewithcare/policyhub/internal/shared/logger"
	"github.com/agewithcare/policyhub/internal/shared/query"
)

type SearchDocumentsCommand struct {
	Query           string
	ContentType     string
	Status          string
	CategoryID      uint
	BusinessUnitID  uint
	OwnerID         uint
	TagIDs          []uint
	EffectiveFrom   *time.Time
	EffectiveTo     *time.Time
	IncludeArchived bool
	// PublicOnly restricts results to publicly readable published documents,
	// for unauthenticated access.
	PublicOnly bool

	Page     int
	PageSize int
	SortBy   string
	SortDesc bool
}

type SearchDocumentsResult struct {
	Documents []DocumentSummary `json:"documents"`
	Total     int64             `json:"total"`
	Page      int               `json:"page"`
	PageSize  int               `json:"page_size"`
}

type SearchDocumentsUseCase struct {
	docRepo document.Repository
	logger  logger.Interface
}

func NewSearchDocumentsUseCase(docRepo document.Repository, logger logger.Interface) *SearchDocumentsUseCase {
	return &SearchDocumentsUseCase{
		docRepo: docRepo,
		logger:  logger,
	}
}

// sortableColumns whitelists the sort keys accepted from the query string.
var sortableColumns = map[string]string{
	"title":          "title",
	"updated_at":     "updated_at",
	"created_at":     "created_at",
	"effective_date": "effective_date",
	"review_due":     "review_due",
}

func (uc *SearchDocumentsUseCase) Execute(ctx context.Context, cmd SearchDocumentsCommand) (*SearchDocumentsResult, error) {
	filter := document.SearchFilter{
		Query:           cmd.Query,
		CategoryID:      cmd.CategoryID,
		BusinessUnitID:  cmd.BusinessUnitID,
		OwnerID:         cmd.OwnerID,
		TagIDs:          cmd.TagIDs,
		EffectiveFrom:   cmd.EffectiveFrom,
		EffectiveTo:     cmd.EffectiveTo,
		IncludeArchived: cmd.IncludeArchived,
		PublicOnly:      cmd.PublicOnly,
	}

	if cmd.ContentType != "" {
		contentType, err := vo.NewContentType(cmd.ContentType)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.ContentType = contentType
	}
	if cmd.Status != "" {
		status, err := vo.NewDocumentStatus(cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = status
	}

	sortOrder := "desc"
	if !cmd.SortDesc {
		sortOrder = "asc"
	}
	sortBy := ""
	if column, ok := sortableColumns[cmd.SortBy]; ok {
		sortBy = column
	}
	filter.BaseFilter = query.NewBaseFilter(
		query.WithPage(cmd.Page, cmd.PageSize),
		query.WithSort(sortBy, sortOrder),
	)

	docs, total, err := uc.docRepo.Search(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to search documents", "error", err)
		return nil, errors.NewInternalError("search failed")
	}

	return &SearchDocumentsResult{
		Documents: toSummaries(docs),
		Total:     total,
		Page:      filter.Page,
		PageSize:  filter.Limit(),
	}, nil
}
