package usecases

import (
	"context"
	"fmt"

	"github.com/agewithcare/policyhub/internal/domain/audit"
	"github.com/agewithcare/policyhub/internal/domain/document"
	vo "github.com/agewithcare/policyhub/internal/domain/document/valueobjects"
	"github.com/agewithcare/policyhub/internal/domain/permission"
	"github.com/agewithcare/policyhub/internal/shared/errors"
	"github.com/agewithcare/policyhub/internal/shared/logger"
)

// statusChangePermission maps each workflow status to the permission needed
// to move a document into it. Returning to draft is an editing action, so it
// shares the edit token with the submit-for-review edge.
var statusChangePermission = map[vo.DocumentStatus]string{
	vo.StatusDraft:         permission.PermEdit,
	vo.StatusPendingReview: permission.PermEdit,
	vo.StatusApproved:      permission.PermApprove,
	vo.StatusPublished:     permission.PermPublish,
	vo.StatusArchived:      permission.PermArchive,
}

type ChangeStatusCommand struct {
	DocumentID uint
	NewStatus  string
	// Permissions is the actor's resolved permission set; the edge into the
	// requested status must be covered by it.
	Permissions permission.PermissionSet

	ActorID   uint
	IPAddress string
	UserAgent string
	RequestID string
}

type ChangeStatusResult struct {
	DocumentID uint   `json:"document_id"`
	OldStatus  string `json:"old_status"`
	NewStatus  string `json:"new_status"`
}

type ChangeStatusUseCase struct {
	docRepo document.Repository
	auditor audit.Recorder
	logger  logger.Interface
}

func NewChangeStatusUseCase(docRepo document.Repository, auditor audit.Recorder, logger logger.Interface) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		docRepo: docRepo,
		auditor: auditor,
		logger:  logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	if cmd.DocumentID == 0 {
		return nil, errors.NewValidationError("document ID is required")
	}

	target, err := vo.NewDocumentStatus(cmd.NewStatus)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if required := statusChangePermission[target]; !cmd.Permissions.Has(required) {
		return nil, errors.NewForbiddenError(
			fmt.Sprintf("%s permission required to set status %s", required, target),
		)
	}

	doc, err := uc.docRepo.GetByID(ctx, cmd.DocumentID)
	if err != nil {
		uc.logger.Errorw("failed to get document", "document_id", cmd.DocumentID, "error", err)
		return nil, errors.NewInternalError("failed to change document status")
	}
	if doc == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("document %d not found", cmd.DocumentID))
	}

	oldStatus := doc.Status()

	if err := doc.ChangeStatus(target); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.docRepo.Update(ctx, doc); err != nil {
		uc.logger.Errorw("failed to update document", "document_id", doc.ID(), "error", err)
		return nil, errors.NewInternalError("failed to change document status")
	}

	entry := audit.NewEntry(cmd.ActorID, audit.ActionStatusChange, "document", doc.ID()).
		WithChange("old_status", oldStatus.String()).
		WithChange("new_status", doc.Status().String()).
		WithRequest(cmd.IPAddress, cmd.UserAgent, cmd.RequestID)
	if err := uc.auditor.Record(ctx, entry); err != nil {
		uc.logger.Warnw("failed to record status change audit entry", "document_id", doc.ID(), "error", err)
	}

	uc.logger.Infow("document status changed",
		"document_id", doc.ID(),
		"old_status", oldStatus.String(),
		"new_status", doc.Status().String(),
	)

	return &ChangeStatusResult{
		DocumentID: doc.ID(),
		OldStatus:  oldStatus.String(),
		NewStatus:  doc.Status().String(),
	}, nil
}
