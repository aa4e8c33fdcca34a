package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agewithcare/policyhub/internal/application/document/usecases"
	"github.com/agewithcare/policyhub/internal/domain/permission"
	"github.com/agewithcare/policyhub/internal/interfaces/http/middleware"
	"github.com/agewithcare/policyhub/internal/shared/errors"
	"github.com/agewithcare/policyhub/internal/shared/logger"
	"github.com/agewithcare/policyhub/internal/shared/utils"
)

type DocumentHandler struct {
	createUC    *usecases.CreateDocumentUseCase
	updateUC    *usecases.UpdateDocumentUseCase
	getUC       *usecases.GetDocumentUseCase
	searchUC    *usecases.SearchDocumentsUseCase
	statusUC    *usecases.ChangeStatusUseCase
	uploadUC    *usecases.UploadVersionUseCase
	downloadUC  *usecases.DownloadDocumentUseCase
	deleteUC    *usecases.DeleteDocumentUseCase
	approvalsUC *usecases.ListApprovalsUseCase
	dashboardUC *usecases.DashboardUseCase
	logger      logger.Interface
}

func NewDocumentHandler(
	createUC *usecases.CreateDocumentUseCase,
	updateUC *usecases.UpdateDocumentUseCase,
	getUC *usecases.GetDocumentUseCase,
	searchUC *usecases.SearchDocumentsUseCase,
	statusUC *usecases.ChangeStatusUseCase,
	uploadUC *usecases.UploadVersionUseCase,
	downloadUC *usecases.DownloadDocumentUseCase,
	deleteUC *usecases.DeleteDocumentUseCase,
	approvalsUC *usecases.ListApprovalsUseCase,
	dashboardUC *usecases.DashboardUseCase,
) *DocumentHandler {
	return &DocumentHandler{
		createUC:    createUC,
		updateUC:    updateUC,
		getUC:       getUC,
		searchUC:    searchUC,
		statusUC:    statusUC,
		uploadUC:    uploadUC,
		downloadUC:  downloadUC,
		deleteUC:    deleteUC,
		approvalsUC: approvalsUC,
		dashboardUC: dashboardUC,
		logger:      logger.NewLogger(),
	}
}

type DocumentRequest struct {
	Title           string     `json:"title" binding:"required"`
	Summary         string     `json:"summary"`
	Body            string     `json:"body"`
	ContentType     string     `json:"content_type" binding:"required"`
	CategoryID      uint       `json:"category_id" binding:"required"`
	SubcategoryID   *uint      `json:"subcategory_id"`
	BusinessUnitID  *uint      `json:"business_unit_id"`
	ReviewerID      *uint      `json:"reviewer_id"`
	ApproverID      *uint      `json:"approver_id"`
	EffectiveDate   *time.Time `json:"effective_date"`
	ReviewDue       *time.Time `json:"review_due"`
	TagIDs          []uint     `json:"tag_ids"`
	DownloadAllowed bool       `json:"download_allowed"`
	PublicAccess    bool       `json:"public_access"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *DocumentHandler) Create(c *gin.Context) {
	var req DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create document", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	cmd := usecases.CreateDocumentCommand{
		Title:           req.Title,
		Summary:         req.Summary,
		Body:            req.Body,
		ContentType:     req.ContentType,
		CategoryID:      req.CategoryID,
		SubcategoryID:   req.SubcategoryID,
		BusinessUnitID:  req.BusinessUnitID,
		ReviewerID:      req.ReviewerID,
		ApproverID:      req.ApproverID,
		EffectiveDate:   req.EffectiveDate,
		ReviewDue:       req.ReviewDue,
		TagIDs:          req.TagIDs,
		DownloadAllowed: req.DownloadAllowed,
		PublicAccess:    req.PublicAccess,
		ActorID:         middleware.CurrentUserID(c),
		IPAddress:       c.ClientIP(),
		UserAgent:       c.Request.UserAgent(),
		RequestID:       middleware.GetRequestID(c),
	}

	result, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Document created successfully")
}

func (h *DocumentHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update document", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	cmd := usecases.UpdateDocumentCommand{
		DocumentID:      id,
		Title:           req.Title,
		Summary:         req.Summary,
		Body:            req.Body,
		ContentType:     req.ContentType,
		CategoryID:      req.CategoryID,
		SubcategoryID:   req.SubcategoryID,
		BusinessUnitID:  req.BusinessUnitID,
		ReviewerID:      req.ReviewerID,
		ApproverID:      req.ApproverID,
		EffectiveDate:   req.EffectiveDate,
		ReviewDue:       req.ReviewDue,
		TagIDs:          req.TagIDs,
		DownloadAllowed: req.DownloadAllowed,
		PublicAccess:    req.PublicAccess,
		ActorID:         middleware.CurrentUserID(c),
		IPAddress:       c.ClientIP(),
		UserAgent:       c.Request.UserAgent(),
		RequestID:       middleware.GetRequestID(c),
	}

	result, err := h.updateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Document updated successfully", result)
}

// GetBySlug serves the document view page data. Works for anonymous
// visitors when the document is public and published.
func (h *DocumentHandler) GetBySlug(c *gin.Context) {
	cmd := usecases.GetDocumentCommand{
		Slug:    c.Param("slug"),
		CanView: middleware.CurrentPermissions(c).Has(permission.PermView),
	}

	result, err := h.getUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *DocumentHandler) Search(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	// Short parameter names are the documented search interface; the long
	// forms match the create/update payload fields.
	contentType := c.Query("content_type")
	if contentType == "" {
		contentType = c.Query("type")
	}
	categoryID := parseQueryUint(c, "category_id")
	if categoryID == 0 {
		categoryID = parseQueryUint(c, "category")
	}

	cmd := usecases.SearchDocumentsCommand{
		Query:           c.Query("q"),
		ContentType:     contentType,
		Status:          c.Query("status"),
		CategoryID:      categoryID,
		BusinessUnitID:  parseQueryUint(c, "business_unit_id"),
		OwnerID:         parseQueryUint(c, "owner_id"),
		TagIDs:          parseQueryUints(c, "tag_ids"),
		IncludeArchived: c.Query("include_archived") == "true",
		PublicOnly:      !middleware.CurrentPermissions(c).Has(permission.PermView),
		Page:            pagination.Page,
		PageSize:        pagination.PageSize,
		SortBy:          c.Query("sort_by"),
		SortDesc:        c.Query("sort_order") != "asc",
	}

	if from := c.Query("effective_from"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			cmd.EffectiveFrom = &t
		}
	}
	if to := c.Query("effective_to"); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			cmd.EffectiveTo = &t
		}
	}

	result, err := h.searchUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result.Documents, result.Total, result.Page, result.PageSize)
}

func (h *DocumentHandler) ChangeStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("status is required"))
		return
	}

	cmd := usecases.ChangeStatusCommand{
		DocumentID:  id,
		NewStatus:   req.Status,
		Permissions: middleware.CurrentPermissions(c),
		ActorID:     middleware.CurrentUserID(c),
		IPAddress:  c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		RequestID:  middleware.GetRequestID(c),
	}

	result, err := h.statusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Document status updated", result)
}

// UploadVersion accepts a multipart upload and stores it as the new current
// version of the document.
func (h *DocumentHandler) UploadVersion(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Errorw("failed to open uploaded file", "error", err)
		utils.ErrorResponseWithError(c, errors.NewInternalError("failed to read upload"))
		return
	}
	defer file.Close()

	cmd := usecases.UploadVersionCommand{
		DocumentID: id,
		Filename:   fileHeader.Filename,
		Content:    file,
		ChangeNote: c.PostForm("change_note"),
		ActorID:    middleware.CurrentUserID(c),
		IPAddress:  c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		RequestID:  middleware.GetRequestID(c),
	}

	result, err := h.uploadUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "Version uploaded successfully")
}

// Download returns a short-lived presigned URL for the requested version.
func (h *DocumentHandler) Download(c *gin.Context) {
	versionNumber := 0
	if v := c.Query("version"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid version number"))
			return
		}
		versionNumber = n
	}

	cmd := usecases.DownloadDocumentCommand{
		Slug:          c.Param("slug"),
		VersionNumber: versionNumber,
		CanView:       middleware.CurrentPermissions(c).Has(permission.PermView),
	}

	result, err := h.downloadUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *DocumentHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	cmd := usecases.DeleteDocumentCommand{
		DocumentID: id,
		ActorID:    middleware.CurrentUserID(c),
		IPAddress:  c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		RequestID:  middleware.GetRequestID(c),
	}

	if err := h.deleteUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Document deleted successfully", nil)
}

// ListApprovals serves the review queue for approvers.
func (h *DocumentHandler) ListApprovals(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.approvalsUC.Execute(c.Request.Context(), usecases.ListApprovalsCommand{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result.Documents, result.Total, pagination.Page, pagination.PageSize)
}

func (h *DocumentHandler) Dashboard(c *gin.Context) {
	result, err := h.dashboardUC.Execute(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid id"))
		return 0, false
	}
	return uint(id), true
}

func parseQueryUint(c *gin.Context, name string) uint {
	if v := c.Query(name); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			return uint(n)
		}
	}
	return 0
}

func parseQueryUints(c *gin.Context, name string) []uint {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	var ids []uint
	for _, part := range strings.Split(raw, ",") {
		if n, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32); err == nil && n > 0 {
			ids = append(ids, uint(n))
		}
	}
	return ids
}
