package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agewithcare/policyhub/internal/application/bookmark"
	"github.com/agewithcare/policyhub/internal/interfaces/http/middleware"
	"github.com/agewithcare/policyhub/internal/shared/logger"
	"github.com/agewithcare/policyhub/internal/shared/utils"
)

type BookmarkHandler struct {
	service *bookmark.Service
	logger  logger.Interface
}

func NewBookmarkHandler(service *bookmark.Service) *BookmarkHandler {
	return &BookmarkHandler{
		service: service,
		logger:  logger.NewLogger(),
	}
}

type BookmarkedDocument struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (h *BookmarkHandler) List(c *gin.Context) {
	docs, err := h.service.ListDocuments(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	response := make([]BookmarkedDocument, 0, len(docs))
	for _, doc := range docs {
		response = append(response, BookmarkedDocument{
			ID:        doc.ID(),
			Title:     doc.Title(),
			Slug:      doc.Slug(),
			Status:    doc.Status().String(),
			UpdatedAt: doc.UpdatedAt(),
		})
	}
	utils.SuccessResponse(c, http.StatusOK, "", response)
}

func (h *BookmarkHandler) Add(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Add(c.Request.Context(), middleware.CurrentUserID(c), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Bookmark added", nil)
}

func (h *BookmarkHandler) Remove(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Remove(c.Request.Context(), middleware.CurrentUserID(c), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Bookmark removed", nil)
}
