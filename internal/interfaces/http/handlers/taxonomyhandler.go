package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agewithcare/policyhub/internal/application/taxonomy"
	domaintaxonomy "github.com/agewithcare/policyhub/internal/domain/taxonomy"
	"github.com/agewithcare/policyhub/internal/shared/errors"
	"github.com/agewithcare/policyhub/internal/shared/logger"
	"github.com/agewithcare/policyhub/internal/shared/utils"
)

type TaxonomyHandler struct {
	service *taxonomy.Service
	logger  logger.Interface
}

func NewTaxonomyHandler(service *taxonomy.Service) *TaxonomyHandler {
	return &TaxonomyHandler{
		service: service,
		logger:  logger.NewLogger(),
	}
}

type CategoryResponse struct {
	ID        uint               `json:"id"`
	Name      string             `json:"name"`
	Slug      string             `json:"slug"`
	ParentID  *uint              `json:"parent_id,omitempty"`
	SortOrder int                `json:"sort_order"`
	Children  []CategoryResponse `json:"children,omitempty"`
}

type TagResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type BusinessUnitResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type CreateCategoryRequest struct {
	Name      string `json:"name" binding:"required"`
	ParentID  *uint  `json:"parent_id"`
	SortOrder int    `json:"sort_order"`
}

type UpdateCategoryRequest struct {
	Name      string `json:"name" binding:"required"`
	SortOrder int    `json:"sort_order"`
}

type NameRequest struct {
	Name string `json:"name" binding:"required"`
}

func toCategoryResponse(c *domaintaxonomy.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Slug:      c.Slug,
		ParentID:  c.ParentID,
		SortOrder: c.SortOrder,
	}
}

// GetCategoryTree returns root categories with their subcategories, for the
// browse sidebar.
func (h *TaxonomyHandler) GetCategoryTree(c *gin.Context) {
	tree, err := h.service.CategoryTree(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	response := make([]CategoryResponse, 0, len(tree))
	for _, node := range tree {
		item := toCategoryResponse(node.Category)
		for _, child := range node.Children {
			item.Children = append(item.Children, toCategoryResponse(child))
		}
		response = append(response, item)
	}
	utils.SuccessResponse(c, http.StatusOK, "", response)
}

func (h *TaxonomyHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("category name is required"))
		return
	}

	category, err := h.service.CreateCategory(c.Request.Context(), req.Name, req.ParentID, req.SortOrder)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, toCategoryResponse(category), "Category created successfully")
}

func (h *TaxonomyHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("category name is required"))
		return
	}

	category, err := h.service.UpdateCategory(c.Request.Context(), id, req.Name, req.SortOrder)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Category updated successfully", toCategoryResponse(category))
}

func (h *TaxonomyHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteCategory(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Category deleted successfully", nil)
}

func (h *TaxonomyHandler) ListTags(c *gin.Context) {
	tags, err := h.service.ListTags(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	response := make([]TagResponse, 0, len(tags))
	for _, tag := range tags {
		response = append(response, TagResponse{ID: tag.ID, Name: tag.Name, Slug: tag.Slug})
	}
	utils.SuccessResponse(c, http.StatusOK, "", response)
}

func (h *TaxonomyHandler) CreateTag(c *gin.Context) {
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("tag name is required"))
		return
	}

	tag, err := h.service.CreateTag(c.Request.Context(), req.Name)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, TagResponse{ID: tag.ID, Name: tag.Name, Slug: tag.Slug}, "Tag created successfully")
}

func (h *TaxonomyHandler) DeleteTag(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteTag(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Tag deleted successfully", nil)
}

func (h *TaxonomyHandler) ListBusinessUnits(c *gin.Context) {
	units, err := h.service.ListBusinessUnits(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	response := make([]BusinessUnitResponse, 0, len(units))
	for _, unit := range units {
		response = append(response, BusinessUnitResponse{ID: unit.ID, Name: unit.Name})
	}
	utils.SuccessResponse(c, http.StatusOK, "", response)
}

func (h *TaxonomyHandler) CreateBusinessUnit(c *gin.Context) {
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("business unit name is required"))
		return
	}

	unit, err := h.service.CreateBusinessUnit(c.Request.Context(), req.Name)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, BusinessUnitResponse{ID: unit.ID, Name: unit.Name}, "Business unit created successfully")
}

func (h *TaxonomyHandler) DeleteBusinessUnit(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteBusinessUnit(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Business unit deleted successfully", nil)
}
