package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agewithcare/policyhub/internal/application/user/usecases"
	"github.com/agewithcare/policyhub/internal/domain/permission"
	"github.com/agewithcare/policyhub/internal/interfaces/http/middleware"
	"github.com/agewithcare/policyhub/internal/shared/errors"
	"github.com/agewithcare/policyhub/internal/shared/logger"
	"github.com/agewithcare/policyhub/internal/shared/utils"
)

// UserHandler serves the admin user management screens.
type UserHandler struct {
	createUC      *usecases.CreateUserUseCase
	updateUC      *usecases.UpdateUserUseCase
	deleteUC      *usecases.DeleteUserUseCase
	listUC        *usecases.ListUsersUseCase
	assignRolesUC *usecases.AssignRolesUseCase
	roleRepo      permission.RoleRepository
	logger        logger.Interface
}

func NewUserHandler(
	createUC *usecases.CreateUserUseCase,
	updateUC *usecases.UpdateUserUseCase,
	deleteUC *usecases.DeleteUserUseCase,
	listUC *usecases.ListUsersUseCase,
	assignRolesUC *usecases.AssignRolesUseCase,
	roleRepo permission.RoleRepository,
) *UserHandler {
	return &UserHandler{
		createUC:      createUC,
		updateUC:      updateUC,
		deleteUC:      deleteUC,
		listUC:        listUC,
		assignRolesUC: assignRolesUC,
		roleRepo:      roleRepo,
		logger:        logger.NewLogger(),
	}
}

type CreateUserRequest struct {
	Email     string   `json:"email" binding:"required"`
	Name      string   `json:"name" binding:"required"`
	Password  string   `json:"password" binding:"required"`
	RoleSlugs []string `json:"roles"`
}

type UpdateUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	Password string `json:"password"`
}

type AssignRolesRequest struct {
	RoleSlugs []string `json:"roles"`
}

type RoleResponse struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
	IsSystem    bool     `json:"is_system"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create user", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	cmd := usecases.CreateUserCommand{
		Email:     req.Email,
		Name:      req.Name,
		Password:  req.Password,
		RoleSlugs: req.RoleSlugs,
		ActorID:   middleware.CurrentUserID(c),
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		RequestID: middleware.GetRequestID(c),
	}

	result, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "User created successfully")
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	cmd := usecases.UpdateUserCommand{
		UserID:    id,
		Email:     req.Email,
		Name:      req.Name,
		Status:    req.Status,
		Password:  req.Password,
		ActorID:   middleware.CurrentUserID(c),
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		RequestID: middleware.GetRequestID(c),
	}

	if err := h.updateUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "User updated successfully", nil)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	cmd := usecases.DeleteUserCommand{
		UserID:    id,
		ActorID:   middleware.CurrentUserID(c),
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		RequestID: middleware.GetRequestID(c),
	}

	if err := h.deleteUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "User deleted successfully", nil)
}

func (h *UserHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	cmd := usecases.ListUsersCommand{
		Status:   c.Query("status"),
		Search:   c.Query("search"),
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}

	result, err := h.listUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result.Users, result.Total, pagination.Page, pagination.PageSize)
}

func (h *UserHandler) AssignRoles(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req AssignRolesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("roles are required"))
		return
	}

	cmd := usecases.AssignRolesCommand{
		UserID:    id,
		RoleSlugs: req.RoleSlugs,
		ActorID:   middleware.CurrentUserID(c),
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		RequestID: middleware.GetRequestID(c),
	}

	result, err := h.assignRolesUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Roles assigned successfully", result)
}

// ListRoles returns all roles for the assignment picker.
func (h *UserHandler) ListRoles(c *gin.Context) {
	roles, err := h.roleRepo.List(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to list roles", "error", err)
		utils.ErrorResponseWithError(c, errors.NewInternalError("failed to list roles"))
		return
	}

	response := make([]RoleResponse, 0, len(roles))
	for _, role := range roles {
		response = append(response, RoleResponse{
			ID:          role.ID(),
			Name:        role.Name(),
			Slug:        role.Slug(),
			Description: role.Description(),
			Permissions: role.Permissions(),
			IsSystem:    role.IsSystem(),
		})
	}
	utils.SuccessResponse(c, http.StatusOK, "", response)
}
