package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/dejmenek/pms-backend/internal/core/ports/services"
	"github.com/dejmenek/pms-backend/internal/dto"
	"github.com/dejmenek/pms-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests for the staff directory.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

// registerUserRoutes registers routes related to users.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		users.GET("", h.listUsers)
		users.POST("", h.createUser)
		users.GET("/:id", h.getUserDetails)
		users.PUT("/:id", h.updateUser)
		users.DELETE("/:id", h.deleteUser)
		users.POST("/batch-delete", h.deleteUsers)
		users.GET("/:id/edit", h.getUserForUpdate)
		users.GET("/:id/roles", h.getUserRoles)
		users.PUT("/:id/roles", h.updateUserRoles)
	}
}

// listUsers returns one page of the directory, filtered by the query
// parameters.
func (h *userHandler) listUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	req := dto.GetUsersRequest{Page: 1, PageSize: 10}
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind query for listUsers", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.userService.GetUsers(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *userHandler) createUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createUser", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.userService.CreateUser(c.Request.Context(), req); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusCreated)
}

func (h *userHandler) getUserDetails(c *gin.Context) {
	details, err := h.userService.GetUserDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

func (h *userHandler) updateUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateUser", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	// the path is authoritative for which user is updated
	req.ID = c.Param("id")

	if err := h.userService.UpdateUser(c.Request.Context(), req); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *userHandler) deleteUser(c *gin.Context) {
	if err := h.userService.RemoveSingleUser(c.Request.Context(), c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// deleteUsersRequest is the payload for batch user deletion.
type deleteUsersRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

func (h *userHandler) deleteUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req deleteUsersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for deleteUsers", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.userService.RemoveUsers(c.Request.Context(), req.IDs); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *userHandler) getUserForUpdate(c *gin.Context) {
	user, err := h.userService.GetUserForUpdate(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *userHandler) getUserRoles(c *gin.Context) {
	roles, err := h.userService.GetUserRolesForUpdate(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, roles)
}

func (h *userHandler) updateUserRoles(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateUserRolesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateUserRoles", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.userService.UpdateUserRoles(c.Request.Context(), c.Param("id"), req.SelectedRoles); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
