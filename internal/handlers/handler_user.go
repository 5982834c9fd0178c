package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openbooks-dev/bookkeeping_backend/internal/core/ports/services"
	"github.com/openbooks-dev/bookkeeping_backend/internal/dto"
	"github.com/openbooks-dev/bookkeeping_backend/internal/middleware"
)

type userHandler struct {
	userService services.UserSvcFacade
}

func newUserHandler(userService services.UserSvcFacade) *userHandler {
	return &userHandler{userService: userService}
}

// createUserHandler godoc
// @Summary      Create a user
// @Description  Creates a user within a company. Company admins can manage
// @Description  their own company; elevated roles can manage any.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        companyID  path      string                 true  "Company ID"
// @Param        user       body      dto.CreateUserRequest  true  "User details"
// @Success      201        {object}  dto.UserResponse
// @Failure      400        {object}  map[string]string
// @Failure      403        {object}  map[string]string
// @Failure      409        {object}  map[string]string
// @Router       /companies/{companyID}/users [post]
func (h *userHandler) createUserHandler(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid create user request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), c.Param("companyID"), req, actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// getUserHandler godoc
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        companyID  path      string  true  "Company ID"
// @Param        userID     path      string  true  "User ID"
// @Success      200        {object}  dto.UserResponse
// @Failure      404        {object}  map[string]string
// @Router       /companies/{companyID}/users/{userID} [get]
func (h *userHandler) getUserHandler(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), c.Param("userID"), actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// listUsersHandler godoc
// @Summary      List users of a company
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        companyID  path      string  true   "Company ID"
// @Param        limit      query     int     false  "Page size"  default(20)
// @Param        offset     query     int     false  "Page offset"
// @Success      200        {object}  dto.ListUsersResponse
// @Router       /companies/{companyID}/users [get]
func (h *userHandler) listUsersHandler(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var params dto.ListUsersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid list users params", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), c.Param("companyID"), actor, params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListUsersResponse(users))
}

// updateUserHandler godoc
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        companyID  path      string                 true  "Company ID"
// @Param        userID     path      string                 true  "User ID"
// @Param        user       body      dto.UpdateUserRequest  true  "Fields to update"
// @Success      200        {object}  dto.UserResponse
// @Failure      403        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /companies/{companyID}/users/{userID} [put]
func (h *userHandler) updateUserHandler(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid update user request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), c.Param("companyID"), c.Param("userID"), req, actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// deleteUserHandler godoc
// @Summary      Delete a user
// @Description  Soft-deletes a user. Users cannot delete themselves.
// @Tags         users
// @Security     BearerAuth
// @Param        companyID  path  string  true  "Company ID"
// @Param        userID     path  string  true  "User ID"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /companies/{companyID}/users/{userID} [delete]
func (h *userHandler) deleteUserHandler(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), c.Param("companyID"), c.Param("userID"), actor); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// getProfileHandler godoc
// @Summary      Get own profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  map[string]string
// @Router       /profile [get]
func (h *userHandler) getProfileHandler(c *gin.Context) {
	actor, ok := mustActor(c)
	if !ok {
		return
	}

	user, err := h.userService.GetProfile(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// changePasswordHandler godoc
// @Summary      Change own password
// @Description  Replaces the caller's password after verifying the current one.
// @Tags         users
// @Accept       json
// @Security     BearerAuth
// @Param        passwords  body  dto.ChangePasswordRequest  true  "Current and new password"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /profile/password [put]
func (h *userHandler) changePasswordHandler(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := mustActor(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid change password request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), req, actor); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func registerUserRoutes(group *gin.RouterGroup, userService services.UserSvcFacade) {
	h := newUserHandler(userService)

	group.GET("/profile", h.getProfileHandler)
	group.PUT("/profile/password", h.changePasswordHandler)

	users := group.Group("/companies/:companyID/users")
	{
		users.POST("", h.createUserHandler)
		users.GET("", h.listUsersHandler)
		users.GET("/:userID", h.getUserHandler)
		users.PUT("/:userID", h.updateUserHandler)
		users.DELETE("/:userID", h.deleteUserHandler)
	}
}
