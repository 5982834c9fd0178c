package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openbooks-dev/bookkeeping_backend/internal/core/ports/services"
	"github.com/openbooks-dev/bookkeeping_backend/internal/dto"
	"github.com/openbooks-dev/bookkeeping_backend/internal/middleware"
)

type authHandler struct {
	userService services.UserSvcFacade
}

func newAuthHandler(userService services.UserSvcFacade) *authHandler {
	return &authHandler{userService: userService}
}

// loginHandler godoc
// @Summary      Log in
// @Description  Authenticates a user by email and password and returns a signed JWT.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      dto.LoginRequest  true  "Login credentials"
// @Success      200    {object}  dto.LoginResponse
// @Failure      400    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Router       /auth/login [post]
func (h *authHandler) loginHandler(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid login request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	resp, err := h.userService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func registerAuthRoutes(group *gin.RouterGroup, userService services.UserSvcFacade) {
	h := newAuthHandler(userService)
	group.POST("/auth/login", h.loginHandler)
}
