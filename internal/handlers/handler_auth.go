package handlers

import (
	"net/http"
	"time"

	"github.com/SscSPs/roundup_ledger/internal/dto"
	"github.com/SscSPs/roundup_ledger/internal/middleware"

	portssvc "github.com/SscSPs/roundup_ledger/internal/core/ports/services"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// authHandler handles authentication related requests.
type authHandler struct {
	authService portssvc.AuthSvc
}

// registerAuthRoutes sets up the public routes for authentication.
// loginLimiter may be nil to disable rate limiting.
func registerAuthRoutes(r *gin.Engine, authService portssvc.AuthSvc, loginLimiter *limiter.Limiter) {
	h := &authHandler{authService: authService}

	handlersChain := []gin.HandlerFunc{}
	if loginLimiter != nil {
		handlersChain = append(handlersChain, middleware.RateLimit(loginLimiter))
	}
	handlersChain = append(handlersChain, h.login)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", handlersChain...)
	}
}

// login godoc
// @Summary Admin login
// @Description Checks the administrator credentials and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	token, expiresAt, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to generate token")
		return
	}

	expiresIn := int64(time.Until(expiresAt).Seconds())
	if expiresIn < 0 {
		expiresIn = 0
	}
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, ExpiresIn: expiresIn})
}
