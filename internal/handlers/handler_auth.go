package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/visa_office_app/internal/core/ports/services"
	"github.com/SscSPs/visa_office_app/internal/dto"
	"github.com/SscSPs/visa_office_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// authHandler handles login and the caller's profile.
type authHandler struct {
	authService portssvc.AuthSvc
}

func newAuthHandler(as portssvc.AuthSvc) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes mounts the public login route, rate limited by lim, on public
// and the profile route on the authenticated group.
func registerAuthRoutes(public, authed *gin.RouterGroup, authService portssvc.AuthSvc, lim *limiter.Limiter) {
	h := newAuthHandler(authService)

	public.POST("/auth/login", middleware.RateLimit(lim), h.login)
	authed.GET("/auth/profile", h.profile)
}

// login godoc
// @Summary User login
// @Description Authenticates an operator by email and password and returns a JWT access token.
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
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "Failed to log in")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Login succeeded", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.LoginResponse{AccessToken: token, User: dto.ToUserSummary(user)})
}

// profile godoc
// @Summary Current user profile
// @Tags auth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/profile [get]
func (h *authHandler) profile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	user, err := h.authService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to load profile")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
