package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"portal/backend/internal/service"
)

// AuthCookieName is the name of the authentication cookie, set so that
// browser resource requests carry the token too.
const AuthCookieName = "portal_auth"

// BadgeContextKey is where the auth middleware stores the caller's badge.
const BadgeContextKey = "badge"

type AuthHandler struct {
	service service.AuthService
}

type sessionRequest struct {
	Badge int64  `json:"badge"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// RegisterPublicRoutes registers endpoints reachable without a token.
func (h *AuthHandler) RegisterPublicRoutes(g *echo.Group) {
	g.POST("/auth/session", h.CreateSession)
}

func (h *AuthHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/auth/me", h.Me)
}

// CreateSession exchanges an IdP-asserted profile for a portal token.
// @Summary Create a session
// @Description Exchanges a verified identity profile for a portal JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param profile body sessionRequest true "IdP-asserted profile"
// @Success 200 {object} service.Session
// @Failure 400 {object} errorResponse
// @Router /auth/session [post]
func (h *AuthHandler) CreateSession(c echo.Context) error {
	var req sessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	session, err := h.service.CreateSession(c.Request().Context(), service.SessionProfile{
		Badge: req.Badge,
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return writeServiceError(c, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     AuthCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  time.Now().Add(30 * 24 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, session)
}

// Me returns the authenticated user.
// @Summary Get current user
// @Tags auth
// @Produce json
// @Success 200 {object} userResponse
// @Failure 401 {object} errorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	badge, ok := c.Get(BadgeContextKey).(int64)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "missing authentication"})
	}
	user, err := h.service.GetCurrentUser(c.Request().Context(), badge)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}
