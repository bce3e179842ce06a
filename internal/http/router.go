package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "portal/backend/docs"
	"portal/backend/internal/handler"
	"portal/backend/internal/service"
)

func NewRouter(
	authService service.AuthService,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	serverHandler *handler.ServerHandler,
	projectHandler *handler.ProjectHandler,
	applicationHandler *handler.ApplicationHandler,
	accomplishmentHandler *handler.AccomplishmentHandler,
	summaryHandler *handler.SummaryHandler,
	settingsHandler *handler.SettingsHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(RequestIDMiddleware())
	e.Use(RequestLoggerMiddleware())

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	public := e.Group("/api")
	public.GET("/health", health)
	authHandler.RegisterPublicRoutes(public)

	api := e.Group("/api")
	api.Use(JWTAuthMiddleware(authService))
	authHandler.RegisterRoutes(api)
	userHandler.RegisterRoutes(api)
	serverHandler.RegisterRoutes(api)
	projectHandler.RegisterRoutes(api)
	applicationHandler.RegisterRoutes(api)
	accomplishmentHandler.RegisterRoutes(api)
	summaryHandler.RegisterRoutes(api)
	settingsHandler.RegisterRoutes(api)

	return e
}

// health reports liveness.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
