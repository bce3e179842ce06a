package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portal/backend/internal/service"
)

type SettingsHandler struct {
	service service.SettingsService
}

type testAIRequest struct {
	Provider string `json:"provider"`
	APIKey   string `json:"apiKey"`
	BaseURL  string `json:"baseUrl"`
	Model    string `json:"model"`
}

type testAIResponse struct {
	Response string `json:"response"`
}

func NewSettingsHandler(service service.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

func (h *SettingsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/settings/ai", h.GetAISettings)
	g.PUT("/settings/ai", h.SetAISettings)
	g.POST("/settings/ai/test", h.TestAI)
}

// GetAISettings returns the AI configuration with the API key masked.
// @Summary Get AI settings
// @Tags settings
// @Produce json
// @Success 200 {object} service.AISettings
// @Router /settings/ai [get]
func (h *SettingsHandler) GetAISettings(c echo.Context) error {
	settings, err := h.service.GetAISettings(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, settings)
}

// SetAISettings updates the AI configuration.
// @Summary Update AI settings
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body service.AISettings true "AI settings"
// @Success 200 {object} service.AISettings
// @Failure 400 {object} errorResponse
// @Router /settings/ai [put]
func (h *SettingsHandler) SetAISettings(c echo.Context) error {
	var req service.AISettings
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	if err := h.service.SetAISettings(c.Request().Context(), &req); err != nil {
		return writeServiceError(c, err)
	}
	settings, err := h.service.GetAISettings(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, settings)
}

// TestAI sends a probe message with the given configuration.
// @Summary Test AI connection
// @Tags settings
// @Accept json
// @Produce json
// @Param request body testAIRequest true "Configuration to test"
// @Success 200 {object} testAIResponse
// @Failure 400 {object} errorResponse
// @Router /settings/ai/test [post]
func (h *SettingsHandler) TestAI(c echo.Context) error {
	var req testAIRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	resp, err := h.service.TestAI(c.Request().Context(), req.Provider, req.APIKey, req.BaseURL, req.Model)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, testAIResponse{Response: resp})
}
