package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portal/backend/internal/service"
)

type SummaryHandler struct {
	service service.SummaryService
}

type summaryRequest struct {
	From              string                `json:"from"`
	To                string                `json:"to"`
	Users             []service.SummaryUser `json:"users"`
	IncludeTeamThemes bool                  `json:"includeTeamThemes"`
}

func NewSummaryHandler(service service.SummaryService) *SummaryHandler {
	return &SummaryHandler{service: service}
}

func (h *SummaryHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/summaries", h.Generate)
}

// Generate produces a normalized team roll-up for the requested window.
// When no users are supplied the whole team is summarized.
// @Summary Generate a team roll-up summary
// @Tags summaries
// @Accept json
// @Produce json
// @Param request body summaryRequest true "Summary window and optional user bundles"
// @Success 200 {object} service.SummaryResult
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /summaries [post]
func (h *SummaryHandler) Generate(c echo.Context) error {
	var req summaryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	result, err := h.service.Summarize(c.Request().Context(), service.SummaryRequest{
		From:              req.From,
		To:                req.To,
		Users:             req.Users,
		IncludeTeamThemes: req.IncludeTeamThemes,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}
