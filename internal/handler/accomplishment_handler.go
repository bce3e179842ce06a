package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"portal/backend/internal/model"
	"portal/backend/internal/service"
)

type AccomplishmentHandler struct {
	service service.AccomplishmentService
}

type accomplishmentRequest struct {
	UserBadge       int64   `json:"userBadge"`
	StartWeekDate   string  `json:"startWeekDate"`
	EndWeekDate     string  `json:"endWeekDate"`
	Accomplishments string  `json:"accomplishments"`
	ApplicationID   *string `json:"applicationId"`
	DateSubmitted   *string `json:"dateSubmitted"`
	TaskStatus      *string `json:"taskStatus"`
}

type accomplishmentResponse struct {
	ID              string  `json:"id"`
	UserBadge       int64   `json:"userBadge"`
	ApplicationID   *string `json:"applicationId,omitempty"`
	Accomplishments string  `json:"accomplishments"`
	StartWeekDate   string  `json:"startWeekDate"`
	EndWeekDate     string  `json:"endWeekDate"`
	DateSubmitted   string  `json:"dateSubmitted"`
	TaskStatus      string  `json:"taskStatus"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

func NewAccomplishmentHandler(service service.AccomplishmentService) *AccomplishmentHandler {
	return &AccomplishmentHandler{service: service}
}

func (h *AccomplishmentHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/accomplishments", h.Reconcile)
	g.GET("/accomplishments", h.List)
	g.GET("/accomplishments/:id", h.Get)
	g.PUT("/accomplishments/:id", h.Update)
	g.DELETE("/accomplishments/:id", h.Delete)
}

// Reconcile submits a weekly accomplishment. A resubmission for the
// same user and week updates the existing record in place.
// @Summary Submit a weekly accomplishment
// @Description Creates the record for (userBadge, startWeekDate, endWeekDate) or updates it when it already exists
// @Tags accomplishments
// @Accept json
// @Produce json
// @Param accomplishment body accomplishmentRequest true "Weekly submission"
// @Success 200 {object} accomplishmentResponse "Existing record updated"
// @Success 201 {object} accomplishmentResponse "New record created"
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /accomplishments [post]
func (h *AccomplishmentHandler) Reconcile(c echo.Context) error {
	var req accomplishmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	in, ok := toReconcileInput(req)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid application ID"})
	}

	saved, created, err := h.service.Reconcile(c.Request().Context(), in)
	if err != nil {
		return writeServiceError(c, err)
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return c.JSON(status, toAccomplishmentResponse(saved))
}

// List returns accomplishments filtered by badge or by week.
// @Summary List accomplishments
// @Tags accomplishments
// @Produce json
// @Param badge query int false "Filter by user badge"
// @Param weekStart query string false "Filter by week start date (YYYY-MM-DD, requires weekEnd)"
// @Param weekEnd query string false "Filter by week end date (YYYY-MM-DD, requires weekStart)"
// @Success 200 {array} accomplishmentResponse
// @Failure 400 {object} errorResponse
// @Router /accomplishments [get]
func (h *AccomplishmentHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	if badgeStr := c.QueryParam("badge"); badgeStr != "" {
		badge, err := strconv.ParseInt(badgeStr, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid badge"})
		}
		records, err := h.service.ListByUser(ctx, badge)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(http.StatusOK, toAccomplishmentResponses(records))
	}

	weekStart, weekEnd := c.QueryParam("weekStart"), c.QueryParam("weekEnd")
	if weekStart == "" || weekEnd == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "badge or weekStart/weekEnd required"})
	}
	records, err := h.service.ListByWeek(ctx, weekStart, weekEnd)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toAccomplishmentResponses(records))
}

// Get returns one accomplishment.
// @Summary Get an accomplishment
// @Tags accomplishments
// @Produce json
// @Param id path int true "Accomplishment ID"
// @Success 200 {object} accomplishmentResponse
// @Failure 404 {object} errorResponse
// @Router /accomplishments/{id} [get]
func (h *AccomplishmentHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid accomplishment ID"})
	}
	rec, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toAccomplishmentResponse(rec))
}

// Update edits an accomplishment by ID. Week dates are immutable.
// @Summary Update an accomplishment
// @Tags accomplishments
// @Accept json
// @Produce json
// @Param id path int true "Accomplishment ID"
// @Param accomplishment body accomplishmentRequest true "Fields to update"
// @Success 200 {object} accomplishmentResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /accomplishments/{id} [put]
func (h *AccomplishmentHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid accomplishment ID"})
	}
	var req accomplishmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	in, ok := toReconcileInput(req)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid application ID"})
	}
	updated, err := h.service.Update(c.Request().Context(), id, in)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toAccomplishmentResponse(updated))
}

// Delete deletes an accomplishment.
// @Summary Delete an accomplishment
// @Tags accomplishments
// @Param id path int true "Accomplishment ID"
// @Success 204 "No Content"
// @Failure 404 {object} errorResponse
// @Router /accomplishments/{id} [delete]
func (h *AccomplishmentHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid accomplishment ID"})
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func toReconcileInput(req accomplishmentRequest) (service.ReconcileInput, bool) {
	in := service.ReconcileInput{
		UserBadge:       req.UserBadge,
		StartWeekDate:   req.StartWeekDate,
		EndWeekDate:     req.EndWeekDate,
		Accomplishments: req.Accomplishments,
		DateSubmitted:   req.DateSubmitted,
		TaskStatus:      req.TaskStatus,
	}
	if req.ApplicationID != nil {
		id, err := strconv.ParseInt(*req.ApplicationID, 10, 64)
		if err != nil {
			return service.ReconcileInput{}, false
		}
		in.ApplicationID = &id
	}
	return in, true
}

func toAccomplishmentResponses(records []model.Accomplishment) []accomplishmentResponse {
	response := make([]accomplishmentResponse, 0, len(records))
	for _, rec := range records {
		response = append(response, toAccomplishmentResponse(rec))
	}
	return response
}

func toAccomplishmentResponse(a model.Accomplishment) accomplishmentResponse {
	return accomplishmentResponse{
		ID:              idToString(a.ID),
		UserBadge:       a.UserBadge,
		ApplicationID:   idPtrToString(a.ApplicationID),
		Accomplishments: a.Accomplishments,
		StartWeekDate:   a.StartWeekDate,
		EndWeekDate:     a.EndWeekDate,
		DateSubmitted:   a.DateSubmitted,
		TaskStatus:      a.TaskStatus,
		CreatedAt:       formatTimestamp(a.CreatedAt),
		UpdatedAt:       formatTimestamp(a.UpdatedAt),
	}
}
