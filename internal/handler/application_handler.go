package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"portal/backend/internal/model"
	"portal/backend/internal/service"
)

type ApplicationHandler struct {
	service service.ApplicationService
}

type applicationRequest struct {
	OwnerBadge     *int64  `json:"ownerBadge"`
	AppName        string  `json:"appName"`
	AppDescription *string `json:"appDescription"`
	Status         *string `json:"status"`
	DevServerID    *string `json:"devServerId"`
	ProdServerID   *string `json:"prodServerId"`
	DevDomain      *string `json:"devDomain"`
	LastUpdatedBy  *string `json:"lastUpdatedBy"`
}

type applicationResponse struct {
	ID                 string  `json:"id"`
	OwnerBadge         *int64  `json:"ownerBadge,omitempty"`
	OwnerName          *string `json:"ownerName,omitempty"`
	AppName            string  `json:"appName"`
	AppDescription     *string `json:"appDescription,omitempty"`
	Status             *string `json:"status,omitempty"`
	DevServerID        *string `json:"devServerId,omitempty"`
	DevServerHostname  *string `json:"devServerHostname,omitempty"`
	ProdServerID       *string `json:"prodServerId,omitempty"`
	ProdServerHostname *string `json:"prodServerHostname,omitempty"`
	DevDomain          *string `json:"devDomain,omitempty"`
	LastUpdatedBy      *string `json:"lastUpdatedBy,omitempty"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
}

func NewApplicationHandler(service service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

func (h *ApplicationHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/applications", h.List)
	g.POST("/applications", h.Create)
	g.GET("/applications/:id", h.Get)
	g.PUT("/applications/:id", h.Update)
	g.DELETE("/applications/:id", h.Delete)
}

// List returns applications joined with owner and server display fields.
// @Summary List applications
// @Tags applications
// @Produce json
// @Success 200 {array} applicationResponse
// @Router /applications [get]
func (h *ApplicationHandler) List(c echo.Context) error {
	apps, err := h.service.List(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	response := make([]applicationResponse, 0, len(apps))
	for _, app := range apps {
		r := toApplicationResponse(app.Application)
		r.OwnerName = app.OwnerName
		r.DevServerHostname = app.DevServerHostname
		r.ProdServerHostname = app.ProdServerHostname
		response = append(response, r)
	}
	return c.JSON(http.StatusOK, response)
}

// Get returns one application.
// @Summary Get an application
// @Tags applications
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} applicationResponse
// @Failure 404 {object} errorResponse
// @Router /applications/{id} [get]
func (h *ApplicationHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid application ID"})
	}
	app, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toApplicationResponse(app))
}

// Create creates a new application.
// @Summary Create an application
// @Tags applications
// @Accept json
// @Produce json
// @Param application body applicationRequest true "Application creation request"
// @Success 201 {object} applicationResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /applications [post]
func (h *ApplicationHandler) Create(c echo.Context) error {
	var req applicationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	app, ok := toApplicationModel(req)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid server ID"})
	}
	created, err := h.service.Create(c.Request().Context(), app)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toApplicationResponse(created))
}

// Update updates an existing application.
// @Summary Update an application
// @Tags applications
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param application body applicationRequest true "Application update request"
// @Success 200 {object} applicationResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /applications/{id} [put]
func (h *ApplicationHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid application ID"})
	}
	var req applicationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	app, ok := toApplicationModel(req)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid server ID"})
	}
	app.ID = id
	updated, err := h.service.Update(c.Request().Context(), app)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toApplicationResponse(updated))
}

// Delete deletes an application.
// @Summary Delete an application
// @Tags applications
// @Param id path int true "Application ID"
// @Success 204 "No Content"
// @Failure 404 {object} errorResponse
// @Router /applications/{id} [delete]
func (h *ApplicationHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid application ID"})
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func toApplicationModel(req applicationRequest) (model.Application, bool) {
	app := model.Application{
		OwnerBadge:     req.OwnerBadge,
		AppName:        req.AppName,
		AppDescription: req.AppDescription,
		Status:         req.Status,
		DevDomain:      req.DevDomain,
		LastUpdatedBy:  req.LastUpdatedBy,
	}
	for _, pair := range []struct {
		src *string
		dst **int64
	}{
		{req.DevServerID, &app.DevServerID},
		{req.ProdServerID, &app.ProdServerID},
	} {
		if pair.src == nil {
			continue
		}
		id, err := strconv.ParseInt(*pair.src, 10, 64)
		if err != nil {
			return model.Application{}, false
		}
		*pair.dst = &id
	}
	return app, true
}

func toApplicationResponse(app model.Application) applicationResponse {
	return applicationResponse{
		ID:             idToString(app.ID),
		OwnerBadge:     app.OwnerBadge,
		AppName:        app.AppName,
		AppDescription: app.AppDescription,
		Status:         app.Status,
		DevServerID:    idPtrToString(app.DevServerID),
		ProdServerID:   idPtrToString(app.ProdServerID),
		DevDomain:      app.DevDomain,
		LastUpdatedBy:  app.LastUpdatedBy,
		CreatedAt:      formatTimestamp(app.CreatedAt),
		UpdatedAt:      formatTimestamp(app.UpdatedAt),
	}
}
