package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portal/backend/internal/model"
	"portal/backend/internal/service"
)

type ServerHandler struct {
	service service.ServerService
}

type serverRequest struct {
	Hostname    string  `json:"hostname"`
	IPAddress   string  `json:"ipAddress"`
	OS          string  `json:"os"`
	Status      string  `json:"status"`
	Environment string  `json:"environment"`
	Role        string  `json:"role"`
	Location    string  `json:"location"`
	Folder      *string `json:"folder"`
}

type serverResponse struct {
	ID          string  `json:"id"`
	Hostname    string  `json:"hostname"`
	IPAddress   string  `json:"ipAddress"`
	OS          string  `json:"os"`
	Status      string  `json:"status"`
	Environment string  `json:"environment"`
	Role        string  `json:"role"`
	Location    string  `json:"location"`
	Folder      *string `json:"folder,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

func NewServerHandler(service service.ServerService) *ServerHandler {
	return &ServerHandler{service: service}
}

func (h *ServerHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/servers", h.List)
	g.POST("/servers", h.Create)
	g.GET("/servers/:id", h.Get)
	g.PUT("/servers/:id", h.Update)
	g.DELETE("/servers/:id", h.Delete)
}

// List returns servers, optionally filtered by keyword.
// @Summary List servers
// @Tags servers
// @Produce json
// @Param q query string false "Keyword matched across hostname, ip, os, status, environment, role, location, folder"
// @Success 200 {array} serverResponse
// @Router /servers [get]
func (h *ServerHandler) List(c echo.Context) error {
	servers, err := h.service.List(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return writeServiceError(c, err)
	}
	response := make([]serverResponse, 0, len(servers))
	for _, srv := range servers {
		response = append(response, toServerResponse(srv))
	}
	return c.JSON(http.StatusOK, response)
}

// Get returns one server.
// @Summary Get a server
// @Tags servers
// @Produce json
// @Param id path int true "Server ID"
// @Success 200 {object} serverResponse
// @Failure 404 {object} errorResponse
// @Router /servers/{id} [get]
func (h *ServerHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid server ID"})
	}
	srv, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toServerResponse(srv))
}

// Create creates a new server.
// @Summary Create a server
// @Tags servers
// @Accept json
// @Produce json
// @Param server body serverRequest true "Server creation request"
// @Success 201 {object} serverResponse
// @Failure 400 {object} errorResponse
// @Router /servers [post]
func (h *ServerHandler) Create(c echo.Context) error {
	var req serverRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	srv, err := h.service.Create(c.Request().Context(), toServerModel(req))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toServerResponse(srv))
}

// Update updates an existing server.
// @Summary Update a server
// @Tags servers
// @Accept json
// @Produce json
// @Param id path int true "Server ID"
// @Param server body serverRequest true "Server update request"
// @Success 200 {object} serverResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /servers/{id} [put]
func (h *ServerHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid server ID"})
	}
	var req serverRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	srv := toServerModel(req)
	srv.ID = id
	updated, err := h.service.Update(c.Request().Context(), srv)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toServerResponse(updated))
}

// Delete deletes a server.
// @Summary Delete a server
// @Tags servers
// @Param id path int true "Server ID"
// @Success 204 "No Content"
// @Failure 404 {object} errorResponse
// @Router /servers/{id} [delete]
func (h *ServerHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid server ID"})
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func toServerModel(req serverRequest) model.Server {
	return model.Server{
		Hostname:    req.Hostname,
		IPAddress:   req.IPAddress,
		OS:          req.OS,
		Status:      req.Status,
		Environment: req.Environment,
		Role:        req.Role,
		Location:    req.Location,
		Folder:      req.Folder,
	}
}

func toServerResponse(srv model.Server) serverResponse {
	return serverResponse{
		ID:          idToString(srv.ID),
		Hostname:    srv.Hostname,
		IPAddress:   srv.IPAddress,
		OS:          srv.OS,
		Status:      srv.Status,
		Environment: srv.Environment,
		Role:        srv.Role,
		Location:    srv.Location,
		Folder:      srv.Folder,
		CreatedAt:   formatTimestamp(srv.CreatedAt),
		UpdatedAt:   formatTimestamp(srv.UpdatedAt),
	}
}
