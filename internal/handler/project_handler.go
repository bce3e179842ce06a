package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portal/backend/internal/model"
	"portal/backend/internal/service"
)

type ProjectHandler struct {
	service service.ProjectService
}

type projectRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	GithubURL   *string `json:"githubUrl"`
}

type projectResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	GithubURL   *string `json:"githubUrl,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

func NewProjectHandler(service service.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

func (h *ProjectHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/projects", h.List)
	g.POST("/projects", h.Create)
	g.GET("/projects/:id", h.Get)
	g.PUT("/projects/:id", h.Update)
	g.DELETE("/projects/:id", h.Delete)
}

// List returns all projects.
// @Summary List projects
// @Tags projects
// @Produce json
// @Success 200 {array} projectResponse
// @Router /projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.service.List(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	response := make([]projectResponse, 0, len(projects))
	for _, p := range projects {
		response = append(response, toProjectResponse(p))
	}
	return c.JSON(http.StatusOK, response)
}

// Get returns one project.
// @Summary Get a project
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} projectResponse
// @Failure 404 {object} errorResponse
// @Router /projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid project ID"})
	}
	p, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toProjectResponse(p))
}

// Create creates a new project.
// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Param project body projectRequest true "Project creation request"
// @Success 201 {object} projectResponse
// @Failure 400 {object} errorResponse
// @Router /projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	p, err := h.service.Create(c.Request().Context(), toProjectModel(req))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toProjectResponse(p))
}

// Update updates an existing project.
// @Summary Update a project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param project body projectRequest true "Project update request"
// @Success 200 {object} projectResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid project ID"})
	}
	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	p := toProjectModel(req)
	p.ID = id
	updated, err := h.service.Update(c.Request().Context(), p)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toProjectResponse(updated))
}

// Delete deletes a project.
// @Summary Delete a project
// @Tags projects
// @Param id path int true "Project ID"
// @Success 204 "No Content"
// @Failure 404 {object} errorResponse
// @Router /projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid project ID"})
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func toProjectModel(req projectRequest) model.Project {
	return model.Project{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		GithubURL:   req.GithubURL,
	}
}

func toProjectResponse(p model.Project) projectResponse {
	return projectResponse{
		ID:          idToString(p.ID),
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status,
		GithubURL:   p.GithubURL,
		CreatedAt:   formatTimestamp(p.CreatedAt),
		UpdatedAt:   formatTimestamp(p.UpdatedAt),
	}
}
