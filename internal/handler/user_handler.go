package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portal/backend/internal/model"
	"portal/backend/internal/service"
)

type UserHandler struct {
	service service.UserService
}

type userRequest struct {
	Badge     int64   `json:"badge"`
	Email     *string `json:"email"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Position  *string `json:"position"`
	ReadOnly  bool    `json:"readOnly"`
}

type userResponse struct {
	Badge               int64   `json:"badge"`
	Email               *string `json:"email,omitempty"`
	FirstName           string  `json:"firstName"`
	LastName            string  `json:"lastName"`
	Position            *string `json:"position,omitempty"`
	ReadOnly            bool    `json:"readOnly"`
	AccomplishmentCount *int    `json:"accomplishmentCount,omitempty"`
	CreatedAt           string  `json:"createdAt"`
	UpdatedAt           string  `json:"updatedAt"`
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/users", h.List)
	g.POST("/users", h.Create)
	g.GET("/users/:badge", h.Get)
	g.PUT("/users/:badge", h.Update)
	g.DELETE("/users/:badge", h.Delete)
}

// List returns all users with accomplishment counts.
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} userResponse
// @Router /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	response := make([]userResponse, 0, len(users))
	for _, u := range users {
		r := toUserResponse(u.User)
		count := u.AccomplishmentCount
		r.AccomplishmentCount = &count
		response = append(response, r)
	}
	return c.JSON(http.StatusOK, response)
}

// Get returns one user by badge.
// @Summary Get a user
// @Tags users
// @Produce json
// @Param badge path int true "Badge number"
// @Success 200 {object} userResponse
// @Failure 404 {object} errorResponse
// @Router /users/{badge} [get]
func (h *UserHandler) Get(c echo.Context) error {
	badge, err := parseIDParam(c, "badge")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid badge"})
	}
	user, err := h.service.Get(c.Request().Context(), badge)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Create creates a new user.
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param user body userRequest true "User creation request"
// @Success 201 {object} userResponse
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	user, err := h.service.Create(c.Request().Context(), toUserModel(req))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// Update updates an existing user.
// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Param badge path int true "Badge number"
// @Param user body userRequest true "User update request"
// @Success 200 {object} userResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /users/{badge} [put]
func (h *UserHandler) Update(c echo.Context) error {
	badge, err := parseIDParam(c, "badge")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid badge"})
	}
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	user := toUserModel(req)
	user.Badge = badge
	updated, err := h.service.Update(c.Request().Context(), user)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toUserResponse(updated))
}

// Delete deletes a user.
// @Summary Delete a user
// @Tags users
// @Param badge path int true "Badge number"
// @Success 204 "No Content"
// @Failure 404 {object} errorResponse
// @Router /users/{badge} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	badge, err := parseIDParam(c, "badge")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid badge"})
	}
	if err := h.service.Delete(c.Request().Context(), badge); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func toUserModel(req userRequest) model.User {
	return model.User{
		Badge:     req.Badge,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Position:  req.Position,
		ReadOnly:  req.ReadOnly,
	}
}

func toUserResponse(u model.User) userResponse {
	return userResponse{
		Badge:     u.Badge,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Position:  u.Position,
		ReadOnly:  u.ReadOnly,
		CreatedAt: formatTimestamp(u.CreatedAt),
		UpdatedAt: formatTimestamp(u.UpdatedAt),
	}
}
