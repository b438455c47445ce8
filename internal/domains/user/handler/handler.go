package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"webmusic-backend/internal/domains/user/model"
	"webmusic-backend/internal/domains/user/service"
	"webmusic-backend/internal/shared/query"
	"webmusic-backend/internal/shared/response"
	"webmusic-backend/internal/shared/validation"
	"webmusic-backend/pkg/logger"
)

type Handler struct {
	service service.Service
}

func NewHandler(service service.Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /api/users
func (h *Handler) List(c *gin.Context) {
	page, pageSize := query.Normalize(
		parseIntQuery(c, "page", query.DefaultPage),
		parseIntQuery(c, "pageSize", query.DefaultPageSize),
	)

	filter := model.UserFilter{
		SearchTerm:    c.Query("searchTerm"),
		SortBy:        c.Query("sortBy"),
		SortDirection: c.DefaultQuery("sortDirection", "asc"),
		Page:          page,
		PageSize:      pageSize,
	}

	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		logger.Error("Failed to list users", err)
		response.Internal(c)
		return
	}

	response.Success(c, http.StatusOK, "Users retrieved successfully", result)
}

// GetByID handles GET /api/users/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	user, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		logger.Error("Failed to get user", err)
		response.Internal(c)
		return
	}

	response.Success(c, http.StatusOK, "User retrieved successfully", user)
}

// Create handles POST /api/users
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		if validation.Respond(c, req, err) {
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrEmailTaken) || errors.Is(err, model.ErrUsernameTaken) {
			response.BadRequest(c, err.Error())
			return
		}
		logger.Error("Failed to create user", err)
		response.Internal(c)
		return
	}

	response.Success(c, http.StatusCreated, "User created successfully", user)
}

// Update handles PUT /api/users/:id
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	var req model.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		if validation.Respond(c, req, err) {
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrUserNotFound):
			response.NotFound(c, "User not found")
		case errors.Is(err, model.ErrEmailTaken), errors.Is(err, model.ErrUsernameTaken):
			response.BadRequest(c, err.Error())
		default:
			logger.Error("Failed to update user", err)
			response.Internal(c)
		}
		return
	}

	response.Success(c, http.StatusOK, "User updated successfully", user)
}

// Delete handles DELETE /api/users/:id
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, model.ErrUserNotFound):
			response.NotFound(c, "User not found")
		case errors.Is(err, model.ErrUserHasContent):
			response.BadRequest(c, err.Error())
		default:
			logger.Error("Failed to delete user", err)
			response.Internal(c)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// CheckEmail handles POST /api/users/check-email
func (h *Handler) CheckEmail(c *gin.Context) {
	var req model.CheckEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		if validation.Respond(c, req, err) {
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	exists, err := h.service.CheckEmail(c.Request.Context(), req.Email)
	if err != nil {
		logger.Error("Failed to check email", err)
		response.Internal(c)
		return
	}

	response.Success(c, http.StatusOK, "Email availability checked", model.ExistsResponse{Exists: exists})
}

// CheckUsername handles POST /api/users/check-username
func (h *Handler) CheckUsername(c *gin.Context) {
	var req model.CheckUsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		if validation.Respond(c, req, err) {
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	exists, err := h.service.CheckUsername(c.Request.Context(), req.Username)
	if err != nil {
		logger.Error("Failed to check username", err)
		response.Internal(c)
		return
	}

	response.Success(c, http.StatusOK, "Username availability checked", model.ExistsResponse{Exists: exists})
}

func parseIntQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
