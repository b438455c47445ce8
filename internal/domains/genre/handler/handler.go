package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"webmusic-backend/internal/domains/genre/model"
	"webmusic-backend/internal/domains/genre/service"
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

// List handles GET /api/genres
func (h *Handler) List(c *gin.Context) {
	page, pageSize := query.Normalize(
		parseIntQuery(c, "page", query.DefaultPage),
		parseIntQuery(c, "pageSize", query.DefaultPageSize),
	)

	filter := model.GenreFilter{
		SearchTerm: c.Query("searchTerm"),
		Page:       page,
		PageSize:   pageSize,
	}

	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		logger.Error("Failed to list genres", err)
		response.Internal(c)
		return
	}

	response.Success(c, http.StatusOK, "Genres retrieved successfully", result)
}

// GetByID handles GET /api/genres/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid genre ID")
		return
	}

	genre, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrGenreNotFound) {
			response.NotFound(c, "Genre not found")
			return
		}
		logger.Error("Failed to get genre", err)
		response.Internal(c)
		return
	}

	response.Success(c, http.StatusOK, "Genre retrieved successfully", genre)
}

// Create handles POST /api/genres
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateGenreRequest
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

	genre, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrGenreNameTaken) {
			response.BadRequest(c, err.Error())
			return
		}
		logger.Error("Failed to create genre", err)
		response.Internal(c)
		return
	}

	response.Success(c, http.StatusCreated, "Genre created successfully", genre)
}

// Update handles PUT /api/genres/:id
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid genre ID")
		return
	}

	var req model.UpdateGenreRequest
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

	genre, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrGenreNotFound):
			response.NotFound(c, "Genre not found")
		case errors.Is(err, model.ErrGenreNameTaken):
			response.BadRequest(c, err.Error())
		default:
			logger.Error("Failed to update genre", err)
			response.Internal(c)
		}
		return
	}

	response.Success(c, http.StatusOK, "Genre updated successfully", genre)
}

// Delete handles DELETE /api/genres/:id
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid genre ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, model.ErrGenreNotFound) {
			response.NotFound(c, "Genre not found")
			return
		}
		logger.Error("Failed to delete genre", err)
		response.Internal(c)
		return
	}

	c.Status(http.StatusNoContent)
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
