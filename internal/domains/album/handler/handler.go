package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"webmusic-backend/internal/domains/album/model"
	"webmusic-backend/internal/domains/album/service"
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

// List handles GET /api/albums
func (h *Handler) List(c *gin.Context) {
	page, pageSize := query.Normalize(
		parseIntQuery(c, "page", query.DefaultPage),
		parseIntQuery(c, "pageSize", query.DefaultPageSize),
	)

	filter := model.AlbumFilter{
		UserID:        parseInt64Query(c, "userId"),
		ArtistID:      parseInt64Query(c, "artistId"),
		SearchTerm:    c.Query("searchTerm"),
		SortBy:        c.Query("sortBy"),
		SortDirection: c.DefaultQuery("sortDirection", "desc"),
		Page:          page,
		PageSize:      pageSize,
	}

	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		logger.Error("Failed to list albums", err)
		response.Internal(c)
		return
	}

	response.Success(c, http.StatusOK, "Albums retrieved successfully", result)
}

// GetByID handles GET /api/albums/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid album ID")
		return
	}

	album, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrAlbumNotFound) {
			response.NotFound(c, "Album not found")
			return
		}
		logger.Error("Failed to get album", err)
		response.Internal(c)
		return
	}

	response.Success(c, http.StatusOK, "Album retrieved successfully", album)
}

// Create handles POST /api/albums
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateAlbumRequest
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

	album, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidReference) {
			response.BadRequest(c, err.Error())
			return
		}
		logger.Error("Failed to create album", err)
		response.Internal(c)
		return
	}

	response.Success(c, http.StatusCreated, "Album created successfully", album)
}

// Update handles PUT /api/albums/:id
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid album ID")
		return
	}

	var req model.UpdateAlbumRequest
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

	album, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrAlbumNotFound):
			response.NotFound(c, "Album not found")
		case errors.Is(err, model.ErrInvalidReference):
			response.BadRequest(c, err.Error())
		default:
			logger.Error("Failed to update album", err)
			response.Internal(c)
		}
		return
	}

	response.Success(c, http.StatusOK, "Album updated successfully", album)
}

// Delete handles DELETE /api/albums/:id
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid album ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, model.ErrAlbumNotFound) {
			response.NotFound(c, "Album not found")
			return
		}
		logger.Error("Failed to delete album", err)
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

func parseInt64Query(c *gin.Context, name string) int64 {
	raw := c.Query(name)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
