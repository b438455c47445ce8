package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"webmusic-backend/internal/domains/artist/model"
	"webmusic-backend/internal/domains/artist/service"
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

// List handles GET /api/artists
func (h *Handler) List(c *gin.Context) {
	page, pageSize := query.Normalize(
		parseIntQuery(c, "page", query.DefaultPage),
		parseIntQuery(c, "pageSize", query.DefaultPageSize),
	)

	filter := model.ArtistFilter{
		SearchTerm: c.Query("searchTerm"),
		Page:       page,
		PageSize:   pageSize,
	}

	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		logger.Error("Failed to list artists", err)
		response.Internal(c)
		return
	}

	response.Success(c, http.StatusOK, "Artists retrieved successfully", result)
}

// GetByID handles GET /api/artists/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid artist ID")
		return
	}

	artist, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrArtistNotFound) {
			response.NotFound(c, "Artist not found")
			return
		}
		logger.Error("Failed to get artist", err)
		response.Internal(c)
		return
	}

	response.Success(c, http.StatusOK, "Artist retrieved successfully", artist)
}

// Create handles POST /api/artists
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateArtistRequest
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

	artist, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrArtistNameTaken) {
			response.BadRequest(c, err.Error())
			return
		}
		logger.Error("Failed to create artist", err)
		response.Internal(c)
		return
	}

	response.Success(c, http.StatusCreated, "Artist created successfully", artist)
}

// Update handles PUT /api/artists/:id
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid artist ID")
		return
	}

	var req model.UpdateArtistRequest
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

	artist, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrArtistNotFound):
			response.NotFound(c, "Artist not found")
		case errors.Is(err, model.ErrArtistNameTaken):
			response.BadRequest(c, err.Error())
		default:
			logger.Error("Failed to update artist", err)
			response.Internal(c)
		}
		return
	}

	response.Success(c, http.StatusOK, "Artist updated successfully", artist)
}

// Delete handles DELETE /api/artists/:id
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid artist ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, model.ErrArtistNotFound) {
			response.NotFound(c, "Artist not found")
			return
		}
		logger.Error("Failed to delete artist", err)
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
