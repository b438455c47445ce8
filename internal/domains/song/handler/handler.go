package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"webmusic-backend/internal/domains/song/model"
	"webmusic-backend/internal/domains/song/service"
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

// List handles GET /api/songs
func (h *Handler) List(c *gin.Context) {
	page, pageSize := query.Normalize(
		parseIntQuery(c, "page", query.DefaultPage),
		parseIntQuery(c, "pageSize", query.DefaultPageSize),
	)

	filter := model.SongFilter{
		UserID:        parseInt64Query(c, "userId"),
		GenreID:       parseInt64Query(c, "genreId"),
		AlbumID:       parseInt64Query(c, "albumId"),
		ArtistID:      parseInt64Query(c, "artistId"),
		SearchTerm:    c.Query("searchTerm"),
		SortBy:        c.Query("sortBy"),
		SortDirection: c.DefaultQuery("sortDirection", "desc"),
		Page:          page,
		PageSize:      pageSize,
	}

	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		logger.Error("Failed to list songs", err)
		response.Internal(c)
		return
	}

	response.Success(c, http.StatusOK, "Songs retrieved successfully", result)
}

// GetByID handles GET /api/songs/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid song ID")
		return
	}

	song, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrSongNotFound) {
			response.NotFound(c, "Song not found")
			return
		}
		logger.Error("Failed to get song", err)
		response.Internal(c)
		return
	}

	response.Success(c, http.StatusOK, "Song retrieved successfully", song)
}

// GetPopular handles GET /api/songs/popular
func (h *Handler) GetPopular(c *gin.Context) {
	songs, err := h.service.GetPopular(c.Request.Context(), parseIntQuery(c, "limit", 10))
	if err != nil {
		logger.Error("Failed to get popular songs", err)
		response.Internal(c)
		return
	}

	response.Success(c, http.StatusOK, "Popular songs retrieved successfully", songs)
}

// GetRecent handles GET /api/songs/recent
func (h *Handler) GetRecent(c *gin.Context) {
	songs, err := h.service.GetRecent(c.Request.Context(), parseIntQuery(c, "limit", 10))
	if err != nil {
		logger.Error("Failed to get recent songs", err)
		response.Internal(c)
		return
	}

	response.Success(c, http.StatusOK, "Recent songs retrieved successfully", songs)
}

// Create handles POST /api/songs
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateSongRequest
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

	song, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidReference) {
			response.BadRequest(c, err.Error())
			return
		}
		logger.Error("Failed to create song", err)
		response.Internal(c)
		return
	}

	response.Success(c, http.StatusCreated, "Song created successfully", song)
}

// Update handles PUT /api/songs/:id
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid song ID")
		return
	}

	var req model.UpdateSongRequest
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

	song, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrSongNotFound):
			response.NotFound(c, "Song not found")
		case errors.Is(err, model.ErrInvalidReference):
			response.BadRequest(c, err.Error())
		default:
			logger.Error("Failed to update song", err)
			response.Internal(c)
		}
		return
	}

	response.Success(c, http.StatusOK, "Song updated successfully", song)
}

// Approve handles POST /api/songs/:id/approve
func (h *Handler) Approve(c *gin.Context) {
	h.moderate(c, h.service.Approve, "Song approved successfully")
}

// Reject handles POST /api/songs/:id/reject
func (h *Handler) Reject(c *gin.Context) {
	h.moderate(c, h.service.Reject, "Song rejected successfully")
}

func (h *Handler) moderate(c *gin.Context, action func(context.Context, int64) error, message string) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid song ID")
		return
	}

	if err := action(c.Request.Context(), id); err != nil {
		if errors.Is(err, model.ErrSongNotFound) {
			response.NotFound(c, "Song not found")
			return
		}
		logger.Error("Failed to change song status", err)
		response.Internal(c)
		return
	}

	response.Success(c, http.StatusOK, message, nil)
}

// Delete handles DELETE /api/songs/:id
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid song ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, model.ErrSongNotFound) {
			response.NotFound(c, "Song not found")
			return
		}
		logger.Error("Failed to delete song", err)
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
