package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"webmusic-backend/internal/domains/playlist/model"
	"webmusic-backend/internal/domains/playlist/service"
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

// List handles GET /api/playlists
func (h *Handler) List(c *gin.Context) {
	page, pageSize := query.Normalize(
		parseIntQuery(c, "page", query.DefaultPage),
		parseIntQuery(c, "pageSize", query.DefaultPageSize),
	)

	filter := model.PlaylistFilter{
		UserID:        parseInt64Query(c, "userId"),
		IsPublic:      parseBoolQuery(c, "isPublic"),
		SearchTerm:    c.Query("searchTerm"),
		SortBy:        c.Query("sortBy"),
		SortDirection: c.DefaultQuery("sortDirection", "desc"),
		Page:          page,
		PageSize:      pageSize,
	}

	result, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		logger.Error("Failed to list playlists", err)
		response.Internal(c)
		return
	}

	response.Success(c, http.StatusOK, "Playlists retrieved successfully", result)
}

// GetByID handles GET /api/playlists/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid playlist ID")
		return
	}

	playlist, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrPlaylistNotFound) {
			response.NotFound(c, "Playlist not found")
			return
		}
		logger.Error("Failed to get playlist", err)
		response.Internal(c)
		return
	}

	response.Success(c, http.StatusOK, "Playlist retrieved successfully", playlist)
}

// Create handles POST /api/playlists
func (h *Handler) Create(c *gin.Context) {
	var req model.CreatePlaylistRequest
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

	playlist, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidReference) {
			response.BadRequest(c, err.Error())
			return
		}
		logger.Error("Failed to create playlist", err)
		response.Internal(c)
		return
	}

	response.Success(c, http.StatusCreated, "Playlist created successfully", playlist)
}

// Update handles PUT /api/playlists/:id
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid playlist ID")
		return
	}

	var req model.UpdatePlaylistRequest
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

	playlist, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, model.ErrPlaylistNotFound) {
			response.NotFound(c, "Playlist not found")
			return
		}
		logger.Error("Failed to update playlist", err)
		response.Internal(c)
		return
	}

	response.Success(c, http.StatusOK, "Playlist updated successfully", playlist)
}

// Delete handles DELETE /api/playlists/:id
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid playlist ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, model.ErrPlaylistNotFound) {
			response.NotFound(c, "Playlist not found")
			return
		}
		logger.Error("Failed to delete playlist", err)
		response.Internal(c)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddSong handles POST /api/playlists/:id/songs
func (h *Handler) AddSong(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid playlist ID")
		return
	}

	var req model.AddSongRequest
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

	if err := h.service.AddSong(c.Request.Context(), id, req.SongID); err != nil {
		switch {
		case errors.Is(err, model.ErrPlaylistNotFound):
			response.NotFound(c, "Playlist not found")
		case errors.Is(err, model.ErrSongAlreadyInPlaylist), errors.Is(err, model.ErrInvalidReference):
			response.BadRequest(c, err.Error())
		default:
			logger.Error("Failed to add song to playlist", err)
			response.Internal(c)
		}
		return
	}

	response.Success(c, http.StatusCreated, "Song added to playlist", nil)
}

// RemoveSong handles DELETE /api/playlists/:id/songs/:songId
func (h *Handler) RemoveSong(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid playlist ID")
		return
	}

	songID, err := strconv.ParseInt(c.Param("songId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid song ID")
		return
	}

	if err := h.service.RemoveSong(c.Request.Context(), id, songID); err != nil {
		switch {
		case errors.Is(err, model.ErrPlaylistNotFound):
			response.NotFound(c, "Playlist not found")
		case errors.Is(err, model.ErrSongNotInPlaylist):
			response.NotFound(c, err.Error())
		default:
			logger.Error("Failed to remove song from playlist", err)
			response.Internal(c)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// GetSongs handles GET /api/playlists/:id/songs
func (h *Handler) GetSongs(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid playlist ID")
		return
	}

	songs, err := h.service.GetSongs(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrPlaylistNotFound) {
			response.NotFound(c, "Playlist not found")
			return
		}
		logger.Error("Failed to get playlist songs", err)
		response.Internal(c)
		return
	}

	response.Success(c, http.StatusOK, "Playlist songs retrieved successfully", songs)
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

func parseBoolQuery(c *gin.Context, name string) *bool {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}
