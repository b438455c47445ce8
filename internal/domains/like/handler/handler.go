package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"webmusic-backend/internal/domains/like/model"
	"webmusic-backend/internal/domains/like/service"
	"webmusic-backend/internal/shared/query"
	"webmusic-backend/internal/shared/response"
	"webmusic-backend/pkg/logger"
)

type Handler struct {
	service service.Service
}

func NewHandler(service service.Service) *Handler {
	return &Handler{service: service}
}

// Like handles PUT /api/songs/:id/like for the authenticated user.
func (h *Handler) Like(c *gin.Context) {
	songID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid song ID")
		return
	}

	userID := c.GetInt64("userID")
	if userID == 0 {
		response.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.service.Like(c.Request.Context(), userID, songID); err != nil {
		switch {
		case errors.Is(err, model.ErrAlreadyLiked), errors.Is(err, model.ErrInvalidReference):
			response.BadRequest(c, err.Error())
		default:
			logger.Error("Failed to like song", err)
			response.Internal(c)
		}
		return
	}

	response.Success(c, http.StatusOK, "Song liked", nil)
}

// Unlike handles DELETE /api/songs/:id/like.
func (h *Handler) Unlike(c *gin.Context) {
	songID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid song ID")
		return
	}

	userID := c.GetInt64("userID")
	if userID == 0 {
		response.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.service.Unlike(c.Request.Context(), userID, songID); err != nil {
		if errors.Is(err, model.ErrLikeNotFound) {
			response.NotFound(c, "Like not found")
			return
		}
		logger.Error("Failed to unlike song", err)
		response.Internal(c)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListByUser handles GET /api/users/:id/likes
func (h *Handler) ListByUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	page, pageSize := query.Normalize(
		parseIntQuery(c, "page", query.DefaultPage),
		parseIntQuery(c, "pageSize", query.DefaultPageSize),
	)

	result, err := h.service.ListByUser(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		logger.Error("Failed to list liked songs", err)
		response.Internal(c)
		return
	}

	response.Success(c, http.StatusOK, "Liked songs retrieved successfully", result)
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
