package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"webmusic-backend/internal/domains/follow/model"
	"webmusic-backend/internal/domains/follow/service"
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

// Follow handles PUT /api/users/:id/follow for the authenticated user.
func (h *Handler) Follow(c *gin.Context) {
	followingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	followerID := c.GetInt64("userID")
	if followerID == 0 {
		response.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.service.Follow(c.Request.Context(), followerID, followingID); err != nil {
		switch {
		case errors.Is(err, model.ErrSelfFollow),
			errors.Is(err, model.ErrAlreadyFollowing),
			errors.Is(err, model.ErrInvalidReference):
			response.BadRequest(c, err.Error())
		default:
			logger.Error("Failed to follow user", err)
			response.Internal(c)
		}
		return
	}

	response.Success(c, http.StatusOK, "User followed", nil)
}

// Unfollow handles DELETE /api/users/:id/follow.
func (h *Handler) Unfollow(c *gin.Context) {
	followingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	followerID := c.GetInt64("userID")
	if followerID == 0 {
		response.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.service.Unfollow(c.Request.Context(), followerID, followingID); err != nil {
		if errors.Is(err, model.ErrFollowNotFound) {
			response.NotFound(c, "Follow not found")
			return
		}
		logger.Error("Failed to unfollow user", err)
		response.Internal(c)
		return
	}

	c.Status(http.StatusNoContent)
}

// Followers handles GET /api/users/:id/followers
func (h *Handler) Followers(c *gin.Context) {
	h.listUsers(c, h.service.Followers, "Followers retrieved successfully")
}

// Following handles GET /api/users/:id/following
func (h *Handler) Following(c *gin.Context) {
	h.listUsers(c, h.service.Following, "Following retrieved successfully")
}

func (h *Handler) listUsers(c *gin.Context, fetch func(ctx context.Context, userID int64, page, pageSize int) (*model.FollowUserListResponse, error), message string) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	page, pageSize := query.Normalize(
		parseIntQuery(c, "page", query.DefaultPage),
		parseIntQuery(c, "pageSize", query.DefaultPageSize),
	)

	result, err := fetch(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		logger.Error("Failed to list follows", err)
		response.Internal(c)
		return
	}

	response.Success(c, http.StatusOK, message, result)
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
