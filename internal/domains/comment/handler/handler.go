package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"webmusic-backend/internal/domains/comment/model"
	"webmusic-backend/internal/domains/comment/service"
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

// ListBySong handles GET /api/songs/:id/comments
func (h *Handler) ListBySong(c *gin.Context) {
	songID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid song ID")
		return
	}

	page, pageSize := query.Normalize(
		parseIntQuery(c, "page", query.DefaultPage),
		parseIntQuery(c, "pageSize", query.DefaultPageSize),
	)

	result, err := h.service.ListBySong(c.Request.Context(), songID, page, pageSize)
	if err != nil {
		logger.Error("Failed to list comments", err)
		response.Internal(c)
		return
	}

	response.Success(c, http.StatusOK, "Comments retrieved successfully", result)
}

// Create handles POST /api/comments
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateCommentRequest
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

	comment, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidReference) {
			response.BadRequest(c, err.Error())
			return
		}
		logger.Error("Failed to create comment", err)
		response.Internal(c)
		return
	}

	response.Success(c, http.StatusCreated, "Comment created successfully", comment)
}

// Update handles PUT /api/comments/:id
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid comment ID")
		return
	}

	var req model.UpdateCommentRequest
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

	comment, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, model.ErrCommentNotFound) {
			response.NotFound(c, "Comment not found")
			return
		}
		logger.Error("Failed to update comment", err)
		response.Internal(c)
		return
	}

	response.Success(c, http.StatusOK, "Comment updated successfully", comment)
}

// Delete handles DELETE /api/comments/:id
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid comment ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, model.ErrCommentNotFound) {
			response.NotFound(c, "Comment not found")
			return
		}
		logger.Error("Failed to delete comment", err)
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
