package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"webmusic-backend/internal/domains/history/model"
	"webmusic-backend/internal/domains/history/service"
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

// Record handles POST /api/history
func (h *Handler) Record(c *gin.Context) {
	var req model.CreateHistoryRequest
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

	entry, err := h.service.Record(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidReference) {
			response.BadRequest(c, err.Error())
			return
		}
		logger.Error("Failed to record play history", err)
		response.Internal(c)
		return
	}

	response.Success(c, http.StatusCreated, "Play recorded", entry)
}

// RecentByUser handles GET /api/users/:id/history
func (h *Handler) RecentByUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			limit = v
		}
	}

	entries, err := h.service.RecentByUser(c.Request.Context(), userID, limit)
	if err != nil {
		logger.Error("Failed to get play history", err)
		response.Internal(c)
		return
	}

	response.Success(c, http.StatusOK, "Play history retrieved successfully", entries)
}
