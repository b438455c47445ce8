package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"webmusic-backend/internal/domains/user/model"
	"webmusic-backend/internal/shared/response"
	"webmusic-backend/internal/shared/validation"
	"webmusic-backend/pkg/logger"
)

// Register handles POST /api/auth/register
func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterRequest
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

	user, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrEmailTaken) || errors.Is(err, model.ErrUsernameTaken) {
			response.BadRequest(c, err.Error())
			return
		}
		logger.Error("Failed to register user", err)
		response.Internal(c)
		return
	}

	response.Success(c, http.StatusCreated, "Registration successful", user)
}

// Login handles POST /api/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
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

	result, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidCredentials):
			response.Unauthorized(c, err.Error())
		case errors.Is(err, model.ErrAccountInactive):
			response.Forbidden(c, err.Error())
		default:
			logger.Error("Failed to log in", err)
			response.Internal(c)
		}
		return
	}

	response.Success(c, http.StatusOK, "Login successful", result)
}

// Me handles GET /api/users/me for the authenticated account.
func (h *Handler) Me(c *gin.Context) {
	userID := c.GetInt64("userID")
	if userID == 0 {
		response.Unauthorized(c, "Authentication required")
		return
	}

	user, err := h.service.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		logger.Error("Failed to get current user", err)
		response.Internal(c)
		return
	}

	response.Success(c, http.StatusOK, "User retrieved successfully", user)
}
