package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/usecase/pushtoken"
)

type PushTokenHandler struct {
	register *pushtoken.Register
	list     *pushtoken.ListForUser
}

func NewPushTokenHandler(
	register *pushtoken.Register,
	list *pushtoken.ListForUser,
) *PushTokenHandler {
	return &PushTokenHandler{
		register: register,
		list:     list,
	}
}

type RegisterTokenRequest struct {
	UserID     string         `json:"user_id" binding:"required"`
	Token      string         `json:"token" binding:"required"`
	Platform   string         `json:"platform" binding:"required"`
	DeviceInfo models.JSONMap `json:"device_info"`
}

// Register is idempotent; re-sending the same (user, token) pair on
// app launch is the expected client behavior.
func (h *PushTokenHandler) Register(c *gin.Context) {
	var req RegisterTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid token payload.")
		return
	}

	result, err := h.register.Execute(c.Request.Context(), pushtoken.RegisterInput{
		UserID:     req.UserID,
		Token:      req.Token,
		Platform:   req.Platform,
		DeviceInfo: req.DeviceInfo,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	status := 201
	if result == pushtoken.AlreadyRegistered {
		status = 200
	}
	c.JSON(status, gin.H{"status": string(result)})
}

func (h *PushTokenHandler) ListForUser(c *gin.Context) {
	tokens, err := h.list.Execute(c.Request.Context(), c.Param("id"), limitParam(c, 100))
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, tokens)
}
