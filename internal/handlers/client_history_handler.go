package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/usecase/clienthistory"
)

type ClientHistoryHandler struct {
	record *clienthistory.Record
	list   *clienthistory.ListForClient
}

func NewClientHistoryHandler(
	record *clienthistory.Record,
	list *clienthistory.ListForClient,
) *ClientHistoryHandler {
	return &ClientHistoryHandler{
		record: record,
		list:   list,
	}
}

type RecordHistoryRequest struct {
	ClientUserID  string            `json:"client_user_id" binding:"required"`
	BarberID      string            `json:"barber_id" binding:"required"`
	AppointmentID string            `json:"appointment_id" binding:"required"`
	Photos        models.StringList `json:"photos"`
	Preferences   models.JSONMap    `json:"preferences"`
	Notes         string            `json:"notes"`
}

func (h *ClientHistoryHandler) Create(c *gin.Context) {
	var req RecordHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid history payload.")
		return
	}

	entry, err := h.record.Execute(c.Request.Context(), clienthistory.RecordInput{
		ClientUserID:  req.ClientUserID,
		BarberID:      req.BarberID,
		AppointmentID: req.AppointmentID,
		Photos:        req.Photos,
		Preferences:   req.Preferences,
		Notes:         req.Notes,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(201, entry)
}

func (h *ClientHistoryHandler) ListForClient(c *gin.Context) {
	entries, err := h.list.Execute(c.Request.Context(), c.Param("client_id"), limitParam(c, 50))
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, entries)
}
