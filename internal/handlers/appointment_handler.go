package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/httpresp"
	usecase "github.com/BruksfildServices01/barbershop-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create     *usecase.CreateAppointment
	transition *usecase.TransitionAppointment
	cancel     *usecase.CancelAppointment
	remove     *usecase.DeleteAppointment
	list       *usecase.ListAppointments
	repo       domain.Repository
}

func NewAppointmentHandler(
	create *usecase.CreateAppointment,
	transition *usecase.TransitionAppointment,
	cancel *usecase.CancelAppointment,
	remove *usecase.DeleteAppointment,
	list *usecase.ListAppointments,
	repo domain.Repository,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:     create,
		transition: transition,
		cancel:     cancel,
		remove:     remove,
		list:       list,
		repo:       repo,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ShopID        string    `json:"shop_id" binding:"required"`
	BarberID      string    `json:"barber_id" binding:"required"`
	ClientUserID  string    `json:"client_user_id" binding:"required"`
	ServiceID     string    `json:"service_id" binding:"required"`
	ScheduledTime time.Time `json:"scheduled_time" binding:"required"`
	Notes         string    `json:"notes"`
}

type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid appointment payload.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), usecase.CreateInput{
		ShopID:        req.ShopID,
		BarberID:      req.BarberID,
		ClientUserID:  req.ClientUserID,
		ServiceID:     req.ServiceID,
		ScheduledTime: req.ScheduledTime,
		Notes:         req.Notes,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(201, ap)
}

// ======================================================
// GET / LIST
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	ap, err := h.repo.GetAppointment(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(200, ap)
}

func (h *AppointmentHandler) List(c *gin.Context) {
	filter := domain.ListFilter{
		ShopID:       c.Query("shop_id"),
		BarberID:     c.Query("barber_id"),
		ClientUserID: c.Query("client_user_id"),
		Status:       c.Query("status"),
		Limit:        limitParam(c, 0),
	}

	appts, err := h.list.Execute(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, appts)
}

// ======================================================
// STATUS / CANCEL / DELETE
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status payload is required.")
		return
	}

	ap, err := h.transition.Execute(c.Request.Context(), c.Param("id"), domain.Status(req.Status))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	ap, err := h.cancel.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(200, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	if err := h.remove.Execute(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(200, gin.H{"message": "Appointment deleted successfully"})
}
