package handlers

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barbershop-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-api/internal/ids"
	infraRepo "github.com/BruksfildServices01/barbershop-api/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type BarberHandler struct {
	store *infraRepo.EntityStore[models.Barber]
	shops *infraRepo.EntityStore[models.Barbershop]
	users *infraRepo.EntityStore[models.User]
}

func NewBarberHandler(
	store *infraRepo.EntityStore[models.Barber],
	shops *infraRepo.EntityStore[models.Barbershop],
	users *infraRepo.EntityStore[models.User],
) *BarberHandler {
	return &BarberHandler{
		store: store,
		shops: shops,
		users: users,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBarberRequest struct {
	ShopID       string              `json:"shop_id" binding:"required"`
	UserID       string              `json:"user_id" binding:"required"`
	Bio          string              `json:"bio"`
	Specialties  models.StringList   `json:"specialties"`
	Availability models.Availability `json:"availability"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid barber payload.")
		return
	}

	if _, err := h.shops.GetByID(c.Request.Context(), req.ShopID); err != nil {
		writeError(c, err)
		return
	}
	if _, err := h.users.GetByID(c.Request.Context(), req.UserID); err != nil {
		writeError(c, err)
		return
	}

	if err := domain.ValidateAvailability(req.Availability); err != nil {
		httperr.BadRequest(c, "invalid_availability", "Availability ranges must be ordered and non-overlapping.")
		return
	}

	barber := models.Barber{
		ID:           ids.NewBarber(),
		ShopID:       req.ShopID,
		UserID:       req.UserID,
		Bio:          req.Bio,
		Specialties:  req.Specialties,
		Portfolio:    models.StringList{},
		Availability: req.Availability,
		Status:       models.BarberAvailable,
	}

	if err := h.store.Create(c.Request.Context(), &barber); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(201, barber)
}

// ======================================================
// GET / LIST / UPDATE
// ======================================================

func (h *BarberHandler) Get(c *gin.Context) {
	barber, err := h.store.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(200, barber)
}

func (h *BarberHandler) List(c *gin.Context) {
	conds := map[string]any{}
	if shopID := c.Query("shop_id"); shopID != "" {
		conds["shop_id"] = shopID
	}

	barbers, err := h.store.List(c.Request.Context(), conds, limitParam(c, 100))
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, barbers)
}

func (h *BarberHandler) Update(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid update payload.")
		return
	}
	stripImmutable(fields, "barber_id", "shop_id", "user_id")

	if raw, ok := fields["availability"]; ok {
		av, err := decodeAvailability(raw)
		if err != nil || domain.ValidateAvailability(av) != nil {
			httperr.BadRequest(c, "invalid_availability", "Availability ranges must be ordered and non-overlapping.")
			return
		}
	}

	if raw, ok := fields["status"]; ok {
		status, _ := raw.(string)
		if !models.IsValidBarberStatus(status) {
			httperr.BadRequest(c, "invalid_status", "Barber status must be available, busy or unavailable.")
			return
		}
	}

	if raw, ok := fields["rating"]; ok {
		rating, _ := raw.(float64)
		if rating < 0 || rating > 5 {
			httperr.BadRequest(c, "invalid_rating", "Rating must be between 0 and 5.")
			return
		}
	}

	barber, err := h.store.UpdatePartial(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, barber)
}

func decodeAvailability(raw any) (models.Availability, error) {
	b, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	var av models.Availability
	if err := json.Unmarshal(b, &av); err != nil {
		return nil, err
	}
	return av, nil
}
