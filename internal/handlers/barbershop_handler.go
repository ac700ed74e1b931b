package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-api/internal/ids"
	infraRepo "github.com/BruksfildServices01/barbershop-api/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type BarbershopHandler struct {
	store *infraRepo.EntityStore[models.Barbershop]
	users *infraRepo.EntityStore[models.User]
}

func NewBarbershopHandler(
	store *infraRepo.EntityStore[models.Barbershop],
	users *infraRepo.EntityStore[models.User],
) *BarbershopHandler {
	return &BarbershopHandler{
		store: store,
		users: users,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBarbershopRequest struct {
	OwnerUserID  string              `json:"owner_user_id" binding:"required"`
	Name         string              `json:"name" binding:"required"`
	Address      string              `json:"address" binding:"required"`
	Phone        string              `json:"phone" binding:"required"`
	Description  string              `json:"description"`
	WorkingHours models.WorkingHours `json:"working_hours"`
	Location     *models.Location    `json:"location"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BarbershopHandler) Create(c *gin.Context) {
	var req CreateBarbershopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid barbershop payload.")
		return
	}

	owner, err := h.users.GetByID(c.Request.Context(), req.OwnerUserID)
	if err != nil {
		writeError(c, err)
		return
	}
	if owner.Role != models.RoleAdmin && owner.Role != models.RoleBarber {
		httperr.BadRequest(c, "invalid_owner_role", "Shop owner must be an admin or barber.")
		return
	}

	shop := models.Barbershop{
		ID:           ids.NewBarbershop(),
		OwnerUserID:  owner.ID,
		Name:         req.Name,
		Address:      req.Address,
		Phone:        req.Phone,
		Description:  req.Description,
		Photos:       models.StringList{},
		WorkingHours: req.WorkingHours,
		Location:     req.Location,
	}

	if err := h.store.Create(c.Request.Context(), &shop); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(201, shop)
}

// ======================================================
// GET / LIST / UPDATE
// ======================================================

func (h *BarbershopHandler) Get(c *gin.Context) {
	shop, err := h.store.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(200, shop)
}

func (h *BarbershopHandler) List(c *gin.Context) {
	shops, err := h.store.List(c.Request.Context(), nil, limitParam(c, 100))
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, shops)
}

// Update applies a shallow field merge; nested objects such as
// working_hours are replaced whole, never merged key by key.
func (h *BarbershopHandler) Update(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid update payload.")
		return
	}
	stripImmutable(fields, "shop_id", "owner_user_id")

	shop, err := h.store.UpdatePartial(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, shop)
}
