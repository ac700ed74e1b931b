package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-api/internal/ids"
	infraRepo "github.com/BruksfildServices01/barbershop-api/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

type ServiceHandler struct {
	store *infraRepo.EntityStore[models.Service]
	shops *infraRepo.EntityStore[models.Barbershop]
}

func NewServiceHandler(
	store *infraRepo.EntityStore[models.Service],
	shops *infraRepo.EntityStore[models.Barbershop],
) *ServiceHandler {
	return &ServiceHandler{
		store: store,
		shops: shops,
	}
}

type CreateServiceRequest struct {
	ShopID      string  `json:"shop_id" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration" binding:"required"`
	Image       string  `json:"image"`
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid service payload.")
		return
	}

	if req.Duration <= 0 {
		httperr.BadRequest(c, "invalid_duration", "Duration must be a positive number of minutes.")
		return
	}
	if req.Price < 0 {
		httperr.BadRequest(c, "invalid_price", "Price cannot be negative.")
		return
	}

	if _, err := h.shops.GetByID(c.Request.Context(), req.ShopID); err != nil {
		writeError(c, err)
		return
	}

	service := models.Service{
		ID:          ids.NewService(),
		ShopID:      req.ShopID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		DurationMin: req.Duration,
		Image:       req.Image,
	}

	if err := h.store.Create(c.Request.Context(), &service); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(201, service)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	service, err := h.store.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(200, service)
}

func (h *ServiceHandler) List(c *gin.Context) {
	conds := map[string]any{}
	if shopID := c.Query("shop_id"); shopID != "" {
		conds["shop_id"] = shopID
	}

	services, err := h.store.List(c.Request.Context(), conds, limitParam(c, 100))
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, services)
}
