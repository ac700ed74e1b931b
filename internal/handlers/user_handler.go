package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
	"github.com/BruksfildServices01/barbershop-api/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-api/internal/ids"
	infraRepo "github.com/BruksfildServices01/barbershop-api/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	"github.com/BruksfildServices01/barbershop-api/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type UserHandler struct {
	store *infraRepo.EntityStore[models.User]
	log   *zap.Logger
}

func NewUserHandler(store *infraRepo.EntityStore[models.User], log *zap.Logger) *UserHandler {
	return &UserHandler{
		store: store,
		log:   log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateUserRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name" binding:"required"`
	Role  string `json:"role"`
	Phone string `json:"phone"`
}

// ======================================================
// CREATE
// ======================================================

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid user payload.")
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleClient
	}
	if !models.IsValidRole(role) {
		httperr.BadRequest(c, "invalid_role", "Role must be client, barber or admin.")
		return
	}

	// Email uniqueness is advisory only; the domain check just flags
	// addresses that cannot possibly receive mail.
	if !validators.IsEmailDomainValid(req.Email) {
		h.log.Warn("user email domain does not resolve",
			zap.String("email", req.Email),
		)
	}

	user := models.User{
		ID:    ids.NewUser(),
		Email: req.Email,
		Name:  req.Name,
		Role:  role,
		Phone: req.Phone,
	}

	if err := h.store.Create(c.Request.Context(), &user); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(201, user)
}

// ======================================================
// GET / LIST
// ======================================================

func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.store.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(200, user)
}

func (h *UserHandler) List(c *gin.Context) {
	conds := map[string]any{}
	if role := c.Query("role"); role != "" {
		conds["role"] = role
	}
	if email := c.Query("email"); email != "" {
		conds["email"] = email
	}

	users, err := h.store.List(c.Request.Context(), conds, limitParam(c, 100))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, users)
}
