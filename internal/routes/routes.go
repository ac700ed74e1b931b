package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-api/internal/audit"
	"github.com/BruksfildServices01/barbershop-api/internal/cache"
	"github.com/BruksfildServices01/barbershop-api/internal/clock"
	"github.com/BruksfildServices01/barbershop-api/internal/config"
	"github.com/BruksfildServices01/barbershop-api/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barbershop-api/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-api/internal/middleware"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
	ucAppointment "github.com/BruksfildServices01/barbershop-api/internal/usecase/appointment"
	ucHistory "github.com/BruksfildServices01/barbershop-api/internal/usecase/clienthistory"
	ucDashboard "github.com/BruksfildServices01/barbershop-api/internal/usecase/dashboard"
	ucPushToken "github.com/BruksfildServices01/barbershop-api/internal/usecase/pushtoken"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log *zap.Logger,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	clk := clock.System()

	userStore := infraRepo.NewEntityStore[models.User](db, "user")
	shopStore := infraRepo.NewEntityStore[models.Barbershop](db, "barbershop")
	barberStore := infraRepo.NewEntityStore[models.Barber](db, "barber")
	serviceStore := infraRepo.NewEntityStore[models.Service](db, "service")

	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	dashboardRepo := infraRepo.NewDashboardGormRepository(db)
	pushTokenRepo := infraRepo.NewPushTokenGormRepository(db)
	historyRepo := infraRepo.NewClientHistoryGormRepository(db)

	statsCache := cache.NewStatsCache(rdb, cfg.StatsCacheTTL, log)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(appointmentRepo, clk, auditDispatcher)
	transitionAppointmentUC := ucAppointment.NewTransitionAppointment(appointmentRepo, clk, auditDispatcher)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(appointmentRepo, clk, auditDispatcher)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(appointmentRepo, auditDispatcher)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)

	getStatsUC := ucDashboard.NewGetStats(dashboardRepo, statsCache, clk)

	registerTokenUC := ucPushToken.NewRegister(pushTokenRepo)
	listTokensUC := ucPushToken.NewListForUser(pushTokenRepo)

	recordHistoryUC := ucHistory.NewRecord(appointmentRepo, historyRepo)
	listHistoryUC := ucHistory.NewListForClient(historyRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	userHandler := handlers.NewUserHandler(userStore, log)
	barbershopHandler := handlers.NewBarbershopHandler(shopStore, userStore)
	barberHandler := handlers.NewBarberHandler(barberStore, shopStore, userStore)
	serviceHandler := handlers.NewServiceHandler(serviceStore, shopStore)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		transitionAppointmentUC,
		cancelAppointmentUC,
		deleteAppointmentUC,
		listAppointmentsUC,
		appointmentRepo,
	)

	dashboardHandler := handlers.NewDashboardHandler(getStatsUC)
	pushTokenHandler := handlers.NewPushTokenHandler(registerTokenUC, listTokensUC)
	historyHandler := handlers.NewClientHistoryHandler(recordHistoryUC, listHistoryUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// USERS
		// ------------------------------
		api.POST("/users", userHandler.Create)
		api.GET("/users", userHandler.List)
		api.GET("/users/:id", userHandler.Get)

		// ------------------------------
		// BARBERSHOPS
		// ------------------------------
		api.POST("/barbershops", barbershopHandler.Create)
		api.GET("/barbershops", barbershopHandler.List)
		api.GET("/barbershops/:id", barbershopHandler.Get)
		api.PATCH("/barbershops/:id", barbershopHandler.Update)

		// ------------------------------
		// BARBERS
		// ------------------------------
		api.POST("/barbers", barberHandler.Create)
		api.GET("/barbers", barberHandler.List)
		api.GET("/barbers/:id", barberHandler.Get)
		api.PATCH("/barbers/:id", barberHandler.Update)

		// ------------------------------
		// SERVICES
		// ------------------------------
		api.POST("/services", serviceHandler.Create)
		api.GET("/services", serviceHandler.List)
		api.GET("/services/:id", serviceHandler.Get)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.POST("/appointments", appointmentHandler.Create)
		api.GET("/appointments", appointmentHandler.List)
		api.GET("/appointments/:id", appointmentHandler.Get)
		api.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
		api.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
		api.DELETE("/appointments/:id", appointmentHandler.Delete)

		// ------------------------------
		// CLIENT HISTORY
		// ------------------------------
		api.POST("/history", historyHandler.Create)
		api.GET("/clients/:client_id/history", historyHandler.ListForClient)

		// ------------------------------
		// PUSH TOKENS
		// ------------------------------
		api.POST("/notifications/register-token", pushTokenHandler.Register)
		api.GET("/users/:id/push-tokens", pushTokenHandler.ListForUser)

		// ------------------------------
		// DASHBOARD
		// ------------------------------
		api.GET("/dashboard/stats", dashboardHandler.Stats)
	}
}
