package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/groomshop/grooming-scheduler/internal/audit"
	"github.com/groomshop/grooming-scheduler/internal/catalog"
	"github.com/groomshop/grooming-scheduler/internal/clock"
	"github.com/groomshop/grooming-scheduler/internal/config"
	domain "github.com/groomshop/grooming-scheduler/internal/domain/appointment"
	"github.com/groomshop/grooming-scheduler/internal/handlers"
	infraRepo "github.com/groomshop/grooming-scheduler/internal/infra/repository"
	"github.com/groomshop/grooming-scheduler/internal/middleware"
	"github.com/groomshop/grooming-scheduler/internal/pricing"
	ucAppointment "github.com/groomshop/grooming-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	var cat catalog.Catalog = catalog.NewGormCatalog(db)
	if cfg.RedisURL != "" {
		if opts, err := redis.ParseURL(cfg.RedisURL); err == nil {
			cat = catalog.NewCachedCatalog(cat, redis.NewClient(opts))
		}
	}

	oracle := pricing.NewPostgresOracle(db)
	policy := domain.NewPolicy()
	clk := clock.UTC{}

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	createUC := ucAppointment.NewCreate(appointmentRepo, cat, oracle, clk, auditDispatcher)
	getUC := ucAppointment.NewGet(appointmentRepo)
	getDetailUC := ucAppointment.NewGetDetail(appointmentRepo)
	listUC := ucAppointment.NewList(appointmentRepo)
	updateUC := ucAppointment.NewUpdate(appointmentRepo, cat, oracle, policy, clk, auditDispatcher)
	deleteUC := ucAppointment.NewDelete(appointmentRepo, policy, clk, auditDispatcher)
	setStatusUC := ucAppointment.NewSetStatus(appointmentRepo, policy, clk, auditDispatcher)
	permissionsUC := ucAppointment.NewPermissions(appointmentRepo, policy, clk)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	serviceTypeHandler := handlers.NewServiceTypeHandler(cat)

	appointmentHandler := handlers.NewAppointmentHandler(
		createUC,
		getUC,
		getDetailUC,
		listUC,
		updateUC,
		deleteUC,
		setStatusUC,
		permissionsUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// CATALOG
		// ------------------------------
		api.GET("/appointment-types", serviceTypeHandler.List)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.List)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.GET("/appointments/:id/details", appointmentHandler.GetDetails)
			secured.GET("/appointments/:id/permissions", appointmentHandler.Permissions)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)
			secured.PATCH("/appointments/:id/status", appointmentHandler.SetStatus)
		}
	}
}
