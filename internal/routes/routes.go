package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hartmannbarbearia/booking-api/internal/audit"
	"github.com/hartmannbarbearia/booking-api/internal/cache"
	"github.com/hartmannbarbearia/booking-api/internal/config"
	domain "github.com/hartmannbarbearia/booking-api/internal/domain/schedule"
	"github.com/hartmannbarbearia/booking-api/internal/handlers"
	infraRepo "github.com/hartmannbarbearia/booking-api/internal/infra/repository"
	"github.com/hartmannbarbearia/booking-api/internal/middleware"
	"github.com/hartmannbarbearia/booking-api/internal/models"
	"github.com/hartmannbarbearia/booking-api/internal/notifications"
	"github.com/hartmannbarbearia/booking-api/internal/storage"
	"github.com/hartmannbarbearia/booking-api/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	c cache.Cache,
	mailer notifications.Mailer,
	uploader *storage.Uploader,
) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	policy := domain.ConflictInterval
	if cfg.ConflictPolicy == string(domain.ConflictExactStart) {
		policy = domain.ConflictExactStart
	}

	// ======================================================
	// 🧠 USE CASES — BOOKING
	// ======================================================
	availabilityUC := booking.NewGetAvailability(appointmentRepo, policy)

	createAppointmentUC := booking.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
		mailer,
		c,
	)

	cancelAppointmentUC := booking.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
		c,
	)

	confirmAppointmentUC := booking.NewConfirmAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	rescheduleAppointmentUC := booking.NewRescheduleAppointment(
		appointmentRepo,
		auditDispatcher,
		c,
	)

	listMineUC := booking.NewListClientAppointments(appointmentRepo)
	listByDateUC := booking.NewListAppointmentsByDate(appointmentRepo)
	listByMonthUC := booking.NewListAppointmentsByMonth(appointmentRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db, uploader)

	serviceHandler := handlers.NewServiceHandler(db, c)
	clientHandler := handlers.NewClientHandler(db)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db, c)
	settingsHandler := handlers.NewSettingsHandler(db, c, uploader)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		createAppointmentUC,
		cancelAppointmentUC,
		confirmAppointmentUC,
		rescheduleAppointmentUC,
		listMineUC,
		listByDateUC,
		listByMonthUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(db, c, availabilityUC)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/shop", publicHandler.ShopInfo)
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/professionals", publicHandler.ListProfessionals)
			publicAPI.GET("/availability", publicHandler.Availability)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA (qualquer usuário logado)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)
			secured.POST("/me/avatar", meHandler.UploadAvatar)

			// ------------------------------
			// APPOINTMENTS (cliente)
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments/mine", appointmentHandler.Mine)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/appointments/:id/reschedule", appointmentHandler.Reschedule)

			// ------------------------------
			// EQUIPE (barbeiro ou admin)
			// ------------------------------
			staff := secured.Group("/staff")
			staff.Use(middleware.RequireRole(models.RoleBarber, models.RoleAdmin))
			{
				staff.GET("/appointments", appointmentHandler.ListByDate)
				staff.GET("/appointments/month", appointmentHandler.ListByMonth)
				staff.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)

				staff.GET("/clients", clientHandler.List)
			}

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("/services", serviceHandler.List)
				admin.POST("/services", serviceHandler.Create)
				admin.PATCH("/services/:id", serviceHandler.Update)

				admin.GET("/working-hours", workingHoursHandler.Get)
				admin.PUT("/working-hours", workingHoursHandler.Update)

				admin.GET("/settings", settingsHandler.Get)
				admin.PATCH("/settings", settingsHandler.Update)
				admin.POST("/settings/logo", settingsHandler.UploadLogo)

				admin.PATCH("/users/:id/role", clientHandler.ChangeRole)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
