package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VoltarSoftware/salon-agenda/internal/agendaview"
	"github.com/VoltarSoftware/salon-agenda/internal/audit"
	"github.com/VoltarSoftware/salon-agenda/internal/cache"
	"github.com/VoltarSoftware/salon-agenda/internal/config"
	"github.com/VoltarSoftware/salon-agenda/internal/handlers"
	infraRepo "github.com/VoltarSoftware/salon-agenda/internal/infra/repository"
	"github.com/VoltarSoftware/salon-agenda/internal/middleware"
	ucAgenda "github.com/VoltarSoftware/salon-agenda/internal/usecase/agenda"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	slotCache *cache.AvailabilityCache,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	agendaRepo := infraRepo.NewAgendaGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — AGENDA
	// ======================================================
	getAvailabilityUC := ucAgenda.NewGetAvailability(agendaRepo, slotCache)

	createAppointmentUC := ucAgenda.NewCreateAppointment(
		agendaRepo,
		slotCache,
		auditDispatcher,
	)

	updateAppointmentUC := ucAgenda.NewUpdateAppointment(
		agendaRepo,
		slotCache,
		auditDispatcher,
	)

	transitionAppointmentUC := ucAgenda.NewTransitionAppointment(
		agendaRepo,
		slotCache,
		auditDispatcher,
	)

	deleteAppointmentUC := ucAgenda.NewDeleteAppointment(
		agendaRepo,
		slotCache,
		auditDispatcher,
	)

	listAppointmentsUC := ucAgenda.NewListAppointments(agendaRepo)
	listCalendarEventsUC := ucAgenda.NewListCalendarEvents(agendaRepo)

	getAgendaConfigUC := ucAgenda.NewGetAgendaConfig(agendaRepo)
	updateAgendaConfigUC := ucAgenda.NewUpdateAgendaConfig(agendaRepo, auditDispatcher)

	listHolidaysUC := ucAgenda.NewListHolidays(agendaRepo)
	createHolidayUC := ucAgenda.NewCreateHoliday(agendaRepo, slotCache, auditDispatcher)

	// um Store por profissional: dedupe de janela + "última carga vence"
	viewRegistry := agendaview.NewRegistry(agendaRepo.ListAppointments)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	salonHandler := handlers.NewSalonHandler(db)

	serviceHandler := handlers.NewServiceHandler(db)
	roomHandler := handlers.NewRoomHandler(db)
	clientHandler := handlers.NewClientHandler(db)

	agendaConfigHandler := handlers.NewAgendaConfigHandler(
		getAgendaConfigUC,
		updateAgendaConfigUC,
	)
	holidayHandler := handlers.NewHolidayHandler(listHolidaysUC, createHolidayUC)
	availabilityHandler := handlers.NewAvailabilityHandler(db, getAvailabilityUC)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		transitionAppointmentUC,
		deleteAppointmentUC,
		listAppointmentsUC,
		listCalendarEventsUC,
	)

	agendaViewHandler := handlers.NewAgendaViewHandler(viewRegistry)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(
		db,
		getAvailabilityUC,
		createAppointmentUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug/services", publicHandler.ListServices)
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
			publicAPI.POST("/:slug/appointments", publicHandler.CreateAppointment)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/salon", salonHandler.GetMeSalon)
			secured.PATCH("/me/salon", salonHandler.UpdateMeSalon)

			secured.GET("/me/clients", clientHandler.List)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)

			secured.GET("/me/rooms", roomHandler.List)
			secured.POST("/me/rooms", roomHandler.Create)

			secured.GET("/me/agenda-config", agendaConfigHandler.Get)
			secured.PUT("/me/agenda-config", agendaConfigHandler.Update)

			secured.GET("/me/holidays", holidayHandler.List)
			secured.POST("/me/holidays", holidayHandler.Create)
			secured.DELETE("/me/holidays/:id", holidayHandler.Delete)

			secured.GET("/me/availability", availabilityHandler.Get)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.List)
			secured.GET("/me/appointments/calendar", appointmentHandler.CalendarEvents)
			secured.PATCH("/me/appointments/:id", appointmentHandler.Update)
			secured.PATCH("/me/appointments/:id/status", appointmentHandler.Transition)
			secured.DELETE("/me/appointments/:id", appointmentHandler.Delete)

			secured.GET("/me/agenda/view", agendaViewHandler.Get)
			secured.DELETE("/me/agenda/view", agendaViewHandler.Clear)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
