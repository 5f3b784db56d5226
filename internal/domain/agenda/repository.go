package agenda

import (
	"context"
	"time"

	"github.com/VoltarSoftware/salon-agenda/internal/models"
)

type Repository interface {
	// -------- Salon --------
	GetSalonByID(
		ctx context.Context,
		id uint,
	) (*models.Salon, error)

	GetSalonBySlug(
		ctx context.Context,
		slug string,
	) (*models.Salon, error)

	// -------- AgendaConfig --------
	GetAgendaConfig(
		ctx context.Context,
		professionalID uint,
	) (*models.AgendaConfig, error)

	SaveAgendaConfig(
		ctx context.Context,
		cfg *models.AgendaConfig,
	) error

	// -------- Holiday --------
	ListHolidays(
		ctx context.Context,
		professionalID uint,
	) ([]models.Holiday, error)

	HasHoliday(
		ctx context.Context,
		professionalID uint,
		date string,
	) (bool, error)

	CreateHoliday(
		ctx context.Context,
		h *models.Holiday,
	) error

	// -------- Service / Room --------
	GetService(
		ctx context.Context,
		salonID uint,
		serviceID uint,
	) (*models.Service, error)

	GetRoom(
		ctx context.Context,
		salonID uint,
		roomID uint,
	) (*models.Room, error)

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		salonID uint,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointmentForProfessional(
		ctx context.Context,
		appointmentID uint,
		professionalID uint,
	) (*models.Appointment, error)

	ListAppointmentsForDay(
		ctx context.Context,
		professionalID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointments(
		ctx context.Context,
		salonID uint,
		filter QueryFilter,
	) ([]models.Appointment, error)
}
