package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/VoltarSoftware/salon-agenda/internal/domain/agenda"
	"github.com/VoltarSoftware/salon-agenda/internal/models"
)

type AgendaGormRepository struct {
	db *gorm.DB
}

func NewAgendaGormRepository(db *gorm.DB) *AgendaGormRepository {
	return &AgendaGormRepository{db: db}
}

// status terminais não ocupam horário na agenda
var activeStatuses = []string{
	string(domain.StatusPending),
	string(domain.StatusConfirmed),
	string(domain.StatusCheckedIn),
	string(domain.StatusInProgress),
	string(domain.StatusRescheduled),
}

// --------------------------------------------------
// Salon
// --------------------------------------------------

func (r *AgendaGormRepository) GetSalonByID(
	ctx context.Context,
	id uint,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).First(&salon, id).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

func (r *AgendaGormRepository) GetSalonBySlug(
	ctx context.Context,
	slug string,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&salon).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

// --------------------------------------------------
// AgendaConfig
// --------------------------------------------------

func (r *AgendaGormRepository) GetAgendaConfig(
	ctx context.Context,
	professionalID uint,
) (*models.AgendaConfig, error) {

	var cfg models.AgendaConfig
	if err := r.db.WithContext(ctx).
		Where("professional_id = ?", professionalID).
		First(&cfg).Error; err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *AgendaGormRepository) SaveAgendaConfig(
	ctx context.Context,
	cfg *models.AgendaConfig,
) error {
	return r.db.WithContext(ctx).Save(cfg).Error
}

// --------------------------------------------------
// Holiday
// --------------------------------------------------

func (r *AgendaGormRepository) ListHolidays(
	ctx context.Context,
	professionalID uint,
) ([]models.Holiday, error) {

	var holidays []models.Holiday
	if err := r.db.WithContext(ctx).
		Where("professional_id = ?", professionalID).
		Order("date ASC").
		Find(&holidays).Error; err != nil {
		return nil, err
	}
	return holidays, nil
}

func (r *AgendaGormRepository) HasHoliday(
	ctx context.Context,
	professionalID uint,
	date string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Holiday{}).
		Where("professional_id = ? AND date = ?", professionalID, date).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AgendaGormRepository) CreateHoliday(
	ctx context.Context,
	h *models.Holiday,
) error {
	return r.db.WithContext(ctx).Create(h).Error
}

// --------------------------------------------------
// Service / Room
// --------------------------------------------------

func (r *AgendaGormRepository) GetService(
	ctx context.Context,
	salonID uint,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", serviceID, salonID).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *AgendaGormRepository) GetRoom(
	ctx context.Context,
	salonID uint,
	roomID uint,
) (*models.Room, error) {

	var room models.Room
	if err := r.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", roomID, salonID).
		First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *AgendaGormRepository) GetOrCreateClient(
	ctx context.Context,
	salonID uint,
	name string,
	phone string,
	email string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("salon_id = ? AND phone = ?", salonID, phone).
		First(&client).Error

	if err == nil {
		return &client, nil
	}

	client = models.Client{
		SalonID: salonID,
		Name:    name,
		Phone:   phone,
		Email:   email,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AgendaGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AgendaGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AgendaGormRepository) DeleteAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Delete(ap).Error
}

func (r *AgendaGormRepository) GetAppointmentForProfessional(
	ctx context.Context,
	appointmentID uint,
	professionalID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND professional_id = ?", appointmentID, professionalID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AgendaGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	professionalID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "start_time", "end_time", "status").
		Where(
			"professional_id = ? AND status IN ? AND start_time >= ? AND start_time < ?",
			professionalID, activeStatuses, start, end,
		).
		Order("start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AgendaGormRepository) ListAppointments(
	ctx context.Context,
	salonID uint,
	filter domain.QueryFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Preload("Room").
		Where(
			"salon_id = ? AND start_time >= ? AND start_time < ?",
			salonID, filter.From, filter.To,
		)

	// listas vazias = sem filtro, não "não casar com nada"
	if len(filter.ProfessionalIDs) > 0 {
		q = q.Where("professional_id IN ?", filter.ProfessionalIDs)
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, string(s))
		}
		q = q.Where("status IN ?", statuses)
	}

	var aps []models.Appointment
	if err := q.Order("start_time ASC").Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*AgendaGormRepository)(nil)
