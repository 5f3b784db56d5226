package agenda

import (
	"context"

	"github.com/VoltarSoftware/salon-agenda/internal/audit"
	domain "github.com/VoltarSoftware/salon-agenda/internal/domain/agenda"
	"github.com/VoltarSoftware/salon-agenda/internal/httperr"
	"github.com/VoltarSoftware/salon-agenda/internal/models"
	"github.com/VoltarSoftware/salon-agenda/internal/timezone"
)

type TransitionAppointment struct {
	repo  domain.Repository
	cache SlotCache
	audit *audit.Dispatcher
}

func NewTransitionAppointment(
	repo domain.Repository,
	cache SlotCache,
	auditor *audit.Dispatcher,
) *TransitionAppointment {
	return &TransitionAppointment{
		repo:  repo,
		cache: cache,
		audit: auditor,
	}
}

func (uc *TransitionAppointment) Execute(
	ctx context.Context,
	salonID uint,
	professionalID uint,
	appointmentID uint,
	to domain.Status,
) (*models.Appointment, error) {

	salon, err := uc.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentForProfessional(ctx, appointmentID, professionalID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	from := ap.Status
	now := timezone.NowIn(salon.Timezone)

	if err := domain.Transition(ap, to, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// status terminal libera o horário na disponibilidade
	if uc.cache != nil {
		loc := timezone.Location(salon.Timezone)
		uc.cache.Invalidate(ctx, professionalID, timezone.DayKey(ap.StartTime.In(loc)))
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &professionalID,
		Action:   audit.ActionStatusChanged,
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"from": from,
			"to":   string(to),
		},
	})

	return ap, nil
}
