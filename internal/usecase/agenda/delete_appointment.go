package agenda

import (
	"context"

	"github.com/VoltarSoftware/salon-agenda/internal/audit"
	domain "github.com/VoltarSoftware/salon-agenda/internal/domain/agenda"
	"github.com/VoltarSoftware/salon-agenda/internal/httperr"
	"github.com/VoltarSoftware/salon-agenda/internal/timezone"
)

type DeleteAppointment struct {
	repo  domain.Repository
	cache SlotCache
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	cache SlotCache,
	auditor *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		cache: cache,
		audit: auditor,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	salonID uint,
	professionalID uint,
	appointmentID uint,
) error {

	salon, err := uc.repo.GetSalonByID(ctx, salonID)
	if err != nil {
		return err
	}

	ap, err := uc.repo.GetAppointmentForProfessional(ctx, appointmentID, professionalID)
	if err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	if err := uc.repo.DeleteAppointment(ctx, ap); err != nil {
		return err
	}

	if uc.cache != nil {
		loc := timezone.Location(salon.Timezone)
		uc.cache.Invalidate(ctx, professionalID, timezone.DayKey(ap.StartTime.In(loc)))
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &professionalID,
		Action:   audit.ActionAppointmentDeleted,
		Entity:   "appointment",
		EntityID: &appointmentID,
	})

	return nil
}
