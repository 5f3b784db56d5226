package agenda

import (
	"context"
	"time"

	"github.com/VoltarSoftware/salon-agenda/internal/audit"
	domain "github.com/VoltarSoftware/salon-agenda/internal/domain/agenda"
	"github.com/VoltarSoftware/salon-agenda/internal/httperr"
	"github.com/VoltarSoftware/salon-agenda/internal/models"
	"github.com/VoltarSoftware/salon-agenda/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type UpdateAppointmentInput struct {
	SalonID        uint
	ProfessionalID uint
	AppointmentID  uint

	// campos opcionais: nil = não mexer
	Start *time.Time
	End   *time.Time
	Title *string
	Notes *string

	// mudança de horário veio de drag/resize no calendário.
	// Gera evento de auditoria próprio (decide o prompt de
	// "avisar o cliente?"), nada além disso.
	ViaDrag bool
}

type UpdateAppointmentOutput struct {
	Appointment     *models.Appointment
	ConflictWarning bool
}

// ======================================================
// USE CASE
// ======================================================

type UpdateAppointment struct {
	repo  domain.Repository
	cache SlotCache
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	cache SlotCache,
	auditor *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		cache: cache,
		audit: auditor,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*UpdateAppointmentOutput, error) {

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentForProfessional(
		ctx,
		in.AppointmentID,
		in.ProfessionalID,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	loc := timezone.Location(salon.Timezone)
	oldDay := timezone.DayKey(ap.StartTime.In(loc))

	timeChanged := in.Start != nil || in.End != nil
	conflictWarning := false

	if timeChanged {
		// agendamento terminal não se move
		if err := domain.CanReschedule(ap); err != nil {
			return nil, err
		}

		start := ap.StartTime
		end := ap.EndTime
		startChanged := false

		if in.Start != nil {
			start = in.Start.In(loc)
			startChanged = !start.Equal(ap.StartTime)
		}
		if in.End != nil {
			end = in.End.In(loc)
		}

		if !start.Before(end) {
			return nil, domain.ErrValidation("invalid_range", "Horário final deve ser depois do inicial.")
		}
		if end.Sub(start) < time.Minute {
			return nil, domain.ErrValidation("too_short", "Duração mínima de 1 minuto.")
		}

		// guarda de antecedência só quando o início realmente mudou:
		// esticar o fim de um atendimento em andamento é legítimo
		if startChanged {
			now := timezone.NowIn(salon.Timezone)
			if err := domain.ValidateCandidate(start, end, now, salon.MinAdvanceMinutes); err != nil {
				return nil, err
			}
		}

		cfg, err := uc.repo.GetAgendaConfig(ctx, in.ProfessionalID)
		if err != nil {
			cfg = defaultAgendaConfig(in.SalonID, in.ProfessionalID)
		}

		dayStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)

		existing, err := uc.repo.ListAppointmentsForDay(
			ctx,
			in.ProfessionalID,
			dayStart,
			dayStart.Add(24*time.Hour),
		)
		if err != nil {
			return nil, err
		}

		// excludeID: o agendamento em edição nunca conflita consigo mesmo
		if domain.HasConflict(domain.TimeRange{Start: start, End: end}, existing, ap.ID) {
			if !cfg.AllowOverbooking {
				return nil, httperr.ErrBusiness("time_conflict")
			}
			conflictWarning = cfg.WarnOnOverbook
		}

		ap.StartTime = start
		ap.EndTime = end
	}

	if in.Title != nil {
		ap.Title = *in.Title
	}
	if in.Notes != nil {
		ap.Notes = *in.Notes
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, in.ProfessionalID, oldDay)
		if newDay := timezone.DayKey(ap.StartTime.In(loc)); newDay != oldDay {
			uc.cache.Invalidate(ctx, in.ProfessionalID, newDay)
		}
	}

	action := audit.ActionAppointmentUpdated
	if timeChanged && in.ViaDrag {
		action = audit.ActionAppointmentDragged
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		UserID:   &in.ProfessionalID,
		Action:   action,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return &UpdateAppointmentOutput{
		Appointment:     ap,
		ConflictWarning: conflictWarning,
	}, nil
}
