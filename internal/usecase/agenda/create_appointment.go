package agenda

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/VoltarSoftware/salon-agenda/internal/audit"
	domain "github.com/VoltarSoftware/salon-agenda/internal/domain/agenda"
	"github.com/VoltarSoftware/salon-agenda/internal/httperr"
	"github.com/VoltarSoftware/salon-agenda/internal/models"
	"github.com/VoltarSoftware/salon-agenda/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	SalonID        uint
	ProfessionalID uint

	// quem disparou a ação (vazio no fluxo público)
	ActorID *uint

	// reserva pública nasce pending; do console nasce confirmed
	Public bool

	Title string
	Start time.Time
	// End zerado + ServiceID preenchido: duração vem do serviço
	End time.Time

	ClientID    uint
	ClientName  string
	ClientPhone string
	ClientEmail string

	ServiceID *uint
	RoomID    *uint

	Status string
	Notes  string
}

// ======================================================
// OUTPUT
// ======================================================

type CreateAppointmentOutput struct {
	Appointment *models.Appointment

	// aviso advisory de overbooking: o slot já estava ocupado, mas a
	// config do profissional permitiu a reserva mesmo assim
	ConflictWarning bool
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	cache SlotCache
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	cache SlotCache,
	auditor *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		cache: cache,
		audit: auditor,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*CreateAppointmentOutput, error) {

	// --------------------------------------------------
	// 1️⃣ Salão (timezone + antecedência mínima)
	// --------------------------------------------------
	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(salon.Timezone)
	start := in.Start.In(loc)
	end := in.End

	// --------------------------------------------------
	// 2️⃣ Serviço (duração quando o fim não veio)
	// --------------------------------------------------
	var serviceID *uint
	if in.ServiceID != nil {
		service, err := uc.repo.GetService(ctx, in.SalonID, *in.ServiceID)
		if err != nil {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		serviceID = &service.ID

		if end.IsZero() {
			end = start.Add(time.Duration(service.DurationMin) * time.Minute)
		}
	}
	if end.IsZero() {
		return nil, domain.ErrValidation("missing_end", "Horário final obrigatório.")
	}
	end = end.In(loc)

	// --------------------------------------------------
	// 3️⃣ Guardas locais (range, duração, antecedência)
	// --------------------------------------------------
	now := timezone.NowIn(salon.Timezone)
	if err := domain.ValidateCandidate(start, end, now, salon.MinAdvanceMinutes); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Config de agenda + feriado + expediente
	// --------------------------------------------------
	cfg, err := uc.repo.GetAgendaConfig(ctx, in.ProfessionalID)
	if err != nil {
		cfg = defaultAgendaConfig(in.SalonID, in.ProfessionalID)
	}

	day := timezone.DayKey(start)

	holiday, err := uc.repo.HasHoliday(ctx, in.ProfessionalID, day)
	if err != nil {
		return nil, err
	}
	if holiday {
		// feriado bloqueia sempre, mesmo com allow_booking_on_blocked_day
		return nil, httperr.ErrBusiness("holiday")
	}

	if !cfg.AllowBookingOnBlockedDay {
		if !domain.WorksOn(cfg, start.Weekday()) {
			return nil, httperr.ErrBusiness("outside_working_days")
		}

		workStart, workEnd := domain.WorkWindow(cfg, start)
		if start.Before(workStart) || end.After(workEnd) {
			return nil, httperr.ErrBusiness("outside_working_hours")
		}
	}

	// --------------------------------------------------
	// 5️⃣ Sala (quando informada)
	// --------------------------------------------------
	var roomID *uint
	if in.RoomID != nil {
		room, err := uc.repo.GetRoom(ctx, in.SalonID, *in.RoomID)
		if err != nil {
			return nil, httperr.ErrBusiness("room_not_found")
		}
		roomID = &room.ID
	}

	// --------------------------------------------------
	// 6️⃣ Conflito de horário
	// --------------------------------------------------
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

	conflictWarning := false
	if domain.HasConflict(domain.TimeRange{Start: start, End: end}, existing, 0) {
		if !cfg.AllowOverbooking {
			return nil, httperr.ErrBusiness("time_conflict")
		}
		conflictWarning = cfg.WarnOnOverbook
	}

	// --------------------------------------------------
	// 7️⃣ Cliente (direto por id ou get-or-create por telefone)
	// --------------------------------------------------
	clientID := in.ClientID
	if clientID == 0 {
		client, err := uc.repo.GetOrCreateClient(
			ctx,
			in.SalonID,
			in.ClientName,
			in.ClientPhone,
			in.ClientEmail,
		)
		if err != nil {
			return nil, err
		}
		clientID = client.ID
	}

	// --------------------------------------------------
	// 8️⃣ Criação (status de entrada centralizado)
	// --------------------------------------------------
	status := domain.InitialStatus(in.Public)
	if s := domain.Status(in.Status); s == domain.StatusPending || s == domain.StatusConfirmed {
		status = s
	}

	ap := &models.Appointment{
		PublicRef:      uuid.NewString(),
		SalonID:        in.SalonID,
		ProfessionalID: in.ProfessionalID,
		ClientID:       clientID,
		ServiceID:      serviceID,
		RoomID:         roomID,
		Title:          in.Title,
		StartTime:      start,
		EndTime:        end,
		Status:         string(status),
		Notes:          in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, in.ProfessionalID, day)
	}

	// --------------------------------------------------
	// 9️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		UserID:   in.ActorID,
		Action:   audit.ActionAppointmentCreated,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return &CreateAppointmentOutput{
		Appointment:     ap,
		ConflictWarning: conflictWarning,
	}, nil
}
