package agenda

import (
	"context"
	"time"

	domain "github.com/VoltarSoftware/salon-agenda/internal/domain/agenda"
	"github.com/VoltarSoftware/salon-agenda/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type GetAvailabilityInput struct {
	SalonID        uint
	ProfessionalID uint
	Date           time.Time
}

// ======================================================
// USE CASE
// ======================================================

type GetAvailability struct {
	repo  domain.Repository
	cache SlotCache
}

func NewGetAvailability(repo domain.Repository, cache SlotCache) *GetAvailability {
	return &GetAvailability{repo: repo, cache: cache}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in GetAvailabilityInput,
) ([]domain.Slot, error) {

	day := timezone.DayKey(in.Date)

	if uc.cache != nil {
		if slots, ok := uc.cache.Get(ctx, in.ProfessionalID, day); ok {
			return slots, nil
		}
	}

	cfg, err := uc.repo.GetAgendaConfig(ctx, in.ProfessionalID)
	if err != nil {
		cfg = defaultAgendaConfig(in.SalonID, in.ProfessionalID)
	}

	holiday, err := uc.repo.HasHoliday(ctx, in.ProfessionalID, day)
	if err != nil {
		return nil, err
	}

	dayStart := time.Date(
		in.Date.Year(), in.Date.Month(), in.Date.Day(),
		0, 0, 0, 0,
		in.Date.Location(),
	)
	dayEnd := dayStart.Add(24 * time.Hour)

	appointments, err := uc.repo.ListAppointmentsForDay(
		ctx,
		in.ProfessionalID,
		dayStart,
		dayEnd,
	)
	if err != nil {
		return nil, err
	}

	slots := domain.ComputeSlots(domain.AvailabilityInput{
		Date:         in.Date,
		Config:       cfg,
		IsHoliday:    holiday,
		Appointments: appointments,
	})

	if uc.cache != nil {
		uc.cache.Set(ctx, in.ProfessionalID, day, slots)
	}

	return slots, nil
}
