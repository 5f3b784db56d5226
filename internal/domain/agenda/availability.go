package agenda

import (
	"time"

	"github.com/VoltarSoftware/salon-agenda/internal/models"
)

// ===============================
// Availability
// ===============================

type Slot struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Occupied bool      `json:"occupied"`
}

type AvailabilityInput struct {
	Date         time.Time
	Config       *models.AgendaConfig
	IsHoliday    bool
	Appointments []models.Appointment
}

// ComputeSlots fatia o expediente em janelas de SlotDurationMin.
// Feriado bloqueia sempre, mesmo com allow_booking_on_blocked_day.
// Janela parcial no fim do expediente é descartada.
// Slots saem contíguos, sem sobreposição, em ordem crescente.
func ComputeSlots(in AvailabilityInput) []Slot {
	cfg := in.Config

	if in.IsHoliday {
		return nil
	}

	if !WorksOn(cfg, in.Date.Weekday()) && !cfg.AllowBookingOnBlockedDay {
		return nil
	}

	dayStart, dayEnd := WorkWindow(cfg, in.Date)
	slotDuration := time.Duration(cfg.SlotDurationMin) * time.Minute

	var slots []Slot

	for cur := dayStart; !cur.Add(slotDuration).After(dayEnd); cur = cur.Add(slotDuration) {
		slotStart := cur
		slotEnd := cur.Add(slotDuration)

		occupied := HasConflict(
			TimeRange{Start: slotStart, End: slotEnd},
			in.Appointments,
			0,
		)

		if occupied && !cfg.AllowOverbooking {
			continue
		}

		slots = append(slots, Slot{
			Start:    slotStart,
			End:      slotEnd,
			Occupied: occupied,
		})
	}

	return slots
}

// ValidateCandidate é o guarda local de um horário candidato antes de
// qualquer chamada ao banco. minAdvanceMin <= 0 cai no mínimo de 1 minuto.
func ValidateCandidate(start, end, now time.Time, minAdvanceMin int) error {
	if !start.Before(end) {
		return ErrValidation("invalid_range", "Horário final deve ser depois do inicial.")
	}

	if end.Sub(start) < time.Minute {
		return ErrValidation("too_short", "Duração mínima de 1 minuto.")
	}

	if minAdvanceMin <= 0 {
		minAdvanceMin = 1
	}
	if start.Before(now.Add(time.Duration(minAdvanceMin) * time.Minute)) {
		return ErrValidation("too_soon", "Horário muito próximo ou no passado.")
	}

	return nil
}
