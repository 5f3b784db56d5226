package agenda

import (
	"context"

	domain "github.com/VoltarSoftware/salon-agenda/internal/domain/agenda"
	"github.com/VoltarSoftware/salon-agenda/internal/models"
)

// SlotCache é o cache de disponibilidade por profissional+dia.
// A implementação Redis vive em internal/cache.
type SlotCache interface {
	Get(ctx context.Context, professionalID uint, day string) ([]domain.Slot, bool)
	Set(ctx context.Context, professionalID uint, day string, slots []domain.Slot)
	Invalidate(ctx context.Context, professionalID uint, day string)
}

// defaultAgendaConfig é o config inicial de um profissional que nunca
// configurou a agenda: segunda a sexta, 09:00–18:00, slots de 30min.
func defaultAgendaConfig(salonID, professionalID uint) *models.AgendaConfig {
	return &models.AgendaConfig{
		SalonID:        salonID,
		ProfessionalID: professionalID,

		WorkingDays:     "1,2,3,4,5",
		WorkStart:       "09:00",
		WorkEnd:         "18:00",
		SlotDurationMin: 30,

		AllowOverbooking:         false,
		AllowBookingOnBlockedDay: false,
		WarnOnOverbook:           true,
	}
}
