package agenda

import (
	"time"

	"github.com/VoltarSoftware/salon-agenda/internal/models"
)

// ===============================
// Conflict Detection
// ===============================

type TimeRange struct {
	Start time.Time
	End   time.Time
}

// Overlaps usa intervalo semiaberto [start, end): encostar ponta
// com ponta não conflita.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.Before(other.End) && r.End.After(other.Start)
}

// HasConflict diz se o intervalo candidato colide com algum agendamento
// existente do profissional. excludeID ignora o próprio agendamento
// durante uma edição (0 = não ignorar nada). Agendamentos terminais
// não ocupam horário.
func HasConflict(candidate TimeRange, existing []models.Appointment, excludeID uint) bool {
	for _, ap := range existing {
		if excludeID != 0 && ap.ID == excludeID {
			continue
		}
		if Status(ap.Status).IsTerminal() {
			continue
		}
		if candidate.Overlaps(TimeRange{Start: ap.StartTime, End: ap.EndTime}) {
			return true
		}
	}
	return false
}
