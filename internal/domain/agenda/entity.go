package agenda

import (
	"time"

	"github.com/VoltarSoftware/salon-agenda/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transition aplica uma troca de status validada pela tabela de
// transições e carimba os timestamps terminais.
func Transition(ap *models.Appointment, to Status, now time.Time) error {
	if err := CanTransition(Status(ap.Status), to); err != nil {
		return err
	}

	ap.Status = string(to)

	switch to {
	case StatusCancelled, StatusNoShow:
		ap.CancelledAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	}

	return nil
}

// CanReschedule diz se o horário ainda pode ser movido (drag/resize
// ou edição). Agendamento terminal fica travado.
func CanReschedule(ap *models.Appointment) error {
	if Status(ap.Status).IsTerminal() {
		return TransitionError{From: Status(ap.Status), To: StatusRescheduled}
	}
	return nil
}
