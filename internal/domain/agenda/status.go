package agenda

import "fmt"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending     Status = "pending"
	StatusConfirmed   Status = "confirmed"
	StatusCheckedIn   Status = "checked_in"
	StatusInProgress  Status = "in_progress"
	StatusCompleted   Status = "completed"
	StatusCancelled   Status = "cancelled"
	StatusNoShow      Status = "no_show"
	StatusRescheduled Status = "rescheduled"
)

// IsValid diz se o status é um dos oito conhecidos
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCheckedIn, StatusInProgress,
		StatusCompleted, StatusCancelled, StatusNoShow, StatusRescheduled:
		return true
	}
	return false
}

// IsTerminal diz se o status encerra o ciclo do agendamento
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// ===============================
// Transitions
// ===============================

// allowedTransitions centraliza o ciclo de vida. Estados terminais
// não aparecem como origem: deles não se sai.
var allowedTransitions = map[Status][]Status{
	StatusPending:     {StatusConfirmed, StatusCancelled, StatusRescheduled},
	StatusConfirmed:   {StatusCheckedIn, StatusInProgress, StatusCancelled, StatusNoShow, StatusRescheduled},
	StatusCheckedIn:   {StatusInProgress, StatusCancelled, StatusNoShow},
	StatusInProgress:  {StatusCompleted, StatusCancelled},
	StatusRescheduled: {StatusConfirmed, StatusCancelled},
}

type TransitionError struct {
	From Status
	To   Status
}

func (e TransitionError) Error() string {
	return fmt.Sprintf("invalid transition %s -> %s", e.From, e.To)
}

// CanTransition valida uma troca de status contra a tabela de transições
func CanTransition(from Status, to Status) error {
	if !to.IsValid() {
		return TransitionError{From: from, To: to}
	}
	for _, next := range allowedTransitions[from] {
		if next == to {
			return nil
		}
	}
	return TransitionError{From: from, To: to}
}

// InitialStatus define o status de entrada por origem do agendamento:
// reserva feita no console nasce confirmada, reserva pública nasce pendente.
func InitialStatus(public bool) Status {
	if public {
		return StatusPending
	}
	return StatusConfirmed
}
