package audit

import "log"

// Ações de agenda registradas na auditoria
const (
	ActionAppointmentCreated = "appointment_created"
	ActionAppointmentUpdated = "appointment_updated"
	ActionAppointmentDeleted = "appointment_deleted"
	ActionStatusChanged      = "appointment_status_changed"

	// drag/resize gera evento próprio: é ele que decide se o console
	// pergunta sobre avisar o cliente (advisory, não contrato)
	ActionAppointmentDragged = "appointment_updated_via_drag"

	ActionConfigUpdated  = "agenda_config_updated"
	ActionHolidayCreated = "holiday_created"
)

type Event struct {
	SalonID  uint
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100), // buffer seguro
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.SalonID,
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			log.Println("audit error:", err)
		}
	}
}

// Dispatch enfileira o evento sem bloquear. Dispatcher nil é
// auditoria desligada: a chamada vira no-op.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos audit (nunca quebrar API)
		log.Println("audit queue full, dropping event")
	}
}
