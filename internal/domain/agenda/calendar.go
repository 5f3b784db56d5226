package agenda

import (
	"time"

	"github.com/VoltarSoftware/salon-agenda/internal/models"
)

// ===============================
// Calendar Projection
// ===============================

type EventColor struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

type EventResizable struct {
	BeforeStart bool `json:"before_start"`
	AfterEnd    bool `json:"after_end"`
}

// CalendarEvent é a projeção efêmera de um Appointment para o calendário.
// Meta carrega o agendamento original para round-trip nas interações de UI.
type CalendarEvent struct {
	ID        uint           `json:"id"`
	PublicRef string         `json:"public_ref"`
	Title     string         `json:"title"`
	Start     time.Time      `json:"start"`
	End       time.Time      `json:"end"`
	AllDay    bool           `json:"all_day"`
	Status    string         `json:"status"`
	Color     EventColor     `json:"color"`
	CssClass  string         `json:"css_class"`
	Draggable bool           `json:"draggable"`
	Resizable EventResizable `json:"resizable"`

	ProfessionalID uint   `json:"professional_id"`
	ClientID       uint   `json:"client_id"`
	ServiceID      *uint  `json:"service_id"`
	RoomID         *uint  `json:"room_id"`
	Notes          string `json:"notes"`

	Meta *models.Appointment `json:"meta"`
}

var statusColors = map[Status]EventColor{
	StatusPending:     {Primary: "#e3bc08", Secondary: "#FDF1BA"},
	StatusConfirmed:   {Primary: "#1e90ff", Secondary: "#D1E8FF"},
	StatusCheckedIn:   {Primary: "#17a2b8", Secondary: "#D6F3F8"},
	StatusInProgress:  {Primary: "#6f42c1", Secondary: "#E6DDF6"},
	StatusCompleted:   {Primary: "#28a745", Secondary: "#DDF3E4"},
	StatusCancelled:   {Primary: "#ad2121", Secondary: "#FAE3E3"},
	StatusNoShow:      {Primary: "#fd7e14", Secondary: "#FFE8D6"},
	StatusRescheduled: {Primary: "#6c757d", Secondary: "#E2E3E5"},
}

// azul neutro para status desconhecido
var defaultColor = EventColor{Primary: "#1e90ff", Secondary: "#D1E8FF"}

var statusCssClasses = map[Status]string{
	StatusPending:     "cal-status-pending",
	StatusConfirmed:   "cal-status-confirmed",
	StatusCheckedIn:   "cal-status-checked-in",
	StatusInProgress:  "cal-status-in-progress",
	StatusCompleted:   "cal-status-completed",
	StatusCancelled:   "cal-status-cancelled",
	StatusNoShow:      "cal-status-no-show",
	StatusRescheduled: "cal-status-rescheduled",
}

// ColorFor resolve a cor do status; desconhecido cai no azul neutro
func ColorFor(s Status) EventColor {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return defaultColor
}

// Project converte um agendamento persistido em evento de calendário.
// Função pura: a mesma entrada produz sempre a mesma saída.
// Agendamento terminal sai travado (sem drag nem resize).
func Project(ap *models.Appointment) CalendarEvent {
	status := Status(ap.Status)
	movable := !status.IsTerminal()

	cssClass := statusCssClasses[status]
	if cssClass == "" {
		cssClass = "cal-status-unknown"
	}

	return CalendarEvent{
		ID:        ap.ID,
		PublicRef: ap.PublicRef,
		Title:     ap.Title,
		Start:     ap.StartTime,
		End:       ap.EndTime,
		AllDay:    ap.AllDay,
		Status:    ap.Status,
		Color:     ColorFor(status),
		CssClass:  cssClass,
		Draggable: movable,
		Resizable: EventResizable{
			BeforeStart: movable,
			AfterEnd:    movable,
		},

		ProfessionalID: ap.ProfessionalID,
		ClientID:       ap.ClientID,
		ServiceID:      ap.ServiceID,
		RoomID:         ap.RoomID,
		Notes:          ap.Notes,

		Meta: ap,
	}
}

// ProjectAll projeta a lista inteira preservando a ordem
func ProjectAll(aps []models.Appointment) []CalendarEvent {
	events := make([]CalendarEvent, 0, len(aps))
	for i := range aps {
		events = append(events, Project(&aps[i]))
	}
	return events
}
