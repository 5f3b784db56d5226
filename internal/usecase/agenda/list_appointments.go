package agenda

import (
	"context"

	domain "github.com/VoltarSoftware/salon-agenda/internal/domain/agenda"
	"github.com/VoltarSoftware/salon-agenda/internal/dto"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute devolve a lista tabular da agenda (tela de listagem).
// O filtro já chega normalizado e validado pelo handler.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	salonID uint,
	filter domain.QueryFilter,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListAppointments(ctx, salonID, filter)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		item := dto.AppointmentListDTO{
			ID:             ap.ID,
			PublicRef:      ap.PublicRef,
			Title:          ap.Title,
			StartTime:      ap.StartTime,
			EndTime:        ap.EndTime,
			Status:         ap.Status,
			ProfessionalID: ap.ProfessionalID,
			ClientName:     ap.Client.Name,
		}
		if ap.Service != nil {
			item.ServiceName = ap.Service.Name
		}
		out = append(out, item)
	}

	return out, nil
}

// ======================================================
// CALENDAR EVENTS
// ======================================================

type ListCalendarEvents struct {
	repo domain.Repository
}

func NewListCalendarEvents(repo domain.Repository) *ListCalendarEvents {
	return &ListCalendarEvents{repo: repo}
}

// Execute devolve os eventos prontos para o calendário (projeção pura
// sobre a mesma consulta da listagem).
func (uc *ListCalendarEvents) Execute(
	ctx context.Context,
	salonID uint,
	filter domain.QueryFilter,
) ([]domain.CalendarEvent, error) {

	appointments, err := uc.repo.ListAppointments(ctx, salonID, filter)
	if err != nil {
		return nil, err
	}

	return domain.ProjectAll(appointments), nil
}
