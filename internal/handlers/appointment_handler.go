package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/VoltarSoftware/salon-agenda/internal/domain/agenda"
	"github.com/VoltarSoftware/salon-agenda/internal/httperr"
	"github.com/VoltarSoftware/salon-agenda/internal/httpresp"
	"github.com/VoltarSoftware/salon-agenda/internal/middleware"
	ucAgenda "github.com/VoltarSoftware/salon-agenda/internal/usecase/agenda"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC     *ucAgenda.CreateAppointment
	updateUC     *ucAgenda.UpdateAppointment
	transitionUC *ucAgenda.TransitionAppointment
	deleteUC     *ucAgenda.DeleteAppointment
	listUC       *ucAgenda.ListAppointments
	eventsUC     *ucAgenda.ListCalendarEvents
}

func NewAppointmentHandler(
	createUC *ucAgenda.CreateAppointment,
	updateUC *ucAgenda.UpdateAppointment,
	transitionUC *ucAgenda.TransitionAppointment,
	deleteUC *ucAgenda.DeleteAppointment,
	listUC *ucAgenda.ListAppointments,
	eventsUC *ucAgenda.ListCalendarEvents,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:     createUC,
		updateUC:     updateUC,
		transitionUC: transitionUC,
		deleteUC:     deleteUC,
		listUC:       listUC,
		eventsUC:     eventsUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	Title         string `json:"title"`
	StartDateTime string `json:"start_date_time" binding:"required"` // RFC3339
	EndDateTime   string `json:"end_date_time"`                      // RFC3339; vazio = duração do serviço

	ClientID    uint   `json:"client_id"`
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	ClientEmail string `json:"client_email"`

	ServiceID *uint `json:"service_id"`
	RoomID    *uint `json:"room_id"`

	Status string `json:"status"`
	Notes  string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	StartDateTime *string `json:"start_date_time"`
	EndDateTime   *string `json:"end_date_time"`
	Title         *string `json:"title"`
	Notes         *string `json:"notes"`
	ViaDrag       bool    `json:"via_drag"`
}

type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	start, err := parseInstant(req.StartDateTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	in := ucAgenda.CreateAppointmentInput{
		SalonID:        salonID,
		ProfessionalID: professionalID,
		ActorID:        &professionalID,
		Public:         false,
		Title:          req.Title,
		Start:          start,
		ClientID:       req.ClientID,
		ClientName:     req.ClientName,
		ClientPhone:    req.ClientPhone,
		ClientEmail:    req.ClientEmail,
		ServiceID:      req.ServiceID,
		RoomID:         req.RoomID,
		Status:         req.Status,
		Notes:          req.Notes,
	}

	if req.EndDateTime != "" {
		end, err := parseInstant(req.EndDateTime)
		if err != nil {
			httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
			return
		}
		in.End = end
	}

	out, err := h.createUC.Execute(c.Request.Context(), in)
	if err != nil {
		writeAgendaError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"appointment":      out.Appointment,
		"conflict_warning": out.ConflictWarning,
	})
}

// ======================================================
// LIST / CALENDAR
// ======================================================

// parseQueryFilter lê ?from&to&professional_id[]&status[] no formato
// normalizado do AgendaQueryFilter
func parseQueryFilter(c *gin.Context) (domain.QueryFilter, error) {
	var filter domain.QueryFilter

	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		return filter, domain.ErrValidation("missing_range", "Range de datas obrigatório.")
	}

	from, err := parseInstant(fromStr)
	if err != nil {
		return filter, domain.ErrValidation("invalid_from", "Data inicial inválida.")
	}
	to, err := parseInstant(toStr)
	if err != nil {
		return filter, domain.ErrValidation("invalid_to", "Data final inválida.")
	}

	filter.From = from
	filter.To = to

	for _, idStr := range c.QueryArray("professional_id") {
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			return filter, domain.ErrValidation("invalid_professional_id", "Profissional inválido.")
		}
		filter.ProfessionalIDs = append(filter.ProfessionalIDs, uint(id))
	}

	for _, s := range c.QueryArray("status") {
		filter.Statuses = append(filter.Statuses, domain.Status(s))
	}

	if err := filter.Validate(); err != nil {
		return filter, err
	}

	return filter, nil
}

func (h *AppointmentHandler) List(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	filter, err := parseQueryFilter(c)
	if err != nil {
		writeAgendaError(c, err)
		return
	}

	items, err := h.listUC.Execute(c.Request.Context(), salonID, filter)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, items)
}

func (h *AppointmentHandler) CalendarEvents(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	filter, err := parseQueryFilter(c)
	if err != nil {
		writeAgendaError(c, err)
		return
	}

	events, err := h.eventsUC.Execute(c.Request.Context(), salonID, filter)
	if err != nil {
		httperr.Internal(c, "failed_to_list_events", "Erro ao montar calendário.")
		return
	}

	httpresp.List(c, events)
}

// ======================================================
// UPDATE (edição + drag/resize)
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	in := ucAgenda.UpdateAppointmentInput{
		SalonID:        salonID,
		ProfessionalID: professionalID,
		AppointmentID:  uint(id),
		Title:          req.Title,
		Notes:          req.Notes,
		ViaDrag:        req.ViaDrag,
	}

	if req.StartDateTime != nil {
		start, err := parseInstant(*req.StartDateTime)
		if err != nil {
			httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
			return
		}
		in.Start = &start
	}
	if req.EndDateTime != nil {
		end, err := parseInstant(*req.EndDateTime)
		if err != nil {
			httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
			return
		}
		in.End = &end
	}

	out, err := h.updateUC.Execute(c.Request.Context(), in)
	if err != nil {
		writeAgendaError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"appointment":      out.Appointment,
		"conflict_warning": out.ConflictWarning,
	})
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) Transition(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.transitionUC.Execute(
		c.Request.Context(),
		salonID,
		professionalID,
		uint(id),
		domain.Status(req.Status),
	)
	if err != nil {
		writeAgendaError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if err := h.deleteUC.Execute(
		c.Request.Context(),
		salonID,
		professionalID,
		uint(id),
	); err != nil {
		writeAgendaError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
