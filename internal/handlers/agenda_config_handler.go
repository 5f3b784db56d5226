package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VoltarSoftware/salon-agenda/internal/httperr"
	"github.com/VoltarSoftware/salon-agenda/internal/middleware"
	ucAgenda "github.com/VoltarSoftware/salon-agenda/internal/usecase/agenda"
)

// ======================================================
// HANDLER
// ======================================================

type AgendaConfigHandler struct {
	getUC    *ucAgenda.GetAgendaConfig
	updateUC *ucAgenda.UpdateAgendaConfig
}

func NewAgendaConfigHandler(
	getUC *ucAgenda.GetAgendaConfig,
	updateUC *ucAgenda.UpdateAgendaConfig,
) *AgendaConfigHandler {
	return &AgendaConfigHandler{
		getUC:    getUC,
		updateUC: updateUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AgendaConfigUpdateRequest struct {
	WorkingDays     []int   `json:"working_days"`
	WorkStart       *string `json:"work_start"`
	WorkEnd         *string `json:"work_end"`
	SlotDurationMin *int    `json:"slot_duration_min"`

	AllowOverbooking         *bool `json:"allow_overbooking"`
	AllowBookingOnBlockedDay *bool `json:"allow_booking_on_blocked_day"`
	WarnOnOverbook           *bool `json:"warn_on_overbook"`
}

// ======================================================
// GET
// ======================================================

func (h *AgendaConfigHandler) Get(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	cfg, err := h.getUC.Execute(c.Request.Context(), salonID, professionalID)
	if err != nil {
		httperr.Internal(c, "failed_to_get_agenda_config", "Erro ao buscar configuração.")
		return
	}

	c.JSON(http.StatusOK, cfg)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AgendaConfigHandler) Update(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req AgendaConfigUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	cfg, err := h.updateUC.Execute(
		c.Request.Context(),
		salonID,
		professionalID,
		ucAgenda.UpdateAgendaConfigInput{
			WorkingDays:              req.WorkingDays,
			WorkStart:                req.WorkStart,
			WorkEnd:                  req.WorkEnd,
			SlotDurationMin:          req.SlotDurationMin,
			AllowOverbooking:         req.AllowOverbooking,
			AllowBookingOnBlockedDay: req.AllowBookingOnBlockedDay,
			WarnOnOverbook:           req.WarnOnOverbook,
		},
	)
	if err != nil {
		writeAgendaError(c, err)
		return
	}

	c.JSON(http.StatusOK, cfg)
}
