package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VoltarSoftware/salon-agenda/internal/agendaview"
	"github.com/VoltarSoftware/salon-agenda/internal/httperr"
	"github.com/VoltarSoftware/salon-agenda/internal/httpresp"
	"github.com/VoltarSoftware/salon-agenda/internal/middleware"
)

// AgendaViewHandler serve o feed do calendário através do Store:
// recarga da mesma janela é deduplicada e cargas concorrentes seguem
// "última vence".
type AgendaViewHandler struct {
	registry *agendaview.Registry
}

func NewAgendaViewHandler(registry *agendaview.Registry) *AgendaViewHandler {
	return &AgendaViewHandler{registry: registry}
}

// GET /me/agenda/view?from&to&professional_id[]&status[]
func (h *AgendaViewHandler) Get(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	professionalID := c.MustGet(middleware.ContextUserID).(uint)

	filter, err := parseQueryFilter(c)
	if err != nil {
		writeAgendaError(c, err)
		return
	}

	store := h.registry.For(salonID, professionalID)

	events, err := store.Load(c.Request.Context(), filter)
	if err != nil {
		// outra carga passou na frente; o chamador desta não mostra nada
		if errors.Is(err, agendaview.ErrSuperseded) {
			c.Status(http.StatusNoContent)
			return
		}
		httperr.Internal(c, "failed_to_load_agenda", "Erro ao carregar agenda.")
		return
	}

	httpresp.List(c, events)
}

// DELETE /me/agenda/view — descarta o estado carregado
func (h *AgendaViewHandler) Clear(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	professionalID := c.MustGet(middleware.ContextUserID).(uint)

	h.registry.For(salonID, professionalID).Clear()
	c.Status(http.StatusNoContent)
}
