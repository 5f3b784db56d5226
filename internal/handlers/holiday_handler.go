package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VoltarSoftware/salon-agenda/internal/httperr"
	"github.com/VoltarSoftware/salon-agenda/internal/middleware"
	ucAgenda "github.com/VoltarSoftware/salon-agenda/internal/usecase/agenda"
)

type HolidayHandler struct {
	listUC   *ucAgenda.ListHolidays
	createUC *ucAgenda.CreateHoliday
}

func NewHolidayHandler(
	listUC *ucAgenda.ListHolidays,
	createUC *ucAgenda.CreateHoliday,
) *HolidayHandler {
	return &HolidayHandler{
		listUC:   listUC,
		createUC: createUC,
	}
}

type CreateHolidayRequest struct {
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Description string `json:"description"`
}

func (h *HolidayHandler) List(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextUserID).(uint)

	holidays, err := h.listUC.Execute(c.Request.Context(), professionalID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_holidays", "Erro ao listar feriados.")
		return
	}

	c.JSON(http.StatusOK, holidays)
}

func (h *HolidayHandler) Create(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req CreateHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	holiday, err := h.createUC.Execute(
		c.Request.Context(),
		ucAgenda.CreateHolidayInput{
			SalonID:        salonID,
			ProfessionalID: professionalID,
			Date:           req.Date,
			Description:    req.Description,
		},
	)
	if err != nil {
		writeAgendaError(c, err)
		return
	}

	c.JSON(http.StatusCreated, holiday)
}

// Delete não existe no backend. Responder 501 deixa claro para o
// console que é ausência de suporte, não falha transitória.
func (h *HolidayHandler) Delete(c *gin.Context) {
	httperr.NotImplemented(
		c,
		"unsupported_operation",
		"Exclusão de feriado ainda não é suportada.",
	)
}
