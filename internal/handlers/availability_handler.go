package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VoltarSoftware/salon-agenda/internal/httperr"
	"github.com/VoltarSoftware/salon-agenda/internal/middleware"
	"github.com/VoltarSoftware/salon-agenda/internal/models"
	ucAgenda "github.com/VoltarSoftware/salon-agenda/internal/usecase/agenda"
)

type AvailabilityHandler struct {
	db *gorm.DB
	uc *ucAgenda.GetAvailability
}

func NewAvailabilityHandler(db *gorm.DB, uc *ucAgenda.GetAvailability) *AvailabilityHandler {
	return &AvailabilityHandler{db: db, uc: uc}
}

// Get calcula os slots do profissional logado para um dia:
// GET /me/availability?date=2026-03-10
func (h *AvailabilityHandler) Get(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextUserID).(uint)
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		httperr.Internal(c, "salon_not_found", "Salão não encontrado.")
		return
	}

	date, err := parseDateInSalon(&salon, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	slots, err := h.uc.Execute(
		c.Request.Context(),
		ucAgenda.GetAvailabilityInput{
			SalonID:        salonID,
			ProfessionalID: professionalID,
			Date:           date,
		},
	)
	if err != nil {
		httperr.Internal(c, "availability_failed", "Erro ao calcular horários.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}
