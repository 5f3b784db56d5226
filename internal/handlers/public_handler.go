package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VoltarSoftware/salon-agenda/internal/httperr"
	"github.com/VoltarSoftware/salon-agenda/internal/models"
	ucAgenda "github.com/VoltarSoftware/salon-agenda/internal/usecase/agenda"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db             *gorm.DB
	availabilityUC *ucAgenda.GetAvailability
	createUC       *ucAgenda.CreateAppointment
}

func NewPublicHandler(
	db *gorm.DB,
	availabilityUC *ucAgenda.GetAvailability,
	createUC *ucAgenda.CreateAppointment,
) *PublicHandler {
	return &PublicHandler{
		db:             db,
		availabilityUC: availabilityUC,
		createUC:       createUC,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateAppointmentRequest struct {
	ClientName    string `json:"client_name" binding:"required"`
	ClientPhone   string `json:"client_phone" binding:"required"`
	ClientEmail   string `json:"client_email"`
	ServiceID     uint   `json:"service_id" binding:"required"`
	StartDateTime string `json:"start_date_time" binding:"required"` // RFC3339
	Notes         string `json:"notes"`
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	slug := c.Param("slug")

	var salon models.Salon
	if err := h.db.Where("slug = ?", slug).First(&salon).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salão não encontrado.")
		return
	}

	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.Where("salon_id = ? AND active = true", salon.ID)

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"salon":    salon,
		"services": services,
	})
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	slug := c.Param("slug")
	dateStr := c.Query("date")

	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	var salon models.Salon
	if err := h.db.Where("slug = ?", slug).First(&salon).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salão não encontrado.")
		return
	}

	professional, err := h.findProfessional(&salon)
	if err != nil {
		httperr.BadRequest(c, "professional_not_found", "Profissional não encontrado.")
		return
	}

	date, err := parseDateInSalon(&salon, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	slots, err := h.availabilityUC.Execute(
		c.Request.Context(),
		ucAgenda.GetAvailabilityInput{
			SalonID:        salon.ID,
			ProfessionalID: professional.ID,
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

////////////////////////////////////////////////////////
// CREATE APPOINTMENT (reserva externa → nasce pending)
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	slug := c.Param("slug")

	var salon models.Salon
	if err := h.db.Where("slug = ?", slug).First(&salon).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salão não encontrado.")
		return
	}

	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	professional, err := h.findProfessional(&salon)
	if err != nil {
		httperr.BadRequest(c, "professional_not_found", "Profissional não encontrado.")
		return
	}

	start, err := parseInstant(req.StartDateTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	serviceID := req.ServiceID

	out, err := h.createUC.Execute(
		c.Request.Context(),
		ucAgenda.CreateAppointmentInput{
			SalonID:        salon.ID,
			ProfessionalID: professional.ID,
			Public:         true,
			Start:          start,
			ClientName:     req.ClientName,
			ClientPhone:    req.ClientPhone,
			ClientEmail:    req.ClientEmail,
			ServiceID:      &serviceID,
			Notes:          req.Notes,
		},
	)
	if err != nil {
		writeAgendaError(c, err)
		return
	}

	c.JSON(http.StatusCreated, out.Appointment)
}

func (h *PublicHandler) findProfessional(salon *models.Salon) (*models.User, error) {
	var professional models.User
	if err := h.db.
		Where("salon_id = ? AND role = ?", salon.ID, "owner").
		First(&professional).Error; err != nil {
		return nil, err
	}
	return &professional, nil
}
