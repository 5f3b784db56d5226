package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/VoltarSoftware/salon-agenda/internal/domain/agenda"
	"github.com/VoltarSoftware/salon-agenda/internal/httperr"
	"github.com/VoltarSoftware/salon-agenda/internal/models"
	"github.com/VoltarSoftware/salon-agenda/internal/timezone"
)

// --------------------------------------------------
// Timezone centralizado por salão
// --------------------------------------------------

func locationFromSalon(salon *models.Salon) *time.Location {
	if salon != nil {
		return timezone.Location(salon.Timezone)
	}
	return timezone.Location("")
}

func parseDateInSalon(salon *models.Salon, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		locationFromSalon(salon),
	)
}

// parseInstant aceita RFC3339 ("2026-03-10T14:00:00Z") — o formato
// que o console manda para startDateTime/endDateTime
func parseInstant(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// --------------------------------------------------
// Mapeamento de erros de domínio para HTTP
// --------------------------------------------------

// writeAgendaError converte a taxonomia do domínio na resposta JSON:
// validação local → 400, transição ilegal → 400, regras de negócio →
// 400/404/409, resto → 500 (erro remoto, estado local intacto).
func writeAgendaError(c *gin.Context, err error) {
	var vErr domain.ValidationError
	if errors.As(err, &vErr) {
		httperr.BadRequest(c, vErr.Code, vErr.Message)
		return
	}

	var tErr domain.TransitionError
	if errors.As(err, &tErr) {
		httperr.BadRequest(c, "invalid_transition", tErr.Error())
		return
	}

	var bErr httperr.BusinessError
	if errors.As(err, &bErr) {
		switch bErr.Code {
		case "appointment_not_found":
			httperr.NotFound(c, bErr.Code, "Agendamento não encontrado.")
		case "time_conflict":
			httperr.Write(c, 409, bErr.Code, "Conflito de horário.")
		case "holiday":
			httperr.BadRequest(c, bErr.Code, "Dia bloqueado por feriado.")
		case "outside_working_days":
			httperr.BadRequest(c, bErr.Code, "Dia fora do expediente.")
		case "outside_working_hours":
			httperr.BadRequest(c, bErr.Code, "Horário fora do expediente.")
		case "service_not_found":
			httperr.BadRequest(c, bErr.Code, "Serviço não encontrado.")
		case "room_not_found":
			httperr.BadRequest(c, bErr.Code, "Sala não encontrada.")
		default:
			httperr.BadRequest(c, bErr.Code, "Operação inválida.")
		}
		return
	}

	httperr.Internal(c, "internal_error", "Erro interno.")
}
