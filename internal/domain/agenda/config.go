package agenda

import (
	"strconv"
	"strings"
	"time"

	"github.com/VoltarSoftware/salon-agenda/internal/models"
)

// ===============================
// AgendaConfig — regras de domínio
// ===============================

// ParseWorkingDays lê o CSV "1,2,3,4,5" do config para um set de weekdays
func ParseWorkingDays(csv string) map[time.Weekday]bool {
	days := make(map[time.Weekday]bool)
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := strconv.Atoi(part)
		if err != nil || d < 0 || d > 6 {
			continue
		}
		days[time.Weekday(d)] = true
	}
	return days
}

// FormatWorkingDays serializa o set de volta para CSV ordenado
func FormatWorkingDays(days []int) string {
	seen := make(map[int]bool)
	var out []string
	for d := 0; d <= 6; d++ {
		for _, v := range days {
			if v == d && !seen[d] {
				seen[d] = true
				out = append(out, strconv.Itoa(d))
			}
		}
	}
	return strings.Join(out, ",")
}

// WorksOn diz se o weekday faz parte dos dias de atendimento
func WorksOn(cfg *models.AgendaConfig, day time.Weekday) bool {
	return ParseWorkingDays(cfg.WorkingDays)[day]
}

// ValidateConfig garante os invariantes do config antes de persistir
func ValidateConfig(cfg *models.AgendaConfig) error {
	start, err := time.Parse("15:04", cfg.WorkStart)
	if err != nil {
		return ErrValidation("invalid_work_start", "Hora inicial inválida.")
	}
	end, err := time.Parse("15:04", cfg.WorkEnd)
	if err != nil {
		return ErrValidation("invalid_work_end", "Hora final inválida.")
	}
	if !start.Before(end) {
		return ErrValidation("work_window_inverted", "Expediente deve começar antes de terminar.")
	}
	if cfg.SlotDurationMin <= 0 {
		return ErrValidation("invalid_slot_duration", "Duração do slot deve ser positiva.")
	}
	return nil
}

// WorkWindow ancora workStart/workEnd no dia informado, no timezone do dia
func WorkWindow(cfg *models.AgendaConfig, date time.Time) (time.Time, time.Time) {
	loc := date.Location()

	parseHM := func(hm string) time.Time {
		t, _ := time.Parse("15:04", hm)
		return time.Date(
			date.Year(), date.Month(), date.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		)
	}

	return parseHM(cfg.WorkStart), parseHM(cfg.WorkEnd)
}
