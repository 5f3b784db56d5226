package agenda

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VoltarSoftware/salon-agenda/internal/models"
)

func weekdayConfig() *models.AgendaConfig {
	return &models.AgendaConfig{
		WorkingDays:     "1,2,3,4,5",
		WorkStart:       "09:00",
		WorkEnd:         "18:00",
		SlotDurationMin: 30,
	}
}

// terça-feira
var tuesday = time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)

// domingo
var sunday = time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)

func TestComputeSlots_FullWorkday(t *testing.T) {
	slots := ComputeSlots(AvailabilityInput{
		Date:   tuesday,
		Config: weekdayConfig(),
	})

	// 09:00–18:00 em janelas de 30min = 18 slots
	require.Len(t, slots, 18)

	assert.Equal(t, at(9, 0), slots[0].Start)
	assert.Equal(t, at(9, 30), slots[0].End)
	assert.Equal(t, at(17, 30), slots[17].Start)
	assert.Equal(t, at(18, 0), slots[17].End)

	// contíguos, sem sobreposição, ordem crescente
	for i := 1; i < len(slots); i++ {
		assert.Equal(t, slots[i-1].End, slots[i].Start)
	}
	for _, s := range slots {
		assert.False(t, s.Occupied)
	}
}

func TestComputeSlots_PartialLastSlotDropped(t *testing.T) {
	cfg := weekdayConfig()
	cfg.WorkEnd = "17:45"

	slots := ComputeSlots(AvailabilityInput{Date: tuesday, Config: cfg})

	// a janela 17:30–18:00 nao cabe em 17:45; o resto de 15min some
	require.Len(t, slots, 17)
	assert.Equal(t, at(17, 30), slots[16].End)
}

func TestComputeSlots_BlockedWeekday(t *testing.T) {
	slots := ComputeSlots(AvailabilityInput{
		Date:   sunday,
		Config: weekdayConfig(),
	})

	assert.Empty(t, slots)
}

func TestComputeSlots_BlockedWeekdayWithOverride(t *testing.T) {
	cfg := weekdayConfig()
	cfg.AllowBookingOnBlockedDay = true

	slots := ComputeSlots(AvailabilityInput{Date: sunday, Config: cfg})

	assert.Len(t, slots, 18)
}

func TestComputeSlots_HolidayAlwaysBlocks(t *testing.T) {
	cfg := weekdayConfig()
	cfg.AllowBookingOnBlockedDay = true

	slots := ComputeSlots(AvailabilityInput{
		Date:      tuesday,
		Config:    cfg,
		IsHoliday: true,
	})

	// feriado bloqueia mesmo com allow_booking_on_blocked_day
	assert.Empty(t, slots)
}

func TestComputeSlots_OccupiedExcludedByDefault(t *testing.T) {
	appointments := []models.Appointment{
		{ID: 1, StartTime: at(10, 0), EndTime: at(10, 30), Status: string(StatusConfirmed)},
	}

	slots := ComputeSlots(AvailabilityInput{
		Date:         tuesday,
		Config:       weekdayConfig(),
		Appointments: appointments,
	})

	require.Len(t, slots, 17)
	for _, s := range slots {
		assert.False(t, s.Start.Equal(at(10, 0)), "slot ocupado nao deveria aparecer")
	}
}

func TestComputeSlots_OverbookingKeepsOccupiedFlagged(t *testing.T) {
	cfg := weekdayConfig()
	cfg.AllowOverbooking = true

	appointments := []models.Appointment{
		{ID: 1, StartTime: at(10, 0), EndTime: at(10, 30), Status: string(StatusConfirmed)},
	}

	slots := ComputeSlots(AvailabilityInput{
		Date:         tuesday,
		Config:       cfg,
		Appointments: appointments,
	})

	require.Len(t, slots, 18)

	var occupied int
	for _, s := range slots {
		if s.Occupied {
			occupied++
			assert.Equal(t, at(10, 0), s.Start)
		}
	}
	assert.Equal(t, 1, occupied)
}

func TestComputeSlots_TerminalAppointmentFreesSlot(t *testing.T) {
	appointments := []models.Appointment{
		{ID: 1, StartTime: at(10, 0), EndTime: at(10, 30), Status: string(StatusCancelled)},
	}

	slots := ComputeSlots(AvailabilityInput{
		Date:         tuesday,
		Config:       weekdayConfig(),
		Appointments: appointments,
	})

	assert.Len(t, slots, 18)
}

func TestValidateCandidate(t *testing.T) {
	now := at(9, 0)

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		advance  int
		wantCode string
	}{
		{"valido", at(10, 0), at(10, 30), 0, ""},
		{"range invertido", at(11, 0), at(10, 0), 0, "invalid_range"},
		{"inicio igual ao fim", at(10, 0), at(10, 0), 0, "invalid_range"},
		{"curto demais", at(10, 0), at(10, 0).Add(30 * time.Second), 0, "too_short"},
		{"no passado", at(8, 0), at(8, 30), 0, "too_soon"},
		{"dentro da antecedencia minima", at(9, 20), at(9, 50), 30, "too_soon"},
		{"fora da antecedencia minima", at(9, 40), at(10, 10), 30, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCandidate(tt.start, tt.end, now, tt.advance)
			if tt.wantCode == "" {
				require.NoError(t, err)
				return
			}
			var ve ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantCode, ve.Code)
		})
	}
}
