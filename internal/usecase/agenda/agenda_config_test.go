package agenda

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/VoltarSoftware/salon-agenda/internal/domain/agenda"
)

func TestGetAgendaConfig_FirstAccessPersistsDefault(t *testing.T) {
	repo := &stubRepo{salon: testSalon()}
	uc := NewGetAgendaConfig(repo)

	cfg, err := uc.Execute(context.Background(), 1, 3)

	require.NoError(t, err)
	assert.Equal(t, "1,2,3,4,5", cfg.WorkingDays)
	assert.Equal(t, "09:00", cfg.WorkStart)
	assert.Equal(t, "18:00", cfg.WorkEnd)
	assert.Equal(t, 30, cfg.SlotDurationMin)
	assert.True(t, cfg.WarnOnOverbook)
	assert.Same(t, cfg, repo.savedConfig)
}

func TestGetAgendaConfig_ExistingConfigIsReturnedAsIs(t *testing.T) {
	existing := allDaysConfig()
	repo := &stubRepo{salon: testSalon(), cfg: existing}
	uc := NewGetAgendaConfig(repo)

	cfg, err := uc.Execute(context.Background(), 1, 3)

	require.NoError(t, err)
	assert.Same(t, existing, cfg)
	assert.Nil(t, repo.savedConfig)
}

func TestUpdateAgendaConfig_PatchesOnlyProvidedFields(t *testing.T) {
	repo := &stubRepo{salon: testSalon(), cfg: allDaysConfig()}
	uc := NewUpdateAgendaConfig(repo, nil)

	slot := 45
	overbook := true

	cfg, err := uc.Execute(context.Background(), 1, 3, UpdateAgendaConfigInput{
		WorkingDays:      []int{2, 4, 6},
		SlotDurationMin:  &slot,
		AllowOverbooking: &overbook,
	})

	require.NoError(t, err)
	assert.Equal(t, "2,4,6", cfg.WorkingDays)
	assert.Equal(t, 45, cfg.SlotDurationMin)
	assert.True(t, cfg.AllowOverbooking)
	// não informados ficam como estavam
	assert.Equal(t, "09:00", cfg.WorkStart)
	assert.Equal(t, "18:00", cfg.WorkEnd)
	assert.Same(t, cfg, repo.savedConfig)
}

func TestUpdateAgendaConfig_RejectsInvertedWindow(t *testing.T) {
	repo := &stubRepo{salon: testSalon(), cfg: allDaysConfig()}
	uc := NewUpdateAgendaConfig(repo, nil)

	start := "19:00"

	_, err := uc.Execute(context.Background(), 1, 3, UpdateAgendaConfigInput{
		WorkStart: &start,
	})

	var ve domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "work_window_inverted", ve.Code)
	assert.Nil(t, repo.savedConfig)
}

func TestUpdateAgendaConfig_RejectsBadSlotDuration(t *testing.T) {
	repo := &stubRepo{salon: testSalon(), cfg: allDaysConfig()}
	uc := NewUpdateAgendaConfig(repo, nil)

	slot := 0

	_, err := uc.Execute(context.Background(), 1, 3, UpdateAgendaConfigInput{
		SlotDurationMin: &slot,
	})

	var ve domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "invalid_slot_duration", ve.Code)
}
