package agenda

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/VoltarSoftware/salon-agenda/internal/domain/agenda"
)

func TestTransitionAppointment_HappyPath(t *testing.T) {
	ap := existingAppointment("in_progress")
	repo := &stubRepo{salon: testSalon(), appointment: ap}
	cache := &stubCache{}
	uc := NewTransitionAppointment(repo, cache, nil)

	got, err := uc.Execute(context.Background(), 1, 3, 10, domain.StatusCompleted)

	require.NoError(t, err)
	assert.Equal(t, "completed", got.Status)
	require.NotNil(t, got.CompletedAt)
	require.NotNil(t, repo.updated)

	// status terminal libera o horário: cache do dia cai
	assert.Len(t, cache.invalidated, 1)
}

func TestTransitionAppointment_CancellationStampsTimestamp(t *testing.T) {
	ap := existingAppointment("confirmed")
	repo := &stubRepo{salon: testSalon(), appointment: ap}
	uc := NewTransitionAppointment(repo, nil, nil)

	got, err := uc.Execute(context.Background(), 1, 3, 10, domain.StatusCancelled)

	require.NoError(t, err)
	require.NotNil(t, got.CancelledAt)
	assert.Nil(t, got.CompletedAt)
}

func TestTransitionAppointment_InvalidTransition(t *testing.T) {
	ap := existingAppointment("pending")
	repo := &stubRepo{salon: testSalon(), appointment: ap}
	uc := NewTransitionAppointment(repo, nil, nil)

	_, err := uc.Execute(context.Background(), 1, 3, 10, domain.StatusCompleted)

	var te domain.TransitionError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, domain.StatusPending, te.From)
	assert.Nil(t, repo.updated)
}

func TestTransitionAppointment_TerminalIsFinal(t *testing.T) {
	ap := existingAppointment("completed")
	repo := &stubRepo{salon: testSalon(), appointment: ap}
	uc := NewTransitionAppointment(repo, nil, nil)

	_, err := uc.Execute(context.Background(), 1, 3, 10, domain.StatusConfirmed)

	require.Error(t, err)
	assert.Equal(t, "completed", ap.Status)
}

func TestTransitionAppointment_NotFound(t *testing.T) {
	repo := &stubRepo{salon: testSalon()}
	uc := NewTransitionAppointment(repo, nil, nil)

	_, err := uc.Execute(context.Background(), 1, 3, 999, domain.StatusCancelled)

	requireBusinessCode(t, err, "appointment_not_found")
}
