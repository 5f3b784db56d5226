package agenda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VoltarSoftware/salon-agenda/internal/models"
)

func sampleAppointment(status Status) *models.Appointment {
	serviceID := uint(7)
	return &models.Appointment{
		ID:             42,
		PublicRef:      "3f1c2a9e-0000-0000-0000-000000000000",
		ProfessionalID: 3,
		ClientID:       9,
		ServiceID:      &serviceID,
		Title:          "Corte + barba",
		StartTime:      at(10, 0),
		EndTime:        at(11, 0),
		Status:         string(status),
		Notes:          "cliente prefere máquina 2",
	}
}

func TestProject_CopiesFields(t *testing.T) {
	ap := sampleAppointment(StatusConfirmed)

	ev := Project(ap)

	assert.Equal(t, ap.ID, ev.ID)
	assert.Equal(t, ap.PublicRef, ev.PublicRef)
	assert.Equal(t, ap.Title, ev.Title)
	assert.Equal(t, ap.StartTime, ev.Start)
	assert.Equal(t, ap.EndTime, ev.End)
	assert.Equal(t, ap.Status, ev.Status)
	assert.Equal(t, ap.ProfessionalID, ev.ProfessionalID)
	assert.Equal(t, ap.ServiceID, ev.ServiceID)
	assert.Equal(t, ap.Notes, ev.Notes)
	assert.Same(t, ap, ev.Meta)
}

func TestProject_Idempotent(t *testing.T) {
	ap := sampleAppointment(StatusCheckedIn)

	first := Project(ap)
	second := Project(ap)

	assert.Equal(t, first, second)
}

func TestProject_StatusColors(t *testing.T) {
	tests := []struct {
		status      Status
		wantPrimary string
	}{
		{StatusPending, "#e3bc08"},
		{StatusConfirmed, "#1e90ff"},
		{StatusCheckedIn, "#17a2b8"},
		{StatusInProgress, "#6f42c1"},
		{StatusCompleted, "#28a745"},
		{StatusCancelled, "#ad2121"},
		{StatusNoShow, "#fd7e14"},
		{StatusRescheduled, "#6c757d"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			ev := Project(sampleAppointment(tt.status))
			assert.Equal(t, tt.wantPrimary, ev.Color.Primary)
			assert.NotEmpty(t, ev.Color.Secondary)
		})
	}
}

func TestProject_UnknownStatusFallsBackToNeutralBlue(t *testing.T) {
	ev := Project(sampleAppointment(Status("legacy_state")))

	assert.Equal(t, "#1e90ff", ev.Color.Primary)
	assert.Equal(t, "cal-status-unknown", ev.CssClass)
}

func TestProject_TerminalEventsAreLocked(t *testing.T) {
	for _, s := range []Status{StatusCompleted, StatusCancelled, StatusNoShow} {
		ev := Project(sampleAppointment(s))

		assert.False(t, ev.Draggable, "status %s", s)
		assert.False(t, ev.Resizable.BeforeStart, "status %s", s)
		assert.False(t, ev.Resizable.AfterEnd, "status %s", s)
	}

	for _, s := range []Status{StatusPending, StatusConfirmed, StatusInProgress} {
		ev := Project(sampleAppointment(s))

		assert.True(t, ev.Draggable, "status %s", s)
		assert.True(t, ev.Resizable.BeforeStart, "status %s", s)
		assert.True(t, ev.Resizable.AfterEnd, "status %s", s)
	}
}

func TestProjectAll_PreservesOrder(t *testing.T) {
	aps := []models.Appointment{
		{ID: 1, StartTime: at(9, 0), EndTime: at(9, 30), Status: string(StatusConfirmed)},
		{ID: 2, StartTime: at(10, 0), EndTime: at(10, 30), Status: string(StatusPending)},
		{ID: 3, StartTime: at(11, 0), EndTime: at(11, 30), Status: string(StatusCompleted)},
	}

	events := ProjectAll(aps)

	require.Len(t, events, 3)
	assert.Equal(t, uint(1), events[0].ID)
	assert.Equal(t, uint(2), events[1].ID)
	assert.Equal(t, uint(3), events[2].ID)

	assert.Empty(t, ProjectAll(nil))
}
