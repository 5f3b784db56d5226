package agendaview

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/VoltarSoftware/salon-agenda/internal/domain/agenda"
	"github.com/VoltarSoftware/salon-agenda/internal/models"
)

func weekFilter(startDay int) domain.QueryFilter {
	return domain.QueryFilter{
		From: time.Date(2025, 3, startDay, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 3, startDay+7, 0, 0, 0, 0, time.UTC),
	}
}

func fixedLoader(aps []models.Appointment, calls *int32) LoaderFunc {
	return func(ctx context.Context, salonID uint, f domain.QueryFilter) ([]models.Appointment, error) {
		atomic.AddInt32(calls, 1)
		return aps, nil
	}
}

func TestStoreLoad_PublishesEvents(t *testing.T) {
	aps := []models.Appointment{
		{ID: 1, Title: "Corte", Status: "confirmed"},
		{ID: 2, Title: "Barba", Status: "pending"},
	}
	var calls int32
	store := NewStore(fixedLoader(aps, &calls), 1)

	events, err := store.Load(context.Background(), weekFilter(10))

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, uint(1), events[0].ID)
	assert.Equal(t, int32(1), calls)
	assert.Equal(t, events, store.Events())
}

func TestStoreLoad_SameWindowSkipsReload(t *testing.T) {
	var calls int32
	store := NewStore(fixedLoader([]models.Appointment{{ID: 1, Status: "confirmed"}}, &calls), 1)

	_, err := store.Load(context.Background(), weekFilter(10))
	require.NoError(t, err)

	// mesma janela deslocada em poucas horas: dentro da tolerância
	shifted := weekFilter(10)
	shifted.From = shifted.From.Add(2 * time.Hour)

	events, err := store.Load(context.Background(), shifted)

	require.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, int32(1), calls, "recarga da mesma janela deveria ser pulada")
}

func TestStoreLoad_DifferentWindowReloads(t *testing.T) {
	var calls int32
	store := NewStore(fixedLoader(nil, &calls), 1)

	_, err := store.Load(context.Background(), weekFilter(3))
	require.NoError(t, err)

	_, err = store.Load(context.Background(), weekFilter(17))
	require.NoError(t, err)

	assert.Equal(t, int32(2), calls)
}

func TestStoreLoad_DifferentFiltersSameWindowReloads(t *testing.T) {
	var calls int32
	store := NewStore(fixedLoader(nil, &calls), 1)

	plain := weekFilter(10)
	_, err := store.Load(context.Background(), plain)
	require.NoError(t, err)

	filtered := weekFilter(10)
	filtered.Statuses = []domain.Status{domain.StatusConfirmed}
	_, err = store.Load(context.Background(), filtered)
	require.NoError(t, err)

	assert.Equal(t, int32(2), calls)
}

func TestStoreLoad_LastLoadWins(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var calls int32

	loader := func(ctx context.Context, salonID uint, f domain.QueryFilter) ([]models.Appointment, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			// primeira carga fica presa até a segunda terminar
			close(started)
			<-release
			return []models.Appointment{{ID: 1, Title: "stale", Status: "confirmed"}}, nil
		}
		return []models.Appointment{{ID: 2, Title: "fresh", Status: "confirmed"}}, nil
	}

	store := NewStore(loader, 1)

	type result struct {
		events []domain.CalendarEvent
		err    error
	}
	slow := make(chan result, 1)

	go func() {
		events, err := store.Load(context.Background(), weekFilter(3))
		slow <- result{events, err}
	}()

	<-started

	// segunda carga (outra janela) completa enquanto a primeira está presa
	events, err := store.Load(context.Background(), weekFilter(17))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "fresh", events[0].Title)

	close(release)
	got := <-slow

	// a primeira chegou depois, mas perdeu a corrida: resultado descartado
	require.ErrorIs(t, got.err, ErrSuperseded)
	assert.Nil(t, got.events)

	// o estado publicado continua sendo o da carga vencedora
	published := store.Events()
	require.Len(t, published, 1)
	assert.Equal(t, "fresh", published[0].Title)
}

func TestStoreUpdate_ReplacesAndReprojects(t *testing.T) {
	var calls int32
	store := NewStore(fixedLoader([]models.Appointment{
		{ID: 1, Title: "Corte", Status: "confirmed"},
	}, &calls), 1)

	_, err := store.Load(context.Background(), weekFilter(10))
	require.NoError(t, err)

	store.Update(models.Appointment{ID: 1, Title: "Corte", Status: "completed"})

	events := store.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "completed", events[0].Status)
	assert.False(t, events[0].Draggable)

	// id novo entra na lista em vez de substituir
	store.Update(models.Appointment{ID: 9, Title: "Barba", Status: "pending"})
	assert.Len(t, store.Events(), 2)
}

func TestStoreUpdate_NoopBeforeFirstLoad(t *testing.T) {
	var calls int32
	store := NewStore(fixedLoader(nil, &calls), 1)

	store.Update(models.Appointment{ID: 1, Status: "confirmed"})

	assert.Empty(t, store.Events())
}

func TestStoreClear_ForcesReload(t *testing.T) {
	var calls int32
	store := NewStore(fixedLoader(nil, &calls), 1)

	_, err := store.Load(context.Background(), weekFilter(10))
	require.NoError(t, err)

	store.Clear()
	assert.Empty(t, store.Events())

	_, err = store.Load(context.Background(), weekFilter(10))
	require.NoError(t, err)

	assert.Equal(t, int32(2), calls)
}

func TestRegistry_OneStorePerProfessional(t *testing.T) {
	var calls int32
	registry := NewRegistry(fixedLoader(nil, &calls))

	a := registry.For(1, 10)
	b := registry.For(1, 20)

	assert.Same(t, a, registry.For(1, 10))
	assert.NotSame(t, a, b)
}
