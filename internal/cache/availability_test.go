package cache

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VoltarSoftware/salon-agenda/internal/domain/agenda"
)

func testCache(t *testing.T) (*AvailabilityCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewAvailabilityCache(NewRedisClient(mr.Addr())), mr
}

func sampleSlots() []agenda.Slot {
	start := time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC)
	return []agenda.Slot{
		{Start: start, End: start.Add(30 * time.Minute)},
		{Start: start.Add(30 * time.Minute), End: start.Add(time.Hour), Occupied: true},
	}
}

func TestAvailabilityCache_SetThenGet(t *testing.T) {
	c, _ := testCache(t)
	ctx := context.Background()

	c.Set(ctx, 7, "2025-03-11", sampleSlots())

	got, ok := c.Get(ctx, 7, "2025-03-11")
	require.True(t, ok)
	require.Len(t, got, 2)
	assert.False(t, got[0].Occupied)
	assert.True(t, got[1].Occupied)
	assert.True(t, got[0].Start.Equal(sampleSlots()[0].Start))
}

func TestAvailabilityCache_MissOnUnknownKey(t *testing.T) {
	c, _ := testCache(t)

	_, ok := c.Get(context.Background(), 7, "2025-03-11")
	assert.False(t, ok)
}

func TestAvailabilityCache_KeysAreScopedPerProfessionalAndDay(t *testing.T) {
	c, _ := testCache(t)
	ctx := context.Background()

	c.Set(ctx, 7, "2025-03-11", sampleSlots())

	_, ok := c.Get(ctx, 8, "2025-03-11")
	assert.False(t, ok, "outro profissional nao deveria enxergar o cache")

	_, ok = c.Get(ctx, 7, "2025-03-12")
	assert.False(t, ok, "outro dia nao deveria enxergar o cache")
}

func TestAvailabilityCache_Invalidate(t *testing.T) {
	c, _ := testCache(t)
	ctx := context.Background()

	c.Set(ctx, 7, "2025-03-11", sampleSlots())
	c.Invalidate(ctx, 7, "2025-03-11")

	_, ok := c.Get(ctx, 7, "2025-03-11")
	assert.False(t, ok)
}

func TestAvailabilityCache_ExpiresAfterTTL(t *testing.T) {
	c, mr := testCache(t)
	ctx := context.Background()

	c.Set(ctx, 7, "2025-03-11", sampleSlots())

	mr.FastForward(6 * time.Minute)

	_, ok := c.Get(ctx, 7, "2025-03-11")
	assert.False(t, ok)
}

func TestAvailabilityCache_CorruptPayloadIsAMiss(t *testing.T) {
	c, mr := testCache(t)

	require.NoError(t, mr.Set("agenda:slots:7:2025-03-11", "{not json"))

	_, ok := c.Get(context.Background(), 7, "2025-03-11")
	assert.False(t, ok)
}

func TestAvailabilityCache_RedisDownIsAMiss(t *testing.T) {
	c, mr := testCache(t)

	c.Set(context.Background(), 7, "2025-03-11", sampleSlots())
	mr.Close()

	_, ok := c.Get(context.Background(), 7, "2025-03-11")
	assert.False(t, ok)
}
