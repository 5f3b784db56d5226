package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/VoltarSoftware/salon-agenda/internal/domain/agenda"
)

// AvailabilityCache guarda os slots calculados por profissional+dia.
// Qualquer mutação de agendamento do profissional invalida o dia inteiro.
type AvailabilityCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAvailabilityCache(rdb *redis.Client) *AvailabilityCache {
	return &AvailabilityCache{
		rdb: rdb,
		ttl: 5 * time.Minute,
	}
}

func NewRedisClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: addr,
	})
}

func slotKey(professionalID uint, day string) string {
	return fmt.Sprintf("agenda:slots:%d:%s", professionalID, day)
}

// Get retorna os slots do dia, ou (nil, false) em cache miss.
// Erro de Redis é tratado como miss: cache nunca derruba a API.
func (c *AvailabilityCache) Get(
	ctx context.Context,
	professionalID uint,
	day string,
) ([]agenda.Slot, bool) {

	raw, err := c.rdb.Get(ctx, slotKey(professionalID, day)).Result()
	if err != nil {
		return nil, false
	}

	var slots []agenda.Slot
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}

	return slots, true
}

func (c *AvailabilityCache) Set(
	ctx context.Context,
	professionalID uint,
	day string,
	slots []agenda.Slot,
) {
	b, err := json.Marshal(slots)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, slotKey(professionalID, day), b, c.ttl)
}

func (c *AvailabilityCache) Invalidate(
	ctx context.Context,
	professionalID uint,
	day string,
) {
	c.rdb.Del(ctx, slotKey(professionalID, day))
}
