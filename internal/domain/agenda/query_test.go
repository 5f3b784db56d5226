package agenda

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryFilterValues(t *testing.T) {
	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)

	t.Run("datas em RFC3339", func(t *testing.T) {
		v := QueryFilter{From: from, To: to}.Values()

		assert.Equal(t, "2025-03-10T00:00:00Z", v.Get("from"))
		assert.Equal(t, "2025-03-17T00:00:00Z", v.Get("to"))
	})

	t.Run("datas normalizadas para UTC", func(t *testing.T) {
		loc, err := time.LoadLocation("America/Sao_Paulo")
		require.NoError(t, err)

		v := QueryFilter{
			From: time.Date(2025, 3, 10, 9, 0, 0, 0, loc),
			To:   to,
		}.Values()

		assert.Equal(t, "2025-03-10T12:00:00Z", v.Get("from"))
	})

	t.Run("listas vazias sao omitidas", func(t *testing.T) {
		v := QueryFilter{From: from, To: to}.Values()

		_, hasProfessional := v["professional_id"]
		_, hasStatus := v["status"]
		assert.False(t, hasProfessional)
		assert.False(t, hasStatus)
	})

	t.Run("listas preenchidas viram valores repetidos", func(t *testing.T) {
		v := QueryFilter{
			From:            from,
			To:              to,
			ProfessionalIDs: []uint{3, 7},
			Statuses:        []Status{StatusConfirmed, StatusPending},
		}.Values()

		assert.Equal(t, []string{"3", "7"}, v["professional_id"])
		assert.Equal(t, []string{"confirmed", "pending"}, v["status"])
	})
}

func TestQueryFilterSameRange(t *testing.T) {
	base := QueryFilter{
		From: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC),
	}

	t.Run("range identico", func(t *testing.T) {
		assert.True(t, base.SameRange(base, RangeTolerance))
	})

	t.Run("dentro da tolerancia", func(t *testing.T) {
		other := QueryFilter{
			From: base.From.Add(6 * time.Hour),
			To:   base.To.Add(-3 * time.Hour),
		}
		assert.True(t, base.SameRange(other, RangeTolerance))
		assert.True(t, other.SameRange(base, RangeTolerance))
	})

	t.Run("exatamente na tolerancia", func(t *testing.T) {
		other := QueryFilter{
			From: base.From.Add(RangeTolerance),
			To:   base.To,
		}
		assert.True(t, base.SameRange(other, RangeTolerance))
	})

	t.Run("fora da tolerancia", func(t *testing.T) {
		other := QueryFilter{
			From: base.From.AddDate(0, 0, 7),
			To:   base.To.AddDate(0, 0, 7),
		}
		assert.False(t, base.SameRange(other, RangeTolerance))
	})
}

func TestQueryFilterValidate(t *testing.T) {
	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		filter   QueryFilter
		wantCode string
	}{
		{"valido", QueryFilter{From: from, To: to}, ""},
		{"sem from", QueryFilter{To: to}, "missing_range"},
		{"sem to", QueryFilter{From: from}, "missing_range"},
		{"invertido", QueryFilter{From: to, To: from}, "invalid_range"},
		{"status desconhecido", QueryFilter{From: from, To: to, Statuses: []Status{"nope"}}, "invalid_status"},
		{"status validos", QueryFilter{From: from, To: to, Statuses: []Status{StatusNoShow, StatusCheckedIn}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filter.Validate()
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
