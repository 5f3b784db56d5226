package agenda

import (
	"net/url"
	"strconv"
	"time"
)

// ===============================
// Agenda Query Filter
// ===============================

// RangeTolerance é a folga usada para deduplicar recargas do calendário:
// se o range visível mudou menos que isso, a recarga é pulada.
const RangeTolerance = 24 * time.Hour

// QueryFilter compõe o filtro normalizado da agenda: range de datas,
// profissionais e status.
type QueryFilter struct {
	From            time.Time
	To              time.Time
	ProfessionalIDs []uint
	Statuses        []Status
}

// Values serializa o filtro para query string. Datas saem em RFC3339
// (ISO-8601). Listas vazias são omitidas por completo: ausência de
// filtro, não "não casar com nada".
func (f QueryFilter) Values() url.Values {
	v := url.Values{}

	v.Set("from", f.From.UTC().Format(time.RFC3339))
	v.Set("to", f.To.UTC().Format(time.RFC3339))

	for _, id := range f.ProfessionalIDs {
		v.Add("professional_id", strconv.FormatUint(uint64(id), 10))
	}

	for _, s := range f.Statuses {
		v.Add("status", string(s))
	}

	return v
}

// SameRange diz se o range do outro filtro coincide com este dentro da
// tolerância — o guard que evita recarregar a mesma janela do calendário.
func (f QueryFilter) SameRange(other QueryFilter, tolerance time.Duration) bool {
	diffFrom := f.From.Sub(other.From)
	if diffFrom < 0 {
		diffFrom = -diffFrom
	}
	diffTo := f.To.Sub(other.To)
	if diffTo < 0 {
		diffTo = -diffTo
	}
	return diffFrom <= tolerance && diffTo <= tolerance
}

// Validate garante o invariante básico do range
func (f QueryFilter) Validate() error {
	if f.From.IsZero() || f.To.IsZero() {
		return ErrValidation("missing_range", "Range de datas obrigatório.")
	}
	if !f.From.Before(f.To) {
		return ErrValidation("invalid_range", "Data inicial deve vir antes da final.")
	}
	for _, s := range f.Statuses {
		if !s.IsValid() {
			return ErrValidation("invalid_status", "Status de filtro desconhecido.")
		}
	}
	return nil
}
