package agendaview

import (
	"context"
	"errors"
	"sync"

	domain "github.com/VoltarSoftware/salon-agenda/internal/domain/agenda"
	"github.com/VoltarSoftware/salon-agenda/internal/models"
)

// ErrSuperseded marca uma carga que perdeu a corrida para uma mais
// recente. O resultado dela foi descartado; quem chamou não deve
// apresentar nada.
var ErrSuperseded = errors.New("agenda load superseded by a newer one")

// LoaderFunc busca os agendamentos do filtro (normalmente o repositório)
type LoaderFunc func(ctx context.Context, salonID uint, filter domain.QueryFilter) ([]models.Appointment, error)

// Store é o dono único do estado carregado da agenda de um profissional:
// filtro corrente + agendamentos + projeção de eventos. Toda mutação
// passa por Load/Update/Clear; nada de estado global.
//
// Cargas concorrentes seguem "última vence": cada Load recebe uma
// geração; só a geração mais recente publica resultado, mesmo que as
// respostas cheguem fora de ordem.
type Store struct {
	mu      sync.Mutex
	loader  LoaderFunc
	salonID uint

	gen          uint64
	loaded       bool
	filter       domain.QueryFilter
	appointments []models.Appointment
	events       []domain.CalendarEvent
}

func NewStore(loader LoaderFunc, salonID uint) *Store {
	return &Store{loader: loader, salonID: salonID}
}

// Load carrega a janela pedida e publica o resultado.
// Recarga da mesma janela (dentro da tolerância, mesmos filtros) é
// pulada: devolve o que já está carregado sem ir ao banco.
func (s *Store) Load(
	ctx context.Context,
	filter domain.QueryFilter,
) ([]domain.CalendarEvent, error) {

	s.mu.Lock()

	if s.loaded &&
		filter.SameRange(s.filter, domain.RangeTolerance) &&
		filtersEqual(filter, s.filter) {
		events := s.events
		s.mu.Unlock()
		return events, nil
	}

	s.gen++
	gen := s.gen
	s.mu.Unlock()

	appointments, err := s.loader(ctx, s.salonID, filter)

	s.mu.Lock()
	defer s.mu.Unlock()

	// outra carga passou na frente: descarta esta, não importa a ordem
	// de chegada
	if gen != s.gen {
		return nil, ErrSuperseded
	}

	if err != nil {
		return nil, err
	}

	s.loaded = true
	s.filter = filter
	s.appointments = appointments
	s.events = domain.ProjectAll(appointments)

	return s.events, nil
}

// Update substitui (ou insere) um agendamento já carregado e reprojeta.
// Usado quando uma mutação local completa sem recarregar a janela.
func (s *Store) Update(ap models.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return
	}

	replaced := false
	for i := range s.appointments {
		if s.appointments[i].ID == ap.ID {
			s.appointments[i] = ap
			replaced = true
			break
		}
	}
	if !replaced {
		s.appointments = append(s.appointments, ap)
	}

	s.events = domain.ProjectAll(s.appointments)
}

// Clear descarta o estado carregado; a próxima Load vai ao banco
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loaded = false
	s.filter = domain.QueryFilter{}
	s.appointments = nil
	s.events = nil
}

// Events devolve a projeção corrente (vazia se nada carregado)
func (s *Store) Events() []domain.CalendarEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.events
}

func filtersEqual(a, b domain.QueryFilter) bool {
	if len(a.ProfessionalIDs) != len(b.ProfessionalIDs) || len(a.Statuses) != len(b.Statuses) {
		return false
	}
	for i := range a.ProfessionalIDs {
		if a.ProfessionalIDs[i] != b.ProfessionalIDs[i] {
			return false
		}
	}
	for i := range a.Statuses {
		if a.Statuses[i] != b.Statuses[i] {
			return false
		}
	}
	return true
}

// ======================================================
// REGISTRY
// ======================================================

// Registry mantém um Store por profissional logado no console
type Registry struct {
	mu     sync.Mutex
	loader LoaderFunc
	stores map[uint]*Store
}

func NewRegistry(loader LoaderFunc) *Registry {
	return &Registry{
		loader: loader,
		stores: make(map[uint]*Store),
	}
}

func (r *Registry) For(salonID, professionalID uint) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.stores[professionalID]; ok {
		return s
	}

	s := NewStore(r.loader, salonID)
	r.stores[professionalID] = s
	return s
}
