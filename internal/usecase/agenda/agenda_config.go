package agenda

import (
	"context"

	"github.com/VoltarSoftware/salon-agenda/internal/audit"
	domain "github.com/VoltarSoftware/salon-agenda/internal/domain/agenda"
	"github.com/VoltarSoftware/salon-agenda/internal/models"
)

// ======================================================
// GET
// ======================================================

type GetAgendaConfig struct {
	repo domain.Repository
}

func NewGetAgendaConfig(repo domain.Repository) *GetAgendaConfig {
	return &GetAgendaConfig{repo: repo}
}

// Execute devolve o config do profissional; primeiro acesso persiste
// o default para a agenda já nascer utilizável.
func (uc *GetAgendaConfig) Execute(
	ctx context.Context,
	salonID uint,
	professionalID uint,
) (*models.AgendaConfig, error) {

	cfg, err := uc.repo.GetAgendaConfig(ctx, professionalID)
	if err == nil {
		return cfg, nil
	}

	cfg = defaultAgendaConfig(salonID, professionalID)
	if err := uc.repo.SaveAgendaConfig(ctx, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ======================================================
// UPDATE
// ======================================================

type UpdateAgendaConfigInput struct {
	// nil = manter o valor atual
	WorkingDays     []int
	WorkStart       *string
	WorkEnd         *string
	SlotDurationMin *int

	AllowOverbooking         *bool
	AllowBookingOnBlockedDay *bool
	WarnOnOverbook           *bool
}

type UpdateAgendaConfig struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAgendaConfig(
	repo domain.Repository,
	auditor *audit.Dispatcher,
) *UpdateAgendaConfig {
	return &UpdateAgendaConfig{repo: repo, audit: auditor}
}

// Execute aplica o patch e valida os invariantes do config.
// Encolher o expediente NÃO invalida agendamentos já fora da nova
// janela: comportamento aceito, não é bug.
func (uc *UpdateAgendaConfig) Execute(
	ctx context.Context,
	salonID uint,
	professionalID uint,
	in UpdateAgendaConfigInput,
) (*models.AgendaConfig, error) {

	cfg, err := uc.repo.GetAgendaConfig(ctx, professionalID)
	if err != nil {
		cfg = defaultAgendaConfig(salonID, professionalID)
	}

	if in.WorkingDays != nil {
		cfg.WorkingDays = domain.FormatWorkingDays(in.WorkingDays)
	}
	if in.WorkStart != nil {
		cfg.WorkStart = *in.WorkStart
	}
	if in.WorkEnd != nil {
		cfg.WorkEnd = *in.WorkEnd
	}
	if in.SlotDurationMin != nil {
		cfg.SlotDurationMin = *in.SlotDurationMin
	}
	if in.AllowOverbooking != nil {
		cfg.AllowOverbooking = *in.AllowOverbooking
	}
	if in.AllowBookingOnBlockedDay != nil {
		cfg.AllowBookingOnBlockedDay = *in.AllowBookingOnBlockedDay
	}
	if in.WarnOnOverbook != nil {
		cfg.WarnOnOverbook = *in.WarnOnOverbook
	}

	if err := domain.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveAgendaConfig(ctx, cfg); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &professionalID,
		Action:   audit.ActionConfigUpdated,
		Entity:   "agenda_config",
		EntityID: &cfg.ID,
	})

	return cfg, nil
}
