package agenda

import (
	"context"
	"time"

	"github.com/VoltarSoftware/salon-agenda/internal/audit"
	domain "github.com/VoltarSoftware/salon-agenda/internal/domain/agenda"
	"github.com/VoltarSoftware/salon-agenda/internal/models"
)

// ======================================================
// LIST
// ======================================================

type ListHolidays struct {
	repo domain.Repository
}

func NewListHolidays(repo domain.Repository) *ListHolidays {
	return &ListHolidays{repo: repo}
}

func (uc *ListHolidays) Execute(
	ctx context.Context,
	professionalID uint,
) ([]models.Holiday, error) {
	return uc.repo.ListHolidays(ctx, professionalID)
}

// ======================================================
// CREATE
// ======================================================

type CreateHolidayInput struct {
	SalonID        uint
	ProfessionalID uint
	Date           string
	Description    string
}

type CreateHoliday struct {
	repo  domain.Repository
	cache SlotCache
	audit *audit.Dispatcher
}

func NewCreateHoliday(
	repo domain.Repository,
	cache SlotCache,
	auditor *audit.Dispatcher,
) *CreateHoliday {
	return &CreateHoliday{repo: repo, cache: cache, audit: auditor}
}

func (uc *CreateHoliday) Execute(
	ctx context.Context,
	in CreateHolidayInput,
) (*models.Holiday, error) {

	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, domain.ErrValidation("invalid_date", "Data inválida.")
	}

	h := &models.Holiday{
		SalonID:        in.SalonID,
		ProfessionalID: in.ProfessionalID,
		Date:           in.Date,
		Description:    in.Description,
	}

	if err := uc.repo.CreateHoliday(ctx, h); err != nil {
		return nil, err
	}

	// o dia deixa de ter slots
	if uc.cache != nil {
		uc.cache.Invalidate(ctx, in.ProfessionalID, in.Date)
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		UserID:   &in.ProfessionalID,
		Action:   audit.ActionHolidayCreated,
		Entity:   "holiday",
		EntityID: &h.ID,
	})

	return h, nil
}

// Exclusão de feriado não existe no backend: o handler devolve 501
// (unsupported_operation) em vez de fingir sucesso.
