package models

import "time"

// Feriado / folga do profissional. Date guarda o dia como "2006-01-02",
// sem hora, no timezone do salão.
type Holiday struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	SalonID        uint `json:"salon_id"`
	ProfessionalID uint `gorm:"index" json:"professional_id"`

	Date        string `gorm:"size:10;not null;index" json:"date"`
	Description string `gorm:"size:255" json:"description"`

	CreatedAt time.Time `json:"created_at"`
}
