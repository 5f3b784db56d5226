package models

import "time"

// Configuração de agenda por profissional.
// WorkingDays guarda os dias como CSV "1,2,3,4,5" (0=domingo..6=sábado).
type AgendaConfig struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	SalonID        uint `json:"salon_id"`
	ProfessionalID uint `gorm:"uniqueIndex" json:"professional_id"`

	WorkingDays     string `gorm:"size:20;default:'1,2,3,4,5'" json:"working_days"`
	WorkStart       string `gorm:"size:5;default:'09:00'" json:"work_start"`
	WorkEnd         string `gorm:"size:5;default:'18:00'" json:"work_end"`
	SlotDurationMin int    `gorm:"default:30" json:"slot_duration_min"`

	AllowOverbooking         bool `gorm:"default:false" json:"allow_overbooking"`
	AllowBookingOnBlockedDay bool `gorm:"default:false" json:"allow_booking_on_blocked_day"`
	WarnOnOverbook           bool `gorm:"default:true" json:"warn_on_overbook"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
