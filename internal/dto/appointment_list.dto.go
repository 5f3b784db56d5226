package dto

import "time"

type AppointmentListDTO struct {
	ID             uint      `json:"id"`
	PublicRef      string    `json:"public_ref"`
	Title          string    `json:"title"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	Status         string    `json:"status"`
	ProfessionalID uint      `json:"professional_id"`
	ClientName     string    `json:"client_name"`
	ServiceName    string    `json:"service_name"`
}
