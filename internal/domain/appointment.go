package domain

import (
	"time"
)

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

type VisitType string

const (
	VisitTypeInPerson   VisitType = "in-person"
	VisitTypeTelehealth VisitType = "telehealth"
)

type Appointment struct {
	ID                 string            `json:"id"`
	ProviderID         string            `json:"provider_id"`
	ProviderName       string            `json:"provider_name"`
	Date               string            `json:"date"`
	Time               string            `json:"time"`
	Reason             string            `json:"reason"`
	VisitType          VisitType         `json:"visit_type"`
	ConfirmationNumber string            `json:"confirmation_number"`
	Status             AppointmentStatus `json:"status"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

type CreateAppointmentDTO struct {
	ProviderID string    `json:"provider_id" binding:"required"`
	Date       string    `json:"date" binding:"required,datetime=2006-01-02"`
	Time       string    `json:"time" binding:"required"`
	Reason     string    `json:"reason" binding:"required"`
	VisitType  VisitType `json:"visit_type" binding:"required,oneof=in-person telehealth"`
}

// AppointmentDate parses the calendar date of the appointment. The time
// slot label is display-only and carries no time zone.
func (a *Appointment) AppointmentDate() (time.Time, error) {
	return time.Parse("2006-01-02", a.Date)
}
