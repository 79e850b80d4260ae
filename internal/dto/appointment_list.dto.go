package dto

import "time"

type AppointmentListDTO struct {
	ID              uint      `json:"id"`
	Subject         string    `json:"subject"`
	AppointmentDate time.Time `json:"appointment_date"`
	Status          string    `json:"status"`
	ClientName      string    `json:"client_name"`
	ClientEmail     string    `json:"client_email"`
}
