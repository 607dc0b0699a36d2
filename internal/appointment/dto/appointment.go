package dto

import "time"

type CreateAppointmentInput struct {
	Branch       string `json:"branch"`
	Professional string `json:"professional"`
	Service      string `json:"service"`
	Datetime     string `json:"datetime"`
}

type AppointmentOutput struct {
	ID           int64     `json:"id"`
	Branch       string    `json:"branch"`
	Professional string    `json:"professional"`
	Service      string    `json:"service"`
	Datetime     string    `json:"datetime"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
