package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvoiceStatus string

const (
	InvoiceDraft  InvoiceStatus = "draft"
	InvoiceIssued InvoiceStatus = "issued"
	InvoicePaid   InvoiceStatus = "paid"
	InvoiceVoid   InvoiceStatus = "void"
)

// Invoice is the bill staff raise for a completed appointment.
type Invoice struct {
	gorm.Model
	Number        string        `json:"number" gorm:"unique"`
	AppointmentID uint          `json:"appointment_id"`
	Appointment   Appointment   `json:"appointment" gorm:"foreignKey:AppointmentID"`
	PatientID     uint          `json:"patient_id" gorm:"index"`
	Patient       User          `json:"patient" gorm:"foreignKey:PatientID"`
	Amount        float64       `json:"amount"`
	Status        InvoiceStatus `json:"status"`
	Notes         string        `json:"notes"`
}

func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.Number == "" {
		i.Number = "INV-" + uuid.NewString()
	}
	if i.Status == "" {
		i.Status = InvoiceDraft
	}
	return nil
}
