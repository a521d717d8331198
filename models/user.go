package models

import (
	"time"
)

type User struct {
	ID                  uint             `json:"id" gorm:"primaryKey"`
	Name                string           `json:"name"`
	Email               string           `json:"email" gorm:"unique"`
	Password            string           `json:"password,omitempty"`
	IsVerified          bool             `json:"is_verified"`
	OTP                 string           `json:"otp,omitempty"`
	OTPExpiresAt        time.Time        `json:"otp_expires_at,omitempty"`
	RoleID              uint             `json:"role_id"`
	Role                Role             `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	Specialization      string           `json:"specialization,omitempty"` // doctors only
	WeeklySchedule      []WeeklySchedule `json:"weekly_schedule,omitempty" gorm:"foreignKey:DoctorID"`
	Absences            []Absence        `json:"absences,omitempty" gorm:"foreignKey:DoctorID"`
	DoctorAppointments  []Appointment    `json:"doctor_appointments,omitempty" gorm:"foreignKey:DoctorID"`
	PatientAppointments []Appointment    `json:"patient_appointments,omitempty" gorm:"foreignKey:PatientID"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}
