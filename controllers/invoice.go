package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/clinic-app/db"
	"github.com/meinhoongagan/clinic-app/models"
)

// CreateInvoice raises an invoice for a completed appointment
func CreateInvoice(c *fiber.Ctx) error {
	var body struct {
		AppointmentID uint    `json:"appointment_id"`
		Amount        float64 `json:"amount"`
		Notes         string  `json:"notes"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if body.Amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Amount must be greater than zero",
		})
	}

	var appointment models.Appointment
	if err := db.DB.First(&appointment, body.AppointmentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Appointment not found",
		})
	}
	if appointment.Status != models.StatusCompleted {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Invoices can only be raised for completed appointments",
		})
	}

	var existing models.Invoice
	if db.DB.Where("appointment_id = ?", appointment.ID).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "An invoice already exists for this appointment",
		})
	}

	invoice := models.Invoice{
		AppointmentID: appointment.ID,
		PatientID:     appointment.PatientID,
		Amount:        body.Amount,
		Notes:         body.Notes,
	}
	if err := db.DB.Create(&invoice).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create invoice",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// GetInvoices returns all invoices, optionally filtered by status
func GetInvoices(c *fiber.Ctx) error {
	query := db.DB.Preload("Patient").Preload("Appointment").Order("created_at desc")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var invoices []models.Invoice
	if err := query.Find(&invoices).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch invoices",
		})
	}

	return c.JSON(invoices)
}

// GetInvoice returns one invoice by id
func GetInvoice(c *fiber.Ctx) error {
	var invoice models.Invoice
	if err := db.DB.Preload("Patient").Preload("Appointment").First(&invoice, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Invoice not found",
		})
	}
	return c.JSON(invoice)
}

// UpdateInvoiceStatus moves an invoice between draft, issued, paid and void
func UpdateInvoiceStatus(c *fiber.Ctx) error {
	var body struct {
		Status models.InvoiceStatus `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	switch body.Status {
	case models.InvoiceDraft, models.InvoiceIssued, models.InvoicePaid, models.InvoiceVoid:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid invoice status",
		})
	}

	var invoice models.Invoice
	if err := db.DB.First(&invoice, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Invoice not found",
		})
	}

	invoice.Status = body.Status
	if err := db.DB.Save(&invoice).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update invoice",
		})
	}

	return c.JSON(invoice)
}
