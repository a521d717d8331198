package db

import (
	"fmt"
	"log"

	"github.com/meinhoongagan/clinic-app/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Permission{},
		&models.WeeklySchedule{},
		&models.Absence{},
		&models.Appointment{},
		&models.Invoice{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	seedRolesAndPermissions()

	fmt.Println("✅ Migrations applied successfully!")
}

// seedRolesAndPermissions creates the clinic roles and their permissions if
// they don't exist yet. Safe to run repeatedly.
func seedRolesAndPermissions() {
	roles := []models.Role{
		{Name: "admin", Description: "Administrator with full access"},
		{Name: "doctor", Description: "Doctor who manages their schedule and absences"},
		{Name: "patient", Description: "Patient who books appointments"},
		{Name: "staff", Description: "Front desk staff who manage appointments and billing"},
	}

	for _, role := range roles {
		var existing models.Role
		if DB.Where("name = ?", role.Name).First(&existing).RowsAffected == 0 {
			DB.Create(&role)
		}
	}

	permissions := []models.Permission{
		{Name: "read_users", Description: "View user list", Resource: "users", Action: "read"},

		{Name: "create_appointment", Description: "Book appointments", Resource: "appointments", Action: "create"},
		{Name: "read_appointments", Description: "View appointments", Resource: "appointments", Action: "read"},
		{Name: "update_appointment", Description: "Update appointment status", Resource: "appointments", Action: "update"},
		{Name: "delete_appointment", Description: "Cancel appointments", Resource: "appointments", Action: "delete"},

		{Name: "update_schedule", Description: "Replace a doctor's weekly schedule", Resource: "schedules", Action: "update"},
		{Name: "create_absence", Description: "Record an absence", Resource: "absences", Action: "create"},
		{Name: "delete_absence", Description: "Remove an absence", Resource: "absences", Action: "delete"},

		{Name: "create_invoice", Description: "Raise invoices", Resource: "invoices", Action: "create"},
		{Name: "read_invoices", Description: "View invoices", Resource: "invoices", Action: "read"},
		{Name: "update_invoice", Description: "Update invoice status", Resource: "invoices", Action: "update"},

		{Name: "create_role", Description: "Create roles", Resource: "roles", Action: "create"},
		{Name: "read_roles", Description: "View roles", Resource: "roles", Action: "read"},
		{Name: "create_permission", Description: "Create permissions", Resource: "permissions", Action: "create"},
		{Name: "read_permissions", Description: "View permissions", Resource: "permissions", Action: "read"},
	}

	for _, permission := range permissions {
		var existing models.Permission
		if DB.Where("name = ?", permission.Name).First(&existing).RowsAffected == 0 {
			DB.Create(&permission)
		}
	}

	grant("admin", func() []models.Permission {
		var all []models.Permission
		DB.Find(&all)
		return all
	})

	grant("doctor", func() []models.Permission {
		var perms []models.Permission
		DB.Where("name IN ?", []string{
			"read_appointments",
			"update_appointment",
			"update_schedule",
			"create_absence",
			"delete_absence",
		}).Find(&perms)
		return perms
	})

	grant("patient", func() []models.Permission {
		var perms []models.Permission
		DB.Where("name IN ?", []string{
			"create_appointment",
			"read_appointments",
			"delete_appointment",
		}).Find(&perms)
		return perms
	})

	grant("staff", func() []models.Permission {
		var perms []models.Permission
		DB.Where("resource IN ?", []string{"appointments", "invoices", "users"}).Find(&perms)
		return perms
	})
}

func grant(roleName string, pick func() []models.Permission) {
	var role models.Role
	if DB.Where("name = ?", roleName).First(&role).RowsAffected == 0 {
		return
	}
	perms := pick()
	DB.Model(&role).Association("Permissions").Clear()
	DB.Model(&role).Association("Permissions").Append(perms)
}
