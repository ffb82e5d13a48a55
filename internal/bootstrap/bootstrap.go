// Package bootstrap aprovisiona los datos de demo una sola vez al arrancar.
// El centinela "user:demo" marca que el seed ya corrió: si existe, no se
// toca nada. El login nunca crea cuentas.
package bootstrap

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Empleados-api/internal/application/auth"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
	"github.com/jhoicas/Empleados-api/pkg/config"
	"github.com/jhoicas/Empleados-api/pkg/logger"
)

// Deps dependencias del seed.
type Deps struct {
	AuthUC       *auth.AuthUseCase
	UserRepo     repository.UserRepository
	EmployeeRepo repository.EmployeeRepository
	Config       *config.Config
	Log          *logger.Logger
}

// Run ejecuta el seed de demo si está habilitado y aún no corrió.
// Es idempotente: un fallo parcial en un arranque anterior se completa aquí.
func Run(ctx context.Context, deps Deps) error {
	if !deps.Config.Seed.Enabled {
		deps.Log.Info().Msg("Seed de demo deshabilitado")
		return nil
	}

	demo, err := deps.UserRepo.GetDemoProfile(ctx)
	if err != nil {
		return err
	}
	if demo != nil {
		deps.Log.Info().Msg("Seed de demo ya aplicado, se omite")
		return nil
	}

	userID, created, err := deps.AuthUC.EnsureAccount(
		ctx,
		deps.Config.Seed.AdminEmail,
		deps.Config.Seed.AdminPassword,
		"Admin", "User",
		entity.RoleAdmin,
	)
	if err != nil {
		return err
	}

	profile, err := deps.UserRepo.GetProfile(ctx, userID)
	if err != nil {
		return err
	}
	if err := deps.UserRepo.SaveDemoProfile(ctx, profile); err != nil {
		return err
	}

	if created {
		if err := seedEmployees(ctx, deps.EmployeeRepo, userID); err != nil {
			return err
		}
		deps.Log.Info().Str("email", deps.Config.Seed.AdminEmail).Msg("Cuenta demo y empleados de ejemplo creados")
	} else {
		deps.Log.Info().Str("email", deps.Config.Seed.AdminEmail).Msg("Cuenta demo existente, centinela registrado")
	}
	return nil
}

// seedEmployees escribe los empleados de ejemplo directamente en el
// repositorio; el seed no genera entradas de auditoría.
func seedEmployees(ctx context.Context, repo repository.EmployeeRepository, createdBy string) error {
	now := time.Now()
	demo := []*entity.Employee{
		{
			ID:               uuid.New().String(),
			FirstName:        "John",
			LastName:         "Doe",
			Email:            "john.doe@company.com",
			Phone:            "(555) 123-4567",
			Position:         "Software Engineer",
			Department:       "Engineering",
			Salary:           75000,
			StartDate:        "2023-01-15",
			Status:           entity.StatusActive,
			Address:          "123 Main St, Anytown, USA",
			EmergencyContact: "Jane Doe",
			EmergencyPhone:   "(555) 987-6543",
			CreatedAt:        now,
			UpdatedAt:        now,
			CreatedBy:        createdBy,
		},
		{
			ID:               uuid.New().String(),
			FirstName:        "Sarah",
			LastName:         "Johnson",
			Email:            "sarah.johnson@company.com",
			Phone:            "(555) 234-5678",
			Position:         "Marketing Manager",
			Department:       "Marketing",
			Salary:           65000,
			StartDate:        "2023-02-01",
			Status:           entity.StatusActive,
			Address:          "456 Oak Ave, Somewhere, USA",
			EmergencyContact: "Mike Johnson",
			EmergencyPhone:   "(555) 876-5432",
			CreatedAt:        now,
			UpdatedAt:        now,
			CreatedBy:        createdBy,
		},
		{
			ID:               uuid.New().String(),
			FirstName:        "Michael",
			LastName:         "Chen",
			Email:            "michael.chen@company.com",
			Phone:            "(555) 345-6789",
			Position:         "HR Specialist",
			Department:       "Human Resources",
			Salary:           58000,
			StartDate:        "2023-03-10",
			Status:           entity.StatusActive,
			Address:          "789 Pine St, Elsewhere, USA",
			EmergencyContact: "Lisa Chen",
			EmergencyPhone:   "(555) 765-4321",
			CreatedAt:        now,
			UpdatedAt:        now,
			CreatedBy:        createdBy,
		},
	}
	for _, emp := range demo {
		if err := repo.Save(ctx, emp); err != nil {
			return err
		}
	}
	return nil
}
