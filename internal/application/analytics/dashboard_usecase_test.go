package analytics_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Empleados-api/internal/application/analytics"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/infrastructure/memory"
	"github.com/jhoicas/Empleados-api/internal/infrastructure/records"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc    *analytics.DashboardUseCase
	emps  *records.EmployeeRepo
	audit *records.AuditRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	emps := records.NewEmployeeRepository(store)
	audit := records.NewAuditRepository(store)
	return &fixture{
		uc:    analytics.NewDashboardUseCase(emps, audit),
		emps:  emps,
		audit: audit,
	}
}

func seedEmployee(t *testing.T, f *fixture, department, status string, salary int) {
	t.Helper()
	err := f.emps.Save(context.Background(), &entity.Employee{
		ID:         uuid.New().String(),
		FirstName:  "Emp",
		LastName:   department,
		Email:      uuid.New().String() + "@company.com",
		Position:   "Worker",
		Department: department,
		Salary:     salary,
		Status:     status,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	})
	require.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Métricas
// ──────────────────────────────────────────────────────────────────────────────

func TestGetStats_HeadcountYSalarioPromedio(t *testing.T) {
	f := newFixture(t)

	seedEmployee(t, f, "Engineering", entity.StatusActive, 95000)
	seedEmployee(t, f, "Engineering", entity.StatusActive, 78000)
	seedEmployee(t, f, "Marketing", entity.StatusActive, 65000)
	seedEmployee(t, f, "Human Resources", entity.StatusInactive, 58000)
	seedEmployee(t, f, "Sales", entity.StatusActive, 72000)

	out, err := f.uc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, out.Stats.Total)
	assert.Equal(t, 4, out.Stats.Active)
	assert.Equal(t, 1, out.Stats.Inactive)
	assert.InDelta(t, 73600.0, out.Stats.AverageSalary, 0.001,
		"(95000+78000+65000+58000+72000)/5 = 73600")

	assert.Equal(t, 2, out.Stats.DepartmentCounts["Engineering"])
	assert.Equal(t, 1, out.Stats.DepartmentCounts["Marketing"])
	assert.Equal(t, 1, out.Stats.DepartmentCounts["Human Resources"])
	assert.Equal(t, 1, out.Stats.DepartmentCounts["Sales"])
}

func TestGetStats_ColoresDePaleta(t *testing.T) {
	f := newFixture(t)
	seedEmployee(t, f, "Engineering", entity.StatusActive, 80000)
	seedEmployee(t, f, "Astronautics", entity.StatusActive, 120000) // fuera de la paleta

	out, err := f.uc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "#3b82f6", out.Stats.DepartmentColors["Engineering"])
	assert.Equal(t, "#6b7280", out.Stats.DepartmentColors["Astronautics"],
		"un departamento fuera de la paleta recibe el color por defecto")
}

func TestGetStats_SinEmpleados(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, out.Stats.Total)
	assert.Zero(t, out.Stats.AverageSalary, "sin empleados el promedio es 0, no NaN")
	assert.NotNil(t, out.RecentActivity, "recentActivity serializa como [] y no como null")
	assert.Empty(t, out.RecentActivity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Actividad reciente
// ──────────────────────────────────────────────────────────────────────────────

func TestGetStats_ActividadRecienteTop10Descendente(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 15; i++ {
		err := f.audit.Append(ctx, &entity.AuditEntry{
			ID:         uuid.New().String(),
			Action:     entity.ActionUpdateEmployee,
			EntityType: "employee",
			EntityID:   fmt.Sprintf("emp-%02d", i),
			UserID:     "actor",
			Timestamp:  base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	out, err := f.uc.GetStats(ctx)
	require.NoError(t, err)

	require.Len(t, out.RecentActivity, 10, "el feed se recorta a 10 entradas")
	assert.Equal(t, "emp-14", out.RecentActivity[0].EntityID, "la más reciente primero")
	assert.Equal(t, "emp-05", out.RecentActivity[9].EntityID)
	for i := 1; i < len(out.RecentActivity); i++ {
		assert.False(t, out.RecentActivity[i].Timestamp.After(out.RecentActivity[i-1].Timestamp),
			"el orden debe ser descendente por timestamp")
	}
}
