// Package analytics contiene el caso de uso del dashboard: headcount,
// distribución por departamento, salario promedio y actividad reciente.
package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
)

const recentActivityLimit = 10 // entradas de auditoría en el feed del dashboard

// DashboardUseCase recalcula las métricas con un scan completo en cada
// petición (sin memoización ni mantenimiento incremental): el costo es lineal
// en empleados + entradas de auditoría, aceptable para el tamaño del dataset.
type DashboardUseCase struct {
	employeeRepo repository.EmployeeRepository
	auditRepo    repository.AuditRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(employeeRepo repository.EmployeeRepository, auditRepo repository.AuditRepository) *DashboardUseCase {
	return &DashboardUseCase{employeeRepo: employeeRepo, auditRepo: auditRepo}
}

// GetStats construye la respuesta del dashboard.
//
// Dos lecturas en paralelo:
//  1. scan de empleados  → total/active/inactive, conteo por departamento, salario promedio
//  2. scan de auditoría  → 10 entradas más recientes por timestamp descendente
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardResponse, error) {
	type employeesResult struct {
		list []*entity.Employee
		err  error
	}
	type auditResult struct {
		entries []*entity.AuditEntry
		err     error
	}

	empCh := make(chan employeesResult, 1)
	auditCh := make(chan auditResult, 1)

	go func() {
		list, err := uc.employeeRepo.List(ctx)
		empCh <- employeesResult{list, err}
	}()
	go func() {
		entries, err := uc.auditRepo.List(ctx)
		auditCh <- auditResult{entries, err}
	}()

	employees := <-empCh
	audits := <-auditCh

	if employees.err != nil {
		return nil, fmt.Errorf("dashboard: scan de empleados: %w", employees.err)
	}
	if audits.err != nil {
		return nil, fmt.Errorf("dashboard: scan de auditoría: %w", audits.err)
	}

	stats := computeStats(employees.list)

	sort.Slice(audits.entries, func(i, j int) bool {
		return audits.entries[i].Timestamp.After(audits.entries[j].Timestamp)
	})
	recent := audits.entries
	if len(recent) > recentActivityLimit {
		recent = recent[:recentActivityLimit]
	}
	if recent == nil {
		recent = []*entity.AuditEntry{}
	}

	return &dto.DashboardResponse{Stats: stats, RecentActivity: recent}, nil
}

func computeStats(employees []*entity.Employee) dto.DashboardStatsDTO {
	stats := dto.DashboardStatsDTO{
		Total:            len(employees),
		DepartmentCounts: make(map[string]int),
		DepartmentColors: make(map[string]string),
	}

	var salarySum int
	for _, emp := range employees {
		switch emp.Status {
		case entity.StatusActive:
			stats.Active++
		case entity.StatusInactive:
			stats.Inactive++
		}
		// La clave es el valor crudo de department, sin validar contra la paleta.
		stats.DepartmentCounts[emp.Department]++
		stats.DepartmentColors[emp.Department] = entity.DepartmentColor(emp.Department)
		salarySum += emp.Salary
	}
	if len(employees) > 0 {
		stats.AverageSalary = float64(salarySum) / float64(len(employees))
	}
	return stats
}
