package dto

import "github.com/jhoicas/Empleados-api/internal/domain/entity"

// DashboardStatsDTO métricas de headcount calculadas con un scan completo por petición.
type DashboardStatsDTO struct {
	Total            int            `json:"total"`
	Active           int            `json:"active"`
	Inactive         int            `json:"inactive"`
	DepartmentCounts map[string]int `json:"departmentCounts"` // clave: valor crudo de department
	// Color de la paleta fija por departamento presente (solo para display).
	DepartmentColors map[string]string `json:"departmentColors"`
	AverageSalary    float64           `json:"averageSalary"` // media aritmética; 0 sin empleados
}

// DashboardResponse respuesta de GET /api/dashboard/stats.
type DashboardResponse struct {
	Stats          DashboardStatsDTO    `json:"stats"`
	RecentActivity []*entity.AuditEntry `json:"recentActivity"` // 10 más recientes, desc
}
