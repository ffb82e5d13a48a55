package entity

// Paleta fija de colores por departamento para la UI del dashboard.
// Department es texto libre: cualquier valor fuera de la paleta usa el color por defecto.
var departmentColors = map[string]string{
	"Engineering":     "#3b82f6",
	"Marketing":       "#10b981",
	"Sales":           "#f59e0b",
	"HR":              "#ef4444",
	"Human Resources": "#ef4444",
	"Finance":         "#8b5cf6",
	"Operations":      "#06b6d4",
}

const defaultDepartmentColor = "#6b7280"

// DepartmentColor devuelve el color de la paleta para un departamento,
// o el gris por defecto si el nombre no coincide.
func DepartmentColor(name string) string {
	if c, ok := departmentColors[name]; ok {
		return c
	}
	return defaultDepartmentColor
}
