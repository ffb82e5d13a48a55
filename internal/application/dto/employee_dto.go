package dto

import "github.com/jhoicas/Empleados-api/internal/domain/entity"

// Las claves JSON son camelCase: es el formato que consume el frontend del directorio.

// CreateEmployeeRequest entrada para crear un empleado.
// firstName, lastName, email, position y department son obligatorios.
type CreateEmployeeRequest struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Position         string `json:"position"`
	Department       string `json:"department"`
	Salary           int    `json:"salary"`
	StartDate        string `json:"startDate"`
	Status           string `json:"status"` // opcional; default "active"
	Address          string `json:"address"`
	EmergencyContact string `json:"emergencyContact"`
	EmergencyPhone   string `json:"emergencyPhone"`
}

// UpdateEmployeeRequest entrada parcial para actualizar (merge superficial:
// solo los campos presentes en el JSON sobreescriben; los demás se conservan).
type UpdateEmployeeRequest struct {
	FirstName        *string `json:"firstName"`
	LastName         *string `json:"lastName"`
	Email            *string `json:"email"`
	Phone            *string `json:"phone"`
	Position         *string `json:"position"`
	Department       *string `json:"department"`
	Salary           *int    `json:"salary"`
	StartDate        *string `json:"startDate"`
	Status           *string `json:"status"`
	Address          *string `json:"address"`
	EmergencyContact *string `json:"emergencyContact"`
	EmergencyPhone   *string `json:"emergencyPhone"`
}

// ChangedFields devuelve los nombres (claves JSON) de los campos presentes,
// para el detalle "changes" de la entrada de auditoría.
func (u *UpdateEmployeeRequest) ChangedFields() []string {
	var out []string
	add := func(name string, set bool) {
		if set {
			out = append(out, name)
		}
	}
	add("firstName", u.FirstName != nil)
	add("lastName", u.LastName != nil)
	add("email", u.Email != nil)
	add("phone", u.Phone != nil)
	add("position", u.Position != nil)
	add("department", u.Department != nil)
	add("salary", u.Salary != nil)
	add("startDate", u.StartDate != nil)
	add("status", u.Status != nil)
	add("address", u.Address != nil)
	add("emergencyContact", u.EmergencyContact != nil)
	add("emergencyPhone", u.EmergencyPhone != nil)
	return out
}

// ListEmployeesQuery filtros opcionales del listado; vacíos = sin filtrar.
type ListEmployeesQuery struct {
	Search     string `query:"q"`          // substring sobre nombre, email y cargo
	Department string `query:"department"` // igualdad exacta
	Status     string `query:"status"`     // active | inactive
}

// EmployeeResponse envuelve un empleado ({employee: ...}).
type EmployeeResponse struct {
	Employee *entity.Employee `json:"employee"`
}

// EmployeeListResponse envuelve el listado ({employees: [...]}).
type EmployeeListResponse struct {
	Employees []*entity.Employee `json:"employees"`
}

// BulkUpdateRequest entrada de POST /api/employees/bulk-update.
type BulkUpdateRequest struct {
	EmployeeIDs []string              `json:"employeeIds"`
	Updates     UpdateEmployeeRequest `json:"updates"`
}

// BulkUpdateResult resultado por ID dentro de un bulk update.
type BulkUpdateResult struct {
	ID      string `json:"id"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// BulkUpdateResponse salida del bulk update; TotalProcessed == len(Results) == len(ids).
type BulkUpdateResponse struct {
	Results        []BulkUpdateResult `json:"results"`
	TotalProcessed int                `json:"totalProcessed"`
}

// PhotoUploadResponse salida de la subida de foto.
type PhotoUploadResponse struct {
	Message        string `json:"message"`
	ProfilePicture string `json:"profilePicture"`
}
