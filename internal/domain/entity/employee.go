package entity

import "time"

// Estados válidos para Employee.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Employee representa un registro del directorio de empleados.
// Se persiste como documento JSON bajo la clave "employee:<id>" del record store;
// los tags JSON definen a la vez el formato persistido y el formato de respuesta HTTP.
type Employee struct {
	ID               string    `json:"id"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	Email            string    `json:"email"` // único entre todos los empleados (case-insensitive)
	Phone            string    `json:"phone,omitempty"`
	Position         string    `json:"position"`
	Department       string    `json:"department"` // texto libre; se colorea con la paleta fija
	Salary           int       `json:"salary,omitempty"` // entero positivo
	StartDate        string    `json:"startDate,omitempty"` // fecha YYYY-MM-DD
	Status           string    `json:"status"` // active | inactive
	Address          string    `json:"address,omitempty"`
	EmergencyContact string    `json:"emergencyContact,omitempty"`
	EmergencyPhone   string    `json:"emergencyPhone,omitempty"`

	// Foto de perfil: URL firmada de object storage + nombre del objeto subido.
	ProfilePicture         *string `json:"profilePicture"`
	ProfilePictureFileName string  `json:"profilePictureFileName,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	CreatedBy string    `json:"createdBy,omitempty"`
	UpdatedBy string    `json:"updatedBy,omitempty"`
}

// FullName devuelve "FirstName LastName" para los detalles de auditoría.
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// ValidStatus indica si s es un estado reconocido.
func ValidStatus(s string) bool {
	return s == StatusActive || s == StatusInactive
}
