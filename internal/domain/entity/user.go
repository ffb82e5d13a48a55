package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// User es el perfil local de un usuario autenticado.
// Se persiste bajo "user:<id>"; la cuenta demo además bajo el centinela "user:demo".
// La credencial (hash bcrypt) vive en un registro aparte, ver Credential.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      string    `json:"role"` // admin | employee
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// Credential es el registro de credenciales del proveedor de identidad.
// Se persiste bajo "credential:<email en minúsculas>"; nunca se expone por HTTP.
// Los campos de nombre/rol son la metadata con la que se sintetiza el perfil
// si falta en el primer inicio de sesión.
type Credential struct {
	UserID       string    `json:"userId"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"` // bcrypt
	FirstName    string    `json:"firstName,omitempty"`
	LastName     string    `json:"lastName,omitempty"`
	Role         string    `json:"role,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
