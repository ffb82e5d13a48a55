package dto

import "github.com/jhoicas/Empleados-api/internal/domain/entity"

// SignUpRequest entrada para registro: crea credencial + perfil con rol "employee".
type SignUpRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// SignUpResponse salida del registro.
type SignUpResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// SignInRequest entrada para inicio de sesión.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInResponse salida con el token de acceso y el perfil del usuario.
type SignInResponse struct {
	AccessToken string      `json:"accessToken"`
	User        entity.User `json:"user"`
}
