package repository

import (
	"context"

	"github.com/jhoicas/Empleados-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para perfiles y credenciales.
// Las lecturas devuelven (nil, nil) cuando el registro no existe.
type UserRepository interface {
	GetProfile(ctx context.Context, id string) (*entity.User, error)
	SaveProfile(ctx context.Context, user *entity.User) error
	// CountProfiles cuenta los registros bajo "user:" (incluye el centinela demo).
	CountProfiles(ctx context.Context) (int, error)

	// Centinela "user:demo" que marca que el seed de demo ya corrió.
	GetDemoProfile(ctx context.Context) (*entity.User, error)
	SaveDemoProfile(ctx context.Context, user *entity.User) error

	// Credenciales del proveedor de identidad, indexadas por email en minúsculas.
	GetCredential(ctx context.Context, email string) (*entity.Credential, error)
	SaveCredential(ctx context.Context, cred *entity.Credential) error
}
