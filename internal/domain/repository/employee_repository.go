package repository

import (
	"context"

	"github.com/jhoicas/Empleados-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee sobre el record store.
// Las lecturas devuelven (nil, nil) cuando el registro no existe.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	// List devuelve todos los empleados sin orden garantizado; el caso de uso ordena.
	List(ctx context.Context) ([]*entity.Employee, error)
	Save(ctx context.Context, emp *entity.Employee) error
	Delete(ctx context.Context, id string) error
}
