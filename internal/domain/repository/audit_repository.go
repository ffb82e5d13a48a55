package repository

import (
	"context"

	"github.com/jhoicas/Empleados-api/internal/domain/entity"
)

// AuditRepository define el puerto de la bitácora append-only.
type AuditRepository interface {
	Append(ctx context.Context, entry *entity.AuditEntry) error
	// List devuelve todas las entradas sin orden garantizado; el caso de uso ordena.
	List(ctx context.Context) ([]*entity.AuditEntry, error)
}
