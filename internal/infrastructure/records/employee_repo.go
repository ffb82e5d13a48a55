package records

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo adaptador de EmployeeRepository sobre el record store.
type EmployeeRepo struct {
	store repository.RecordStore
}

// NewEmployeeRepository construye el adaptador.
func NewEmployeeRepository(store repository.RecordStore) *EmployeeRepo {
	return &EmployeeRepo{store: store}
}

// GetByID obtiene un empleado por ID; (nil, nil) si no existe.
func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	doc, err := r.store.Get(ctx, employeeKey(id))
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}
	var emp entity.Employee
	if err := json.Unmarshal(doc, &emp); err != nil {
		return nil, fmt.Errorf("deserializar empleado %s: %w", id, err)
	}
	return &emp, nil
}

// List devuelve todos los empleados vía scan del prefijo "employee:".
// Los documentos corruptos se omiten (equivalente al filtrado de nulos del frontend).
func (r *EmployeeRepo) List(ctx context.Context) ([]*entity.Employee, error) {
	docs, err := r.store.GetByPrefix(ctx, PrefixEmployee)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Employee, 0, len(docs))
	for _, doc := range docs {
		var emp entity.Employee
		if err := json.Unmarshal(doc, &emp); err != nil {
			continue
		}
		out = append(out, &emp)
	}
	return out, nil
}

// Save persiste el empleado (upsert).
func (r *EmployeeRepo) Save(ctx context.Context, emp *entity.Employee) error {
	return r.store.Set(ctx, employeeKey(emp.ID), emp)
}

// Delete elimina el registro del empleado.
func (r *EmployeeRepo) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, employeeKey(id))
}
