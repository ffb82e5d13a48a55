package records

import (
	"context"
	"encoding/json"

	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
)

var _ repository.AuditRepository = (*AuditRepo)(nil)

// AuditRepo adaptador de AuditRepository sobre el record store.
type AuditRepo struct {
	store repository.RecordStore
}

// NewAuditRepository construye el adaptador.
func NewAuditRepository(store repository.RecordStore) *AuditRepo {
	return &AuditRepo{store: store}
}

// Append persiste una entrada bajo "audit:<id>". La bitácora nunca se actualiza ni se borra.
func (r *AuditRepo) Append(ctx context.Context, entry *entity.AuditEntry) error {
	return r.store.Set(ctx, auditKey(entry.ID), entry)
}

// List devuelve todas las entradas vía scan del prefijo "audit:".
func (r *AuditRepo) List(ctx context.Context) ([]*entity.AuditEntry, error) {
	docs, err := r.store.GetByPrefix(ctx, PrefixAudit)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.AuditEntry, 0, len(docs))
	for _, doc := range docs {
		var entry entity.AuditEntry
		if err := json.Unmarshal(doc, &entry); err != nil {
			continue
		}
		out = append(out, &entry)
	}
	return out, nil
}
