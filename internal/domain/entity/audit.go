package entity

import "time"

// Acciones registradas en la bitácora de auditoría.
const (
	ActionCreateEmployee     = "CREATE_EMPLOYEE"
	ActionUpdateEmployee     = "UPDATE_EMPLOYEE"
	ActionDeleteEmployee     = "DELETE_EMPLOYEE"
	ActionBulkUpdateEmployee = "BULK_UPDATE_EMPLOYEE"
	ActionUploadPhoto        = "UPLOAD_PHOTO"
)

// AuditEntry es un registro append-only de una mutación.
// Se persiste bajo "audit:<id>"; solo se lee para el feed de actividad
// reciente del dashboard (las 10 más nuevas por timestamp).
type AuditEntry struct {
	ID         string       `json:"id"`
	Action     string       `json:"action"`
	EntityType string       `json:"entityType"`
	EntityID   string       `json:"entityId"`
	UserID     string       `json:"userId"`
	Timestamp  time.Time    `json:"timestamp"`
	Details    AuditDetails `json:"details"`
}

// AuditDetails carga libre asociada a la entrada.
type AuditDetails struct {
	EmployeeName string   `json:"employeeName,omitempty"`
	Changes      []string `json:"changes,omitempty"`
}
