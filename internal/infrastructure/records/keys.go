// Package records implementa los repositorios tipados de la aplicación
// sobre el puerto RecordStore (documentos JSON con clave prefijada).
package records

import "strings"

// Prefijos de clave por tipo de entidad en el record store.
const (
	PrefixEmployee   = "employee:"
	PrefixUser       = "user:"
	PrefixAudit      = "audit:"
	PrefixCredential = "credential:"

	// Centinela del seed de demo.
	KeyDemoUser = "user:demo"
)

func employeeKey(id string) string      { return PrefixEmployee + id }
func userKey(id string) string          { return PrefixUser + id }
func auditKey(id string) string         { return PrefixAudit + id }
func credentialKey(email string) string { return PrefixCredential + strings.ToLower(email) }
