package repository

import (
	"context"
	"encoding/json"
)

// RecordStore define el puerto del almacén clave/valor de documentos.
// Las claves llevan prefijo por tipo de entidad ("employee:", "user:",
// "audit:", "credential:") y los valores son documentos JSON.
//
// Implementaciones: postgres (tabla kv_store con JSONB) y memory (desarrollo y tests).
type RecordStore interface {
	// Get devuelve el documento bajo key, o nil si no existe (sin error).
	Get(ctx context.Context, key string) (json.RawMessage, error)
	// Set guarda value (serializado a JSON) bajo key, sobreescribiendo si existe.
	Set(ctx context.Context, key string, value any) error
	// Delete elimina key. Borrar una clave inexistente no es error.
	Delete(ctx context.Context, key string) error
	// GetByPrefix devuelve los documentos de todas las claves con el prefijo dado.
	GetByPrefix(ctx context.Context, prefix string) ([]json.RawMessage, error)
}
