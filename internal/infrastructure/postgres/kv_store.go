package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
)

var _ repository.RecordStore = (*KVStore)(nil)

// KVStore implementación del puerto RecordStore sobre PostgreSQL:
// una sola tabla kv_store (key TEXT PRIMARY KEY, value JSONB).
// El scan por prefijo usa LIKE sobre la clave, que aprovecha el índice del PK.
type KVStore struct {
	pool *pgxpool.Pool
}

// NewKVStore construye el adaptador y garantiza que la tabla exista.
func NewKVStore(ctx context.Context, pool *pgxpool.Pool) (*KVStore, error) {
	s := &KVStore{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *KVStore) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS kv_store (
			key        TEXT PRIMARY KEY,
			value      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("crear tabla kv_store: %w", err)
	}
	return nil
}

// Get devuelve el documento bajo key, o nil si no existe.
func (s *KVStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	var value []byte
	err := s.pool.QueryRow(ctx, `SELECT value FROM kv_store WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %q: %w", key, err)
	}
	return json.RawMessage(value), nil
}

// Set serializa value a JSON y lo guarda bajo key (upsert, last-write-wins).
func (s *KVStore) Set(ctx context.Context, key string, value any) error {
	doc, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("serializar %q: %w", key, err)
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO kv_store (key, value, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		key, doc, time.Now())
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

// Delete elimina key; borrar una clave inexistente no es error.
func (s *KVStore) Delete(ctx context.Context, key string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM kv_store WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

// GetByPrefix devuelve los documentos de todas las claves con el prefijo dado.
// El caracter de escape evita que '_' o '%' dentro del prefijo actúen como comodines.
func (s *KVStore) GetByPrefix(ctx context.Context, prefix string) ([]json.RawMessage, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT value FROM kv_store WHERE key LIKE $1 ESCAPE '\' ORDER BY key`,
		escapeLike(prefix)+"%")
	if err != nil {
		return nil, fmt.Errorf("scan prefijo %q: %w", prefix, err)
	}
	defer rows.Close()

	var out []json.RawMessage
	for rows.Next() {
		var value []byte
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("scan fila: %w", err)
		}
		out = append(out, json.RawMessage(value))
	}
	return out, rows.Err()
}

// Ping verifica la conexión (usado por /health).
func (s *KVStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
