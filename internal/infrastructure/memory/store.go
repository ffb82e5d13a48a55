// Package memory implementa el record store en memoria.
// Se usa en desarrollo (STORE_DRIVER=memory) y en los tests de los casos de uso;
// el estado se pierde al reiniciar el proceso.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/Empleados-api/internal/domain/repository"
)

var _ repository.RecordStore = (*Store)(nil)

// Store record store en memoria protegido por mutex.
type Store struct {
	mu   sync.RWMutex
	data map[string]json.RawMessage
}

// NewStore construye un store vacío.
func NewStore() *Store {
	return &Store{data: make(map[string]json.RawMessage)}
}

// Get devuelve el documento bajo key, o nil si no existe.
func (s *Store) Get(_ context.Context, key string) (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	out := make(json.RawMessage, len(doc))
	copy(out, doc)
	return out, nil
}

// Set serializa value a JSON y lo guarda bajo key.
func (s *Store) Set(_ context.Context, key string, value any) error {
	doc, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("serializar %q: %w", key, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = doc
	return nil
}

// Delete elimina key; borrar una clave inexistente no es error.
func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// GetByPrefix devuelve los documentos de todas las claves con el prefijo dado,
// en orden de clave para que el resultado sea determinista como en PostgreSQL.
func (s *Store) GetByPrefix(_ context.Context, prefix string) ([]json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	out := make([]json.RawMessage, 0, len(keys))
	for _, k := range keys {
		doc := make(json.RawMessage, len(s.data[k]))
		copy(doc, s.data[k])
		out = append(out, doc)
	}
	return out, nil
}

// Len devuelve el número de claves almacenadas.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
