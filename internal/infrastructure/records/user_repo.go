package records

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo adaptador de UserRepository sobre el record store.
type UserRepo struct {
	store repository.RecordStore
}

// NewUserRepository construye el adaptador.
func NewUserRepository(store repository.RecordStore) *UserRepo {
	return &UserRepo{store: store}
}

// GetProfile obtiene el perfil "user:<id>"; (nil, nil) si no existe.
func (r *UserRepo) GetProfile(ctx context.Context, id string) (*entity.User, error) {
	return r.getUser(ctx, userKey(id))
}

// SaveProfile persiste el perfil bajo "user:<id>".
func (r *UserRepo) SaveProfile(ctx context.Context, user *entity.User) error {
	return r.store.Set(ctx, userKey(user.ID), user)
}

// CountProfiles cuenta los registros bajo "user:" (incluye el centinela demo).
func (r *UserRepo) CountProfiles(ctx context.Context) (int, error) {
	docs, err := r.store.GetByPrefix(ctx, PrefixUser)
	if err != nil {
		return 0, err
	}
	return len(docs), nil
}

// GetDemoProfile lee el centinela "user:demo".
func (r *UserRepo) GetDemoProfile(ctx context.Context) (*entity.User, error) {
	return r.getUser(ctx, KeyDemoUser)
}

// SaveDemoProfile escribe el centinela "user:demo".
func (r *UserRepo) SaveDemoProfile(ctx context.Context, user *entity.User) error {
	return r.store.Set(ctx, KeyDemoUser, user)
}

// GetCredential lee la credencial por email (case-insensitive); (nil, nil) si no existe.
func (r *UserRepo) GetCredential(ctx context.Context, email string) (*entity.Credential, error) {
	doc, err := r.store.Get(ctx, credentialKey(email))
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}
	var cred entity.Credential
	if err := json.Unmarshal(doc, &cred); err != nil {
		return nil, fmt.Errorf("deserializar credencial: %w", err)
	}
	return &cred, nil
}

// SaveCredential persiste la credencial bajo "credential:<email>".
func (r *UserRepo) SaveCredential(ctx context.Context, cred *entity.Credential) error {
	return r.store.Set(ctx, credentialKey(cred.Email), cred)
}

func (r *UserRepo) getUser(ctx context.Context, key string) (*entity.User, error) {
	doc, err := r.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}
	var user entity.User
	if err := json.Unmarshal(doc, &user); err != nil {
		return nil, fmt.Errorf("deserializar usuario: %w", err)
	}
	return &user, nil
}
