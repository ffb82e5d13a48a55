// Package auth implementa registro e inicio de sesión.
// Hace de proveedor de identidad propio: credenciales bcrypt en el record
// store y tokens de acceso JWT HS256. El aprovisionamiento de la cuenta demo
// NO vive aquí: corre una sola vez al arrancar (internal/bootstrap).
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Empleados-api/internal/application/dto"
	"github.com/jhoicas/Empleados-api/internal/domain"
	"github.com/jhoicas/Empleados-api/internal/domain/entity"
	"github.com/jhoicas/Empleados-api/internal/domain/repository"
	"github.com/jhoicas/Empleados-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro e inicio de sesión.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// SignUp crea la credencial (hash bcrypt) y el perfil local con rol "employee".
// Devuelve ErrEmailAlreadyExists si ya hay una credencial con ese email.
func (uc *AuthUseCase) SignUp(ctx context.Context, in dto.SignUpRequest) (*dto.SignUpResponse, error) {
	existing, err := uc.userRepo.GetCredential(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	userID, err := uc.createAccount(ctx, in.Email, in.Password, in.FirstName, in.LastName, entity.RoleEmployee)
	if err != nil {
		return nil, err
	}
	return &dto.SignUpResponse{Message: "User created successfully", UserID: userID}, nil
}

// SignIn verifica email/password contra la credencial y emite el token de acceso.
// Si el perfil local falta (primer inicio de sesión tras un registro parcial),
// se sintetiza desde la metadata de la credencial con defaults "User"/"employee".
func (uc *AuthUseCase) SignIn(ctx context.Context, in dto.SignInRequest) (*dto.SignInResponse, error) {
	cred, err := uc.userRepo.GetCredential(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if cred == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	profile, err := uc.userRepo.GetProfile(ctx, cred.UserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = synthesizeProfile(cred)
		if err := uc.userRepo.SaveProfile(ctx, profile); err != nil {
			return nil, err
		}
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, profile.ID, profile.Email, profile.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.SignInResponse{AccessToken: token, User: *profile}, nil
}

// EnsureAccount aprovisiona una cuenta de forma idempotente (lo usa el seed de demo).
// Devuelve el userID y si la cuenta fue creada en esta llamada.
func (uc *AuthUseCase) EnsureAccount(ctx context.Context, email, password, firstName, lastName, role string) (string, bool, error) {
	existing, err := uc.userRepo.GetCredential(ctx, email)
	if err != nil {
		return "", false, err
	}
	if existing != nil {
		return existing.UserID, false, nil
	}
	userID, err := uc.createAccount(ctx, email, password, firstName, lastName, role)
	if err != nil {
		return "", false, err
	}
	return userID, true, nil
}

func (uc *AuthUseCase) createAccount(ctx context.Context, email, password, firstName, lastName, role string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	now := time.Now()
	userID := uuid.New().String()

	cred := &entity.Credential{
		UserID:       userID,
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    firstName,
		LastName:     lastName,
		Role:         role,
		CreatedAt:    now,
	}
	if err := uc.userRepo.SaveCredential(ctx, cred); err != nil {
		return "", err
	}

	profile := &entity.User{
		ID:        userID,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Role:      role,
		IsActive:  true,
		CreatedAt: now,
	}
	if err := uc.userRepo.SaveProfile(ctx, profile); err != nil {
		return "", err
	}
	return userID, nil
}

// synthesizeProfile arma un perfil desde la metadata de la credencial.
func synthesizeProfile(cred *entity.Credential) *entity.User {
	firstName := cred.FirstName
	if firstName == "" {
		firstName = "User"
	}
	lastName := cred.LastName
	if lastName == "" {
		lastName = "User"
	}
	role := cred.Role
	if role == "" {
		role = entity.RoleEmployee
	}
	return &entity.User{
		ID:        cred.UserID,
		Email:     cred.Email,
		FirstName: firstName,
		LastName:  lastName,
		Role:      role,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
}
