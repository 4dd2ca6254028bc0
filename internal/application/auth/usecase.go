package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/application/dto"
	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/domain"
	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/domain/entity"
	"github.com/Mauricioo67/Farmacia-Vida-Sana/internal/domain/repository"
	"github.com/Mauricioo67/Farmacia-Vida-Sana/pkg/jwt"
)

// JWTConfig parámetros de emisión de tokens.
type JWTConfig struct {
	Secret            string
	AccessExpMinutes  int
	RefreshExpMinutes int
	Issuer            string
}

// AuthUseCase autenticación de trabajadores: login, refresh, registro,
// recuperación de contraseña y perfil.
type AuthUseCase struct {
	trabajadorRepo repository.TrabajadorRepository
	jwtCfg         JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(trabajadorRepo repository.TrabajadorRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{trabajadorRepo: trabajadorRepo, jwtCfg: jwtCfg}
}

// Login verifica usuario/clave contra el hash bcrypt y emite access + refresh.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Usuario == "" || in.Clave == "" {
		return nil, domain.ErrInvalidInput
	}
	t, err := uc.trabajadorRepo.GetByUsuario(ctx, in.Usuario)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(t.Password), []byte(in.Clave)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	access, err := jwt.GenerateAccess(uc.jwtCfg.Secret, t.IDTrabajador, t.Usuario, t.Acceso, uc.jwtCfg.Issuer, uc.jwtCfg.AccessExpMinutes)
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.GenerateRefresh(uc.jwtCfg.Secret, t.IDTrabajador, uc.jwtCfg.Issuer, uc.jwtCfg.RefreshExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         toUserResponse(t),
	}, nil
}

// Refresh emite un nuevo access token a partir de un refresh token válido.
// Un access token no sirve como refresh.
func (uc *AuthUseCase) Refresh(ctx context.Context, refreshToken string) (*dto.RefreshResponse, error) {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, refreshToken)
	if err != nil || claims.Type != jwt.TypeRefresh {
		return nil, domain.ErrUnauthorized
	}
	t, err := uc.trabajadorRepo.GetByID(ctx, claims.TrabajadorID)
	if err != nil {
		return nil, err
	}
	if t == nil || t.Estado != entity.EstadoActivo {
		return nil, domain.ErrUnauthorized
	}
	access, err := jwt.GenerateAccess(uc.jwtCfg.Secret, t.IDTrabajador, t.Usuario, t.Acceso, uc.jwtCfg.Issuer, uc.jwtCfg.AccessExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.RefreshResponse{AccessToken: access}, nil
}

// Register da de alta un trabajador con hash bcrypt. Clave mínima de 6
// caracteres; usuario duplicado devuelve ErrDuplicate.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Usuario == "" || in.Nombre == "" || in.Apellidos == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Clave) < 6 {
		return nil, domain.ErrPasswordCorta
	}
	existente, err := uc.trabajadorRepo.GetByUsuario(ctx, in.Usuario)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Clave), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	creado, err := uc.trabajadorRepo.Create(ctx, &entity.Trabajador{
		Usuario:   in.Usuario,
		Password:  string(hash),
		Nombre:    in.Nombre,
		Apellidos: in.Apellidos,
		Acceso:    "vendedor",
		Estado:    entity.EstadoActivo,
	})
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(creado)
	return &resp, nil
}

// RecoverCheck verifica que el usuario exista y esté activo; devuelve su
// identidad para el paso de cambio de contraseña.
func (uc *AuthUseCase) RecoverCheck(ctx context.Context, usuario string) (*dto.UserResponse, error) {
	if usuario == "" {
		return nil, domain.ErrInvalidInput
	}
	t, err := uc.trabajadorRepo.GetByUsuario(ctx, usuario)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	resp := toUserResponse(t)
	return &resp, nil
}

// RecoverUpdate cambia la contraseña de un trabajador (recuperación).
func (uc *AuthUseCase) RecoverUpdate(ctx context.Context, in dto.RecoverUpdateRequest) error {
	if in.TrabajadorID <= 0 {
		return domain.ErrInvalidInput
	}
	if len(in.NuevaPassword) < 6 {
		return domain.ErrPasswordCorta
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NuevaPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.trabajadorRepo.UpdatePassword(ctx, in.TrabajadorID, string(hash))
}

// UpdatePerfil actualiza nombre y apellidos del trabajador autenticado;
// si llega una contraseña nueva también la reemplaza.
func (uc *AuthUseCase) UpdatePerfil(ctx context.Context, idTrabajador int, in dto.UpdatePerfilRequest) error {
	cambios := map[string]any{}
	if in.Nombre != "" {
		cambios["nombre"] = in.Nombre
	}
	if in.Apellidos != "" {
		cambios["apellidos"] = in.Apellidos
	}
	if in.Password != "" {
		if len(in.Password) < 6 {
			return domain.ErrPasswordCorta
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		cambios["password"] = string(hash)
	}
	if len(cambios) == 0 {
		return domain.ErrInvalidInput
	}
	return uc.trabajadorRepo.UpdatePerfil(ctx, idTrabajador, cambios)
}

func toUserResponse(t *entity.Trabajador) dto.UserResponse {
	return dto.UserResponse{
		ID:        t.IDTrabajador,
		Usuario:   t.Usuario,
		Nombre:    t.Nombre,
		Apellidos: t.Apellidos,
		Rol:       t.Acceso,
	}
}
