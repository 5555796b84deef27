package service

import (
	"context"
	"errors"
	"time"

	"zapastock/internal/dto"
	"zapastock/internal/model"
	"zapastock/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	usuarios      repository.UsuarioRepository
	jwtSecret     []byte
	tokenDuration time.Duration
}

func NewAuthService(usuarios repository.UsuarioRepository, jwtSecret string, expirationHours int) *AuthService {
	return &AuthService{
		usuarios:      usuarios,
		jwtSecret:     []byte(jwtSecret),
		tokenDuration: time.Duration(expirationHours) * time.Hour,
	}
}

// Login verifies credentials and issues a signed HS256 access token.
// Unknown usernames and wrong passwords return the same error so the
// endpoint does not leak which usernames exist.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (string, time.Duration, *model.Usuario, error) {
	u, err := s.usuarios.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", 0, nil, ErrCredencialesInvalidas
		}
		return "", 0, nil, err
	}
	if !u.Activo {
		return "", 0, nil, ErrUsuarioInactivo
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return "", 0, nil, ErrCredencialesInvalidas
	}

	ahora := time.Now()
	claims := jwt.MapClaims{
		"sub":      u.ID.String(),
		"username": u.Username,
		"rol":      u.Rol,
		"iat":      ahora.Unix(),
		"exp":      ahora.Add(s.tokenDuration).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", 0, nil, err
	}
	return token, s.tokenDuration, u, nil
}

func (s *AuthService) CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*model.Usuario, error) {
	if _, err := s.usuarios.FindByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameEnUso
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &model.Usuario{
		Username:     req.Username,
		PasswordHash: string(hash),
		Rol:          req.Rol,
		Activo:       true,
	}
	if err := s.usuarios.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) ListarUsuarios(ctx context.Context) ([]model.Usuario, error) {
	return s.usuarios.List(ctx)
}

func (s *AuthService) DesactivarUsuario(ctx context.Context, id uuid.UUID) error {
	u, err := s.usuarios.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUsuarioNoEncontrado
		}
		return err
	}
	u.Activo = false
	return s.usuarios.Update(ctx, u)
}
