package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/sales-target-api/internal/config"
	"github.com/vfg2006/sales-target-api/internal/domain"
	"github.com/vfg2006/sales-target-api/pkg/apiErrors"
)

// Authenticator valida o token emitido pelo provedor de identidade e devolve o usuário atual.
// A emissão de tokens existe para ambientes locais e para o script de seed.
type Authenticator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
	IssueToken(claims *domain.Claims, ttl time.Duration) (string, error)
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		cfg: cfg,
	}
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	if tokenString == "" {
		return nil, NewAuthError(ErrMissingToken, apiErrors.ErrMissingToken, "")
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	if err := validateClaims(claims); err != nil {
		return nil, err
	}

	return claims, nil
}

func (s *Service) IssueToken(claims *domain.Claims, ttl time.Duration) (string, error) {
	if err := validateClaims(claims); err != nil {
		return "", err
	}

	now := time.Now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Auth.Secret))
	if err != nil {
		return "", NewAuthError(ErrSignToken, apiErrors.ErrInternalServer, err.Error())
	}

	return signed, nil
}

func validateClaims(claims *domain.Claims) error {
	if claims == nil {
		return NewAuthError(ErrInvalidClaims, apiErrors.ErrInvalidToken, "")
	}

	switch claims.UserRoleID {
	case domain.RoleAdmin, domain.RoleSupervisor, domain.RoleEmployee:
	default:
		return NewAuthError(ErrInvalidClaims, apiErrors.ErrInvalidToken, fmt.Sprintf("role desconhecido: %d", claims.UserRoleID))
	}

	if _, err := domain.ParseCapability(string(claims.UserCapability)); err != nil {
		return NewAuthError(ErrInvalidClaims, apiErrors.ErrInvalidToken, err.Error())
	}

	if claims.UserRoleID == domain.RoleEmployee && claims.UserActorID == "" {
		return NewAuthError(ErrInvalidClaims, apiErrors.ErrInvalidToken, "colaborador sem identificador")
	}

	return nil
}
