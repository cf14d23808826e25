package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims são as informações do usuário atual extraídas do token assinado
type Claims struct {
	UserID         int
	UserName       string
	UserEmail      string
	UserRoleID     int
	UserActorID    string
	UserCapability Capability
	jwt.RegisteredClaims
}

// VisibleCategories retorna as categorias que o usuário do token pode visualizar
func (c *Claims) VisibleCategories() []Category {
	return VisibleCategories(c.UserRoleID, c.UserCapability)
}
