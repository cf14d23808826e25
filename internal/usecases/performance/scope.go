package performance

import (
	"fmt"
	"strings"

	"github.com/vfg2006/sales-target-api/internal/domain"
	"github.com/vfg2006/sales-target-api/pkg/apiErrors"
)

type ScopeKind string

const (
	ScopeOrganization ScopeKind = "organization"
	ScopeTeam         ScopeKind = "team"
	ScopeActor        ScopeKind = "actor"
)

// Scope delimita de quem são as transações e metas consideradas no resumo
type Scope struct {
	Kind ScopeKind `json:"kind"`
	ID   string    `json:"id,omitempty"`
}

func OrganizationScope() Scope {
	return Scope{Kind: ScopeOrganization}
}

func (s Scope) String() string {
	if s.Kind == ScopeOrganization {
		return string(s.Kind)
	}
	return fmt.Sprintf("%s:%s", s.Kind, s.ID)
}

// ParseScope aceita "organization", "team:<id>" e "actor:<id>". Vazio equivale a organization.
func ParseScope(raw string) (Scope, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == string(ScopeOrganization) {
		return OrganizationScope(), nil
	}

	kind, id, found := strings.Cut(raw, ":")
	if !found || strings.TrimSpace(id) == "" {
		return Scope{}, NewPerformanceError(ErrInvalidScope, apiErrors.ErrInvalidFormat, raw)
	}

	switch ScopeKind(kind) {
	case ScopeTeam, ScopeActor:
		return Scope{Kind: ScopeKind(kind), ID: strings.TrimSpace(id)}, nil
	}

	return Scope{}, NewPerformanceError(ErrInvalidScope, apiErrors.ErrInvalidFormat, raw)
}

// Authorize decide se o usuário pode consultar a categoria no escopo informado.
// Colaboradores comuns só consultam o próprio desempenho.
func Authorize(claims *domain.Claims, category domain.Category, scope Scope) error {
	if claims == nil {
		return NewPerformanceError(ErrScopeNotAllowed, apiErrors.ErrInsufficientPrivilege, "usuário não identificado")
	}

	if !domain.CanView(claims.UserRoleID, claims.UserCapability, category) {
		return NewPerformanceError(ErrCategoryNotAllowed, apiErrors.ErrInsufficientPrivilege, string(category))
	}

	if claims.UserRoleID == domain.RoleAdmin || claims.UserRoleID == domain.RoleSupervisor {
		return nil
	}

	if scope.Kind != ScopeActor || scope.ID == "" || scope.ID != claims.UserActorID {
		return NewPerformanceError(ErrScopeNotAllowed, apiErrors.ErrInsufficientPrivilege, scope.String())
	}

	return nil
}
