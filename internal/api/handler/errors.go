package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/sales-target-api/internal/domain"
	"github.com/vfg2006/sales-target-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-target-api/internal/usecases/directory"
	"github.com/vfg2006/sales-target-api/internal/usecases/performance"
	"github.com/vfg2006/sales-target-api/internal/usecases/periods"
	"github.com/vfg2006/sales-target-api/internal/usecases/targeting"
	"github.com/vfg2006/sales-target-api/pkg/apiErrors"
	"github.com/vfg2006/sales-target-api/pkg/log"
	"github.com/vfg2006/sales-target-api/pkg/middleware"
)

// fieldDetails é devolvido em details quando o erro aponta um campo específico
type fieldDetails struct {
	Field string `json:"field"`
}

// writeServiceError traduz os erros tipados dos casos de uso para a resposta padronizada
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var (
		targetErr      *targeting.TargetError
		performanceErr *performance.PerformanceError
		validationErr  *periods.ValidationError
		directoryErr   *directory.DirectoryError
		authErr        *authenticating.AuthError
	)

	switch {
	case errors.As(err, &targetErr):
		var details any
		if targetErr.Field != "" {
			details = fieldDetails{Field: targetErr.Field}
		}
		apiErrors.WriteError(w, targetErr.Code, targetErr.Error(), details)
	case errors.As(err, &validationErr):
		apiErrors.WriteError(w, validationErr.Code, validationErr.Error(), fieldDetails{Field: validationErr.Field})
	case errors.As(err, &performanceErr):
		apiErrors.WriteError(w, performanceErr.Code, performanceErr.Error(), nil)
	case errors.As(err, &directoryErr):
		apiErrors.WriteError(w, directoryErr.Code, directoryErr.Error(), nil)
	case errors.As(err, &authErr):
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error(fallback)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}

// currentUser lê o usuário autenticado ou escreve 401
func currentUser(w http.ResponseWriter, r *http.Request) (*domain.Claims, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return nil, false
	}
	return claims, true
}

// categoryParam valida a categoria do caminho e a visibilidade para o usuário
func categoryParam(w http.ResponseWriter, claims *domain.Claims, raw string) (domain.Category, bool) {
	category, err := domain.ParseCategory(raw)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), fieldDetails{Field: "category"})
		return "", false
	}

	if !domain.CanView(claims.UserRoleID, claims.UserCapability, category) {
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Categoria não permitida para o usuário", nil)
		return "", false
	}

	return category, true
}
