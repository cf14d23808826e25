package handler

import (
	"net/http"

	"github.com/vfg2006/sales-target-api/internal/domain"
	"github.com/vfg2006/sales-target-api/pkg/log"
	"github.com/vfg2006/sales-target-api/pkg/utils"
)

type meResponse struct {
	UserID           int               `json:"user_id"`
	Name             string            `json:"name"`
	Email            string            `json:"email"`
	RoleID           int               `json:"role_id"`
	ActorID          string            `json:"actor_id,omitempty"`
	Capability       domain.Capability `json:"capability"`
	Categories       []domain.Category `json:"categories"`
	CanManageTargets bool              `json:"can_manage_targets"`
}

// GetMyCategories devolve o usuário do token com as categorias que ele pode visualizar
func GetMyCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		response := meResponse{
			UserID:           claims.UserID,
			Name:             claims.UserName,
			Email:            claims.UserEmail,
			RoleID:           claims.UserRoleID,
			ActorID:          claims.UserActorID,
			Capability:       claims.UserCapability,
			Categories:       claims.VisibleCategories(),
			CanManageTargets: domain.CanManageTargets(claims.UserRoleID),
		}

		if err := utils.WriteJSON(w, http.StatusOK, response); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta do usuário")
		}
	}
}
