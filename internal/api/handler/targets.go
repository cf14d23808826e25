package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-target-api/internal/domain"
	"github.com/vfg2006/sales-target-api/internal/usecases/periods"
	"github.com/vfg2006/sales-target-api/internal/usecases/targeting"
	"github.com/vfg2006/sales-target-api/pkg/apiErrors"
	"github.com/vfg2006/sales-target-api/pkg/log"
	"github.com/vfg2006/sales-target-api/pkg/utils"
)

// createTargetRequest é o corpo do formulário de metas. Valores numéricos chegam como texto ou número.
type createTargetRequest struct {
	Category   string                `json:"category"`
	Amount     domain.NumericInput   `json:"amount"`
	Quantity   domain.NumericInput   `json:"quantity"`
	Month      int                   `json:"month"`
	Year       int                   `json:"year"`
	Recipients []domain.RecipientRef `json:"recipients"`
}

type updateTargetRequest struct {
	Amount   *domain.NumericInput `json:"amount,omitempty"`
	Quantity *domain.NumericInput `json:"quantity,omitempty"`
	Month    *int                 `json:"month,omitempty"`
	Year     *int                 `json:"year,omitempty"`
}

type batchResponse struct {
	*domain.TargetBatch
	Total string `json:"total"`
}

// CreateTargets rateia a meta entre os destinatários e grava o lote inteiro
func CreateTargets(service targeting.TargetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		if !domain.CanManageTargets(claims.UserRoleID) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores e supervisores podem criar metas", nil)
			return
		}

		var body createTargetRequest
		if err := utils.DecodeJSON(r, &body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		amount, err := targeting.ParseAmount(body.Amount)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao validar valor da meta")
			return
		}

		quantity, err := targeting.ParseQuantity(body.Quantity)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao validar quantidade da meta")
			return
		}

		category := domain.Category(strings.ToLower(strings.TrimSpace(body.Category)))
		if parsed, err := domain.ParseCategory(string(category)); err == nil && !domain.CanView(claims.UserRoleID, claims.UserCapability, parsed) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Categoria não permitida para o usuário", nil)
			return
		}

		request := &domain.TargetRequest{
			Category:    category,
			Amount:      amount,
			Quantity:    quantity,
			Month:       body.Month,
			Year:        body.Year,
			Recipients:  body.Recipients,
			RequestedBy: claims.UserID,
		}

		batch, err := service.CreateTargets(r.Context(), request)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar metas")
			return
		}

		response := batchResponse{TargetBatch: batch, Total: batch.Total().StringFixed(2)}
		if err := utils.WriteJSON(w, http.StatusCreated, response); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta do lote de metas")
		}
	}
}

// ListTargets lista metas individuais. Colaboradores comuns só enxergam as próprias.
// Ex: ?category=sales&filter=month&year=2025&month=3&actor_id=A1
func ListTargets(service targeting.TargetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()

		periodFilter, err := periods.ParsePeriodFilter(query)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao interpretar filtro de período")
			return
		}

		normalized, err := periods.Normalize(periodFilter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao normalizar período")
			return
		}

		filter := domain.RecordFilter{Interval: normalized.Interval}

		if raw := query.Get("category"); raw != "" {
			category, ok := categoryParam(w, claims, raw)
			if !ok {
				return
			}
			filter.Category = category
		}

		actorID := query.Get("actor_id")
		if domain.CanManageTargets(claims.UserRoleID) {
			if actorID != "" {
				filter.ActorIDs = []string{actorID}
			}
		} else {
			if actorID != "" && actorID != claims.UserActorID {
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Colaboradores só podem consultar as próprias metas", nil)
				return
			}
			filter.ActorIDs = []string{claims.UserActorID}
		}

		records, err := service.ListTargets(r.Context(), filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar metas")
			return
		}

		visible := make([]*domain.TargetRecord, 0, len(records))
		for _, record := range records {
			if domain.CanView(claims.UserRoleID, claims.UserCapability, record.Category) {
				visible = append(visible, record)
			}
		}

		if err := utils.WriteJSON(w, http.StatusOK, visible); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta de metas")
		}
	}
}

// GetTargetBatch devolve a requisição original e as metas geradas a partir dela
func GetTargetBatch(service targeting.TargetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		requestID := httprouter.ParamsFromContext(r.Context()).ByName("request_id")
		if requestID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da requisição não informado", nil)
			return
		}

		batch, err := service.GetBatch(r.Context(), requestID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar lote de metas")
			return
		}

		if !domain.CanView(claims.UserRoleID, claims.UserCapability, batch.Request.Category) {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Categoria não permitida para o usuário", nil)
			return
		}

		response := batchResponse{TargetBatch: batch, Total: batch.Total().StringFixed(2)}
		if err := utils.WriteJSON(w, http.StatusOK, response); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta do lote de metas")
		}
	}
}

// UpdateTarget edita uma meta individual sem refazer o rateio do lote
func UpdateTarget(service targeting.TargetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body updateTargetRequest
		if err := utils.DecodeJSON(r, &body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		targetID, ok := visibleTarget(w, r, service)
		if !ok {
			return
		}

		record, err := service.UpdateTarget(r.Context(), &domain.UpdateTargetRequest{
			ID:       targetID,
			Amount:   body.Amount,
			Quantity: body.Quantity,
			Month:    body.Month,
			Year:     body.Year,
		})
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar meta")
			return
		}

		if err := utils.WriteJSON(w, http.StatusOK, record); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta da meta")
		}
	}
}

func DeleteTarget(service targeting.TargetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		targetID, ok := visibleTarget(w, r, service)
		if !ok {
			return
		}

		if err := service.DeleteTarget(r.Context(), targetID); err != nil {
			writeServiceError(w, r, err, "Erro ao remover meta")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// visibleTarget carrega a meta do caminho e confere se a categoria dela é visível para o usuário
func visibleTarget(w http.ResponseWriter, r *http.Request, service targeting.TargetService) (string, bool) {
	claims, ok := currentUser(w, r)
	if !ok {
		return "", false
	}

	targetID := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if targetID == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da meta não informado", nil)
		return "", false
	}

	record, err := service.GetTarget(r.Context(), targetID)
	if err != nil {
		writeServiceError(w, r, err, "Erro ao buscar meta")
		return "", false
	}

	if !domain.CanView(claims.UserRoleID, claims.UserCapability, record.Category) {
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Categoria não permitida para o usuário", nil)
		return "", false
	}

	return targetID, true
}
