package targeting

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-target-api/internal/domain"
	"github.com/vfg2006/sales-target-api/pkg/apiErrors"
)

// Casas decimais da unidade monetária
const monetaryPlaces = 2

// Apportion divide o valor da meta igualmente entre os destinatários.
// Regras:
//  1. Cada destinatário recebe round(valor / N, 2); se o arredondamento para cima deixar
//     o último sem saldo positivo, usa-se o valor truncado em 2 casas
//  2. O último destinatário, na ordem de resolução, absorve a diferença de arredondamento
//  3. A quantidade nunca é dividida: todos recebem a quantidade total
//
// A soma dos valores gerados é sempre igual ao valor total da requisição.
func Apportion(request *domain.TargetRequest, recipients []string) (*domain.TargetBatch, error) {
	if len(recipients) == 0 {
		return nil, NewTargetError(ErrNoEligibleRecipients, apiErrors.ErrNoEligibleRecipients, "lista de destinatários vazia")
	}

	count := decimal.NewFromInt(int64(len(recipients)))
	perRecipient := request.Amount.DivRound(count, monetaryPlaces)

	// O último destinatário recebe o que sobra após os N-1 primeiros
	others := count.Sub(decimal.NewFromInt(1))
	lastAmount := request.Amount.Sub(perRecipient.Mul(others))
	if !lastAmount.IsPositive() {
		perRecipient = request.Amount.Div(count).Truncate(monetaryPlaces)
		lastAmount = request.Amount.Sub(perRecipient.Mul(others))
	}
	if !perRecipient.IsPositive() || !lastAmount.IsPositive() {
		return nil, NewFieldError(ErrInvalidAmount, apiErrors.ErrInvalidAmount, "amount",
			fmt.Sprintf("valor %s insuficiente para ratear entre %d destinatários", request.Amount.String(), len(recipients)))
	}

	records := make([]*domain.TargetRecord, 0, len(recipients))
	for i, actorID := range recipients {
		amount := perRecipient
		if i == len(recipients)-1 {
			amount = lastAmount
		}

		records = append(records, &domain.TargetRecord{
			RequestID: request.ID,
			ActorID:   actorID,
			Category:  request.Category,
			Month:     request.Month,
			Year:      request.Year,
			Amount:    amount,
			Quantity:  request.Quantity,
		})
	}

	batch := &domain.TargetBatch{
		Request: request,
		Records: records,
	}

	// Verificação de segurança: nenhum centavo pode se perder no rateio
	if !batch.Total().Equal(request.Amount) {
		return nil, NewTargetError(ErrApportionMismatch, apiErrors.ErrInternalServer,
			fmt.Sprintf("total rateado %s, esperado %s", batch.Total().String(), request.Amount.String()))
	}

	return batch, nil
}
