package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction é um fato histórico imutável (venda ou pedido) já normalizado pelo repositório
type Transaction struct {
	ID         string          `json:"id"`
	Category   Category        `json:"category"`
	ActorID    string          `json:"actor_id"`
	Amount     decimal.Decimal `json:"amount"`
	Quantity   decimal.Decimal `json:"quantity"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// Period retorna o mês/ano em que a transação ocorreu, sempre em UTC como os limites do intervalo
func (t *Transaction) Period() YearMonth {
	return NewYearMonth(t.OccurredAt.UTC())
}
