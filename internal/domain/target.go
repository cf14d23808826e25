package domain

import (
	"bytes"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
)

// RecipientKind diferencia referências a colaboradores e a times
type RecipientKind string

const (
	RecipientActor RecipientKind = "actor"
	RecipientTeam  RecipientKind = "team"
)

// RecipientRef é uma entrada da especificação de destinatários de uma meta
type RecipientRef struct {
	Kind RecipientKind `json:"kind"`
	ID   string        `json:"id"`
}

func ActorRef(id string) RecipientRef {
	return RecipientRef{Kind: RecipientActor, ID: id}
}

func TeamRef(id string) RecipientRef {
	return RecipientRef{Kind: RecipientTeam, ID: id}
}

// TargetRequest é a meta agregada enviada por um administrador ou supervisor
type TargetRequest struct {
	ID          string          `json:"id"`
	Category    Category        `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Quantity    decimal.Decimal `json:"quantity"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
	Recipients  []RecipientRef  `json:"recipients"`
	RequestedBy int             `json:"requested_by"`
}

// Period retorna o mês/ano da meta
func (r *TargetRequest) Period() YearMonth {
	return YearMonth{Year: r.Year, Month: time.Month(r.Month)}
}

// TargetRecord é a meta individual de um colaborador, gerada pelo rateio
type TargetRecord struct {
	ID        string          `json:"id"`
	RequestID string          `json:"request_id"`
	ActorID   string          `json:"actor_id"`
	Category  Category        `json:"category"`
	Month     int             `json:"month"`
	Year      int             `json:"year"`
	Amount    decimal.Decimal `json:"amount"`
	Quantity  decimal.Decimal `json:"quantity"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Period retorna o mês/ano da meta individual
func (t *TargetRecord) Period() YearMonth {
	return YearMonth{Year: t.Year, Month: time.Month(t.Month)}
}

// TargetBatch é o lote tudo-ou-nada gerado por um rateio
type TargetBatch struct {
	Request         *TargetRequest  `json:"request"`
	Records         []*TargetRecord `json:"records"`
	IneligibleTeams []string        `json:"ineligible_teams,omitempty"`
	RejectedActors  []string        `json:"rejected_actors,omitempty"`
}

// Total soma os valores de todas as metas do lote
func (b *TargetBatch) Total() decimal.Decimal {
	total := decimal.Zero
	for _, record := range b.Records {
		total = total.Add(record.Amount)
	}
	return total
}

// UpdateTargetRequest edita uma única meta individual, sem refazer o rateio
type UpdateTargetRequest struct {
	ID       string        `json:"id"`
	Amount   *NumericInput `json:"amount,omitempty"`
	Quantity *NumericInput `json:"quantity,omitempty"`
	Month    *int          `json:"month,omitempty"`
	Year     *int          `json:"year,omitempty"`
}

// NumericInput aceita tanto número quanto string no JSON, preservando o texto original
// para que a validação diferencie valores não numéricos de valores não positivos.
type NumericInput string

func (n *NumericInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '"' {
		*n = NumericInput(data)
		return nil
	}

	// Remove exatamente um nível de aspas
	var text string
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &text); err != nil {
		return err
	}
	*n = NumericInput(text)
	return nil
}

// Decimal converte a entrada para decimal
func (n NumericInput) Decimal() (decimal.Decimal, error) {
	return decimal.NewFromString(string(n))
}
