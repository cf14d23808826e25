package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-target-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-target-api/internal/domain"
)

// transactionSource descreve como cada tabela de origem é mapeada para o formato canônico
type transactionSource struct {
	table      string
	id         string
	actorID    string
	amount     string
	quantity   string
	occurredAt string
}

var transactionSources = map[domain.Category]transactionSource{
	domain.CategorySales: {
		table:      "sales",
		id:         "id",
		actorID:    "seller_id",
		amount:     "net_amount",
		quantity:   "items_count",
		occurredAt: "sold_at",
	},
	domain.CategoryOrders: {
		table:      "orders",
		id:         "id",
		actorID:    "employee_id",
		amount:     "total_value",
		quantity:   "quantity",
		occurredAt: "ordered_at",
	},
}

type TransactionRepository interface {
	List(ctx context.Context, filter domain.RecordFilter) ([]*domain.Transaction, error)
	GetAllYears(ctx context.Context) ([]int, error)
}

type transactionRepository struct {
	conn *postgres.Connection
}

func NewTransactionRepository(conn *postgres.Connection) TransactionRepository {
	return &transactionRepository{
		conn: conn,
	}
}

// List retorna as transações da categoria já no formato canônico
func (r *transactionRepository) List(ctx context.Context, filter domain.RecordFilter) ([]*domain.Transaction, error) {
	source, exists := transactionSources[filter.Category]
	if !exists {
		return nil, errors.Errorf("categoria sem fonte de transações: %q", filter.Category)
	}

	if !filter.Unscoped() && len(filter.ActorIDs) == 0 {
		return []*domain.Transaction{}, nil
	}

	queryBuilder := squirrel.
		Select(
			source.id,
			source.actorID,
			source.amount,
			source.quantity,
			source.occurredAt,
		).
		From(source.table).
		OrderBy(source.occurredAt+" ASC", source.id+" ASC").
		PlaceholderFormat(squirrel.Dollar)

	if !filter.Interval.AllTime {
		start, end := filter.Interval.Bounds()
		queryBuilder = queryBuilder.
			Where(squirrel.GtOrEq{source.occurredAt: start}).
			Where(squirrel.Lt{source.occurredAt: end})
	}

	if !filter.Unscoped() {
		queryBuilder = queryBuilder.Where(squirrel.Expr(source.actorID+" = ANY(?)", pq.Array(filter.ActorIDs)))
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de transações")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao listar transações de %s", source.table)
	}
	defer rows.Close()

	transactions := make([]*domain.Transaction, 0)
	for rows.Next() {
		transaction := &domain.Transaction{Category: filter.Category}
		err := rows.Scan(
			&transaction.ID,
			&transaction.ActorID,
			&transaction.Amount,
			&transaction.Quantity,
			&transaction.OccurredAt,
		)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear transação")
		}
		transaction.OccurredAt = transaction.OccurredAt.UTC()
		transactions = append(transactions, transaction)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de transações")
	}

	return transactions, nil
}

// GetAllYears retorna os anos distintos com vendas ou pedidos, sem nenhum filtro
func (r *transactionRepository) GetAllYears(ctx context.Context) ([]int, error) {
	sales := transactionSources[domain.CategorySales]
	orders := transactionSources[domain.CategoryOrders]

	query := fmt.Sprintf(
		"SELECT DISTINCT EXTRACT(YEAR FROM %s AT TIME ZONE 'UTC')::int AS year FROM %s UNION SELECT DISTINCT EXTRACT(YEAR FROM %s AT TIME ZONE 'UTC')::int AS year FROM %s ORDER BY year DESC",
		sales.occurredAt, sales.table,
		orders.occurredAt, orders.table,
	)

	return queryYears(ctx, r.conn, query)
}
