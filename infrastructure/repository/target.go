package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-target-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-target-api/internal/domain"
)

const (
	targetRequestsTable = "target_requests"
	targetRecordsTable  = "target_records"

	// Código do Postgres para violação de chave única
	uniqueViolationCode = "23505"
)

// ErrDuplicateTarget indica que o lote colidiu com um registro já existente
var ErrDuplicateTarget = errors.New("meta duplicada")

var targetRecordColumns = []string{
	"tr.id",
	"tr.request_id",
	"tr.actor_id",
	"tr.category",
	"tr.month",
	"tr.year",
	"tr.amount",
	"tr.quantity",
	"tr.created_at",
	"tr.updated_at",
}

type TargetRepository interface {
	SaveBatch(ctx context.Context, batch *domain.TargetBatch) error
	GetByID(ctx context.Context, targetID string) (*domain.TargetRecord, error)
	GetRequest(ctx context.Context, requestID string) (*domain.TargetRequest, error)
	ListByRequestID(ctx context.Context, requestID string) ([]*domain.TargetRecord, error)
	List(ctx context.Context, filter domain.RecordFilter) ([]*domain.TargetRecord, error)
	Update(ctx context.Context, record *domain.TargetRecord) error
	Delete(ctx context.Context, targetID string) (bool, error)
	GetAllYears(ctx context.Context) ([]int, error)
}

type targetRepository struct {
	conn *postgres.Connection
}

func NewTargetRepository(conn *postgres.Connection) TargetRepository {
	return &targetRepository{
		conn: conn,
	}
}

// SaveBatch grava a requisição e todas as metas individuais na mesma transação.
// Qualquer falha desfaz o lote inteiro.
func (r *targetRepository) SaveBatch(ctx context.Context, batch *domain.TargetBatch) error {
	if batch == nil || batch.Request == nil || len(batch.Records) == 0 {
		return errors.New("lote de metas vazio")
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		request := batch.Request

		requestSQL, requestArgs, err := squirrel.
			Insert(targetRequestsTable).
			Columns("id", "category", "amount", "quantity", "month", "year", "requested_by", "recipients_count").
			Values(request.ID, request.Category, request.Amount, request.Quantity, request.Month, request.Year, request.RequestedBy, len(batch.Records)).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return errors.Wrap(err, "erro ao construir insert da requisição de metas")
		}

		if _, err := tx.ExecContext(ctx, requestSQL, requestArgs...); err != nil {
			return wrapPersistError(err, "erro ao inserir requisição de metas")
		}

		insert := squirrel.
			Insert(targetRecordsTable).
			Columns("id", "request_id", "actor_id", "category", "month", "year", "amount", "quantity", "created_at", "updated_at").
			PlaceholderFormat(squirrel.Dollar)

		for _, record := range batch.Records {
			insert = insert.Values(
				record.ID,
				record.RequestID,
				record.ActorID,
				record.Category,
				record.Month,
				record.Year,
				record.Amount,
				record.Quantity,
				record.CreatedAt,
				record.UpdatedAt,
			)
		}

		recordsSQL, recordsArgs, err := insert.ToSql()
		if err != nil {
			return errors.Wrap(err, "erro ao construir insert das metas")
		}

		result, err := tx.ExecContext(ctx, recordsSQL, recordsArgs...)
		if err != nil {
			return wrapPersistError(err, "erro ao inserir metas")
		}

		affected, err := result.RowsAffected()
		if err == nil && affected != int64(len(batch.Records)) {
			return errors.Errorf("metas inseridas %d, esperadas %d", affected, len(batch.Records))
		}

		return nil
	})
}

func (r *targetRepository) GetByID(ctx context.Context, targetID string) (*domain.TargetRecord, error) {
	query, args, err := squirrel.
		Select(targetRecordColumns...).
		From(targetRecordsTable + " tr").
		Where(squirrel.Eq{"tr.id": targetID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de meta")
	}

	record, err := scanTargetRecord(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Cause(err) == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return record, nil
}

func (r *targetRepository) GetRequest(ctx context.Context, requestID string) (*domain.TargetRequest, error) {
	query, args, err := squirrel.
		Select("id", "category", "amount", "quantity", "month", "year", "requested_by").
		From(targetRequestsTable).
		Where(squirrel.Eq{"id": requestID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de requisição")
	}

	request := &domain.TargetRequest{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&request.ID,
		&request.Category,
		&request.Amount,
		&request.Quantity,
		&request.Month,
		&request.Year,
		&request.RequestedBy,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "erro ao buscar requisição %s", requestID)
	}

	return request, nil
}

func (r *targetRepository) ListByRequestID(ctx context.Context, requestID string) ([]*domain.TargetRecord, error) {
	queryBuilder := squirrel.
		Select(targetRecordColumns...).
		From(targetRecordsTable + " tr").
		Where(squirrel.Eq{"tr.request_id": requestID}).
		OrderBy("tr.created_at ASC", "tr.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryRecords(ctx, queryBuilder)
}

func (r *targetRepository) List(ctx context.Context, filter domain.RecordFilter) ([]*domain.TargetRecord, error) {
	if !filter.Unscoped() && len(filter.ActorIDs) == 0 {
		return []*domain.TargetRecord{}, nil
	}

	queryBuilder := squirrel.
		Select(targetRecordColumns...).
		From(targetRecordsTable + " tr").
		OrderBy("tr.year ASC", "tr.month ASC", "tr.actor_id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.Category != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"tr.category": filter.Category})
	}

	if !filter.Interval.AllTime {
		start := filter.Interval.Start.Year*100 + int(filter.Interval.Start.Month)
		end := filter.Interval.End.Year*100 + int(filter.Interval.End.Month)
		queryBuilder = queryBuilder.Where(squirrel.Expr("(tr.year * 100 + tr.month) BETWEEN ? AND ?", start, end))
	}

	if !filter.Unscoped() {
		queryBuilder = queryBuilder.Where(squirrel.Expr("tr.actor_id = ANY(?)", pq.Array(filter.ActorIDs)))
	}

	return r.queryRecords(ctx, queryBuilder)
}

// Update altera somente a meta informada, sem tocar nas demais do mesmo lote
func (r *targetRepository) Update(ctx context.Context, record *domain.TargetRecord) error {
	query, args, err := squirrel.
		Update(targetRecordsTable).
		Set("amount", record.Amount).
		Set("quantity", record.Quantity).
		Set("month", record.Month).
		Set("year", record.Year).
		Set("updated_at", record.UpdatedAt).
		Where(squirrel.Eq{"id": record.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir update da meta")
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrapf(err, "erro ao atualizar meta %s", record.ID)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "erro ao verificar linhas afetadas")
	}

	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *targetRepository) Delete(ctx context.Context, targetID string) (bool, error) {
	query, args, err := squirrel.
		Delete(targetRecordsTable).
		Where(squirrel.Eq{"id": targetID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, errors.Wrap(err, "erro ao construir delete da meta")
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, errors.Wrapf(err, "erro ao remover meta %s", targetID)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "erro ao verificar linhas afetadas")
	}

	return affected > 0, nil
}

// GetAllYears retorna os anos distintos com metas cadastradas, sem nenhum filtro
func (r *targetRepository) GetAllYears(ctx context.Context) ([]int, error) {
	query, args, err := squirrel.
		Select("DISTINCT tr.year").
		From(targetRecordsTable + " tr").
		OrderBy("tr.year DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de anos")
	}

	return queryYears(ctx, r.conn, query, args...)
}

func (r *targetRepository) queryRecords(ctx context.Context, queryBuilder squirrel.SelectBuilder) ([]*domain.TargetRecord, error) {
	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de metas")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar metas")
	}
	defer rows.Close()

	records := make([]*domain.TargetRecord, 0)
	for rows.Next() {
		record, err := scanTargetRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de metas")
	}

	return records, nil
}

func scanTargetRecord(row rowScanner) (*domain.TargetRecord, error) {
	record := &domain.TargetRecord{}
	var createdAt, updatedAt time.Time

	err := row.Scan(
		&record.ID,
		&record.RequestID,
		&record.ActorID,
		&record.Category,
		&record.Month,
		&record.Year,
		&record.Amount,
		&record.Quantity,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao escanear meta")
	}

	record.CreatedAt = createdAt
	record.UpdatedAt = updatedAt

	return record, nil
}

func wrapPersistError(err error, message string) error {
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolationCode {
		return errors.Wrapf(ErrDuplicateTarget, "%s: %s", message, pqErr.Detail)
	}
	return errors.Wrap(err, message)
}

func queryYears(ctx context.Context, q postgres.Queryer, query string, args ...interface{}) ([]int, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar anos")
	}
	defer rows.Close()

	years := make([]int, 0)
	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear ano")
		}
		years = append(years, year)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de anos")
	}

	return years, nil
}
