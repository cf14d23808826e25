// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-target-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-target-api/internal/domain"
)

const (
	actorsTable = "actors a"
)

type ActorRepository interface {
	ListActors(ctx context.Context, capabilities []domain.Capability) ([]*domain.Actor, error)
	GetActorByID(ctx context.Context, actorID string) (*domain.Actor, error)
}

type actorRepository struct {
	conn *postgres.Connection
}

func NewActorRepository(conn *postgres.Connection) ActorRepository {
	return &actorRepository{
		conn: conn,
	}
}

// ListActors lista os colaboradores ativos. Sem capacidades informadas, retorna todos.
func (r *actorRepository) ListActors(ctx context.Context, capabilities []domain.Capability) ([]*domain.Actor, error) {
	queryBuilder := squirrel.
		Select("a.id", "a.name", "a.capability").
		From(actorsTable).
		Where(squirrel.Eq{"a.active": true}).
		OrderBy("a.name ASC", "a.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(capabilities) > 0 {
		values := make([]string, 0, len(capabilities))
		for _, capability := range capabilities {
			values = append(values, string(capability))
		}
		queryBuilder = queryBuilder.Where(squirrel.Eq{"a.capability": values})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de colaboradores")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar colaboradores")
	}
	defer rows.Close()

	actors := make([]*domain.Actor, 0)
	for rows.Next() {
		actor := &domain.Actor{}
		if err := rows.Scan(&actor.ID, &actor.Name, &actor.Capability); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear colaborador")
		}
		actors = append(actors, actor)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de colaboradores")
	}

	return actors, nil
}

func (r *actorRepository) GetActorByID(ctx context.Context, actorID string) (*domain.Actor, error) {
	query, args, err := squirrel.
		Select("a.id", "a.name", "a.capability").
		From(actorsTable).
		Where(squirrel.Eq{"a.id": actorID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de colaborador")
	}

	actor := &domain.Actor{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&actor.ID, &actor.Name, &actor.Capability)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "erro ao buscar colaborador %s", actorID)
	}

	return actor, nil
}
