package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-target-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-target-api/internal/domain"
)

const (
	teamsTable       = "teams t"
	teamMembersTable = "team_members tm"
)

type TeamRepository interface {
	ListTeams(ctx context.Context) ([]*domain.Team, error)
	GetTeamByID(ctx context.Context, teamID string) (*domain.Team, error)
}

type teamRepository struct {
	conn *postgres.Connection
}

func NewTeamRepository(conn *postgres.Connection) TeamRepository {
	return &teamRepository{
		conn: conn,
	}
}

// ListTeams retorna todos os times já com seus membros
func (r *teamRepository) ListTeams(ctx context.Context) ([]*domain.Team, error) {
	query, args, err := squirrel.
		Select("t.id", "t.name", "t.manager_id").
		From(teamsTable).
		OrderBy("t.name ASC", "t.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de times")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar times")
	}
	defer rows.Close()

	teams := make([]*domain.Team, 0)
	teamsByID := make(map[string]*domain.Team)
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		teams = append(teams, team)
		teamsByID[team.ID] = team
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de times")
	}

	if len(teams) == 0 {
		return teams, nil
	}

	if err := r.loadMembers(ctx, teamsByID); err != nil {
		return nil, err
	}

	return teams, nil
}

func (r *teamRepository) GetTeamByID(ctx context.Context, teamID string) (*domain.Team, error) {
	query, args, err := squirrel.
		Select("t.id", "t.name", "t.manager_id").
		From(teamsTable).
		Where(squirrel.Eq{"t.id": teamID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de time")
	}

	team, err := scanTeam(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Cause(err) == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	if err := r.loadMembers(ctx, map[string]*domain.Team{team.ID: team}); err != nil {
		return nil, err
	}

	return team, nil
}

// loadMembers preenche os membros de cada time, preservando a ordem de cadastro
func (r *teamRepository) loadMembers(ctx context.Context, teamsByID map[string]*domain.Team) error {
	ids := make([]string, 0, len(teamsByID))
	for id := range teamsByID {
		ids = append(ids, id)
	}

	query, args, err := squirrel.
		Select("tm.team_id", "a.id", "a.name", "a.capability").
		From(teamMembersTable).
		Join("actors a ON a.id = tm.actor_id").
		Where(squirrel.Expr("tm.team_id = ANY(?)", pq.Array(ids))).
		Where(squirrel.Eq{"a.active": true}).
		OrderBy("tm.team_id ASC", "tm.position ASC", "a.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query de membros")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "erro ao listar membros dos times")
	}
	defer rows.Close()

	for rows.Next() {
		var teamID string
		member := &domain.Actor{}
		if err := rows.Scan(&teamID, &member.ID, &member.Name, &member.Capability); err != nil {
			return errors.Wrap(err, "erro ao escanear membro do time")
		}

		if team, exists := teamsByID[teamID]; exists {
			team.Members = append(team.Members, member)
		}
	}

	if err := rows.Err(); err != nil {
		return errors.Wrap(err, "erro durante a iteração de membros")
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTeam(row rowScanner) (*domain.Team, error) {
	team := &domain.Team{Members: make([]*domain.Actor, 0)}
	var managerID sql.NullString

	if err := row.Scan(&team.ID, &team.Name, &managerID); err != nil {
		return nil, errors.Wrap(err, "erro ao escanear time")
	}

	if managerID.Valid {
		team.ManagerID = &managerID.String
	}

	return team, nil
}
