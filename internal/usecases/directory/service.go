package directory

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-target-api/infrastructure/repository"
	"github.com/vfg2006/sales-target-api/internal/domain"
	"github.com/vfg2006/sales-target-api/pkg/apiErrors"
)

// DirectoryService lista colaboradores e times para os formulários de metas
type DirectoryService interface {
	ListActors(ctx context.Context, category *domain.Category) ([]*domain.Actor, error)
	ListTeams(ctx context.Context) ([]*domain.Team, error)
	EligibleTeams(ctx context.Context, category domain.Category) ([]*domain.EligibleTeam, error)
}

type Service struct {
	actorRepository repository.ActorRepository
	teamRepository  repository.TeamRepository
}

func NewService(actorRepository repository.ActorRepository, teamRepository repository.TeamRepository) DirectoryService {
	return &Service{
		actorRepository: actorRepository,
		teamRepository:  teamRepository,
	}
}

// ListActors lista os colaboradores, opcionalmente apenas os compatíveis com a categoria
func (s *Service) ListActors(ctx context.Context, category *domain.Category) ([]*domain.Actor, error) {
	var capabilities []domain.Capability

	if category != nil {
		parsed, err := domain.ParseCategory(string(*category))
		if err != nil {
			return nil, NewDirectoryError(ErrInvalidCategory, apiErrors.ErrInvalidFormat, err.Error())
		}
		capabilities = domain.CapabilitiesFor(parsed)
	}

	actors, err := s.actorRepository.ListActors(ctx, capabilities)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar colaboradores")
		return nil, NewDirectoryError(ErrFetchActors, apiErrors.ErrDatabaseOperation, "Falha ao listar colaboradores no banco de dados")
	}

	return actors, nil
}

func (s *Service) ListTeams(ctx context.Context) ([]*domain.Team, error) {
	teams, err := s.teamRepository.ListTeams(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar times")
		return nil, NewDirectoryError(ErrFetchTeams, apiErrors.ErrDatabaseOperation, "Falha ao listar times no banco de dados")
	}

	return teams, nil
}

// EligibleTeams retorna apenas os times com ao menos um membro compatível com a categoria
func (s *Service) EligibleTeams(ctx context.Context, category domain.Category) ([]*domain.EligibleTeam, error) {
	parsed, err := domain.ParseCategory(string(category))
	if err != nil {
		return nil, NewDirectoryError(ErrInvalidCategory, apiErrors.ErrInvalidFormat, err.Error())
	}

	teams, err := s.ListTeams(ctx)
	if err != nil {
		return nil, err
	}

	eligible := make([]*domain.EligibleTeam, 0, len(teams))
	for _, team := range teams {
		members := team.CompatibleMembers(parsed)
		if len(members) == 0 {
			continue
		}

		eligible = append(eligible, &domain.EligibleTeam{
			Team:            team,
			EligibleMembers: len(members),
		})
	}

	return eligible, nil
}
