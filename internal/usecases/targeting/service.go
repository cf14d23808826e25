package targeting

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-target-api/infrastructure/repository"
	"github.com/vfg2006/sales-target-api/internal/config"
	"github.com/vfg2006/sales-target-api/internal/domain"
	"github.com/vfg2006/sales-target-api/pkg/apiErrors"
	"github.com/vfg2006/sales-target-api/pkg/metrics"
	"github.com/vfg2006/sales-target-api/pkg/utils"
)

type TargetService interface {
	CreateTargets(ctx context.Context, request *domain.TargetRequest) (*domain.TargetBatch, error)
	UpdateTarget(ctx context.Context, request *domain.UpdateTargetRequest) (*domain.TargetRecord, error)
	DeleteTarget(ctx context.Context, targetID string) error
	GetTarget(ctx context.Context, targetID string) (*domain.TargetRecord, error)
	ListTargets(ctx context.Context, filter domain.RecordFilter) ([]*domain.TargetRecord, error)
	GetBatch(ctx context.Context, requestID string) (*domain.TargetBatch, error)
}

type Service struct {
	actorRepository  repository.ActorRepository
	teamRepository   repository.TeamRepository
	targetRepository repository.TargetRepository
	metrics          *metrics.Manager
	maxRecipients    int
	now              func() time.Time
}

func NewService(
	actorRepository repository.ActorRepository,
	teamRepository repository.TeamRepository,
	targetRepository repository.TargetRepository,
	metricsManager *metrics.Manager,
	cfg *config.Config,
) TargetService {
	return &Service{
		actorRepository:  actorRepository,
		teamRepository:   teamRepository,
		targetRepository: targetRepository,
		metrics:          metricsManager,
		maxRecipients:    cfg.Targeting.MaxRecipients,
		now:              time.Now,
	}
}

// CreateTargets valida, resolve os destinatários, rateia o valor e grava o lote inteiro ou nada
func (s *Service) CreateTargets(ctx context.Context, request *domain.TargetRequest) (*domain.TargetBatch, error) {
	if err := ValidateTargetRequest(request); err != nil {
		return nil, err
	}

	if s.maxRecipients > 0 && len(request.Recipients) > s.maxRecipients {
		return nil, NewFieldError(ErrTooManyRecipients, apiErrors.ErrInvalidRequest, "recipients",
			fmt.Sprintf("máximo de %d destinatários por requisição", s.maxRecipients))
	}

	directory, err := s.loadDirectory(ctx)
	if err != nil {
		return nil, err
	}

	resolution, err := ResolveRecipients(request.Category, request.Recipients, directory)
	if err != nil {
		s.metrics.RecordNoEligibleRecipients(string(request.Category))
		logrus.WithFields(logrus.Fields{
			"category":         request.Category,
			"ineligible_teams": resolution.IneligibleTeams,
			"rejected_actors":  resolution.RejectedActors,
		}).Warn("Nenhum destinatário elegível para a meta")
		return nil, err
	}

	request.ID = uuid.NewString()

	batch, err := Apportion(request, resolution.Recipients)
	if err != nil {
		return nil, err
	}

	batch.IneligibleTeams = resolution.IneligibleTeams
	batch.RejectedActors = resolution.RejectedActors

	now := s.now().UTC()
	for _, record := range batch.Records {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, NewTargetError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador da meta")
		}
		record.ID = id
		record.CreatedAt = now
		record.UpdatedAt = now
	}

	if err := s.targetRepository.SaveBatch(ctx, batch); err != nil {
		s.metrics.RecordBatchFailure(string(request.Category))
		logrus.WithFields(logrus.Fields{
			"request_id": request.ID,
			"records":    len(batch.Records),
			"error":      err,
		}).Error("Erro ao gravar lote de metas")
		return nil, NewTargetError(ErrPersistBatch, apiErrors.ErrBatchPersistFailed, "Nenhuma meta foi gravada")
	}

	if len(batch.IneligibleTeams) > 0 || len(batch.RejectedActors) > 0 {
		logrus.WithFields(logrus.Fields{
			"request_id":       request.ID,
			"ineligible_teams": batch.IneligibleTeams,
			"rejected_actors":  batch.RejectedActors,
		}).Warn("Destinatários ignorados no rateio")
	}

	s.metrics.RecordTargetBatch(string(request.Category), len(batch.Records))

	logrus.WithFields(logrus.Fields{
		"request_id": request.ID,
		"category":   request.Category,
		"period":     request.Period().String(),
		"amount":     request.Amount.String(),
		"records":    len(batch.Records),
	}).Info("Lote de metas criado")

	return batch, nil
}

// UpdateTarget edita uma única meta. As demais metas do mesmo lote não são recalculadas.
func (s *Service) UpdateTarget(ctx context.Context, request *domain.UpdateTargetRequest) (*domain.TargetRecord, error) {
	record, err := s.targetRepository.GetByID(ctx, request.ID)
	if err != nil {
		logrus.WithField("error", err).Error("Erro ao buscar meta")
		return nil, NewTargetError(ErrFetchTargets, apiErrors.ErrDatabaseOperation, "Falha ao buscar a meta")
	}

	if record == nil {
		return nil, NewTargetError(ErrTargetNotFound, apiErrors.ErrTargetNotFound, request.ID)
	}

	if request.Amount != nil {
		amount, err := ParseAmount(*request.Amount)
		if err != nil {
			return nil, err
		}
		record.Amount = amount
	}

	if request.Quantity != nil {
		quantity, err := ParseQuantity(*request.Quantity)
		if err != nil {
			return nil, err
		}
		record.Quantity = quantity
	}

	if request.Month != nil {
		record.Month = *request.Month
	}

	if request.Year != nil {
		record.Year = *request.Year
	}

	if err := validatePeriod(record.Month, record.Year); err != nil {
		return nil, err
	}

	record.UpdatedAt = s.now().UTC()

	if err := s.targetRepository.Update(ctx, record); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewTargetError(ErrTargetNotFound, apiErrors.ErrTargetNotFound, request.ID)
		}
		logrus.WithField("error", err).Error("Erro ao atualizar meta")
		return nil, NewTargetError(ErrFetchTargets, apiErrors.ErrDatabaseOperation, "Falha ao atualizar a meta")
	}

	return record, nil
}

// GetTarget busca uma meta individual pelo ID
func (s *Service) GetTarget(ctx context.Context, targetID string) (*domain.TargetRecord, error) {
	record, err := s.targetRepository.GetByID(ctx, targetID)
	if err != nil {
		logrus.WithField("error", err).Error("Erro ao buscar meta")
		return nil, NewTargetError(ErrFetchTargets, apiErrors.ErrDatabaseOperation, "Falha ao buscar a meta")
	}

	if record == nil {
		return nil, NewTargetError(ErrTargetNotFound, apiErrors.ErrTargetNotFound, targetID)
	}

	return record, nil
}

func (s *Service) DeleteTarget(ctx context.Context, targetID string) error {
	deleted, err := s.targetRepository.Delete(ctx, targetID)
	if err != nil {
		logrus.WithField("error", err).Error("Erro ao remover meta")
		return NewTargetError(ErrFetchTargets, apiErrors.ErrDatabaseOperation, "Falha ao remover a meta")
	}

	if !deleted {
		return NewTargetError(ErrTargetNotFound, apiErrors.ErrTargetNotFound, targetID)
	}

	return nil
}

func (s *Service) ListTargets(ctx context.Context, filter domain.RecordFilter) ([]*domain.TargetRecord, error) {
	records, err := s.targetRepository.List(ctx, filter)
	if err != nil {
		logrus.WithField("error", err).Error("Erro ao listar metas")
		return nil, NewTargetError(ErrFetchTargets, apiErrors.ErrDatabaseOperation, "Falha ao listar metas")
	}

	return records, nil
}

// GetBatch reconstrói o lote a partir da referência da requisição original
func (s *Service) GetBatch(ctx context.Context, requestID string) (*domain.TargetBatch, error) {
	request, err := s.targetRepository.GetRequest(ctx, requestID)
	if err != nil {
		logrus.WithField("error", err).Error("Erro ao buscar requisição de metas")
		return nil, NewTargetError(ErrFetchTargets, apiErrors.ErrDatabaseOperation, "Falha ao buscar a requisição")
	}

	if request == nil {
		return nil, NewTargetError(ErrTargetNotFound, apiErrors.ErrTargetNotFound, requestID)
	}

	records, err := s.targetRepository.ListByRequestID(ctx, requestID)
	if err != nil {
		logrus.WithField("error", err).Error("Erro ao listar metas da requisição")
		return nil, NewTargetError(ErrFetchTargets, apiErrors.ErrDatabaseOperation, "Falha ao listar metas da requisição")
	}

	return &domain.TargetBatch{
		Request: request,
		Records: records,
	}, nil
}

func (s *Service) loadDirectory(ctx context.Context) (*Directory, error) {
	actors, err := s.actorRepository.ListActors(ctx, nil)
	if err != nil {
		logrus.WithField("error", err).Error("Erro ao carregar colaboradores")
		return nil, NewTargetError(ErrLoadDirectory, apiErrors.ErrDatabaseOperation, "Falha ao carregar colaboradores")
	}

	teams, err := s.teamRepository.ListTeams(ctx)
	if err != nil {
		logrus.WithField("error", err).Error("Erro ao carregar times")
		return nil, NewTargetError(ErrLoadDirectory, apiErrors.ErrDatabaseOperation, "Falha ao carregar times")
	}

	return NewDirectory(actors, teams), nil
}
