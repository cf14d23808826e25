package targeting

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-target-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-target-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type serviceFixture struct {
	service    *Service
	actorRepo  *mocks.MockActorRepository
	teamRepo   *mocks.MockTeamRepository
	targetRepo *mocks.MockTargetRepository
}

var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func newServiceFixture(t *testing.T) *serviceFixture {
	ctrl := gomock.NewController(t)

	f := &serviceFixture{
		actorRepo:  mocks.NewMockActorRepository(ctrl),
		teamRepo:   mocks.NewMockTeamRepository(ctrl),
		targetRepo: mocks.NewMockTargetRepository(ctrl),
	}

	f.service = &Service{
		actorRepository:  f.actorRepo,
		teamRepository:   f.teamRepo,
		targetRepository: f.targetRepo,
		maxRecipients:    10,
		now:              func() time.Time { return fixedNow },
	}

	return f
}

func (f *serviceFixture) expectDirectory() {
	x := &domain.Actor{ID: "X", Capability: domain.CapabilitySales}
	y := &domain.Actor{ID: "Y", Capability: domain.CapabilityOrders}
	z := &domain.Actor{ID: "Z", Capability: domain.CapabilitySalesOrders}

	f.actorRepo.EXPECT().ListActors(gomock.Any(), gomock.Nil()).Return([]*domain.Actor{x, y, z}, nil)
	f.teamRepo.EXPECT().ListTeams(gomock.Any()).Return([]*domain.Team{
		{ID: "TEAM_A", Members: []*domain.Actor{x, y, z}},
		{ID: "TEAM_ORDERS", Members: []*domain.Actor{y}},
	}, nil)
}

func salesRequest(recipients ...domain.RecipientRef) *domain.TargetRequest {
	return &domain.TargetRequest{
		Category:   domain.CategorySales,
		Amount:     decimal.NewFromInt(9000),
		Quantity:   decimal.NewFromInt(10),
		Month:      3,
		Year:       2025,
		Recipients: recipients,
	}
}

func TestService_CreateTargets(t *testing.T) {
	f := newServiceFixture(t)
	f.expectDirectory()

	var saved *domain.TargetBatch
	f.targetRepo.EXPECT().
		SaveBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, batch *domain.TargetBatch) error {
			saved = batch
			return nil
		})

	batch, err := f.service.CreateTargets(context.Background(), salesRequest(domain.TeamRef("TEAM_A"), domain.ActorRef("X"), domain.TeamRef("TEAM_ORDERS")))

	require.NoError(t, err)
	require.Same(t, saved, batch)
	require.Len(t, batch.Records, 2)
	assert.NotEmpty(t, batch.Request.ID)
	assert.Equal(t, []string{"TEAM_ORDERS"}, batch.IneligibleTeams)

	for i, actorID := range []string{"X", "Z"} {
		record := batch.Records[i]
		assert.Equal(t, actorID, record.ActorID)
		assert.Equal(t, "4500", record.Amount.String())
		assert.Equal(t, "10", record.Quantity.String())
		assert.Equal(t, batch.Request.ID, record.RequestID)
		assert.NotEmpty(t, record.ID)
		assert.Equal(t, fixedNow, record.CreatedAt)
	}
}

func TestService_CreateTargets_ValidationHappensBeforeLoading(t *testing.T) {
	f := newServiceFixture(t)

	request := salesRequest(domain.ActorRef("X"))
	request.Amount = decimal.NewFromInt(-10)

	_, err := f.service.CreateTargets(context.Background(), request)

	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestService_CreateTargets_TooManyRecipients(t *testing.T) {
	f := newServiceFixture(t)
	f.service.maxRecipients = 1

	_, err := f.service.CreateTargets(context.Background(), salesRequest(domain.ActorRef("X"), domain.ActorRef("Z")))

	assert.ErrorIs(t, err, ErrTooManyRecipients)
}

func TestService_CreateTargets_NoEligibleRecipientsNeverPersists(t *testing.T) {
	f := newServiceFixture(t)
	f.expectDirectory()
	f.targetRepo.EXPECT().SaveBatch(gomock.Any(), gomock.Any()).Times(0)

	_, err := f.service.CreateTargets(context.Background(), salesRequest(domain.TeamRef("TEAM_ORDERS"), domain.ActorRef("Y")))

	assert.ErrorIs(t, err, ErrNoEligibleRecipients)
}

func TestService_CreateTargets_PersistFailure(t *testing.T) {
	f := newServiceFixture(t)
	f.expectDirectory()
	f.targetRepo.EXPECT().SaveBatch(gomock.Any(), gomock.Any()).Return(errors.New("conexão perdida"))

	batch, err := f.service.CreateTargets(context.Background(), salesRequest(domain.ActorRef("X")))

	assert.Nil(t, batch)
	assert.ErrorIs(t, err, ErrPersistBatch)
}

func TestService_CreateTargets_DirectoryFailure(t *testing.T) {
	f := newServiceFixture(t)
	f.actorRepo.EXPECT().ListActors(gomock.Any(), gomock.Nil()).Return(nil, errors.New("timeout"))

	_, err := f.service.CreateTargets(context.Background(), salesRequest(domain.ActorRef("X")))

	assert.ErrorIs(t, err, ErrLoadDirectory)
}

func TestService_UpdateTarget(t *testing.T) {
	amount := domain.NumericInput("5000")
	month := 4

	tests := []struct {
		name     string
		request  *domain.UpdateTargetRequest
		setup    func(f *serviceFixture)
		expected error
		validate func(t *testing.T, record *domain.TargetRecord)
	}{
		{
			name:    "Altera somente a meta informada",
			request: &domain.UpdateTargetRequest{ID: "T1", Amount: &amount, Month: &month},
			setup: func(f *serviceFixture) {
				f.targetRepo.EXPECT().GetByID(gomock.Any(), "T1").Return(&domain.TargetRecord{
					ID: "T1", ActorID: "X", Amount: decimal.NewFromInt(4500), Quantity: decimal.NewFromInt(10), Month: 3, Year: 2025,
				}, nil)
				f.targetRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, record *domain.TargetRecord) {
				assert.Equal(t, "5000", record.Amount.String())
				assert.Equal(t, "10", record.Quantity.String())
				assert.Equal(t, 4, record.Month)
				assert.Equal(t, fixedNow, record.UpdatedAt)
			},
		},
		{
			name:    "Meta inexistente",
			request: &domain.UpdateTargetRequest{ID: "T404", Amount: &amount},
			setup: func(f *serviceFixture) {
				f.targetRepo.EXPECT().GetByID(gomock.Any(), "T404").Return(nil, nil)
			},
			expected: ErrTargetNotFound,
		},
		{
			name: "Valor não numérico",
			request: func() *domain.UpdateTargetRequest {
				invalid := domain.NumericInput("mil")
				return &domain.UpdateTargetRequest{ID: "T1", Amount: &invalid}
			}(),
			setup: func(f *serviceFixture) {
				f.targetRepo.EXPECT().GetByID(gomock.Any(), "T1").Return(&domain.TargetRecord{ID: "T1", Month: 3, Year: 2025}, nil)
			},
			expected: ErrInvalidAmount,
		},
		{
			name:    "Meta removida entre a leitura e a escrita",
			request: &domain.UpdateTargetRequest{ID: "T1", Amount: &amount},
			setup: func(f *serviceFixture) {
				f.targetRepo.EXPECT().GetByID(gomock.Any(), "T1").Return(&domain.TargetRecord{ID: "T1", Month: 3, Year: 2025}, nil)
				f.targetRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(sql.ErrNoRows)
			},
			expected: ErrTargetNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServiceFixture(t)
			tt.setup(f)

			record, err := f.service.UpdateTarget(context.Background(), tt.request)

			if tt.expected != nil {
				assert.ErrorIs(t, err, tt.expected)
				return
			}

			require.NoError(t, err)
			tt.validate(t, record)
		})
	}
}

func TestService_DeleteTarget(t *testing.T) {
	f := newServiceFixture(t)
	f.targetRepo.EXPECT().Delete(gomock.Any(), "T1").Return(true, nil)
	f.targetRepo.EXPECT().Delete(gomock.Any(), "T2").Return(false, nil)

	assert.NoError(t, f.service.DeleteTarget(context.Background(), "T1"))
	assert.ErrorIs(t, f.service.DeleteTarget(context.Background(), "T2"), ErrTargetNotFound)
}

func TestService_GetBatch(t *testing.T) {
	f := newServiceFixture(t)
	request := &domain.TargetRequest{ID: "req-1", Category: domain.CategorySales}
	records := []*domain.TargetRecord{{ID: "T1", RequestID: "req-1"}, {ID: "T2", RequestID: "req-1"}}

	f.targetRepo.EXPECT().GetRequest(gomock.Any(), "req-1").Return(request, nil)
	f.targetRepo.EXPECT().ListByRequestID(gomock.Any(), "req-1").Return(records, nil)
	f.targetRepo.EXPECT().GetRequest(gomock.Any(), "missing").Return(nil, nil)

	batch, err := f.service.GetBatch(context.Background(), "req-1")
	require.NoError(t, err)
	assert.Equal(t, request, batch.Request)
	assert.Len(t, batch.Records, 2)

	_, err = f.service.GetBatch(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrTargetNotFound)
}

func TestService_GetTarget(t *testing.T) {
	f := newServiceFixture(t)
	f.targetRepo.EXPECT().GetByID(gomock.Any(), "T1").Return(&domain.TargetRecord{ID: "T1", Category: domain.CategoryOrders}, nil)
	f.targetRepo.EXPECT().GetByID(gomock.Any(), "T404").Return(nil, nil)
	f.targetRepo.EXPECT().GetByID(gomock.Any(), "T500").Return(nil, errors.New("conexão perdida"))

	record, err := f.service.GetTarget(context.Background(), "T1")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryOrders, record.Category)

	_, err = f.service.GetTarget(context.Background(), "T404")
	assert.ErrorIs(t, err, ErrTargetNotFound)

	_, err = f.service.GetTarget(context.Background(), "T500")
	assert.ErrorIs(t, err, ErrFetchTargets)
}
