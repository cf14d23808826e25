package performance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-target-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-target-api/internal/domain"
	"github.com/vfg2006/sales-target-api/internal/usecases/periods"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	service         *Service
	transactionRepo *mocks.MockTransactionRepository
	targetRepo      *mocks.MockTargetRepository
	actorRepo       *mocks.MockActorRepository
	teamRepo        *mocks.MockTeamRepository
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		transactionRepo: mocks.NewMockTransactionRepository(ctrl),
		targetRepo:      mocks.NewMockTargetRepository(ctrl),
		actorRepo:       mocks.NewMockActorRepository(ctrl),
		teamRepo:        mocks.NewMockTeamRepository(ctrl),
	}

	f.service = &Service{
		transactionRepository: f.transactionRepo,
		targetRepository:      f.targetRepo,
		actorRepository:       f.actorRepo,
		teamRepository:        f.teamRepo,
	}

	return f
}

func TestService_GetSummary(t *testing.T) {
	f := newFixture(t)

	expectedFilter := domain.RecordFilter{
		Category: domain.CategorySales,
		Interval: marchToApril2025(),
		ActorIDs: []string{"X"},
	}

	f.transactionRepo.EXPECT().List(gomock.Any(), expectedFilter).Return([]*domain.Transaction{
		sale("X", 2025, time.March, 2000),
		sale("X", 2025, time.April, 3000),
	}, nil)
	f.targetRepo.EXPECT().List(gomock.Any(), expectedFilter).Return([]*domain.TargetRecord{
		target("X", 2025, time.March, 4000, 10),
		target("X", 2025, time.April, 2000, 10),
	}, nil)
	f.actorRepo.EXPECT().ListActors(gomock.Any(), gomock.Nil()).Return([]*domain.Actor{
		{ID: "X", Name: "Xavier"},
	}, nil)

	summary, err := f.service.GetSummary(context.Background(), SummaryQuery{
		Category: domain.CategorySales,
		Filter:   domain.MonthRangeFilter(2025, 3, 2025, 4),
		Scope:    Scope{Kind: ScopeActor, ID: "X"},
	})

	require.NoError(t, err)
	assert.False(t, summary.Partial)
	assert.Equal(t, "Showing from March 2025 to April 2025", summary.Status)
	assert.Equal(t, int64(83), summary.Percentage)
	require.Len(t, summary.ByActor, 1)
	assert.Equal(t, "Xavier", summary.ByActor[0].ActorName)
}

func TestService_GetSummary_PartialWhenSourceFails(t *testing.T) {
	f := newFixture(t)

	f.transactionRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]*domain.Transaction{
		sale("X", 2025, time.March, 2000),
	}, nil)
	f.targetRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("statement timeout"))
	f.actorRepo.EXPECT().ListActors(gomock.Any(), gomock.Nil()).Return(nil, errors.New("statement timeout"))

	summary, err := f.service.GetSummary(context.Background(), SummaryQuery{
		Category: domain.CategorySales,
		Filter:   domain.AllTimeFilter(),
		Scope:    OrganizationScope(),
	})

	require.NoError(t, err)
	assert.True(t, summary.Partial)
	assert.Equal(t, []string{domain.SourceTargets}, summary.PartialSources)
	assert.Equal(t, "2000", summary.Actual.String())
	assert.Equal(t, int64(0), summary.Percentage)
	assert.Equal(t, periods.StatusAllTime, summary.Status)
}

func TestService_GetSummary_TeamScope(t *testing.T) {
	f := newFixture(t)

	f.teamRepo.EXPECT().GetTeamByID(gomock.Any(), "TEAM_A").Return(&domain.Team{
		ID:      "TEAM_A",
		Members: []*domain.Actor{{ID: "X"}, {ID: "Z"}},
	}, nil)
	f.transactionRepo.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter domain.RecordFilter) ([]*domain.Transaction, error) {
			assert.Equal(t, []string{"X", "Z"}, filter.ActorIDs)
			return []*domain.Transaction{
				sale("X", 2025, time.March, 100),
				sale("OUTSIDER", 2025, time.March, 900),
			}, nil
		})
	f.targetRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)
	f.actorRepo.EXPECT().ListActors(gomock.Any(), gomock.Nil()).Return(nil, nil)

	summary, err := f.service.GetSummary(context.Background(), SummaryQuery{
		Category: domain.CategorySales,
		Filter:   domain.AllTimeFilter(),
		Scope:    Scope{Kind: ScopeTeam, ID: "TEAM_A"},
	})

	require.NoError(t, err)
	assert.Equal(t, "100", summary.Actual.String())
}

func TestService_GetSummary_Errors(t *testing.T) {
	tests := []struct {
		name     string
		query    SummaryQuery
		setup    func(f *fixture)
		expected error
	}{
		{
			name:     "Categoria inválida",
			query:    SummaryQuery{Category: "refunds", Filter: domain.AllTimeFilter()},
			setup:    func(f *fixture) {},
			expected: ErrInvalidCategory,
		},
		{
			name:     "Período invertido",
			query:    SummaryQuery{Category: domain.CategorySales, Filter: domain.MonthRangeFilter(2025, 6, 2025, 3)},
			setup:    func(f *fixture) {},
			expected: periods.ErrInvertedRange,
		},
		{
			name:  "Time inexistente",
			query: SummaryQuery{Category: domain.CategorySales, Filter: domain.AllTimeFilter(), Scope: Scope{Kind: ScopeTeam, ID: "NOPE"}},
			setup: func(f *fixture) {
				f.teamRepo.EXPECT().GetTeamByID(gomock.Any(), "NOPE").Return(nil, nil)
			},
			expected: ErrTeamNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			summary, err := f.service.GetSummary(context.Background(), tt.query)

			assert.Nil(t, summary)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestService_GetOverview(t *testing.T) {
	f := newFixture(t)

	f.transactionRepo.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter domain.RecordFilter) ([]*domain.Transaction, error) {
			if filter.Category == domain.CategoryOrders {
				return nil, errors.New("orders indisponível")
			}
			return []*domain.Transaction{sale("X", 2025, time.March, 10)}, nil
		}).Times(2)
	f.targetRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	f.actorRepo.EXPECT().ListActors(gomock.Any(), gomock.Nil()).Return(nil, nil).Times(2)

	overview, err := f.service.GetOverview(context.Background(), domain.MonthFilter(2025, 3), OrganizationScope(), domain.Categories)

	require.NoError(t, err)
	require.Len(t, overview.Summaries, 2)
	assert.True(t, overview.Partial)
	assert.Equal(t, domain.CategorySales, overview.Summaries[0].Category)
	assert.False(t, overview.Summaries[0].Partial)
	assert.True(t, overview.Summaries[1].Partial)
}

func TestParseScope(t *testing.T) {
	scope, err := ParseScope("")
	require.NoError(t, err)
	assert.Equal(t, OrganizationScope(), scope)

	scope, err = ParseScope("team:TEAM_A")
	require.NoError(t, err)
	assert.Equal(t, Scope{Kind: ScopeTeam, ID: "TEAM_A"}, scope)

	_, err = ParseScope("store:1")
	assert.ErrorIs(t, err, ErrInvalidScope)

	_, err = ParseScope("actor:")
	assert.ErrorIs(t, err, ErrInvalidScope)
}

func TestAuthorize(t *testing.T) {
	employee := &domain.Claims{UserRoleID: domain.RoleEmployee, UserActorID: "X", UserCapability: domain.CapabilitySales}
	supervisor := &domain.Claims{UserRoleID: domain.RoleSupervisor, UserCapability: domain.CapabilityAll}
	admin := &domain.Claims{UserRoleID: domain.RoleAdmin, UserCapability: domain.CapabilitySales}

	assert.NoError(t, Authorize(employee, domain.CategorySales, Scope{Kind: ScopeActor, ID: "X"}))
	assert.ErrorIs(t, Authorize(employee, domain.CategorySales, Scope{Kind: ScopeActor, ID: "Z"}), ErrScopeNotAllowed)
	assert.ErrorIs(t, Authorize(employee, domain.CategorySales, OrganizationScope()), ErrScopeNotAllowed)
	assert.ErrorIs(t, Authorize(employee, domain.CategoryOrders, Scope{Kind: ScopeActor, ID: "X"}), ErrCategoryNotAllowed)
	assert.NoError(t, Authorize(supervisor, domain.CategoryOrders, OrganizationScope()))
	assert.NoError(t, Authorize(admin, domain.CategoryOrders, Scope{Kind: ScopeTeam, ID: "T"}))
	assert.ErrorIs(t, Authorize(nil, domain.CategorySales, OrganizationScope()), ErrScopeNotAllowed)
}
