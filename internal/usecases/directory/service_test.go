package directory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-target-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-target-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_ListActors(t *testing.T) {
	ctrl := gomock.NewController(t)
	actorRepo := mocks.NewMockActorRepository(ctrl)
	service := NewService(actorRepo, mocks.NewMockTeamRepository(ctrl))

	orders := domain.CategoryOrders
	actorRepo.EXPECT().
		ListActors(gomock.Any(), []domain.Capability{domain.CapabilityOrders, domain.CapabilitySalesOrders, domain.CapabilityAll}).
		Return([]*domain.Actor{{ID: "Y"}}, nil)
	actorRepo.EXPECT().ListActors(gomock.Any(), gomock.Nil()).Return([]*domain.Actor{{ID: "X"}, {ID: "Y"}}, nil)

	filtered, err := service.ListActors(context.Background(), &orders)
	require.NoError(t, err)
	assert.Len(t, filtered, 1)

	all, err := service.ListActors(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	invalid := domain.Category("refunds")
	_, err = service.ListActors(context.Background(), &invalid)
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestService_EligibleTeams(t *testing.T) {
	ctrl := gomock.NewController(t)
	teamRepo := mocks.NewMockTeamRepository(ctrl)
	service := NewService(mocks.NewMockActorRepository(ctrl), teamRepo)

	teamRepo.EXPECT().ListTeams(gomock.Any()).Return([]*domain.Team{
		{ID: "MIXED", Members: []*domain.Actor{
			{ID: "X", Capability: domain.CapabilitySales},
			{ID: "Y", Capability: domain.CapabilityOrders},
			{ID: "Z", Capability: domain.CapabilitySalesOrders},
		}},
		{ID: "ORDERS_ONLY", Members: []*domain.Actor{{ID: "Y", Capability: domain.CapabilityOrders}}},
		{ID: "EMPTY"},
	}, nil)

	teams, err := service.EligibleTeams(context.Background(), domain.CategorySales)

	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, "MIXED", teams[0].Team.ID)
	assert.Equal(t, 2, teams[0].EligibleMembers)
}

func TestService_ListTeams_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	teamRepo := mocks.NewMockTeamRepository(ctrl)
	service := NewService(mocks.NewMockActorRepository(ctrl), teamRepo)

	teamRepo.EXPECT().ListTeams(gomock.Any()).Return(nil, errors.New("connection refused"))

	_, err := service.ListTeams(context.Background())

	assert.ErrorIs(t, err, ErrFetchTeams)
}
