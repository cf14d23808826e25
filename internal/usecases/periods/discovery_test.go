package periods

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-target-api/infrastructure/repository/mocks"
	"go.uber.org/mock/gomock"
)

var referenceNow = time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)

func TestDiscoverYears(t *testing.T) {
	tests := []struct {
		name         string
		transactions []int
		targets      []int
		expected     []int
	}{
		{
			name:         "União sem duplicados em ordem decrescente",
			transactions: []int{2023, 2024, 2023},
			targets:      []int{2026, 2024},
			expected:     []int{2026, 2025, 2024, 2023},
		},
		{
			name:     "Sem dados retorna apenas o ano corrente",
			expected: []int{2025},
		},
		{
			name:         "Ano zero é ignorado",
			transactions: []int{0, 2021},
			expected:     []int{2025, 2021},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DiscoverYears(tt.transactions, tt.targets, referenceNow))
		})
	}
}

func TestFallbackYears(t *testing.T) {
	assert.Equal(t, []int{2025, 2024, 2023, 2022, 2021}, FallbackYears(referenceNow, 0))
	assert.Equal(t, []int{2025, 2024}, FallbackYears(referenceNow, 2))
}

func newDiscoveryService(t *testing.T) (*Service, *mocks.MockTransactionRepository, *mocks.MockTargetRepository) {
	ctrl := gomock.NewController(t)
	transactionRepo := mocks.NewMockTransactionRepository(ctrl)
	targetRepo := mocks.NewMockTargetRepository(ctrl)

	return &Service{
		transactionRepository: transactionRepo,
		targetRepository:      targetRepo,
		fallbackYears:         3,
		now:                   func() time.Time { return referenceNow },
	}, transactionRepo, targetRepo
}

func TestService_AvailablePeriods(t *testing.T) {
	service, transactionRepo, targetRepo := newDiscoveryService(t)

	transactionRepo.EXPECT().GetAllYears(gomock.Any()).Return([]int{2024}, nil).Times(1)
	targetRepo.EXPECT().GetAllYears(gomock.Any()).Return([]int{2023}, nil).Times(1)

	first := service.AvailablePeriods(context.Background())
	second := service.AvailablePeriods(context.Background())

	assert.Equal(t, []int{2025, 2024, 2023}, first.Years)
	assert.False(t, first.Fallback)
	assert.Same(t, first, second, "a segunda chamada deve usar o cache")
}

func TestService_RefreshFallsBackOnFailure(t *testing.T) {
	service, transactionRepo, targetRepo := newDiscoveryService(t)

	transactionRepo.EXPECT().GetAllYears(gomock.Any()).Return(nil, errors.New("relation \"sales\" does not exist"))
	targetRepo.EXPECT().GetAllYears(gomock.Any()).Return([]int{2019}, nil)

	periods := service.Refresh(context.Background())

	assert.True(t, periods.Fallback)
	assert.Equal(t, []int{2025, 2024, 2023}, periods.Years)
	assert.Equal(t, 2025, periods.CurrentYear)
}
