package targeting

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-target-api/internal/domain"
)

func sampleDirectory() *Directory {
	x := &domain.Actor{ID: "X", Name: "Xavier", Capability: domain.CapabilitySales}
	y := &domain.Actor{ID: "Y", Name: "Yara", Capability: domain.CapabilityOrders}
	z := &domain.Actor{ID: "Z", Name: "Zeca", Capability: domain.CapabilitySalesOrders}
	w := &domain.Actor{ID: "W", Name: "Wanda", Capability: domain.CapabilityAll}

	teamA := &domain.Team{ID: "TEAM_A", Name: "Time A", Members: []*domain.Actor{x, y, z}}
	teamB := &domain.Team{ID: "TEAM_B", Name: "Time B", Members: []*domain.Actor{z, w}}
	teamOrders := &domain.Team{ID: "TEAM_ORDERS", Name: "Somente pedidos", Members: []*domain.Actor{y}}

	return NewDirectory([]*domain.Actor{x, y, z, w}, []*domain.Team{teamA, teamB, teamOrders})
}

func TestResolveRecipients(t *testing.T) {
	directory := sampleDirectory()

	tests := []struct {
		name            string
		category        domain.Category
		refs            []domain.RecipientRef
		expected        []string
		ineligibleTeams []string
		rejectedActors  []string
	}{
		{
			name:     "Time com membro incompatível e colaborador citado duas vezes",
			category: domain.CategorySales,
			refs:     []domain.RecipientRef{domain.TeamRef("TEAM_A"), domain.ActorRef("X")},
			expected: []string{"X", "Z"},
		},
		{
			name:     "Colaborador presente em dois times aparece uma única vez",
			category: domain.CategorySales,
			refs:     []domain.RecipientRef{domain.TeamRef("TEAM_A"), domain.TeamRef("TEAM_B")},
			expected: []string{"X", "Z", "W"},
		},
		{
			name:     "Ordem da primeira ocorrência é preservada",
			category: domain.CategoryOrders,
			refs:     []domain.RecipientRef{domain.ActorRef("W"), domain.TeamRef("TEAM_A")},
			expected: []string{"W", "Y", "Z"},
		},
		{
			name:            "Time sem membros compatíveis é sinalizado",
			category:        domain.CategorySales,
			refs:            []domain.RecipientRef{domain.TeamRef("TEAM_ORDERS"), domain.ActorRef("Z")},
			expected:        []string{"Z"},
			ineligibleTeams: []string{"TEAM_ORDERS"},
		},
		{
			name:           "Colaborador incompatível citado diretamente é rejeitado",
			category:       domain.CategorySales,
			refs:           []domain.RecipientRef{domain.ActorRef("Y"), domain.ActorRef("X")},
			expected:       []string{"X"},
			rejectedActors: []string{"Y"},
		},
		{
			name:            "Referências desconhecidas são ignoradas",
			category:        domain.CategoryOrders,
			refs:            []domain.RecipientRef{domain.TeamRef("NOPE"), domain.ActorRef("GHOST"), domain.ActorRef("Y")},
			expected:        []string{"Y"},
			ineligibleTeams: []string{"NOPE"},
			rejectedActors:  []string{"GHOST"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolution, err := ResolveRecipients(tt.category, tt.refs, directory)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, resolution.Recipients)
			assert.Equal(t, tt.ineligibleTeams, resolution.IneligibleTeams)
			assert.Equal(t, tt.rejectedActors, resolution.RejectedActors)
		})
	}
}

func TestResolveRecipients_NoEligibleRecipients(t *testing.T) {
	directory := sampleDirectory()

	resolution, err := ResolveRecipients(domain.CategorySales, []domain.RecipientRef{domain.TeamRef("TEAM_ORDERS")}, directory)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoEligibleRecipients))
	assert.Empty(t, resolution.Recipients)
	assert.Equal(t, []string{"TEAM_ORDERS"}, resolution.IneligibleTeams)

	var targetErr *TargetError
	require.True(t, errors.As(err, &targetErr))
	assert.Contains(t, targetErr.Details, "TEAM_ORDERS")
}

func TestResolveRecipients_NilDirectory(t *testing.T) {
	_, err := ResolveRecipients(domain.CategoryOrders, []domain.RecipientRef{domain.ActorRef("X")}, nil)

	assert.ErrorIs(t, err, ErrNoEligibleRecipients)
}

func TestNewDirectory_IndexesTeamMembers(t *testing.T) {
	member := &domain.Actor{ID: "M1", Capability: domain.CapabilitySales}
	directory := NewDirectory(nil, []*domain.Team{{ID: "T1", Members: []*domain.Actor{member}}})

	assert.Contains(t, directory.Actors, "M1")
	assert.Contains(t, directory.Teams, "T1")
}
