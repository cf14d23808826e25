package targeting

import (
	"fmt"
	"strings"

	"github.com/vfg2006/sales-target-api/internal/domain"
	"github.com/vfg2006/sales-target-api/pkg/apiErrors"
)

// Directory é o retrato de colaboradores e times usado na resolução de destinatários
type Directory struct {
	Actors map[string]*domain.Actor
	Teams  map[string]*domain.Team
}

// NewDirectory indexa colaboradores e times por ID
func NewDirectory(actors []*domain.Actor, teams []*domain.Team) *Directory {
	directory := &Directory{
		Actors: make(map[string]*domain.Actor, len(actors)),
		Teams:  make(map[string]*domain.Team, len(teams)),
	}

	for _, actor := range actors {
		if actor != nil {
			directory.Actors[actor.ID] = actor
		}
	}

	for _, team := range teams {
		if team == nil {
			continue
		}
		directory.Teams[team.ID] = team
		// Membros de times também são colaboradores conhecidos
		for _, member := range team.Members {
			if member == nil {
				continue
			}
			if _, exists := directory.Actors[member.ID]; !exists {
				directory.Actors[member.ID] = member
			}
		}
	}

	return directory
}

// Resolution é o conjunto ordenado e sem duplicidade de colaboradores elegíveis
type Resolution struct {
	Recipients      []string
	IneligibleTeams []string
	RejectedActors  []string
}

// ResolveRecipients expande times em membros, filtra pela compatibilidade com a categoria
// e remove duplicidades, preservando a ordem da primeira ocorrência.
func ResolveRecipients(category domain.Category, refs []domain.RecipientRef, directory *Directory) (*Resolution, error) {
	if directory == nil {
		directory = NewDirectory(nil, nil)
	}

	resolution := &Resolution{
		Recipients: make([]string, 0, len(refs)),
	}
	seen := make(map[string]struct{}, len(refs))

	admit := func(actorID string) {
		if _, exists := seen[actorID]; exists {
			return
		}
		seen[actorID] = struct{}{}
		resolution.Recipients = append(resolution.Recipients, actorID)
	}

	for _, ref := range refs {
		switch ref.Kind {
		case domain.RecipientActor:
			actor, exists := directory.Actors[ref.ID]
			if !exists || !domain.IsCompatible(actor.Capability, category) {
				resolution.RejectedActors = appendUnique(resolution.RejectedActors, ref.ID)
				continue
			}
			admit(actor.ID)

		case domain.RecipientTeam:
			team, exists := directory.Teams[ref.ID]
			if !exists {
				resolution.IneligibleTeams = appendUnique(resolution.IneligibleTeams, ref.ID)
				continue
			}

			members := team.CompatibleMembers(category)
			if len(members) == 0 {
				resolution.IneligibleTeams = appendUnique(resolution.IneligibleTeams, team.ID)
				continue
			}

			for _, member := range members {
				admit(member.ID)
			}

		default:
			resolution.RejectedActors = appendUnique(resolution.RejectedActors, ref.ID)
		}
	}

	if len(resolution.Recipients) == 0 {
		details := fmt.Sprintf("categoria %s", category)
		if len(resolution.IneligibleTeams) > 0 {
			details += fmt.Sprintf(", times sem membros elegíveis: %s", strings.Join(resolution.IneligibleTeams, ", "))
		}
		if len(resolution.RejectedActors) > 0 {
			details += fmt.Sprintf(", colaboradores incompatíveis: %s", strings.Join(resolution.RejectedActors, ", "))
		}
		return resolution, NewTargetError(ErrNoEligibleRecipients, apiErrors.ErrNoEligibleRecipients, details)
	}

	return resolution, nil
}

func appendUnique(list []string, value string) []string {
	for _, existing := range list {
		if existing == value {
			return list
		}
	}
	return append(list, value)
}
