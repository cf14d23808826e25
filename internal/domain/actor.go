package domain

// Actor representa um colaborador que pode receber metas e originar transações
type Actor struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Capability Capability `json:"capability"`
}

// Team agrupa colaboradores, com um gerente opcional
type Team struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	ManagerID *string  `json:"manager_id,omitempty"`
	Members   []*Actor `json:"members"`
}

// MemberIDs retorna os IDs dos membros na ordem cadastrada
func (t *Team) MemberIDs() []string {
	ids := make([]string, 0, len(t.Members))
	for _, member := range t.Members {
		ids = append(ids, member.ID)
	}
	return ids
}

// CompatibleMembers retorna os membros do time compatíveis com a categoria
func (t *Team) CompatibleMembers(category Category) []*Actor {
	members := make([]*Actor, 0, len(t.Members))
	for _, member := range t.Members {
		if member != nil && IsCompatible(member.Capability, category) {
			members = append(members, member)
		}
	}
	return members
}

// EligibleTeam é um time com a contagem de membros aptos para a categoria
type EligibleTeam struct {
	Team            *Team `json:"team"`
	EligibleMembers int   `json:"eligible_members"`
}
