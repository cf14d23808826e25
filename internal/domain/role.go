package domain

// Constantes para identificar os roles
const (
	RoleAdmin      = 1
	RoleSupervisor = 2
	RoleEmployee   = 3
)

// VisibleCategories decide quais categorias o usuário atual pode visualizar.
// Administradores veem tudo; os demais apenas as categorias compatíveis com a própria capacidade.
func VisibleCategories(roleID int, capability Capability) []Category {
	if roleID == RoleAdmin {
		return Categories
	}

	visible := make([]Category, 0, len(Categories))
	for _, category := range Categories {
		if IsCompatible(capability, category) {
			visible = append(visible, category)
		}
	}
	return visible
}

// CanView verifica se a categoria está entre as visíveis para o role e capacidade informados
func CanView(roleID int, capability Capability, category Category) bool {
	for _, c := range VisibleCategories(roleID, capability) {
		if c == category {
			return true
		}
	}
	return false
}

// CanManageTargets indica se o role pode criar, editar ou remover metas
func CanManageTargets(roleID int) bool {
	return roleID == RoleAdmin || roleID == RoleSupervisor
}
