package domain

import (
	"fmt"
	"strings"
)

// Category identifica o tipo de transação medida (vendas ou pedidos)
type Category string

const (
	CategorySales  Category = "sales"
	CategoryOrders Category = "orders"
)

// Categories lista todas as categorias conhecidas, na ordem de exibição
var Categories = []Category{CategorySales, CategoryOrders}

// Capability representa as categorias que um colaborador está autorizado a executar
type Capability string

const (
	CapabilitySales       Capability = "sales"
	CapabilityOrders      Capability = "orders"
	CapabilitySalesOrders Capability = "sales_orders"
	CapabilityAll         Capability = "all"
)

// IsCompatible é a única fonte de verdade sobre quais capacidades podem ser medidas em uma categoria.
// Vendas: sales, sales_orders e all. Pedidos: orders, sales_orders e all.
func IsCompatible(capability Capability, category Category) bool {
	switch category {
	case CategorySales:
		return capability == CapabilitySales || capability == CapabilitySalesOrders || capability == CapabilityAll
	case CategoryOrders:
		return capability == CapabilityOrders || capability == CapabilitySalesOrders || capability == CapabilityAll
	default:
		return false
	}
}

func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategorySales:
		return CategorySales, nil
	case CategoryOrders:
		return CategoryOrders, nil
	}
	return "", fmt.Errorf("categoria inválida: %q", s)
}

func ParseCapability(s string) (Capability, error) {
	c := Capability(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case CapabilitySales, CapabilityOrders, CapabilitySalesOrders, CapabilityAll:
		return c, nil
	}
	return "", fmt.Errorf("capacidade inválida: %q", s)
}

// CapabilitiesFor retorna as capacidades compatíveis com a categoria, usado para filtrar consultas no banco
func CapabilitiesFor(category Category) []Capability {
	capabilities := make([]Capability, 0, 3)
	for _, c := range []Capability{CapabilitySales, CapabilityOrders, CapabilitySalesOrders, CapabilityAll} {
		if IsCompatible(c, category) {
			capabilities = append(capabilities, c)
		}
	}
	return capabilities
}
