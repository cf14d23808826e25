package domain

import "time"

// AvailablePeriods representa os anos oferecidos como opção no filtro de período
type AvailablePeriods struct {
	Years       []int     `json:"years"`        // Anos em ordem decrescente, sempre incluindo o atual
	CurrentYear int       `json:"current_year"` // Ano corrente no momento da descoberta
	Fallback    bool      `json:"fallback"`     // Verdadeiro quando a janela fixa de anos foi usada
	RefreshedAt time.Time `json:"refreshed_at"`
}
