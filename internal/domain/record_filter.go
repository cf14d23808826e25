package domain

// RecordFilter restringe a leitura de transações e metas por categoria, intervalo e colaboradores.
// ActorIDs nil significa sem restrição; um slice vazio não retorna nada.
type RecordFilter struct {
	Category Category
	Interval PeriodInterval
	ActorIDs []string
}

// Unscoped indica que o filtro não restringe colaboradores
func (f RecordFilter) Unscoped() bool {
	return f.ActorIDs == nil
}
