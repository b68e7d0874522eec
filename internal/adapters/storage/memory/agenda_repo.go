package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"petshop-api/internal/domain/agenda"
)

// AgendaRepo fica exportado porque, além de agenda.Repository, implementa
// pets.UsageChecker e servicos.UsageChecker para as regras de exclusão.
type AgendaRepo struct {
	mu   sync.RWMutex
	seq  int64
	byID map[int64]agenda.Agendamento
}

func NewAgendaRepo() *AgendaRepo {
	return &AgendaRepo{
		byID: make(map[int64]agenda.Agendamento),
	}
}

func (r *AgendaRepo) Create(ctx context.Context, a agenda.Agendamento) (agenda.Agendamento, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// unicidade por instante garantida sob o mesmo lock da escrita
	for _, existing := range r.byID {
		if existing.DataHora.Equal(a.DataHora) {
			return agenda.Agendamento{}, agenda.ErrHorarioOcupado
		}
	}

	r.seq++
	a.ID = r.seq
	a.Pet = nil
	a.Servico = nil
	r.byID[a.ID] = a
	return a, nil
}

func (r *AgendaRepo) Update(ctx context.Context, a agenda.Agendamento) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[a.ID]; !exists {
		return agenda.ErrNotFound
	}
	for _, existing := range r.byID {
		if existing.ID != a.ID && existing.DataHora.Equal(a.DataHora) {
			return agenda.ErrHorarioOcupado
		}
	}

	a.Pet = nil
	a.Servico = nil
	r.byID[a.ID] = a
	return nil
}

func (r *AgendaRepo) GetByID(ctx context.Context, id int64) (agenda.Agendamento, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return agenda.Agendamento{}, agenda.ErrNotFound
	}
	return a, nil
}

func (r *AgendaRepo) List(ctx context.Context) ([]agenda.Agendamento, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]agenda.Agendamento, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].DataHora.Before(out[j].DataHora) })
	return out, nil
}

func (r *AgendaRepo) ListByDia(ctx context.Context, dia time.Time) ([]agenda.Agendamento, error) {
	ano, mes, d := dia.UTC().Date()

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]agenda.Agendamento, 0)
	for _, a := range r.byID {
		aAno, aMes, aDia := a.DataHora.UTC().Date()
		if aAno == ano && aMes == mes && aDia == d {
			out = append(out, a)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].DataHora.Before(out[j].DataHora) })
	return out, nil
}

func (r *AgendaRepo) ExistsAt(ctx context.Context, dataHora time.Time, excludeID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.byID {
		if a.ID == excludeID {
			continue
		}
		if a.DataHora.Equal(dataHora) {
			return true, nil
		}
	}
	return false, nil
}

func (r *AgendaRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return agenda.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// PetInUse implementa pets.UsageChecker.
func (r *AgendaRepo) PetInUse(ctx context.Context, petID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.byID {
		if a.PetID == petID {
			return true, nil
		}
	}
	return false, nil
}

// ServicoInUse implementa servicos.UsageChecker.
func (r *AgendaRepo) ServicoInUse(ctx context.Context, servicoID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.byID {
		if a.ServicoID == servicoID {
			return true, nil
		}
	}
	return false, nil
}
