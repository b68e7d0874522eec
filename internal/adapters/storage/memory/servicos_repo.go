package memory

import (
	"context"
	"sort"
	"sync"

	"petshop-api/internal/domain/servicos"
)

type servicosRepo struct {
	mu   sync.RWMutex
	seq  int64
	byID map[int64]servicos.Servico
}

func NewServicosRepo() servicos.Repository {
	return &servicosRepo{
		byID: make(map[int64]servicos.Servico),
	}
}

func (r *servicosRepo) Create(ctx context.Context, s servicos.Servico) (servicos.Servico, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	s.ID = r.seq
	r.byID[s.ID] = s
	return s, nil
}

func (r *servicosRepo) Update(ctx context.Context, s servicos.Servico) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[s.ID]; !exists {
		return servicos.ErrNotFound
	}
	r.byID[s.ID] = s
	return nil
}

func (r *servicosRepo) GetByID(ctx context.Context, id int64) (servicos.Servico, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return servicos.Servico{}, servicos.ErrNotFound
	}
	return s, nil
}

func (r *servicosRepo) List(ctx context.Context) ([]servicos.Servico, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]servicos.Servico, 0, len(r.byID))
	for _, s := range r.byID {
		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *servicosRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return servicos.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
