package memory

import (
	"context"
	"sort"
	"sync"

	"petshop-api/internal/domain/vacinas"
)

type vacinasRepo struct {
	mu   sync.RWMutex
	seq  int64
	byID map[int64]vacinas.Vacina
}

func NewVacinasRepo() vacinas.Repository {
	return &vacinasRepo{
		byID: make(map[int64]vacinas.Vacina),
	}
}

func (r *vacinasRepo) Create(ctx context.Context, v vacinas.Vacina) (vacinas.Vacina, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	v.ID = r.seq
	v.PetNome = ""
	r.byID[v.ID] = v
	return v, nil
}

func (r *vacinasRepo) Update(ctx context.Context, v vacinas.Vacina) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[v.ID]; !exists {
		return vacinas.ErrNotFound
	}
	v.PetNome = ""
	r.byID[v.ID] = v
	return nil
}

func (r *vacinasRepo) GetByID(ctx context.Context, id int64) (vacinas.Vacina, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.byID[id]
	if !ok {
		return vacinas.Vacina{}, vacinas.ErrNotFound
	}
	return v, nil
}

func (r *vacinasRepo) List(ctx context.Context) ([]vacinas.Vacina, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]vacinas.Vacina, 0, len(r.byID))
	for _, v := range r.byID {
		out = append(out, v)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *vacinasRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return vacinas.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
