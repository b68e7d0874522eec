package servicos

import (
	"context"
	"errors"
	"testing"
)

type testRepo struct {
	seq  int64
	byID map[int64]Servico
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Servico{}}
}

func (r *testRepo) Create(ctx context.Context, s Servico) (Servico, error) {
	r.seq++
	s.ID = r.seq
	r.byID[s.ID] = s
	return s, nil
}

func (r *testRepo) Update(ctx context.Context, s Servico) error {
	if _, ok := r.byID[s.ID]; !ok {
		return ErrNotFound
	}
	r.byID[s.ID] = s
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Servico, error) {
	s, ok := r.byID[id]
	if !ok {
		return Servico{}, ErrNotFound
	}
	return s, nil
}

func (r *testRepo) List(ctx context.Context) ([]Servico, error) {
	out := make([]Servico, 0, len(r.byID))
	for _, s := range r.byID {
		out = append(out, s)
	}
	return out, nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type testUsage struct {
	inUse map[int64]bool
}

func (u *testUsage) ServicoInUse(ctx context.Context, servicoID int64) (bool, error) {
	return u.inUse[servicoID], nil
}

func TestCreate_PrecoAusenteViraZero(t *testing.T) {
	svc := NewService(newTestRepo(), &testUsage{inUse: map[int64]bool{}})
	ctx := context.Background()

	s, err := svc.Create(ctx, CreateInput{Nome: "Banho"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if s.Preco != 0 {
		t.Errorf("expected preco 0, got %v", s.Preco)
	}

	negativo := -10.0
	s2, err := svc.Create(ctx, CreateInput{Nome: "Tosa", Preco: &negativo})
	if err != nil {
		t.Fatalf("create with negative: %v", err)
	}
	if s2.Preco != 0 {
		t.Errorf("expected negative preco coerced to 0, got %v", s2.Preco)
	}
}

func TestCreate_NomeObrigatorio(t *testing.T) {
	svc := NewService(newTestRepo(), &testUsage{inUse: map[int64]bool{}})

	if _, err := svc.Create(context.Background(), CreateInput{Nome: "  "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUpdate_Parcial(t *testing.T) {
	svc := NewService(newTestRepo(), &testUsage{inUse: map[int64]bool{}})
	ctx := context.Background()

	preco := 50.0
	s, err := svc.Create(ctx, CreateInput{Nome: "Banho", Preco: &preco})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	nome := "Banho e Tosa"
	updated, err := svc.Update(ctx, s.ID, UpdateInput{Nome: &nome})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Nome != "Banho e Tosa" {
		t.Errorf("expected updated nome, got %s", updated.Nome)
	}
	if updated.Preco != 50.0 {
		t.Errorf("preco should be untouched, got %v", updated.Preco)
	}
}

func TestDelete_BloqueadoEmUso(t *testing.T) {
	usage := &testUsage{inUse: map[int64]bool{}}
	svc := NewService(newTestRepo(), usage)
	ctx := context.Background()

	s, err := svc.Create(ctx, CreateInput{Nome: "Banho"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	usage.inUse[s.ID] = true
	if err := svc.Delete(ctx, s.ID); !errors.Is(err, ErrInUse) {
		t.Fatalf("expected ErrInUse, got %v", err)
	}

	usage.inUse[s.ID] = false
	if err := svc.Delete(ctx, s.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("expected empty list after delete, got %d", len(list))
	}
}
