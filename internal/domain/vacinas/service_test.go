package vacinas_test

import (
	"context"
	"errors"
	"testing"
	"time"

	mem "petshop-api/internal/adapters/storage/memory"
	"petshop-api/internal/domain/pets"
	"petshop-api/internal/domain/vacinas"
)

type semAgendamentos struct{}

func (semAgendamentos) PetInUse(ctx context.Context, petID int64) (bool, error) {
	return false, nil
}

func newFixture(t *testing.T) (*vacinas.Service, *pets.Service) {
	t.Helper()
	petsSvc := pets.NewService(mem.NewPetsRepo(), semAgendamentos{})
	return vacinas.NewService(mem.NewVacinasRepo(), petsSvc), petsSvc
}

func TestCreate_ExigePetExistente(t *testing.T) {
	svc, _ := newFixture(t)

	_, err := svc.Create(context.Background(), vacinas.CreateInput{
		PetID:         42,
		NomeVacina:    "Antirrábica",
		DataAplicacao: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, pets.ErrNotFound) {
		t.Fatalf("expected pets.ErrNotFound, got %v", err)
	}
}

func TestCreate_CamposObrigatorios(t *testing.T) {
	svc, petsSvc := newFixture(t)
	ctx := context.Background()

	p, err := petsSvc.Create(ctx, pets.CreateInput{Nome: "Rex", Dono: "Ana"})
	if err != nil {
		t.Fatalf("create pet: %v", err)
	}

	if _, err := svc.Create(ctx, vacinas.CreateInput{
		PetID:         p.ID,
		NomeVacina:    "  ",
		DataAplicacao: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
	}); !errors.Is(err, vacinas.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank nomeVacina, got %v", err)
	}

	if _, err := svc.Create(ctx, vacinas.CreateInput{
		PetID:      p.ID,
		NomeVacina: "Antirrábica",
	}); !errors.Is(err, vacinas.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero dataAplicacao, got %v", err)
	}
}

func TestList_RotuloPetExcluido(t *testing.T) {
	svc, petsSvc := newFixture(t)
	ctx := context.Background()

	p, err := petsSvc.Create(ctx, pets.CreateInput{Nome: "Rex", Dono: "Ana"})
	if err != nil {
		t.Fatalf("create pet: %v", err)
	}

	v, err := svc.Create(ctx, vacinas.CreateInput{
		PetID:         p.ID,
		NomeVacina:    "Antirrábica",
		DataAplicacao: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create vacina: %v", err)
	}
	if v.PetNome != "Rex" {
		t.Errorf("expected petNome Rex, got %q", v.PetNome)
	}

	// excluir o pet deixa a vacina órfã, mas ela continua listável
	if err := petsSvc.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete pet: %v", err)
	}

	list, err := svc.List(ctx, nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 vacina after pet delete, got %d", len(list))
	}
	if list[0].PetNome != vacinas.PetExcluido {
		t.Errorf("expected sentinel %q, got %q", vacinas.PetExcluido, list[0].PetNome)
	}
}

func TestList_FiltroPorPet(t *testing.T) {
	svc, petsSvc := newFixture(t)
	ctx := context.Background()

	p1, _ := petsSvc.Create(ctx, pets.CreateInput{Nome: "Rex", Dono: "Ana"})
	p2, _ := petsSvc.Create(ctx, pets.CreateInput{Nome: "Bob", Dono: "Bruno"})

	quando := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	if _, err := svc.Create(ctx, vacinas.CreateInput{PetID: p1.ID, NomeVacina: "V8", DataAplicacao: quando}); err != nil {
		t.Fatalf("create v8: %v", err)
	}
	if _, err := svc.Create(ctx, vacinas.CreateInput{PetID: p2.ID, NomeVacina: "V10", DataAplicacao: quando}); err != nil {
		t.Fatalf("create v10: %v", err)
	}

	list, err := svc.List(ctx, &p1.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].NomeVacina != "V8" {
		t.Fatalf("expected only V8 for pet %d, got %+v", p1.ID, list)
	}
}

func TestUpdate_Parcial(t *testing.T) {
	svc, petsSvc := newFixture(t)
	ctx := context.Background()

	p, _ := petsSvc.Create(ctx, pets.CreateInput{Nome: "Rex", Dono: "Ana"})
	v, err := svc.Create(ctx, vacinas.CreateInput{
		PetID:         p.ID,
		NomeVacina:    "Antirrábica",
		DataAplicacao: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	proxima := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	updated, err := svc.Update(ctx, v.ID, vacinas.UpdateInput{ProximaDose: &proxima})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ProximaDose == nil || !updated.ProximaDose.Equal(proxima) {
		t.Errorf("expected proximaDose %v, got %v", proxima, updated.ProximaDose)
	}
	if updated.NomeVacina != "Antirrábica" {
		t.Errorf("nomeVacina must be untouched, got %q", updated.NomeVacina)
	}
}
