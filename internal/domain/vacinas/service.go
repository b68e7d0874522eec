package vacinas

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"petshop-api/internal/domain/pets"
)

var (
	ErrNotFound     = errors.New("Vacina não encontrada")
	ErrInvalidInput = errors.New("dados inválidos")
)

type Service struct {
	repo Repository
	pets *pets.Service
}

func NewService(repo Repository, petsSvc *pets.Service) *Service {
	return &Service{
		repo: repo,
		pets: petsSvc,
	}
}

type CreateInput struct {
	PetID         int64
	NomeVacina    string
	DataAplicacao time.Time
	ProximaDose   *time.Time
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Vacina, error) {
	if _, err := s.pets.GetByID(ctx, in.PetID); err != nil {
		return Vacina{}, err
	}

	nome := strings.TrimSpace(in.NomeVacina)
	if nome == "" {
		return Vacina{}, fmt.Errorf("%w: nomeVacina é obrigatório", ErrInvalidInput)
	}
	if in.DataAplicacao.IsZero() {
		return Vacina{}, fmt.Errorf("%w: dataAplicacao é obrigatória", ErrInvalidInput)
	}

	v, err := s.repo.Create(ctx, Vacina{
		PetID:         in.PetID,
		NomeVacina:    nome,
		DataAplicacao: in.DataAplicacao,
		ProximaDose:   in.ProximaDose,
	})
	if err != nil {
		return Vacina{}, err
	}
	return s.enrich(ctx, v), nil
}

type UpdateInput struct {
	// Ponteiros para update parcial: nil = não tocar.
	PetID         *int64
	NomeVacina    *string
	DataAplicacao *time.Time
	ProximaDose   *time.Time
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Vacina, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Vacina{}, err
	}

	if in.PetID != nil {
		if _, err := s.pets.GetByID(ctx, *in.PetID); err != nil {
			return Vacina{}, err
		}
		v.PetID = *in.PetID
	}
	if in.NomeVacina != nil {
		nome := strings.TrimSpace(*in.NomeVacina)
		if nome == "" {
			return Vacina{}, fmt.Errorf("%w: nomeVacina é obrigatório", ErrInvalidInput)
		}
		v.NomeVacina = nome
	}
	if in.DataAplicacao != nil {
		if in.DataAplicacao.IsZero() {
			return Vacina{}, fmt.Errorf("%w: dataAplicacao inválida", ErrInvalidInput)
		}
		v.DataAplicacao = *in.DataAplicacao
	}
	if in.ProximaDose != nil {
		v.ProximaDose = in.ProximaDose
	}

	if err := s.repo.Update(ctx, v); err != nil {
		return Vacina{}, err
	}
	return s.enrich(ctx, v), nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Vacina, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Vacina{}, err
	}
	return s.enrich(ctx, v), nil
}

// List devolve os registros enriquecidos com o nome do pet; um filtro
// opcional por pet é aplicado quando petID != nil.
func (s *Service) List(ctx context.Context, petID *int64) ([]Vacina, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	allPets, err := s.pets.List(ctx)
	if err != nil {
		return nil, err
	}
	nomeByID := make(map[int64]string, len(allPets))
	for _, p := range allPets {
		nomeByID[p.ID] = p.Nome
	}

	out := make([]Vacina, 0, len(items))
	for _, v := range items {
		if petID != nil && v.PetID != *petID {
			continue
		}
		if nome, ok := nomeByID[v.PetID]; ok {
			v.PetNome = nome
		} else {
			v.PetNome = PetExcluido
		}
		out = append(out, v)
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) enrich(ctx context.Context, v Vacina) Vacina {
	p, err := s.pets.GetByID(ctx, v.PetID)
	if err != nil {
		v.PetNome = PetExcluido
		return v
	}
	v.PetNome = p.Nome
	return v
}
