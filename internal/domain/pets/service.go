package pets

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound     = errors.New("Pet não encontrado")
	ErrInvalidInput = errors.New("dados inválidos")
	ErrDuplicate    = errors.New("Já existe um pet com este nome para este dono")
	ErrHasRecords   = errors.New("Pet não pode ser excluído pois possui agendamentos")
)

type Service struct {
	repo   Repository
	agenda UsageChecker
}

func NewService(repo Repository, agenda UsageChecker) *Service {
	return &Service{
		repo:   repo,
		agenda: agenda,
	}
}

type CreateInput struct {
	Nome  string
	Raca  string
	Dono  string
	Idade *int
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	nome := strings.TrimSpace(in.Nome)
	dono := strings.TrimSpace(in.Dono)
	if nome == "" {
		return Pet{}, fmt.Errorf("%w: nome é obrigatório", ErrInvalidInput)
	}
	if dono == "" {
		return Pet{}, fmt.Errorf("%w: dono é obrigatório", ErrInvalidInput)
	}

	dup, err := s.isDuplicate(ctx, nome, dono, 0)
	if err != nil {
		return Pet{}, err
	}
	if dup {
		return Pet{}, ErrDuplicate
	}

	return s.repo.Create(ctx, Pet{
		Nome:  nome,
		Raca:  strings.TrimSpace(in.Raca),
		Dono:  dono,
		Idade: in.Idade,
	})
}

type UpdateInput struct {
	// Ponteiros para update parcial: nil = não tocar.
	Nome  *string
	Raca  *string
	Dono  *string
	Idade *int
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Pet, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	if in.Nome != nil {
		nome := strings.TrimSpace(*in.Nome)
		if nome == "" {
			return Pet{}, fmt.Errorf("%w: nome é obrigatório", ErrInvalidInput)
		}
		p.Nome = nome
	}
	if in.Raca != nil {
		p.Raca = strings.TrimSpace(*in.Raca)
	}
	if in.Dono != nil {
		dono := strings.TrimSpace(*in.Dono)
		if dono == "" {
			return Pet{}, fmt.Errorf("%w: dono é obrigatório", ErrInvalidInput)
		}
		p.Dono = dono
	}
	if in.Idade != nil {
		p.Idade = in.Idade
	}

	// Duplicidade reavaliada com os valores finais, ignorando o próprio registro.
	dup, err := s.isDuplicate(ctx, p.Nome, p.Dono, id)
	if err != nil {
		return Pet{}, err
	}
	if dup {
		return Pet{}, ErrDuplicate
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

// Delete falha enquanto houver agendamentos do pet. Vacinas não bloqueiam:
// ficam órfãs e são exibidas com o rótulo "Pet Excluído".
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	inUse, err := s.agenda.PetInUse(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return ErrHasRecords
	}

	return s.repo.Delete(ctx, id)
}

func (s *Service) isDuplicate(ctx context.Context, nome, dono string, selfID int64) (bool, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return false, err
	}
	for _, p := range all {
		if p.ID == selfID {
			continue
		}
		if strings.EqualFold(p.Nome, nome) && strings.EqualFold(p.Dono, dono) {
			return true, nil
		}
	}
	return false, nil
}
