package servicos

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound     = errors.New("Serviço não encontrado")
	ErrInvalidInput = errors.New("dados inválidos")
	ErrInUse        = errors.New("Serviço não pode ser excluído pois está em uso por um agendamento.")
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
	Preco *float64
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Servico, error) {
	nome := strings.TrimSpace(in.Nome)
	if nome == "" {
		return Servico{}, fmt.Errorf("%w: nome é obrigatório", ErrInvalidInput)
	}

	// Preço ausente ou negativo vira 0.
	preco := 0.0
	if in.Preco != nil && *in.Preco > 0 {
		preco = *in.Preco
	}

	return s.repo.Create(ctx, Servico{
		Nome:  nome,
		Preco: preco,
	})
}

type UpdateInput struct {
	// Ponteiros para update parcial: nil = não tocar.
	Nome  *string
	Preco *float64
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Servico, error) {
	sv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Servico{}, err
	}

	if in.Nome != nil {
		nome := strings.TrimSpace(*in.Nome)
		if nome == "" {
			return Servico{}, fmt.Errorf("%w: nome é obrigatório", ErrInvalidInput)
		}
		sv.Nome = nome
	}
	if in.Preco != nil {
		if *in.Preco < 0 {
			return Servico{}, fmt.Errorf("%w: preco não pode ser negativo", ErrInvalidInput)
		}
		sv.Preco = *in.Preco
	}

	if err := s.repo.Update(ctx, sv); err != nil {
		return Servico{}, err
	}
	return sv, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Servico, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Servico, error) {
	return s.repo.List(ctx)
}

// Delete falha enquanto houver agendamentos usando o serviço.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	inUse, err := s.agenda.ServicoInUse(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return ErrInUse
	}

	return s.repo.Delete(ctx, id)
}
