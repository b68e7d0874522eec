package agenda

import (
	"context"
	"errors"
	"fmt"
	"time"

	"petshop-api/internal/domain/pets"
	"petshop-api/internal/domain/servicos"
)

var (
	ErrNotFound       = errors.New("Agendamento não encontrado")
	ErrInvalidInput   = errors.New("dados inválidos")
	ErrHorarioOcupado = errors.New("Já existe um agendamento para este horário")
)

type Service struct {
	repo     Repository
	pets     *pets.Service
	servicos *servicos.Service
}

func NewService(repo Repository, petsSvc *pets.Service, servicosSvc *servicos.Service) *Service {
	return &Service{
		repo:     repo,
		pets:     petsSvc,
		servicos: servicosSvc,
	}
}

type CreateInput struct {
	DataHora  time.Time
	PetID     int64
	ServicoID int64
	Status    string
}

// Create valida nesta ordem: pet existe, serviço existe, dataHora válida,
// horário livre. A unicidade por instante também é garantida pelo store
// (constraint UNIQUE no Postgres), então duas criações concorrentes para o
// mesmo horário não passam as duas.
func (s *Service) Create(ctx context.Context, in CreateInput) (Agendamento, error) {
	if _, err := s.pets.GetByID(ctx, in.PetID); err != nil {
		return Agendamento{}, err
	}
	if _, err := s.servicos.GetByID(ctx, in.ServicoID); err != nil {
		return Agendamento{}, err
	}
	if in.DataHora.IsZero() {
		return Agendamento{}, fmt.Errorf("%w: dataHora é obrigatória", ErrInvalidInput)
	}

	dataHora := normalize(in.DataHora)

	taken, err := s.repo.ExistsAt(ctx, dataHora, 0)
	if err != nil {
		return Agendamento{}, err
	}
	if taken {
		return Agendamento{}, ErrHorarioOcupado
	}

	a, err := s.repo.Create(ctx, Agendamento{
		DataHora:  dataHora,
		PetID:     in.PetID,
		ServicoID: in.ServicoID,
		Status:    in.Status,
	})
	if err != nil {
		return Agendamento{}, err
	}
	return s.enrich(ctx, a)
}

type UpdateInput struct {
	// Ponteiros para update parcial: nil = não tocar.
	DataHora  *time.Time
	PetID     *int64
	ServicoID *int64
	Status    *string
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Agendamento, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Agendamento{}, err
	}

	if in.PetID != nil {
		if _, err := s.pets.GetByID(ctx, *in.PetID); err != nil {
			return Agendamento{}, err
		}
		a.PetID = *in.PetID
	}
	if in.ServicoID != nil {
		if _, err := s.servicos.GetByID(ctx, *in.ServicoID); err != nil {
			return Agendamento{}, err
		}
		a.ServicoID = *in.ServicoID
	}
	if in.DataHora != nil {
		if in.DataHora.IsZero() {
			return Agendamento{}, fmt.Errorf("%w: dataHora inválida", ErrInvalidInput)
		}
		dataHora := normalize(*in.DataHora)

		// Checagem exclui o próprio registro: remarcar para o mesmo horário é ok.
		taken, err := s.repo.ExistsAt(ctx, dataHora, id)
		if err != nil {
			return Agendamento{}, err
		}
		if taken {
			return Agendamento{}, ErrHorarioOcupado
		}
		a.DataHora = dataHora
	}
	if in.Status != nil {
		a.Status = *in.Status
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return Agendamento{}, err
	}
	return s.enrich(ctx, a)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Agendamento, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Agendamento{}, err
	}
	return s.enrich(ctx, a)
}

func (s *Service) List(ctx context.Context) ([]Agendamento, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.enrichAll(ctx, items)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// DisponibilidadeDoDia calcula a grade de horários para um dia.
func (s *Service) DisponibilidadeDoDia(ctx context.Context, dia time.Time) ([]Horario, error) {
	ags, err := s.repo.ListByDia(ctx, dia)
	if err != nil {
		return nil, err
	}
	return Disponibilidade(dia, ags), nil
}

func (s *Service) enrich(ctx context.Context, a Agendamento) (Agendamento, error) {
	if p, err := s.pets.GetByID(ctx, a.PetID); err == nil {
		a.Pet = &p
	}
	if sv, err := s.servicos.GetByID(ctx, a.ServicoID); err == nil {
		a.Servico = &sv
	}
	return a, nil
}

func (s *Service) enrichAll(ctx context.Context, items []Agendamento) ([]Agendamento, error) {
	allPets, err := s.pets.List(ctx)
	if err != nil {
		return nil, err
	}
	allServicos, err := s.servicos.List(ctx)
	if err != nil {
		return nil, err
	}

	petByID := make(map[int64]pets.Pet, len(allPets))
	for _, p := range allPets {
		petByID[p.ID] = p
	}
	servicoByID := make(map[int64]servicos.Servico, len(allServicos))
	for _, sv := range allServicos {
		servicoByID[sv.ID] = sv
	}

	out := make([]Agendamento, 0, len(items))
	for _, a := range items {
		if p, ok := petByID[a.PetID]; ok {
			cp := p
			a.Pet = &cp
		}
		if sv, ok := servicoByID[a.ServicoID]; ok {
			csv := sv
			a.Servico = &csv
		}
		out = append(out, a)
	}
	return out, nil
}

// normalize guarda o instante em UTC com granularidade de minuto, que é a
// granularidade da grade e da regra de unicidade.
func normalize(t time.Time) time.Time {
	return t.UTC().Truncate(time.Minute)
}
