package agenda

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, a Agendamento) (Agendamento, error)
	Update(ctx context.Context, a Agendamento) error
	GetByID(ctx context.Context, id int64) (Agendamento, error)

	// List devolve todos os agendamentos em ordem crescente de dataHora.
	List(ctx context.Context) ([]Agendamento, error)

	// ListByDia devolve os agendamentos cujo dataHora cai no dia informado (UTC).
	ListByDia(ctx context.Context, dia time.Time) ([]Agendamento, error)

	// ExistsAt diz se já há agendamento no instante exato, ignorando excludeID
	// (0 para não ignorar ninguém).
	ExistsAt(ctx context.Context, dataHora time.Time, excludeID int64) (bool, error)

	Delete(ctx context.Context, id int64) error
}
