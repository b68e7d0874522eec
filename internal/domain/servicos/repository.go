package servicos

import "context"

type Repository interface {
	Create(ctx context.Context, s Servico) (Servico, error)
	Update(ctx context.Context, s Servico) error
	GetByID(ctx context.Context, id int64) (Servico, error)
	List(ctx context.Context) ([]Servico, error)
	Delete(ctx context.Context, id int64) error
}

// UsageChecker informa se algum agendamento ainda referencia o serviço.
// Implementado pelo repositório de agendamentos.
type UsageChecker interface {
	ServicoInUse(ctx context.Context, servicoID int64) (bool, error)
}
