package pets

import "context"

type Repository interface {
	Create(ctx context.Context, p Pet) (Pet, error)
	Update(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id int64) (Pet, error)
	List(ctx context.Context) ([]Pet, error)
	Delete(ctx context.Context, id int64) error
}

// UsageChecker informa se algum agendamento ainda referencia o pet.
// Implementado pelo repositório de agendamentos; evita ciclo de import
// entre pets e agenda.
type UsageChecker interface {
	PetInUse(ctx context.Context, petID int64) (bool, error)
}
