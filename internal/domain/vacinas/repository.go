package vacinas

import "context"

type Repository interface {
	Create(ctx context.Context, v Vacina) (Vacina, error)
	Update(ctx context.Context, v Vacina) error
	GetByID(ctx context.Context, id int64) (Vacina, error)
	List(ctx context.Context) ([]Vacina, error)
	Delete(ctx context.Context, id int64) error
}
