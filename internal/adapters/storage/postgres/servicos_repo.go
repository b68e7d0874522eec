package postgres

import (
	"context"
	"database/sql"
	"errors"

	"petshop-api/internal/domain/servicos"

	"github.com/jackc/pgx/v5/pgconn"
)

type ServicosRepo struct {
	db *sql.DB
}

func NewServicosRepo(db *sql.DB) *ServicosRepo {
	return &ServicosRepo{db: db}
}

func (r *ServicosRepo) Create(ctx context.Context, s servicos.Servico) (servicos.Servico, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO servicos (nome, preco)
		VALUES ($1, $2)
		RETURNING id
	`, s.Nome, s.Preco).Scan(&s.ID)
	if err != nil {
		return servicos.Servico{}, err
	}
	return s, nil
}

func (r *ServicosRepo) Update(ctx context.Context, s servicos.Servico) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE servicos
		SET nome = $2, preco = $3
		WHERE id = $1
	`, s.ID, s.Nome, s.Preco)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return servicos.ErrNotFound
	}
	return nil
}

func (r *ServicosRepo) GetByID(ctx context.Context, id int64) (servicos.Servico, error) {
	var s servicos.Servico
	err := r.db.QueryRowContext(ctx, `
		SELECT id, nome, preco
		FROM servicos
		WHERE id = $1
	`, id).Scan(&s.ID, &s.Nome, &s.Preco)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return servicos.Servico{}, servicos.ErrNotFound
		}
		return servicos.Servico{}, err
	}
	return s, nil
}

func (r *ServicosRepo) List(ctx context.Context) ([]servicos.Servico, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, nome, preco
		FROM servicos
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]servicos.Servico, 0)
	for rows.Next() {
		var s servicos.Servico
		if err := rows.Scan(&s.ID, &s.Nome, &s.Preco); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *ServicosRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM servicos WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return servicos.ErrInUse
		}
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return servicos.ErrNotFound
	}
	return nil
}
