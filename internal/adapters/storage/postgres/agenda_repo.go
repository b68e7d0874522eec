package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"petshop-api/internal/domain/agenda"

	"github.com/jackc/pgx/v5/pgconn"
)

// AgendaRepo implementa agenda.Repository e também pets.UsageChecker e
// servicos.UsageChecker para as regras de exclusão.
type AgendaRepo struct {
	db *sql.DB
}

func NewAgendaRepo(db *sql.DB) *AgendaRepo {
	return &AgendaRepo{db: db}
}

func (r *AgendaRepo) Create(ctx context.Context, a agenda.Agendamento) (agenda.Agendamento, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO agendamentos (data_hora, pet_id, servico_id, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`,
		a.DataHora,
		a.PetID,
		a.ServicoID,
		a.Status,
	).Scan(&a.ID)
	if err != nil {
		// 23505: UNIQUE(data_hora) — duas criações concorrentes para o
		// mesmo horário; só a primeira commita.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return agenda.Agendamento{}, agenda.ErrHorarioOcupado
		}
		return agenda.Agendamento{}, err
	}
	return a, nil
}

func (r *AgendaRepo) Update(ctx context.Context, a agenda.Agendamento) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE agendamentos
		SET data_hora = $2, pet_id = $3, servico_id = $4, status = $5
		WHERE id = $1
	`,
		a.ID,
		a.DataHora,
		a.PetID,
		a.ServicoID,
		a.Status,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return agenda.ErrHorarioOcupado
		}
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return agenda.ErrNotFound
	}
	return nil
}

func (r *AgendaRepo) GetByID(ctx context.Context, id int64) (agenda.Agendamento, error) {
	var a agenda.Agendamento
	err := r.db.QueryRowContext(ctx, `
		SELECT id, data_hora, pet_id, servico_id, status
		FROM agendamentos
		WHERE id = $1
	`, id).Scan(&a.ID, &a.DataHora, &a.PetID, &a.ServicoID, &a.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return agenda.Agendamento{}, agenda.ErrNotFound
		}
		return agenda.Agendamento{}, err
	}
	a.DataHora = a.DataHora.UTC()
	return a, nil
}

func (r *AgendaRepo) List(ctx context.Context) ([]agenda.Agendamento, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, data_hora, pet_id, servico_id, status
		FROM agendamentos
		ORDER BY data_hora ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAgendamentos(rows)
}

func (r *AgendaRepo) ListByDia(ctx context.Context, dia time.Time) ([]agenda.Agendamento, error) {
	ano, mes, d := dia.UTC().Date()
	inicio := time.Date(ano, mes, d, 0, 0, 0, 0, time.UTC)
	fim := inicio.AddDate(0, 0, 1)

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, data_hora, pet_id, servico_id, status
		FROM agendamentos
		WHERE data_hora >= $1 AND data_hora < $2
		ORDER BY data_hora ASC
	`, inicio, fim)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAgendamentos(rows)
}

func (r *AgendaRepo) ExistsAt(ctx context.Context, dataHora time.Time, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM agendamentos
			WHERE data_hora = $1 AND id <> $2
		)
	`, dataHora, excludeID).Scan(&exists)
	return exists, err
}

func (r *AgendaRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM agendamentos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return agenda.ErrNotFound
	}
	return nil
}

// PetInUse implementa pets.UsageChecker.
func (r *AgendaRepo) PetInUse(ctx context.Context, petID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM agendamentos WHERE pet_id = $1)
	`, petID).Scan(&exists)
	return exists, err
}

// ServicoInUse implementa servicos.UsageChecker.
func (r *AgendaRepo) ServicoInUse(ctx context.Context, servicoID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM agendamentos WHERE servico_id = $1)
	`, servicoID).Scan(&exists)
	return exists, err
}

func scanAgendamentos(rows *sql.Rows) ([]agenda.Agendamento, error) {
	out := make([]agenda.Agendamento, 0)
	for rows.Next() {
		var a agenda.Agendamento
		if err := rows.Scan(&a.ID, &a.DataHora, &a.PetID, &a.ServicoID, &a.Status); err != nil {
			return nil, err
		}
		a.DataHora = a.DataHora.UTC()
		out = append(out, a)
	}
	return out, rows.Err()
}
