package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"petshop-api/internal/domain/vacinas"
)

type VacinasRepo struct {
	db *sql.DB
}

func NewVacinasRepo(db *sql.DB) *VacinasRepo {
	return &VacinasRepo{db: db}
}

func (r *VacinasRepo) Create(ctx context.Context, v vacinas.Vacina) (vacinas.Vacina, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO vacinas (pet_id, nome_vacina, data_aplicacao, proxima_dose)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`,
		v.PetID,
		v.NomeVacina,
		v.DataAplicacao,
		toNullDate(v.ProximaDose),
	).Scan(&v.ID)
	if err != nil {
		return vacinas.Vacina{}, err
	}
	return v, nil
}

func (r *VacinasRepo) Update(ctx context.Context, v vacinas.Vacina) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE vacinas
		SET pet_id = $2, nome_vacina = $3, data_aplicacao = $4, proxima_dose = $5
		WHERE id = $1
	`,
		v.ID,
		v.PetID,
		v.NomeVacina,
		v.DataAplicacao,
		toNullDate(v.ProximaDose),
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return vacinas.ErrNotFound
	}
	return nil
}

func (r *VacinasRepo) GetByID(ctx context.Context, id int64) (vacinas.Vacina, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, pet_id, nome_vacina, data_aplicacao, proxima_dose
		FROM vacinas
		WHERE id = $1
	`, id)

	v, err := scanVacina(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return vacinas.Vacina{}, vacinas.ErrNotFound
		}
		return vacinas.Vacina{}, err
	}
	return v, nil
}

func (r *VacinasRepo) List(ctx context.Context) ([]vacinas.Vacina, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, nome_vacina, data_aplicacao, proxima_dose
		FROM vacinas
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]vacinas.Vacina, 0)
	for rows.Next() {
		v, err := scanVacina(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *VacinasRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vacinas WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return vacinas.ErrNotFound
	}
	return nil
}

func scanVacina(row rowScanner) (vacinas.Vacina, error) {
	var v vacinas.Vacina
	var petID sql.NullInt64
	var proximaDose sql.NullTime
	if err := row.Scan(&v.ID, &petID, &v.NomeVacina, &v.DataAplicacao, &proximaDose); err != nil {
		return vacinas.Vacina{}, err
	}
	if petID.Valid {
		v.PetID = petID.Int64
	}
	if proximaDose.Valid {
		t := proximaDose.Time
		v.ProximaDose = &t
	}
	return v, nil
}

// proxima_dose é DATE; NullTime simplifica o idioma de ida e volta.
func toNullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
