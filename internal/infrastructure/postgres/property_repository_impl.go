package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/adityawp/casaly/internal/apperr"
	"github.com/adityawp/casaly/internal/domain/entity"
	"github.com/adityawp/casaly/internal/domain/repository"
)

const propertyColumns = `id, title, type, description, image_url, price, sqmeters, beds, featured, current_owner, created_at, updated_at`

type PropertyRepository struct {
	pool PgxPool
}

func NewPropertyRepository(pool PgxPool) *PropertyRepository {
	return &PropertyRepository{pool: pool}
}

func scanProperty(row pgx.Row) (*entity.Property, error) {
	p := &entity.Property{}
	err := row.Scan(&p.ID, &p.Title, &p.Type, &p.Description, &p.ImageURL,
		&p.Price, &p.Sqmeters, &p.Beds, &p.Featured, &p.CurrentOwner,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func collectProperties(rows pgx.Rows) ([]*entity.Property, error) {
	defer rows.Close()
	out := make([]*entity.Property, 0)
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PropertyRepository) Create(ctx context.Context, p *entity.Property) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO properties (title, type, description, image_url, price, sqmeters, beds, featured, current_owner)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`, p.Title, p.Type, p.Description, p.ImageURL, p.Price, p.Sqmeters, p.Beds, p.Featured, p.CurrentOwner)

	return row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PropertyRepository) GetByID(ctx context.Context, id string) (*entity.Property, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+propertyColumns+`
		FROM properties
		WHERE id = $1
	`, id)

	p, err := scanProperty(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.New(apperr.KindNotFound, "property not found")
		}
		return nil, err
	}
	return p, nil
}

func (r *PropertyRepository) List(ctx context.Context, typeFilter string) ([]*entity.Property, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if typeFilter != "" {
		rows, err = r.pool.Query(ctx, `
			SELECT `+propertyColumns+`
			FROM properties
			WHERE type = $1
			ORDER BY created_at DESC
		`, typeFilter)
	} else {
		rows, err = r.pool.Query(ctx, `
			SELECT `+propertyColumns+`
			FROM properties
			ORDER BY created_at DESC
		`)
	}
	if err != nil {
		return nil, err
	}
	return collectProperties(rows)
}

func (r *PropertyRepository) ListFeatured(ctx context.Context) ([]*entity.Property, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+propertyColumns+`
		FROM properties
		WHERE featured
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	return collectProperties(rows)
}

// CountByType returns listing counts grouped by type. Types with no rows are
// absent from the result; the service zero-fills the known ones.
func (r *PropertyRepository) CountByType(ctx context.Context) (map[string]int64, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT type, COUNT(*)
		FROM properties
		GROUP BY type
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var t string
		var n int64
		if err := rows.Scan(&t, &n); err != nil {
			return nil, err
		}
		counts[t] = n
	}
	return counts, rows.Err()
}

func (r *PropertyRepository) Update(ctx context.Context, p *entity.Property) error {
	p.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE properties
		SET title = $1, type = $2, description = $3, image_url = $4, price = $5,
		    sqmeters = $6, beds = $7, featured = $8, updated_at = $9
		WHERE id = $10
	`, p.Title, p.Type, p.Description, p.ImageURL, p.Price, p.Sqmeters, p.Beds, p.Featured, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return apperr.New(apperr.KindNotFound, "property not found")
	}
	return nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM properties
		WHERE id = $1
	`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return apperr.New(apperr.KindNotFound, "property not found")
	}
	return nil
}

var _ repository.PropertyRepository = (*PropertyRepository)(nil)
