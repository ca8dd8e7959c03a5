package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/adityawp/casaly/internal/apperr"
	"github.com/adityawp/casaly/internal/domain/entity"
)

var propertyCols = []string{"id", "title", "type", "description", "image_url", "price", "sqmeters", "beds", "featured", "current_owner", "created_at", "updated_at"}

func propertyRow(id, owner string) *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows(propertyCols).
		AddRow(id, "Seaside bungalow", "beach", "Two steps from the sand.", "", int64(245000), 85, 2, true, owner, now, now)
}

func TestPropertyRepository_GetByID(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	r := NewPropertyRepository(mock)
	ctx := context.Background()

	mock.ExpectQuery(`FROM properties\s+WHERE id = \$1`).
		WithArgs("p1").
		WillReturnRows(propertyRow("p1", "u1"))

	p, err := r.GetByID(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, "u1", p.CurrentOwner)
	require.Equal(t, "beach", p.Type)

	mock.ExpectQuery(`FROM properties\s+WHERE id = \$1`).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	_, err = r.GetByID(ctx, "missing")
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyRepository_List_TypeFilter(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	r := NewPropertyRepository(mock)

	mock.ExpectQuery(`FROM properties\s+WHERE type = \$1`).
		WithArgs("beach").
		WillReturnRows(propertyRow("p1", "u1"))

	ps, err := r.List(context.Background(), "beach")
	require.NoError(t, err)
	require.Len(t, ps, 1)

	// Unknown type is just an empty result, not an error.
	mock.ExpectQuery(`FROM properties\s+WHERE type = \$1`).
		WithArgs("castle").
		WillReturnRows(pgxmock.NewRows(propertyCols))

	ps, err = r.List(context.Background(), "castle")
	require.NoError(t, err)
	require.Empty(t, ps)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyRepository_CountByType(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	r := NewPropertyRepository(mock)

	mock.ExpectQuery(`SELECT type, COUNT\(\*\)\s+FROM properties\s+GROUP BY type`).
		WillReturnRows(pgxmock.NewRows([]string{"type", "count"}).
			AddRow("beach", int64(2)).
			AddRow("village", int64(5)))

	counts, err := r.CountByType(context.Background())
	require.NoError(t, err)
	require.Equal(t, map[string]int64{"beach": 2, "village": 5}, counts)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyRepository_Update(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	r := NewPropertyRepository(mock)

	p := &entity.Property{ID: "p1", Title: "Seaside bungalow", Type: "beach", Price: 250000, Sqmeters: 85, Beds: 2, Featured: true}

	mock.ExpectExec(`UPDATE properties`).
		WithArgs(p.Title, p.Type, p.Description, p.ImageURL, p.Price, p.Sqmeters, p.Beds, p.Featured, pgxmock.AnyArg(), p.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, r.Update(context.Background(), p))

	mock.ExpectExec(`UPDATE properties`).
		WithArgs(p.Title, p.Type, p.Description, p.ImageURL, p.Price, p.Sqmeters, p.Beds, p.Featured, pgxmock.AnyArg(), p.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	err := r.Update(context.Background(), p)
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyRepository_Delete(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	r := NewPropertyRepository(mock)

	mock.ExpectExec(`DELETE FROM properties\s+WHERE id = \$1`).
		WithArgs("p1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	require.NoError(t, r.Delete(context.Background(), "p1"))

	mock.ExpectExec(`DELETE FROM properties\s+WHERE id = \$1`).
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	err := r.Delete(context.Background(), "missing")
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
}
