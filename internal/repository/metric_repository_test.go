package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kdubovikov/testing-workshop/internal/models"
)

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, *PostgresMetricRepository) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, NewPostgresMetricRepository(mock)
}

func TestInsertMany(t *testing.T) {
	ctx := context.Background()

	metrics := []models.Metric{
		{Name: "foo", Value: 11},
		{Name: "bar", Value: 2},
		{Name: "baz", Value: 3},
	}

	t.Run("inserts all metrics in order with one commit", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		mock.ExpectBegin()
		for _, m := range metrics {
			mock.ExpectExec("INSERT INTO metrics").
				WithArgs(m.Name, m.Value).
				WillReturnResult(pgxmock.NewResult("INSERT", 1))
		}
		mock.ExpectCommit()

		require.NoError(t, repo.InsertMany(ctx, metrics))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty input commits with zero inserts", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectCommit()

		require.NoError(t, repo.InsertMany(ctx, nil))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid metric rejected before opening a transaction", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		err := repo.InsertMany(ctx, []models.Metric{{Name: "", Value: 1}})
		assert.ErrorIs(t, err, models.ErrEmptyMetricName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure rolls back", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO metrics").
			WithArgs("foo", int64(11)).
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		err := repo.InsertMany(ctx, metrics)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "foo")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFindByName(t *testing.T) {
	ctx := context.Background()

	t.Run("returns first matching metric", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		mock.ExpectQuery("SELECT id, name, value").
			WithArgs("foo").
			WillReturnRows(mock.NewRows([]string{"id", "name", "value"}).
				AddRow(int64(1), "foo", int64(11)))

		metric, err := repo.FindByName(ctx, "foo")
		require.NoError(t, err)
		assert.Equal(t, &models.Metric{ID: 1, Name: "foo", Value: 11}, metric)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("lookup is case-sensitive", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		// The name must reach the store verbatim, never lower-cased.
		mock.ExpectQuery("SELECT id, name, value").
			WithArgs("FOO").
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.FindByName(ctx, "FOO")
		assert.ErrorIs(t, err, models.ErrMetricNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent name returns ErrMetricNotFound", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		mock.ExpectQuery("SELECT id, name, value").
			WithArgs("missing").
			WillReturnError(pgx.ErrNoRows)

		metric, err := repo.FindByName(ctx, "missing")
		assert.Nil(t, metric)
		assert.ErrorIs(t, err, models.ErrMetricNotFound)
	})

	t.Run("query failure is wrapped", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		mock.ExpectQuery("SELECT id, name, value").
			WithArgs("foo").
			WillReturnError(errors.New("connection reset"))

		_, err := repo.FindByName(ctx, "foo")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, models.ErrMetricNotFound)
	})
}

func TestInsertNormalized(t *testing.T) {
	ctx := context.Background()

	t.Run("persists under lower-cased name", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		mock.ExpectQuery("INSERT INTO metrics").
			WithArgs("cpu-load", int64(9)).
			WillReturnRows(mock.NewRows([]string{"id", "name", "value"}).
				AddRow(int64(7), "cpu-load", int64(9)))

		input := models.Metric{Name: "CPU-Load", Value: 9}
		stored, err := repo.InsertNormalized(ctx, input)
		require.NoError(t, err)

		assert.Equal(t, "cpu-load", stored.Name)
		assert.Equal(t, int64(7), stored.ID)

		// Caller's value stays untouched.
		assert.Equal(t, "CPU-Load", input.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		_, err := repo.InsertNormalized(ctx, models.Metric{Name: "  ", Value: 1})
		assert.ErrorIs(t, err, models.ErrEmptyMetricName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure is wrapped", func(t *testing.T) {
		mock, repo := newMockRepo(t)

		mock.ExpectQuery("INSERT INTO metrics").
			WithArgs("foo", int64(1)).
			WillReturnError(errors.New("connection reset"))

		_, err := repo.InsertNormalized(ctx, models.Metric{Name: "foo", Value: 1})
		assert.Error(t, err)
	})
}
