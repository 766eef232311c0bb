package dbmetrics

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/pkg/metrics"
)

func TestDB_ObservesQueries(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	m := metrics.New("test")
	db := Wrap(sqlDB, m)

	mock.ExpectExec("UPDATE booking_lines").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT id").WillReturnError(errors.New("boom"))

	_, err = db.ExecContext(context.Background(), "UPDATE booking_lines SET status = 'cancelled'")
	require.NoError(t, err)
	_, err = db.QueryContext(context.Background(), "SELECT id FROM booking_lines")
	require.Error(t, err)

	// одна серия на операцию: update и select
	assert.Equal(t, 2, testutil.CollectAndCount(m.DBQueryDuration))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("select")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("update")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_NilMetrics(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	mock.ExpectExec("DELETE").WillReturnResult(sqlmock.NewResult(0, 0))

	_, err = Wrap(sqlDB, nil).ExecContext(context.Background(), "DELETE FROM booking_lines")
	assert.NoError(t, err)
}

func TestGetExecutor(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db := Wrap(sqlDB, nil)
	ctx := context.Background()

	assert.False(t, IsInTransaction(ctx))
	assert.Same(t, db, GetExecutor(ctx, db))

	mock.ExpectBegin()
	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)

	txCtx := WithTx(ctx, tx)
	assert.True(t, IsInTransaction(txCtx))
	assert.Equal(t, tx, GetExecutor(txCtx, db))
}

func TestOperationOf(t *testing.T) {
	assert.Equal(t, "select", operationOf("  SELECT * FROM t"))
	assert.Equal(t, "unknown", operationOf(""))
}
