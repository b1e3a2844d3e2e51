package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-lab-access/internal/logger"
	"github.com/MKhiriev/go-lab-access/internal/mock"
	"github.com/MKhiriev/go-lab-access/internal/store"
)

var sweepDay = time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)

func newClassifiedRepository(t *testing.T) (store.RequestRepository, sqlmock.Sqlmock, *mock.MockErrorClassificator) {
	t.Helper()

	conn, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	classifier := mock.NewMockErrorClassificator(gomock.NewController(t))
	repo := store.NewRequestRepository(store.NewPostgresDBForTest(conn, classifier), logger.Nop())

	return repo, sqlMock, classifier
}

func TestExpireApprovals_RetriesWhileClassifiedRetryable(t *testing.T) {
	repo, sqlMock, classifier := newClassifiedRepository(t)
	errBusy := errors.New("database is busy")

	sqlMock.ExpectExec("UPDATE access_requests SET status").WillReturnError(errBusy)
	sqlMock.ExpectExec("UPDATE access_requests SET status").WillReturnError(errBusy)
	sqlMock.ExpectExec("UPDATE access_requests SET status").WillReturnResult(sqlmock.NewResult(0, 3))
	classifier.EXPECT().Classify(errBusy).Return(store.Retryable).Times(2)

	n, err := repo.ExpireApprovals(context.Background(), sweepDay)

	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestExpireApprovals_GivesUpAfterMaxAttempts(t *testing.T) {
	repo, sqlMock, classifier := newClassifiedRepository(t)
	errBusy := errors.New("database is busy")

	for range 3 {
		sqlMock.ExpectExec("UPDATE access_requests SET status").WillReturnError(errBusy)
	}
	classifier.EXPECT().Classify(errBusy).Return(store.Retryable).Times(3)

	_, err := repo.ExpireApprovals(context.Background(), sweepDay)

	assert.ErrorIs(t, err, store.ErrExecutingQuery)
	assert.ErrorIs(t, err, errBusy)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestExpireApprovals_ConflictIsNotRetried(t *testing.T) {
	repo, sqlMock, classifier := newClassifiedRepository(t)
	errDup := errors.New("duplicate key")

	sqlMock.ExpectExec("UPDATE access_requests SET status").WillReturnError(errDup)
	classifier.EXPECT().Classify(errDup).Return(store.Conflict)

	_, err := repo.ExpireApprovals(context.Background(), sweepDay)

	assert.ErrorIs(t, err, errDup)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}
