// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-lab-access/internal/config"
	"github.com/MKhiriev/go-lab-access/internal/logger"
	"github.com/MKhiriev/go-lab-access/models"
)

var fixedNow = time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)

func newMockRepository(t *testing.T) (*requestRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db := &DB{
		DB:                 sqlDB,
		dialect:            "postgres",
		builder:            sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}
	repo := NewRequestRepository(db, logger.Nop()).(*requestRepository)
	repo.now = func() time.Time { return fixedNow }

	return repo, mock
}

func requestRow(id int64, status models.RequestStatus, decidedAt driver.Value) *sqlmock.Rows {
	return sqlmock.NewRows(requestColumns).AddRow(
		id, "Sari", "sari@example.com", "Lab A", "PC-01", "MATLAB", "thesis", "",
		string(status), "2025-04-01", "", "", "", fixedNow, decidedAt,
	)
}

func TestRequestRepository_CreateRequest(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO access_requests")).
		WithArgs("Sari", "sari@example.com", "Lab A", "PC-01", "MATLAB", "thesis", "", "Pending", fixedNow).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	got, err := repo.CreateRequest(context.Background(), models.AccessRequest{
		Name: "Sari", Email: "sari@example.com", Room: "Lab A", Computer: "PC-01", Software: "MATLAB", Purpose: "thesis",
		Status: models.StatusApproved,
	})
	require.NoError(t, err)

	assert.EqualValues(t, 7, got.ID)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.Equal(t, fixedNow, got.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestRepository_CreateRequest_QueryError(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("INSERT INTO access_requests").WillReturnError(errors.New("disk full"))

	_, err := repo.CreateRequest(context.Background(), models.AccessRequest{Name: "x"})
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestRepository_GetRequest(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM access_requests WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnRows(requestRow(7, models.StatusApproved, fixedNow))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT request_id, file_name FROM request_files")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"request_id", "file_name"}).
			AddRow(int64(7), "ktm.png").
			AddRow(int64(7), "krs.pdf"))

	got, err := repo.GetRequest(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, models.StatusApproved, got.Status)
	assert.Equal(t, "2025-04-01", got.ExpirationDate)
	assert.Equal(t, []string{"ktm.png", "krs.pdf"}, got.Files)
	require.NotNil(t, got.DecidedAt)
	assert.True(t, fixedNow.Equal(*got.DecidedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestRepository_GetRequest_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("FROM access_requests").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(requestColumns))

	_, err := repo.GetRequest(context.Background(), 404)
	assert.ErrorIs(t, err, ErrRequestNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestRepository_ListRequests(t *testing.T) {
	repo, mock := newMockRepository(t)

	rows := sqlmock.NewRows(requestColumns).
		AddRow(int64(2), "B", "", "Lab A", "", "", "", "", "Pending", "", "", "", "", fixedNow, nil).
		AddRow(int64(1), "A", "", "Lab A", "", "", "", "", "Pending", "", "", "", "", fixedNow.Add(-time.Hour), nil)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE status = $1 ORDER BY created_at DESC, id DESC")).
		WithArgs("Pending").
		WillReturnRows(rows)
	mock.ExpectQuery("FROM request_files").
		WithArgs(int64(2), int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"request_id", "file_name"}).AddRow(int64(1), "a.pdf"))

	got, err := repo.ListRequests(context.Background(), models.StatusPending)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.EqualValues(t, 2, got[0].ID)
	assert.Nil(t, got[0].Files)
	assert.Nil(t, got[0].DecidedAt)
	assert.Equal(t, []string{"a.pdf"}, got[1].Files)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestRepository_ListRequests_Empty(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("FROM access_requests").WillReturnRows(sqlmock.NewRows(requestColumns))

	got, err := repo.ListRequests(context.Background(), models.StatusAll)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestRepository_Decide(t *testing.T) {
	decision := models.Decision{Status: models.StatusApproved, ExpirationDate: "2025-04-01", ActivationKey: "KEY"}

	t.Run("pending request is updated", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectExec("UPDATE access_requests SET").
			WithArgs("KEY", "", fixedNow, "2025-04-01", "", "Approved", int64(7), "Pending").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("FROM access_requests").WithArgs(int64(7)).WillReturnRows(requestRow(7, models.StatusApproved, fixedNow))
		mock.ExpectQuery("FROM request_files").WillReturnRows(sqlmock.NewRows([]string{"request_id", "file_name"}))

		got, err := repo.Decide(context.Background(), 7, decision)
		require.NoError(t, err)
		assert.Equal(t, models.StatusApproved, got.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("decided request is left alone", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectExec("UPDATE access_requests SET").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("FROM access_requests").WithArgs(int64(7)).WillReturnRows(requestRow(7, models.StatusRejected, fixedNow))
		mock.ExpectQuery("FROM request_files").WillReturnRows(sqlmock.NewRows([]string{"request_id", "file_name"}))

		_, err := repo.Decide(context.Background(), 7, decision)
		assert.ErrorIs(t, err, ErrRequestAlreadyDecided)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing request", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectExec("UPDATE access_requests SET").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("FROM access_requests").WillReturnRows(sqlmock.NewRows(requestColumns))

		_, err := repo.Decide(context.Background(), 7, decision)
		assert.ErrorIs(t, err, ErrRequestNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRequestRepository_Decide_RetriesDeadlock(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec("UPDATE access_requests SET").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.DeadlockDetected})
	mock.ExpectExec("UPDATE access_requests SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM access_requests").WillReturnRows(requestRow(7, models.StatusRejected, fixedNow))
	mock.ExpectQuery("FROM request_files").WillReturnRows(sqlmock.NewRows([]string{"request_id", "file_name"}))

	got, err := repo.Decide(context.Background(), 7, models.Decision{Status: models.StatusRejected, Reason: "no seats"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, got.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestRepository_Decide_NonRetryableErrorIsNotRetried(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec("UPDATE access_requests SET").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UndefinedTable})

	_, err := repo.Decide(context.Background(), 7, models.Decision{Status: models.StatusRejected})
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestRepository_ExpireApprovals(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec("UPDATE access_requests SET status").
		WithArgs("Expired", "Approved", "", "2025-03-04").
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := repo.ExpireApprovals(context.Background(), fixedNow)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestRepository_AttachFile(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("FROM access_requests").WithArgs(int64(7)).WillReturnRows(requestRow(7, models.StatusPending, nil))
	mock.ExpectQuery("FROM request_files").WillReturnRows(sqlmock.NewRows([]string{"request_id", "file_name"}))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO request_files")).
		WithArgs(int64(7), "ktm.png", "image/png", []byte{0x89, 0x50}, fixedNow).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.AttachFile(context.Background(), models.StoredFile{
		RequestID: 7, FileName: "ktm.png", MimeType: "image/png", Data: []byte{0x89, 0x50},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestRepository_SaveSurvey_Conflict(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec("INSERT INTO surveys").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	err := repo.SaveSurvey(context.Background(), models.Survey{RequestID: "7", Ratings: map[string]int{}})
	assert.ErrorIs(t, err, ErrSurveyAlreadySubmitted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestRepository_SaveSurvey(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec("INSERT INTO surveys").
		WithArgs("7", int64(5), int64(4), int64(0), int64(0), int64(0), int64(3), "ok", fixedNow).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SaveSurvey(context.Background(), models.Survey{
		RequestID:  "7",
		Ratings:    map[string]int{models.RatingComputer: 5, models.RatingFacilities: 4, models.RatingWebPortal: 3},
		Suggestion: "ok",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewStorages(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		s, err := NewStorages(context.Background(), config.BackendStorage{Driver: config.DriverMemory}, logger.Nop())
		require.NoError(t, err)
		assert.NotNil(t, s.RequestRepository)
		assert.NoError(t, s.Close())
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := NewStorages(context.Background(), config.BackendStorage{Driver: "mongo"}, logger.Nop())
		assert.ErrorIs(t, err, ErrUnknownDriver)
	})
}
