// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-lab-access/internal/logger"
	"github.com/MKhiriev/go-lab-access/models"
)

// requestRepository is the SQL implementation of [RequestRepository]. The
// same code serves SQLite and PostgreSQL; the dialect only changes the
// placeholder format and error classification held by [DB].
type requestRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewRequestRepository constructs a [RequestRepository] over db.
func NewRequestRepository(db *DB, logger *logger.Logger) RequestRepository {
	logger.Debug().Str("dialect", db.dialect).Msg("creating request repository")
	return &requestRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// SetClock replaces the time source used for record timestamps.
func (r *requestRepository) SetClock(now func() time.Time) {
	r.now = now
}

func (r *requestRepository) CreateRequest(ctx context.Context, req models.AccessRequest) (models.AccessRequest, error) {
	log := logger.FromContext(ctx)

	if req.CreatedAt.IsZero() {
		req.CreatedAt = r.now().UTC()
	}

	query, args, err := insertRequestQuery(r.db.builder, req)
	if err != nil {
		return models.AccessRequest{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&req.ID)
	})
	if err != nil {
		log.Err(err).Str("func", "*requestRepository.CreateRequest").Str("sqlstate", postgresError(err)).Msg("error inserting request")
		return models.AccessRequest{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	req.Status = models.StatusPending
	req.Files = nil
	return req, nil
}

func (r *requestRepository) GetRequest(ctx context.Context, id int64) (models.AccessRequest, error) {
	query, args, err := selectRequestByIDQuery(r.db.builder, id)
	if err != nil {
		return models.AccessRequest{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	req, err := scanRequest(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.AccessRequest{}, ErrRequestNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*requestRepository.GetRequest").Msg("error scanning request")
		return models.AccessRequest{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	withFiles, err := r.attachFileNames(ctx, []models.AccessRequest{req})
	if err != nil {
		return models.AccessRequest{}, err
	}
	return withFiles[0], nil
}

func (r *requestRepository) ListRequests(ctx context.Context, status models.RequestStatus) ([]models.AccessRequest, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectRequestsQuery(r.db.builder, status)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*requestRepository.ListRequests").Msg("error querying requests")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	requests := make([]models.AccessRequest, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			log.Err(err).Str("func", "*requestRepository.ListRequests").Msg("error scanning request row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		requests = append(requests, req)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return r.attachFileNames(ctx, requests)
}

func (r *requestRepository) Decide(ctx context.Context, id int64, decision models.Decision) (models.AccessRequest, error) {
	if decision.DecidedAt.IsZero() {
		decision.DecidedAt = r.now()
	}

	query, args, err := decideQuery(r.db.builder, id, decision)
	if err != nil {
		return models.AccessRequest{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = r.db.withRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*requestRepository.Decide").Msg("error updating request")
		return models.AccessRequest{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	req, err := r.GetRequest(ctx, id)
	if err != nil {
		return models.AccessRequest{}, err
	}
	if affected == 0 {
		return models.AccessRequest{}, ErrRequestAlreadyDecided
	}

	return req, nil
}

func (r *requestRepository) ExpireApprovals(ctx context.Context, today time.Time) (int64, error) {
	query, args, err := expireApprovalsQuery(r.db.builder, today)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = r.db.withRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected, nil
}

func (r *requestRepository) AttachFile(ctx context.Context, file models.StoredFile) error {
	if _, err := r.GetRequest(ctx, file.RequestID); err != nil {
		return err
	}
	if file.UploadedAt.IsZero() {
		file.UploadedAt = r.now().UTC()
	}

	query, args, err := insertFileQuery(r.db.builder, file)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*requestRepository.AttachFile").Msg("error inserting file")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *requestRepository) SaveSurvey(ctx context.Context, survey models.Survey) error {
	if survey.SubmittedAt.IsZero() {
		survey.SubmittedAt = r.now().UTC()
	}

	query, args, err := insertSurveyQuery(r.db.builder, survey)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		if r.db.errorClassificator != nil && r.db.errorClassificator.Classify(err) == Conflict {
			return ErrSurveyAlreadySubmitted
		}
		logger.FromContext(ctx).Err(err).Str("func", "*requestRepository.SaveSurvey").Msg("error inserting survey")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// attachFileNames fills Files of every request with one extra query.
func (r *requestRepository) attachFileNames(ctx context.Context, requests []models.AccessRequest) ([]models.AccessRequest, error) {
	if len(requests) == 0 {
		return requests, nil
	}

	ids := make([]int64, len(requests))
	index := make(map[int64]int, len(requests))
	for i, req := range requests {
		ids[i] = req.ID
		index[req.ID] = i
	}

	query, args, err := selectFileNamesQuery(r.db.builder, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			requestID int64
			fileName  string
		)
		if err = rows.Scan(&requestID, &fileName); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if i, ok := index[requestID]; ok {
			requests[i].Files = append(requests[i].Files, fileName)
		}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return requests, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequest(row rowScanner) (models.AccessRequest, error) {
	var (
		req       models.AccessRequest
		status    string
		decidedAt sql.NullTime
	)

	err := row.Scan(
		&req.ID,
		&req.Name,
		&req.Email,
		&req.Room,
		&req.Computer,
		&req.Software,
		&req.Purpose,
		&req.RenewalOf,
		&status,
		&req.ExpirationDate,
		&req.AdminNotes,
		&req.ActivationKey,
		&req.RejectReason,
		&req.CreatedAt,
		&decidedAt,
	)
	if err != nil {
		return models.AccessRequest{}, err
	}

	req.Status = models.RequestStatus(status)
	if decidedAt.Valid {
		t := decidedAt.Time
		req.DecidedAt = &t
	}

	return req, nil
}
