package store

import (
	"cmp"
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-lab-access/models"
)

// memoryRequestRepository keeps everything in process memory. State is lost
// on restart.
type memoryRequestRepository struct {
	mu       sync.RWMutex
	nextID   int64
	requests map[int64]models.AccessRequest
	files    map[int64][]models.StoredFile
	surveys  map[string]models.Survey
	now      func() time.Time
}

// NewMemoryRequestRepository returns an empty in-memory [RequestRepository].
func NewMemoryRequestRepository() RequestRepository {
	return &memoryRequestRepository{
		nextID:   1,
		requests: make(map[int64]models.AccessRequest),
		files:    make(map[int64][]models.StoredFile),
		surveys:  make(map[string]models.Survey),
		now:      time.Now,
	}
}

// SetClock replaces the time source used for CreatedAt, UploadedAt and
// SubmittedAt stamps.
func (m *memoryRequestRepository) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

func (m *memoryRequestRepository) CreateRequest(_ context.Context, req models.AccessRequest) (models.AccessRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	req.ID = m.nextID
	m.nextID++
	req.Status = models.StatusPending
	if req.CreatedAt.IsZero() {
		req.CreatedAt = m.now().UTC()
	}
	req.Files = nil
	m.requests[req.ID] = req

	return req, nil
}

func (m *memoryRequestRepository) GetRequest(_ context.Context, id int64) (models.AccessRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	req, ok := m.requests[id]
	if !ok {
		return models.AccessRequest{}, ErrRequestNotFound
	}
	return m.withFiles(req), nil
}

func (m *memoryRequestRepository) ListRequests(_ context.Context, status models.RequestStatus) ([]models.AccessRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.AccessRequest, 0, len(m.requests))
	for _, req := range m.requests {
		if status != models.StatusAll && req.Status != status {
			continue
		}
		out = append(out, m.withFiles(req))
	}

	slices.SortFunc(out, func(a, b models.AccessRequest) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})

	return out, nil
}

func (m *memoryRequestRepository) Decide(_ context.Context, id int64, decision models.Decision) (models.AccessRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	req, ok := m.requests[id]
	if !ok {
		return models.AccessRequest{}, ErrRequestNotFound
	}
	if req.Status != models.StatusPending {
		return models.AccessRequest{}, ErrRequestAlreadyDecided
	}

	applyDecision(&req, decision)
	m.requests[id] = req

	return m.withFiles(req), nil
}

func (m *memoryRequestRepository) ExpireApprovals(_ context.Context, today time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := today.Format(models.DateLayout)
	var expired int64
	for id, req := range m.requests {
		if req.Status == models.StatusApproved && req.ExpirationDate != "" && req.ExpirationDate < cutoff {
			req.Status = models.StatusExpired
			m.requests[id] = req
			expired++
		}
	}

	return expired, nil
}

func (m *memoryRequestRepository) AttachFile(_ context.Context, file models.StoredFile) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.requests[file.RequestID]; !ok {
		return ErrRequestNotFound
	}
	if file.UploadedAt.IsZero() {
		file.UploadedAt = m.now().UTC()
	}
	m.files[file.RequestID] = append(m.files[file.RequestID], file)

	return nil
}

func (m *memoryRequestRepository) SaveSurvey(_ context.Context, survey models.Survey) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.surveys[survey.RequestID]; ok {
		return ErrSurveyAlreadySubmitted
	}
	if survey.SubmittedAt.IsZero() {
		survey.SubmittedAt = m.now().UTC()
	}
	survey.Ratings = maps.Clone(survey.Ratings)
	m.surveys[survey.RequestID] = survey

	return nil
}

// withFiles must be called with the lock held.
func (m *memoryRequestRepository) withFiles(req models.AccessRequest) models.AccessRequest {
	files := m.files[req.ID]
	if len(files) == 0 {
		req.Files = nil
		return req
	}
	req.Files = make([]string, len(files))
	for i, f := range files {
		req.Files[i] = f.FileName
	}
	return req
}

func applyDecision(req *models.AccessRequest, decision models.Decision) {
	decidedAt := decision.DecidedAt.UTC()
	req.Status = decision.Status
	req.ExpirationDate = decision.ExpirationDate
	req.AdminNotes = decision.AdminNotes
	req.ActivationKey = decision.ActivationKey
	req.RejectReason = decision.Reason
	req.DecidedAt = &decidedAt
}
