package backend

import (
	"context"
	"errors"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-lab-access/internal/app"
	"github.com/MKhiriev/go-lab-access/internal/config"
	"github.com/MKhiriev/go-lab-access/internal/crypto"
	"github.com/MKhiriev/go-lab-access/internal/logger"
	"github.com/MKhiriev/go-lab-access/internal/mock"
	"github.com/MKhiriev/go-lab-access/internal/store"
	"github.com/MKhiriev/go-lab-access/models"
)

const (
	adminEmail = "admin@lab.test"
	adminHash  = "$2a$10$stored-hash"
	signKey    = "test-sign-key"
)

var today = time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)

type testBackend struct {
	*Backend
	repo      store.RequestRepository
	passwords *mock.MockPasswordVerifier
	keys      *mock.MockActivationKeyGenerator
}

func newTestBackend(t *testing.T) *testBackend {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := store.NewMemoryRequestRepository()
	passwords := mock.NewMockPasswordVerifier(ctrl)
	keys := mock.NewMockActivationKeyGenerator(ctrl)

	b := NewBackend(repo, config.BackendAuth{
		AdminEmail:        adminEmail,
		AdminPasswordHash: adminHash,
		TokenSignKey:      signKey,
		TokenIssuer:       "lab-access",
		TokenDuration:     time.Hour,
	}, logger.Nop(),
		WithPasswordVerifier(passwords),
		WithActivationKeys(keys),
		WithClock(func() time.Time { return today }),
	)

	return &testBackend{Backend: b, repo: repo, passwords: passwords, keys: keys}
}

func decodeData[T any](t *testing.T, env models.Envelope) T {
	t.Helper()
	require.True(t, env.Success, "envelope failed: %s", env.Message)

	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

func requireFailure(t *testing.T, env models.Envelope, msg string) {
	t.Helper()
	assert.False(t, env.Success)
	assert.Equal(t, msg, env.Message)
}

func submitParams(computer string) models.Params {
	return models.Params{
		"name":     "Sari Dewi",
		"email":    "sari@kampus.ac.id",
		"room":     "lab a",
		"computer": computer,
		"software": "MATLAB, Python",
		"purpose":  "thesis",
	}
}

func (tb *testBackend) submit(t *testing.T, computer string) models.AccessRequest {
	t.Helper()
	env := tb.Handle(context.Background(), "submit-request", submitParams(computer))
	return decodeData[models.AccessRequest](t, env)
}

func TestHandle_UnknownPath(t *testing.T) {
	tb := newTestBackend(t)

	requireFailure(t, tb.Handle(context.Background(), "drop-tables", nil), app.MsgUnknownOperation)
}

func TestHandle_ServesEveryMappedOperation(t *testing.T) {
	tb := newTestBackend(t)

	paths := tb.Paths()
	for _, path := range models.Operations() {
		assert.Contains(t, paths, path)
	}
	assert.Contains(t, paths, models.PathUploadFile)
}

func TestBranding(t *testing.T) {
	tb := newTestBackend(t)

	branding := decodeData[models.Branding](t, tb.Handle(context.Background(), "branding", nil))
	assert.Equal(t, defaultLogo, branding.Logo)
	assert.Equal(t, "Lab Access", branding.AppName)
}

func TestInitialData(t *testing.T) {
	tb := newTestBackend(t)
	ctx := context.Background()

	data := decodeData[models.InitialData](t, tb.Handle(ctx, "initial-data", models.Params{}))
	assert.Equal(t, []string{"Lab A", "Lab B", "Lab Riset"}, data.Rooms)
	assert.Contains(t, data.Software, "MATLAB")
	assert.Nil(t, data.Renewal)

	prev := tb.submit(t, "PC-A01")
	tb.keys.EXPECT().Generate().Return("SECRET-KEY", nil)
	tb.Handle(ctx, "admin-approve", models.Params{"requestId": prev.ID, "expirationDate": "2025-02-01", "adminNotes": "internal"})

	data = decodeData[models.InitialData](t, tb.Handle(ctx, "initial-data", models.Params{"renewal_id": "1"}))
	require.NotNil(t, data.Renewal)
	assert.Equal(t, "Sari Dewi", data.Renewal.Name)
	assert.Empty(t, data.Renewal.ActivationKey)
	assert.Empty(t, data.Renewal.AdminNotes)

	requireFailure(t, tb.Handle(ctx, "initial-data", models.Params{"renewal_id": "99"}), app.MsgRenewalNotFound)
	requireFailure(t, tb.Handle(ctx, "initial-data", models.Params{"renewal_id": "abc"}), app.MsgInvalidDataProvided)
}

func TestAvailableComputers(t *testing.T) {
	tb := newTestBackend(t)
	ctx := context.Background()

	req := tb.submit(t, "PC-A02")
	tb.keys.EXPECT().Generate().Return("K", nil)
	approved := tb.Handle(ctx, "admin-approve", models.Params{"requestId": float64(req.ID), "expirationDate": "2025-01-10"})
	require.True(t, approved.Success, approved.Message)

	computers := decodeData[[]models.Computer](t, tb.Handle(ctx, "computers-available", models.Params{"room": "Lab A"}))
	require.Len(t, computers, 4)
	for _, c := range computers {
		assert.Equal(t, "Lab A", c.Room)
		assert.Equal(t, c.Name != "PC-A02", c.Available, c.Name)
	}

	all := decodeData[[]models.Computer](t, tb.Handle(ctx, "computers-available", nil))
	assert.Len(t, all, 9)

	requireFailure(t, tb.Handle(ctx, "computers-available", models.Params{"room": "Lab Z"}), app.MsgUnknownRoom)
}

func TestAvailableComputers_LapsedApprovalFreesComputer(t *testing.T) {
	tb := newTestBackend(t)
	ctx := context.Background()

	req, err := tb.repo.CreateRequest(ctx, models.AccessRequest{Room: "Lab B", Computer: "PC-B01"})
	require.NoError(t, err)
	_, err = tb.repo.Decide(ctx, req.ID, models.Decision{Status: models.StatusApproved, ExpirationDate: "2025-01-09"})
	require.NoError(t, err)

	computers := decodeData[[]models.Computer](t, tb.Handle(ctx, "computers-available", models.Params{"room": "Lab B"}))
	assert.True(t, computers[0].Available)
}

func TestCheckRestrictions(t *testing.T) {
	tb := newTestBackend(t)
	ctx := context.Background()

	check := decodeData[models.RestrictionCheck](t, tb.Handle(ctx, "check-restrictions", models.Params{"software": "MATLAB, arcgis"}))
	assert.Equal(t, []string{"ArcGIS"}, check.Restricted)
	assert.False(t, check.Allowed)

	check = decodeData[models.RestrictionCheck](t, tb.Handle(ctx, "check-restrictions", models.Params{"software": "Python"}))
	assert.Empty(t, check.Restricted)
	assert.True(t, check.Allowed)

	requireFailure(t, tb.Handle(ctx, "check-restrictions", models.Params{"software": " , "}), app.MsgInvalidDataProvided)
}

func TestSubmitRequest(t *testing.T) {
	tb := newTestBackend(t)
	ctx := context.Background()

	created := tb.submit(t, "pc-a01")
	assert.EqualValues(t, 1, created.ID)
	assert.Equal(t, models.StatusPending, created.Status)
	assert.Equal(t, "Lab A", created.Room)

	t.Run("validation message", func(t *testing.T) {
		p := submitParams("PC-A03")
		p["email"] = "not-an-email"
		requireFailure(t, tb.Handle(ctx, "submit-request", p), "invalid email")
	})

	t.Run("unknown computer", func(t *testing.T) {
		requireFailure(t, tb.Handle(ctx, "submit-request", submitParams("PC-B01")), app.MsgUnknownComputer)
	})

	t.Run("computer held by active approval", func(t *testing.T) {
		tb.keys.EXPECT().Generate().Return("K", nil)
		env := tb.Handle(ctx, "admin-approve", models.Params{"requestId": "1", "expirationDate": "2025-03-01"})
		require.True(t, env.Success, env.Message)

		requireFailure(t, tb.Handle(ctx, "submit-request", submitParams("PC-A01")), app.MsgComputerNotAvailable)

		renewal := submitParams("PC-A01")
		renewal["renewal_id"] = "1"
		renewed := decodeData[models.AccessRequest](t, tb.Handle(ctx, "submit-request", renewal))
		assert.Equal(t, "1", renewed.RenewalOf)
	})
}

func TestWithClock_ReachesValidatorAndStore(t *testing.T) {
	tb := newTestBackend(t)
	ctx := context.Background()

	created := tb.submit(t, "PC-A01")
	assert.True(t, today.Equal(created.CreatedAt), created.CreatedAt)

	// the future of the injected clock, long past on the wall clock
	approved := decodeData[models.AccessRequest](t, tb.Handle(ctx, "admin-approve", models.Params{
		"requestId":      created.ID,
		"expirationDate": "2025-02-01",
		"activationKey":  "KEY1",
	}))
	assert.Equal(t, "2025-02-01", approved.ExpirationDate)

	requireFailure(t, tb.Handle(ctx, "admin-approve", models.Params{"requestId": created.ID, "expirationDate": "2025-01-09"}), app.MsgInvalidExpirationDate)
}

func TestAdminLogin(t *testing.T) {
	tb := newTestBackend(t)
	ctx := context.Background()

	t.Run("success yields a verifiable token", func(t *testing.T) {
		tb.passwords.EXPECT().Verify(adminHash, "s3cret").Return(nil)

		session := decodeData[models.AdminSession](t, tb.Handle(ctx, "admin-login", models.Params{"email": "ADMIN@lab.test", "password": "s3cret"}))
		assert.NotEmpty(t, session.Token)
		assert.Equal(t, adminEmail, session.Email)

		check := decodeData[models.AuthCheck](t, tb.Handle(ctx, "admin-check-auth", models.Params{"token": session.Token}))
		assert.True(t, check.Valid)
		assert.Equal(t, adminEmail, check.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		tb.passwords.EXPECT().Verify(adminHash, "nope").Return(crypto.ErrPasswordMismatch)

		requireFailure(t, tb.Handle(ctx, "admin-login", models.Params{"email": adminEmail, "password": "nope"}), app.MsgInvalidLoginPassword)
	})

	t.Run("wrong email skips password check", func(t *testing.T) {
		requireFailure(t, tb.Handle(ctx, "admin-login", models.Params{"email": "x@lab.test", "password": "s3cret"}), app.MsgInvalidLoginPassword)
	})

	t.Run("broken hash is internal", func(t *testing.T) {
		tb.passwords.EXPECT().Verify(adminHash, "s3cret").Return(crypto.ErrInvalidHash)

		requireFailure(t, tb.Handle(ctx, "admin-login", models.Params{"email": adminEmail, "password": "s3cret"}), app.MsgInternalServerError)
	})
}

func TestCheckAuth_Invalid(t *testing.T) {
	tb := newTestBackend(t)

	for _, token := range []string{"", "garbage"} {
		check := decodeData[models.AuthCheck](t, tb.Handle(context.Background(), "admin-check-auth", models.Params{"token": token}))
		assert.False(t, check.Valid)
	}
}

func TestAdminRequests(t *testing.T) {
	tb := newTestBackend(t)
	ctx := context.Background()

	tb.submit(t, "PC-A01")
	second := tb.submit(t, "PC-A02")
	tb.Handle(ctx, "admin-reject", models.Params{"requestId": second.ID, "reason": "lab closed"})

	pending := decodeData[[]models.AccessRequest](t, tb.Handle(ctx, "admin-requests", models.Params{}))
	require.Len(t, pending, 1)
	assert.Equal(t, "PC-A01", pending[0].Computer)

	rejected := decodeData[[]models.AccessRequest](t, tb.Handle(ctx, "admin-requests", models.Params{"status": "rejected"}))
	require.Len(t, rejected, 1)
	assert.Equal(t, "lab closed", rejected[0].RejectReason)

	all := decodeData[[]models.AccessRequest](t, tb.Handle(ctx, "admin-requests", models.Params{"status": "All"}))
	assert.Len(t, all, 2)

	empty := tb.Handle(ctx, "admin-requests", models.Params{"status": "Expired"})
	assert.True(t, empty.Success)
	assert.JSONEq(t, `[]`, string(empty.Data))

	requireFailure(t, tb.Handle(ctx, "admin-requests", models.Params{"status": "Archived"}), app.MsgInvalidStatus)
	requireFailure(t, tb.Handle(ctx, "admin-requests", models.Params{"token": "forged"}), app.MsgTokenIsExpiredOrInvalid)
}

func TestApproveRequest(t *testing.T) {
	tb := newTestBackend(t)
	ctx := context.Background()
	req := tb.submit(t, "PC-A01")

	t.Run("past expiration", func(t *testing.T) {
		requireFailure(t, tb.Handle(ctx, "admin-approve", models.Params{"requestId": req.ID, "expirationDate": "2025-01-01"}), app.MsgInvalidExpirationDate)
	})

	t.Run("missing request id", func(t *testing.T) {
		requireFailure(t, tb.Handle(ctx, "admin-approve", models.Params{"expirationDate": "2025-02-01"}), app.MsgInvalidDataProvided)
	})

	t.Run("given key is kept", func(t *testing.T) {
		approved := decodeData[models.AccessRequest](t, tb.Handle(ctx, "admin-approve", models.Params{
			"requestId":      "1",
			"expirationDate": "2025-02-01",
			"adminNotes":     "ok",
			"activationKey":  "KEY1",
		}))
		assert.Equal(t, models.StatusApproved, approved.Status)
		assert.Equal(t, "KEY1", approved.ActivationKey)
		assert.Equal(t, "ok", approved.AdminNotes)
		require.NotNil(t, approved.DecidedAt)
		assert.True(t, today.Equal(*approved.DecidedAt))
	})

	t.Run("second decision", func(t *testing.T) {
		requireFailure(t, tb.Handle(ctx, "admin-reject", models.Params{"requestId": "1", "reason": "late"}), app.MsgRequestAlreadyDecided)
	})

	t.Run("unknown request", func(t *testing.T) {
		tb.keys.EXPECT().Generate().Return("K", nil)
		requireFailure(t, tb.Handle(ctx, "admin-approve", models.Params{"requestId": "77", "expirationDate": "2025-02-01"}), app.MsgRequestNotFound)
	})
}

func TestRejectRequest_NeedsReason(t *testing.T) {
	tb := newTestBackend(t)
	req := tb.submit(t, "PC-A01")

	requireFailure(t, tb.Handle(context.Background(), "admin-reject", models.Params{"requestId": req.ID}), app.MsgRejectReasonRequired)
}

func surveyParams() models.Params {
	return models.Params{
		"requestId":    "5",
		"komputer":     "5",
		"fasilitas":    "4",
		"kebersihan":   "3",
		"administrasi": float64(2),
		"software":     "1",
		"web_portal":   "5",
		"saran":        "more outlets",
	}
}

func TestSubmitQuisioner(t *testing.T) {
	tb := newTestBackend(t)
	ctx := context.Background()

	env := tb.Handle(ctx, "submit-quisioner", surveyParams())
	assert.JSONEq(t, `{"requestId":"5"}`, string(decodeData[json.RawMessage](t, env)))

	requireFailure(t, tb.Handle(ctx, "submit-quisioner", surveyParams()), app.MsgSurveyAlreadySubmitted)

	bad := surveyParams()
	bad["requestId"] = "6"
	bad["kebersihan"] = "9"
	requireFailure(t, tb.Handle(ctx, "submit-quisioner", bad), app.MsgInvalidRating)

	bad["kebersihan"] = "lots"
	requireFailure(t, tb.Handle(ctx, "submit-quisioner", bad), app.MsgInvalidRating)

	missing := surveyParams()
	missing["requestId"] = "7"
	delete(missing, "web_portal")
	requireFailure(t, tb.Handle(ctx, "submit-quisioner", missing), app.MsgInvalidRating)
}

func TestUploadFile(t *testing.T) {
	tb := newTestBackend(t)
	ctx := context.Background()
	req := tb.submit(t, "PC-A01")

	env := tb.Handle(ctx, models.PathUploadFile, models.Params{
		"rowIndex": float64(req.ID),
		"fileData": "aGVsbG8=",
		"fileName": "ktm.png",
		"mimeType": "image/png",
	})
	assert.JSONEq(t, `{"requestId":1,"fileName":"ktm.png","size":5}`, string(decodeData[json.RawMessage](t, env)))

	stored, err := tb.repo.GetRequest(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"ktm.png"}, stored.Files)

	requireFailure(t, tb.Handle(ctx, models.PathUploadFile, models.Params{
		"rowIndex": "42", "fileData": "aGVsbG8=", "fileName": "x.pdf",
	}), app.MsgRequestNotFound)

	requireFailure(t, tb.Handle(ctx, models.PathUploadFile, models.Params{
		"rowIndex": "1", "fileData": "%%%", "fileName": "x.pdf",
	}), app.MsgInvalidFile)
}

func TestAdminRequests_ListsSweptApprovalsAsExpired(t *testing.T) {
	tb := newTestBackend(t)
	ctx := context.Background()

	req, _ := tb.repo.CreateRequest(ctx, models.AccessRequest{Room: "Lab A", Computer: "PC-A01"})
	_, _ = tb.repo.Decide(ctx, req.ID, models.Decision{Status: models.StatusApproved, ExpirationDate: "2025-01-01"})

	n, err := tb.repo.ExpireApprovals(ctx, today)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	items := decodeData[[]models.AccessRequest](t, tb.Handle(ctx, "admin-requests", models.Params{"status": "Expired"}))
	require.Len(t, items, 1)
	assert.Equal(t, req.ID, items[0].ID)
}

func TestHandle_StoreFailureIsInternalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRequestRepository(ctrl)
	b := NewBackend(repo, config.BackendAuth{}, logger.Nop(), WithClock(func() time.Time { return today }))

	repo.EXPECT().ListRequests(gomock.Any(), models.StatusAll).Return(nil, errors.New("connection reset"))

	requireFailure(t, b.Handle(context.Background(), "admin-requests", models.Params{"status": "All"}), app.MsgInternalServerError)
}

func TestHandle_StoreNotFoundKeepsItsMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRequestRepository(ctrl)
	b := NewBackend(repo, config.BackendAuth{}, logger.Nop(), WithClock(func() time.Time { return today }))

	repo.EXPECT().Decide(gomock.Any(), int64(9), gomock.Any()).Return(models.AccessRequest{}, store.ErrRequestNotFound)

	env := b.Handle(context.Background(), "admin-reject", models.Params{"requestId": "9", "reason": "duplicate"})

	requireFailure(t, env, app.MsgRequestNotFound)
}
