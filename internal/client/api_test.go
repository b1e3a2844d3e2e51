package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-lab-access/internal/adapter"
	"github.com/MKhiriev/go-lab-access/internal/backend"
	"github.com/MKhiriev/go-lab-access/internal/config"
	"github.com/MKhiriev/go-lab-access/internal/handler/bridge"
	"github.com/MKhiriev/go-lab-access/internal/logger"
	"github.com/MKhiriev/go-lab-access/internal/mock"
	"github.com/MKhiriev/go-lab-access/internal/store"
	"github.com/MKhiriev/go-lab-access/models"
)

func newMockClient(t *testing.T) (*APIClient, *mock.MockTransport) {
	t.Helper()
	ctrl := gomock.NewController(t)
	tr := mock.NewMockTransport(ctrl)
	return NewWithTransport(tr, logger.Nop()), tr
}

func TestNew_SelectsTransportOnce(t *testing.T) {
	remote := New(config.ClientAdapter{APIURL: "https://example.test/exec"}, nil, logger.Nop())
	assert.Equal(t, adapter.ModeRemote, remote.Mode())

	bridged := New(config.ClientAdapter{APIURL: "https://example.test/exec"}, adapter.NewProcedureBridge(), logger.Nop())
	assert.Equal(t, adapter.ModeBridged, bridged.Mode())
}

func TestAPIClient_MissingEndpointFailsWithoutRequests(t *testing.T) {
	c := New(config.ClientAdapter{}, nil, logger.Nop())

	_, err := c.GetBranding(context.Background())
	require.ErrorIs(t, err, adapter.ErrConfiguration)

	remote, ok := c.transport.(*adapter.RemoteTransport)
	require.True(t, ok)
	assert.Empty(t, remote.PendingCallbacks())
	assert.Empty(t, remote.ActiveLoaders())
}

func TestAPIClient_GetBrandingRemote(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		q := r.URL.Query()
		assert.Equal(t, "branding", q.Get("path"))
		w.Header().Set("Content-Type", "application/javascript")
		fmt.Fprintf(w, `%s({"success":true,"data":{"logo":"abc"}})`, q.Get("callback"))
	}))
	defer srv.Close()

	c := New(config.ClientAdapter{APIURL: srv.URL}, nil, logger.Nop())

	raw, err := c.GetBranding(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{"logo":"abc"}`, string(raw))
	assert.Equal(t, int32(1), hits.Load())

	remote := c.transport.(*adapter.RemoteTransport)
	assert.Empty(t, remote.PendingCallbacks())
	assert.Empty(t, remote.ActiveLoaders())
}

func TestAPIClient_ApproveRequestPassesParamsUnchanged(t *testing.T) {
	c, tr := newMockClient(t)
	ctx := context.Background()

	tr.EXPECT().
		Invoke(ctx, models.OpApproveRequest, models.Params{
			"requestId":      int64(42),
			"expirationDate": "2025-01-01",
			"adminNotes":     "ok",
			"activationKey":  "KEY1",
		}).
		Return(json.RawMessage(`{"requestId":42}`), nil)

	raw, err := c.ApproveRequest(ctx, 42, "2025-01-01", "ok", "KEY1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"requestId":42}`, string(raw))
}

func TestAPIClient_ConvenienceParams(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		call   func(c *APIClient) (json.RawMessage, error)
		op     string
		params models.Params
	}{
		{
			name:   "initial data without renewal",
			call:   func(c *APIClient) (json.RawMessage, error) { return c.GetInitialData(ctx, "") },
			op:     models.OpGetInitialData,
			params: models.Params{},
		},
		{
			name:   "initial data with renewal",
			call:   func(c *APIClient) (json.RawMessage, error) { return c.GetInitialData(ctx, "17") },
			op:     models.OpGetInitialData,
			params: models.Params{"renewal_id": "17"},
		},
		{
			name:   "computers without room",
			call:   func(c *APIClient) (json.RawMessage, error) { return c.GetAvailableComputers(ctx, "") },
			op:     models.OpGetAvailableComputers,
			params: models.Params{},
		},
		{
			name:   "computers in room",
			call:   func(c *APIClient) (json.RawMessage, error) { return c.GetAvailableComputers(ctx, "Lab A") },
			op:     models.OpGetAvailableComputers,
			params: models.Params{"room": "Lab A"},
		},
		{
			name:   "branding",
			call:   func(c *APIClient) (json.RawMessage, error) { return c.GetBranding(ctx) },
			op:     models.OpGetBranding,
			params: nil,
		},
		{
			name:   "restrictions",
			call:   func(c *APIClient) (json.RawMessage, error) { return c.CheckSoftwareRestrictions(ctx, "ArcGIS") },
			op:     models.OpCheckSoftwareRestrictions,
			params: models.Params{"software": "ArcGIS"},
		},
		{
			name:   "submit request",
			call:   func(c *APIClient) (json.RawMessage, error) { return c.SubmitRequest(ctx, models.Params{"name": "Budi"}) },
			op:     models.OpSubmitRequest,
			params: models.Params{"name": "Budi"},
		},
		{
			name:   "admin login",
			call:   func(c *APIClient) (json.RawMessage, error) { return c.AdminLogin(ctx, "admin@lab.test", "secret") },
			op:     models.OpAdminLogin,
			params: models.Params{"email": "admin@lab.test", "password": "secret"},
		},
		{
			name:   "check auth",
			call:   func(c *APIClient) (json.RawMessage, error) { return c.CheckAuth(ctx, "tok") },
			op:     models.OpCheckAuth,
			params: models.Params{"token": "tok"},
		},
		{
			name:   "admin requests default status",
			call:   func(c *APIClient) (json.RawMessage, error) { return c.GetAdminRequests(ctx, "") },
			op:     models.OpGetAdminRequests,
			params: models.Params{"status": "Pending"},
		},
		{
			name:   "admin requests explicit status",
			call:   func(c *APIClient) (json.RawMessage, error) { return c.GetAdminRequests(ctx, "All") },
			op:     models.OpGetAdminRequests,
			params: models.Params{"status": "All"},
		},
		{
			name:   "reject",
			call:   func(c *APIClient) (json.RawMessage, error) { return c.RejectRequest(ctx, 7, "no seat") },
			op:     models.OpRejectRequest,
			params: models.Params{"requestId": int64(7), "reason": "no seat"},
		},
		{
			name:   "survey",
			call:   func(c *APIClient) (json.RawMessage, error) { return c.SubmitQuisioner(ctx, models.Params{"requestId": "7"}) },
			op:     models.OpSubmitQuisioner,
			params: models.Params{"requestId": "7"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, tr := newMockClient(t)
			tr.EXPECT().Invoke(ctx, tt.op, tt.params).Return(json.RawMessage(`{}`), nil)

			_, err := tt.call(c)
			require.NoError(t, err)
		})
	}
}

func TestAPIClient_InvokePassesErrorsThrough(t *testing.T) {
	c, tr := newMockClient(t)
	ctx := context.Background()
	appErr := &adapter.ApplicationError{Message: "Ruangan tidak dikenal"}

	tr.EXPECT().Invoke(ctx, "customOp", models.Params{"a": "1"}).Return(nil, appErr)

	_, err := c.Invoke(ctx, "customOp", models.Params{"a": "1"})
	require.ErrorIs(t, err, adapter.ErrApplication)
	assert.Equal(t, "Ruangan tidak dikenal", err.Error())
}

func TestAPIClient_UploadFileDelegates(t *testing.T) {
	c, tr := newMockClient(t)
	ctx := context.Background()
	req := models.UploadRequest{RowIndex: 3, FileData: "aGk=", FileName: "ktm.png", MimeType: "image/png"}

	tr.EXPECT().UploadFile(ctx, req).Return(models.UploadResult{Success: true, Opaque: true}, nil)

	res, err := c.UploadFile(ctx, req)
	require.NoError(t, err)
	assert.False(t, res.Verified())
}

func TestDecode(t *testing.T) {
	branding, err := Decode[models.Branding](json.RawMessage(`{"logo":"abc"}`), nil)
	require.NoError(t, err)
	assert.Equal(t, "abc", branding.Logo)

	boom := errors.New("boom")
	_, err = Decode[models.Branding](nil, boom)
	assert.ErrorIs(t, err, boom)

	_, err = Decode[models.Branding](json.RawMessage(`[1,2]`), nil)
	assert.Error(t, err)
}

func TestAPIClient_BridgedAgainstBackend(t *testing.T) {
	b := backend.NewBackend(store.NewMemoryRequestRepository(), config.BackendAuth{}, logger.Nop())
	pb := adapter.NewProcedureBridge()
	bridge.NewHandler(b, logger.Nop()).Register(pb)

	c := New(config.ClientAdapter{}, pb, logger.Nop())
	ctx := context.Background()

	submitted, err := Decode[models.AccessRequest](c.SubmitRequest(ctx, models.Params{
		"name":     "Budi",
		"email":    "budi@example.com",
		"room":     "Lab A",
		"computer": "PC-A01",
		"software": "Python",
	}))
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, submitted.Status)

	pending, err := Decode[[]models.AccessRequest](c.GetAdminRequests(ctx, ""))
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, submitted.ID, pending[0].ID)

	approved, err := Decode[models.AccessRequest](c.ApproveRequest(ctx, submitted.ID, "2099-12-31", "ok", "KEY1"))
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, approved.Status)
	assert.Equal(t, "KEY1", approved.ActivationKey)

	_, err = c.RejectRequest(ctx, submitted.ID, "late")
	require.ErrorIs(t, err, adapter.ErrApplication)
}

func TestAPIClient_BridgedFailureValueIsKept(t *testing.T) {
	ctrl := gomock.NewController(t)
	br := mock.NewMockBridge(ctrl)
	native := map[string]any{"code": 503, "reason": "host offline"}

	br.EXPECT().
		Run(models.OpGetBranding, gomock.Any(), gomock.Any()).
		Do(func(_ string, _ func(any), onFailure func(any), _ ...any) {
			onFailure(native)
		})

	c := New(config.ClientAdapter{}, br, logger.Nop())
	_, err := c.GetBranding(context.Background())

	var bridgeErr *adapter.BridgeError
	require.ErrorAs(t, err, &bridgeErr)
	assert.Equal(t, native, bridgeErr.Value)
}

func TestAPIClient_BridgedPlainValueIsReturnedAsIs(t *testing.T) {
	ctrl := gomock.NewController(t)
	br := mock.NewMockBridge(ctrl)

	br.EXPECT().
		Run(models.OpCheckAuth, gomock.Any(), gomock.Any(), models.Params{"token": "t0k"}).
		Do(func(_ string, onSuccess func(any), _ func(any), _ ...any) {
			onSuccess(map[string]any{"valid": false})
		})

	c := New(config.ClientAdapter{}, br, logger.Nop())
	raw, err := c.CheckAuth(context.Background(), "t0k")

	require.NoError(t, err)
	assert.JSONEq(t, `{"valid":false}`, string(raw))
}
