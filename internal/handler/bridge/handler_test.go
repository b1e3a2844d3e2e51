package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-lab-access/internal/adapter"
	"github.com/MKhiriev/go-lab-access/internal/app"
	"github.com/MKhiriev/go-lab-access/internal/backend"
	"github.com/MKhiriev/go-lab-access/internal/config"
	"github.com/MKhiriev/go-lab-access/internal/logger"
	"github.com/MKhiriev/go-lab-access/internal/store"
	"github.com/MKhiriev/go-lab-access/models"
)

func newBridgedTransport(t *testing.T) (*adapter.BridgedTransport, *adapter.ProcedureBridge) {
	t.Helper()

	b := backend.NewBackend(store.NewMemoryRequestRepository(), config.BackendAuth{}, logger.Nop(),
		backend.WithClock(func() time.Time { return time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC) }))

	pb := adapter.NewProcedureBridge()
	NewHandler(b, logger.Nop()).Register(pb)

	return adapter.NewBridgedTransport(pb, logger.Nop()), pb
}

func TestRegister_EveryOperationIsCallable(t *testing.T) {
	_, pb := newBridgedTransport(t)

	ops := append([]string{models.OpUploadFile}, keys(models.Operations())...)
	for _, op := range ops {
		done := make(chan error, 1)
		pb.Run(op, func(any) { done <- nil }, func(reason any) {
			err, _ := reason.(error)
			done <- err
		}, models.Params{})

		select {
		case err := <-done:
			assert.NotErrorIs(t, err, adapter.ErrUnknownProcedure, op)
		case <-time.After(time.Second):
			t.Fatalf("%s did not settle", op)
		}
	}
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestBridgedBranding_UnwrapsEnvelope(t *testing.T) {
	transport, _ := newBridgedTransport(t)

	raw, err := transport.Invoke(context.Background(), models.OpGetBranding, nil)
	require.NoError(t, err)

	var branding models.Branding
	require.NoError(t, json.Unmarshal(raw, &branding))
	assert.NotEmpty(t, branding.Logo)
}

func TestBridgedFailure_IsApplicationError(t *testing.T) {
	transport, _ := newBridgedTransport(t)

	_, err := transport.Invoke(context.Background(), models.OpGetAvailableComputers, models.Params{"room": "Lab Z"})
	require.ErrorIs(t, err, adapter.ErrApplication)
	assert.EqualError(t, err, app.MsgUnknownRoom)
}

func TestBridgedSubmitAndList(t *testing.T) {
	transport, _ := newBridgedTransport(t)
	ctx := context.Background()

	_, err := transport.Invoke(ctx, models.OpSubmitRequest, models.Params{
		"name": "Sari", "email": "sari@kampus.ac.id", "room": "Lab B", "computer": "PC-B02", "software": "SPSS",
	})
	require.NoError(t, err)

	raw, err := transport.Invoke(ctx, models.OpGetAdminRequests, models.Params{"status": "Pending"})
	require.NoError(t, err)

	var list []models.AccessRequest
	require.NoError(t, json.Unmarshal(raw, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "PC-B02", list[0].Computer)
}

func TestBridgedUpload_IsVerified(t *testing.T) {
	transport, _ := newBridgedTransport(t)
	ctx := context.Background()

	_, err := transport.Invoke(ctx, models.OpSubmitRequest, models.Params{
		"name": "Sari", "email": "sari@kampus.ac.id", "room": "Lab B", "computer": "PC-B02", "software": "SPSS",
	})
	require.NoError(t, err)

	res, err := transport.UploadFile(ctx, models.UploadRequest{RowIndex: 1, FileData: "aGk=", FileName: "a.txt", MimeType: "text/plain"})
	require.NoError(t, err)
	assert.True(t, res.Verified())
}

func TestProcedure_InvalidArgument(t *testing.T) {
	_, pb := newBridgedTransport(t)

	done := make(chan any, 1)
	pb.Run(models.OpGetBranding, func(v any) { done <- v }, func(reason any) { done <- reason }, 42)

	reason := <-done
	err, ok := reason.(error)
	require.True(t, ok)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestParamsFromArgs(t *testing.T) {
	p, err := paramsFromArgs(nil)
	require.NoError(t, err)
	assert.Empty(t, p)

	p, err = paramsFromArgs([]any{models.Params{"room": "Lab A"}})
	require.NoError(t, err)
	assert.Equal(t, "Lab A", p.String("room"))

	p, err = paramsFromArgs([]any{map[string]any{"room": "Lab B"}})
	require.NoError(t, err)
	assert.Equal(t, "Lab B", p.String("room"))

	p, err = paramsFromArgs([]any{json.RawMessage(`{"room":"Lab C"}`)})
	require.NoError(t, err)
	assert.Equal(t, "Lab C", p.String("room"))

	_, err = paramsFromArgs([]any{json.RawMessage(`[1]`)})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
