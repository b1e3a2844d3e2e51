package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-lab-access/models"
)

func TestSettleEnvelope(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr string
	}{
		{name: "data unwrapped", raw: `{"success":true,"data":{"a":1}}`, want: `{"a":1}`},
		{name: "explicit null data", raw: `{"success":true,"data":null}`, want: `null`},
		{name: "data false", raw: `{"success":true,"data":false}`, want: `false`},
		{name: "no data key", raw: `{"success":true,"token":"t"}`, want: `{"success":true,"token":"t"}`},
		{name: "failure with message", raw: `{"success":false,"message":"Room is full"}`, wantErr: "Room is full"},
		{name: "failure without message", raw: `{"success":false}`, wantErr: models.DefaultFailureMessage},
		{name: "missing success", raw: `{"data":1}`, wantErr: models.DefaultFailureMessage},
		{name: "not an object", raw: `"hello"`, wantErr: models.DefaultFailureMessage},
		{name: "numeric success", raw: `{"success":1,"data":{"a":1},"message":"m"}`, want: `{"a":1}`},
		{name: "string success", raw: `{"success":"yes","data":2}`, want: `2`},
		{name: "zero success keeps message", raw: `{"success":0,"message":"Room is full"}`, wantErr: "Room is full"},
		{name: "null success", raw: `{"success":null,"message":"m"}`, wantErr: "m"},
		{name: "numeric message", raw: `{"success":false,"message":404}`, wantErr: "404"},
		{name: "object message", raw: `{"success":false,"message":{"code": 7}}`, wantErr: `{"code":7}`},
		{name: "empty message", raw: `{"success":false,"message":""}`, wantErr: models.DefaultFailureMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := settleEnvelope(json.RawMessage(tt.raw))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				assert.ErrorIs(t, err, ErrApplication)
				return
			}
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestIsEnvelope(t *testing.T) {
	assert.True(t, isEnvelope(json.RawMessage(`{"success":false}`)))
	assert.True(t, isEnvelope(json.RawMessage(`{"success":true,"data":1}`)))
	assert.False(t, isEnvelope(json.RawMessage(`{"success":"yes"}`)))
	assert.False(t, isEnvelope(json.RawMessage(`{"ok":true}`)))
	assert.False(t, isEnvelope(json.RawMessage(`[1,2]`)))
	assert.False(t, isEnvelope(json.RawMessage(`null`)))
}

func TestErrorKinds(t *testing.T) {
	appErr := &ApplicationError{Message: "denied"}
	assert.ErrorIs(t, appErr, ErrApplication)
	assert.NotErrorIs(t, appErr, ErrTransport)

	cause := errors.New("connection refused")
	trErr := &TransportError{URL: "http://h/?path=x", Err: cause}
	assert.ErrorIs(t, trErr, ErrTransport)
	assert.ErrorIs(t, trErr, cause)
	assert.NotErrorIs(t, trErr, ErrApplication)
	assert.Equal(t, "script load failed. URL: http://h/?path=x: connection refused", trErr.Error())
	assert.Equal(t, "script load failed. URL: u", (&TransportError{URL: "u"}).Error())

	native := fmt.Errorf("quota exceeded")
	brErr := &BridgeError{Value: native}
	assert.ErrorIs(t, brErr, ErrBridge)
	assert.ErrorIs(t, brErr, native)
	assert.Equal(t, "quota exceeded", brErr.Error())

	plain := &BridgeError{Value: map[string]any{"code": 7}}
	assert.Nil(t, plain.Unwrap())
	assert.Equal(t, map[string]any{"code": 7}, plain.Value)
}
