package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-lab-access/internal/adapter"
	"github.com/MKhiriev/go-lab-access/internal/config"
	"github.com/MKhiriev/go-lab-access/internal/logger"
	"github.com/MKhiriev/go-lab-access/models"
)

// APIClient is the transport-agnostic lab-access API.
//
// Every method resolves exactly once: with the payload returned by the
// backend or with an error whose kind can be checked against the adapter
// sentinels.
type APIClient struct {
	transport adapter.Transport
	logger    *logger.Logger
}

// New detects the environment once. A non-nil bridge selects bridged mode;
// otherwise calls go to cfg.APIURL as cross-origin poll requests.
func New(cfg config.ClientAdapter, bridge adapter.Bridge, logger *logger.Logger) *APIClient {
	return NewWithTransport(adapter.NewTransport(cfg, bridge, logger), logger)
}

// NewWithTransport builds a client over an existing transport.
func NewWithTransport(transport adapter.Transport, logger *logger.Logger) *APIClient {
	return &APIClient{transport: transport, logger: logger}
}

// Mode reports the selected transport.
func (c *APIClient) Mode() adapter.Mode {
	return c.transport.Mode()
}

// Invoke runs an operation by identifier. Identifiers without a known path
// are sent verbatim.
func (c *APIClient) Invoke(ctx context.Context, operationID string, params models.Params) (json.RawMessage, error) {
	raw, err := c.transport.Invoke(ctx, operationID, params)
	if err != nil {
		c.logger.Debug().Err(err).Str("operation", operationID).Msg("operation failed")
		return nil, err
	}
	return raw, nil
}

// UploadFile submits a file for a request row. In remote mode the result is
// opaque and says nothing about whether the backend stored the file.
func (c *APIClient) UploadFile(ctx context.Context, req models.UploadRequest) (models.UploadResult, error) {
	return c.transport.UploadFile(ctx, req)
}

// Decode unmarshals a resolved payload into T. It passes err through so
// calls can be wrapped directly:
//
//	branding, err := client.Decode[models.Branding](c.GetBranding(ctx))
func Decode[T any](raw json.RawMessage, err error) (T, error) {
	var out T
	if err != nil {
		return out, err
	}
	if err = json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode %T: %w", out, err)
	}
	return out, nil
}
