package adapter

import (
	"github.com/MKhiriev/go-lab-access/internal/config"
	"github.com/MKhiriev/go-lab-access/internal/logger"
)

// NewTransport selects the transport once. A non-nil bridge means the caller
// runs inside the host platform; otherwise the remote transport is built
// from adapterCfg.
func NewTransport(adapterCfg config.ClientAdapter, bridge Bridge, logger *logger.Logger) Transport {
	if bridge != nil {
		logger.Info().Msg("host bridge detected, using bridged transport")
		return NewBridgedTransport(bridge, logger)
	}

	logger.Info().Str("api_url", adapterCfg.APIURL).Msg("using remote transport")
	return NewRemoteTransport(adapterCfg, logger)
}
