// Package bridge exposes the development backend as procedures of an
// in-process [adapter.ProcedureBridge], the way the host platform exposes
// the production backend to bridged callers.
package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-lab-access/internal/adapter"
	"github.com/MKhiriev/go-lab-access/internal/backend"
	"github.com/MKhiriev/go-lab-access/internal/logger"
	"github.com/MKhiriev/go-lab-access/models"
)

// ErrInvalidArgument is reported through the failure callback when the
// procedure argument is not a parameter object.
var ErrInvalidArgument = errors.New("procedure argument must be a parameter object")

type Handler struct {
	backend *backend.Backend
	logger  *logger.Logger
}

func NewHandler(b *backend.Backend, logger *logger.Logger) *Handler {
	logger.Info().Msg("bridge handler created")
	return &Handler{
		backend: b,
		logger:  logger,
	}
}

// Register binds one procedure per operation identifier on pb. Procedures
// return the backend envelope as the success value.
func (h *Handler) Register(pb *adapter.ProcedureBridge) {
	for op, path := range models.Operations() {
		pb.Register(op, h.procedure(op, path))
	}
	pb.Register(models.OpUploadFile, h.procedure(models.OpUploadFile, models.PathUploadFile))
}

func (h *Handler) procedure(op, path string) adapter.Procedure {
	return func(args ...any) (any, error) {
		log := h.logger.With().
			Str("call_id", uuid.NewString()).
			Str("operation", op).
			Logger()

		params, err := paramsFromArgs(args)
		if err != nil {
			log.Warn().Err(err).Msg("rejected bridge call")
			return nil, err
		}

		ctx := log.WithContext(context.Background())
		env := h.backend.Handle(ctx, path, params)
		log.Debug().Bool("success", env.Success).Msg("bridge call handled")

		return env, nil
	}
}

// paramsFromArgs turns the positional arguments of a bridge call into
// params. Only the first argument is used.
func paramsFromArgs(args []any) (models.Params, error) {
	if len(args) == 0 || args[0] == nil {
		return models.Params{}, nil
	}

	switch v := args[0].(type) {
	case models.Params:
		return v, nil
	case map[string]any:
		return models.Params(v), nil
	case json.RawMessage:
		var p models.Params
		if err := json.Unmarshal(v, &p); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
		}
		return p, nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrInvalidArgument, args[0])
	}
}
