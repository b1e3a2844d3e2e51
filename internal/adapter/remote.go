// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-lab-access/internal/config"
	"github.com/MKhiriev/go-lab-access/internal/logger"
	"github.com/MKhiriev/go-lab-access/internal/utils"
	"github.com/MKhiriev/go-lab-access/models"
)

// RemoteTransport reaches the backend with cross-origin poll requests.
//
// Each call registers a one-shot callback under a fresh token, fetches
// <base>?path=..&callback=<token>&.. and executes the returned script, which
// is expected to invoke the token with the response envelope.
type RemoteTransport struct {
	client *utils.HTTPClient

	baseURL       string
	timeout       time.Duration
	uploadTimeout time.Duration

	registry *callbackRegistry
	loaders  *loaderSet

	logger *logger.Logger
}

// NewRemoteTransport constructs a [RemoteTransport] from adapterCfg.
//
// A missing API URL is not fatal: the transport is still returned and every
// call fails with [ErrConfiguration] before any request is made.
func NewRemoteTransport(adapterCfg config.ClientAdapter, logger *logger.Logger) *RemoteTransport {
	baseURL := strings.TrimSpace(adapterCfg.APIURL)
	if baseURL == "" {
		logger.Error().Msg("API URL is missing, remote calls will fail until it is configured")
	}

	return &RemoteTransport{
		client:        utils.NewScriptClient(),
		baseURL:       baseURL,
		timeout:       adapterCfg.RequestTimeout,
		uploadTimeout: adapterCfg.UploadTimeout,
		registry:      newCallbackRegistry(adapterCfg.CallbackPrefix),
		loaders:       newLoaderSet(),
		logger:        logger,
	}
}

// Mode implements [Transport].
func (t *RemoteTransport) Mode() Mode {
	return ModeRemote
}

// Invoke implements [Transport]. operationID is resolved to a backend path
// with [models.ResolvePath]; params (or an empty object) become query
// parameters.
func (t *RemoteTransport) Invoke(ctx context.Context, operationID string, params models.Params) (json.RawMessage, error) {
	if t.baseURL == "" {
		return nil, ErrConfiguration
	}
	if params == nil {
		params = models.Params{}
	}

	return t.poll(ctx, models.ResolvePath(operationID), params)
}

// PendingCallbacks returns the tokens still waiting for a response.
func (t *RemoteTransport) PendingCallbacks() []string {
	return t.registry.tokens()
}

// ActiveLoaders returns the URLs of scripts that have not settled yet.
func (t *RemoteTransport) ActiveLoaders() []string {
	return t.loaders.urls()
}

func (t *RemoteTransport) poll(ctx context.Context, path string, params models.Params) (json.RawMessage, error) {
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	token := t.registry.nextToken()
	call := t.registry.register(token)
	requestURL := buildRequestURL(t.baseURL, path, token, params)
	t.loaders.insert(token, requestURL)

	t.logger.Debug().Str("url", requestURL).Msg("jsonp request")
	go t.load(ctx, token, requestURL)

	select {
	case res := <-call.resCh:
		return res.value, res.err
	case <-ctx.Done():
		if t.release(token) == nil {
			// settled while the context was ending
			res := <-call.resCh
			return res.value, res.err
		}
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s: %w", ErrTimeout, path, ctx.Err())
		}
		return nil, fmt.Errorf("request %s: %w", path, ctx.Err())
	}
}

// load fetches the script and executes it. Load failures settle the call
// with a [TransportError].
func (t *RemoteTransport) load(ctx context.Context, token, requestURL string) {
	resp, err := t.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/javascript, */*;q=0.8").
		Get(requestURL)
	if err == nil {
		err = mapLoadError(resp)
	}
	if err != nil {
		if ctx.Err() != nil {
			// poll settles calls whose context ended
			return
		}
		call := t.release(token)
		if call == nil {
			return
		}
		t.logger.Error().Err(err).Str("url", requestURL).Msg("script failed to load")
		call.reject(&TransportError{URL: requestURL, Err: err})
		return
	}

	t.execute(requestURL, resp.Body())
}

// execute runs the callback named by the script. A script that names no
// registered token leaves its request pending, exactly like a script that
// never calls back.
func (t *RemoteTransport) execute(requestURL string, body []byte) {
	callee, arg, err := parseCallbackScript(body)
	if err != nil {
		t.logger.Warn().Err(err).Str("url", requestURL).Msg("script did not invoke a callback")
		return
	}

	if !t.deliver(callee, arg) {
		t.logger.Warn().Str("callee", callee).Str("url", requestURL).Msg("script invoked an unregistered callback")
	}
}

// deliver settles the call registered under token with the raw envelope.
// It unregisters the token and removes the loader before settling.
func (t *RemoteTransport) deliver(token string, raw json.RawMessage) bool {
	call := t.release(token)
	if call == nil {
		return false
	}

	value, err := settleEnvelope(raw)
	if err != nil {
		call.reject(err)
		return true
	}

	call.resolve(value)
	return true
}

func (t *RemoteTransport) release(token string) *pendingCall {
	call := t.registry.take(token)
	if call == nil {
		return nil
	}
	t.loaders.remove(token)
	return call
}

// UploadFile implements [Transport]. The file cannot travel in a URL, so it
// is posted as a text/plain JSON body whose response is never read. The
// result is opaque: sent, not confirmed.
func (t *RemoteTransport) UploadFile(ctx context.Context, req models.UploadRequest) (models.UploadResult, error) {
	if t.baseURL == "" {
		return models.UploadResult{}, ErrConfiguration
	}

	body, err := json.Marshal(models.UploadBody{Path: models.PathUploadFile, UploadRequest: req})
	if err != nil {
		return models.UploadResult{}, fmt.Errorf("encode upload body: %w", err)
	}

	if t.uploadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.uploadTimeout)
		defer cancel()
	}

	t.logger.Debug().Str("file", req.FileName).Int("row", req.RowIndex).Msg("opaque upload")

	_, err = t.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "text/plain").
		SetBody(body).
		Post(t.baseURL)
	if err != nil {
		t.logger.Error().Err(err).Str("file", req.FileName).Msg("upload submission failed")
		return models.UploadResult{}, &TransportError{URL: t.baseURL, Err: err}
	}

	return models.UploadResult{Success: true, Opaque: true}, nil
}
