/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/velocitycareerlabs/velocitycore-sub004/internal/logfields"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/config"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/observability/metrics"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/observability/metrics/noop"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/sdkerr"
)

var logger = log.New("transport")

const (
	defaultRetryInterval = 500 * time.Millisecond
	maxErrorBodyLength   = 512
)

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPService is the default NetworkService. Network faults and 5xx answers are retried
// up to the configured number of times.
type HTTPService struct {
	client        httpClient
	metrics       metrics.Metrics
	maxRetries    uint64
	retryInterval time.Duration
}

// Opt configures HTTPService.
type Opt func(s *HTTPService)

// WithHTTPClient overrides the underlying client.
func WithHTTPClient(client httpClient) Opt {
	return func(s *HTTPService) {
		s.client = client
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m metrics.Metrics) Opt {
	return func(s *HTTPService) {
		s.metrics = m
	}
}

// WithRetryInterval sets the constant delay between attempts.
func WithRetryInterval(d time.Duration) Opt {
	return func(s *HTTPService) {
		s.retryInterval = d
	}
}

// NewHTTPService creates the default transport for cfg.
func NewHTTPService(cfg *config.Config, opts ...Opt) *HTTPService {
	s := &HTTPService{
		client:        &http.Client{Timeout: cfg.RequestTimeout()},
		metrics:       noop.GetMetrics(),
		maxRetries:    cfg.MaxRetries(),
		retryInterval: defaultRetryInterval,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// SendRequest sends req and returns the answer of the first successful attempt.
func (s *HTTPService) SendRequest(ctx context.Context, req *Request) (*Response, error) {
	start := time.Now()
	defer func() { s.metrics.TransportRequestTime(time.Since(start)) }()

	var (
		resp    *Response
		attempt int
	)

	err := backoff.RetryNotify(func() error {
		attempt++

		r, err := s.send(ctx, req)
		if err != nil {
			return err
		}

		resp = r

		return nil
	},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(s.retryInterval), s.maxRetries), ctx),
		func(retryErr error, d time.Duration) {
			s.metrics.TransportRetry()

			logger.Warn("request failed, retrying",
				logfields.WithMethod(req.Method),
				log.WithURL(req.Endpoint),
				logfields.WithAttempt(attempt),
				log.WithDuration(d),
				log.WithError(retryErr),
			)
		},
	)
	if err != nil {
		return nil, sdkerr.Wrap(sdkerr.TransportError, err).
			WithComponent(sdkerr.TransportComponent).
			With(sdkerr.KeyURL, req.Endpoint)
	}

	logger.Debug("request completed",
		logfields.WithMethod(req.Method),
		log.WithURL(req.Endpoint),
		log.WithHTTPStatus(resp.StatusCode),
	)

	return resp, nil
}

func (s *HTTPService) send(ctx context.Context, req *Request) (*Response, error) {
	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.Endpoint, body)
	if err != nil {
		return nil, backoff.Permanent(sdkerr.Newf(sdkerr.TransportError, "create request: %w", err))
	}

	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	httpResp, err := s.client.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, backoff.Permanent(sdkerr.Newf(sdkerr.TransportError, "send request: %w", err))
		}

		return nil, sdkerr.Newf(sdkerr.TransportError, "send request: %w", err)
	}

	defer httpResp.Body.Close()

	payload, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, sdkerr.Newf(sdkerr.TransportError, "read response: %w", err)
	}

	if httpResp.StatusCode >= http.StatusOK && httpResp.StatusCode < http.StatusMultipleChoices {
		return &Response{
			StatusCode: httpResp.StatusCode,
			Header:     httpResp.Header,
			Payload:    payload,
		}, nil
	}

	statusErr := sdkerr.New(sdkerr.TransportError,
		fmt.Errorf("unexpected status code %d: %s", httpResp.StatusCode, truncate(payload))).
		WithHTTPStatus(httpResp.StatusCode)

	if httpResp.StatusCode >= http.StatusInternalServerError {
		return nil, statusErr
	}

	return nil, backoff.Permanent(statusErr)
}

func truncate(b []byte) string {
	if len(b) > maxErrorBodyLength {
		return string(b[:maxErrorBodyLength]) + "..."
	}

	return string(b)
}
