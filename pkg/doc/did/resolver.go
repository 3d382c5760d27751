/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package did

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/velocitycareerlabs/velocitycore-sub004/internal/logfields"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/config"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/observability/metrics"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/observability/metrics/noop"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/sdkerr"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/transport"
)

//go:generate mockgen -destination gomocks_test.go -package did_test github.com/velocitycareerlabs/velocitycore-sub004/pkg/transport NetworkService

var logger = log.New("did-resolver")

const resolutionEnvelopeKey = "didDocument"

// Resolver fetches DID documents from the registrar's resolver endpoint.
type Resolver struct {
	cfg     *config.Config
	network transport.NetworkService
	metrics metrics.Metrics
}

// ResolverOpt configures Resolver.
type ResolverOpt func(r *Resolver)

// WithMetrics sets the metrics sink.
func WithMetrics(m metrics.Metrics) ResolverOpt {
	return func(r *Resolver) {
		r.metrics = m
	}
}

// NewResolver returns a resolver using the given transport.
func NewResolver(cfg *config.Config, network transport.NetworkService, opts ...ResolverOpt) *Resolver {
	r := &Resolver{
		cfg:     cfg,
		network: network,
		metrics: noop.GetMetrics(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve fetches the document for did. Both a bare document and a DID resolution result
// ({"didDocument": {...}}) are accepted.
func (r *Resolver) Resolve(ctx context.Context, did string) (*Document, error) {
	start := time.Now()
	defer func() { r.metrics.ResolveDIDTime(time.Since(start)) }()

	if did == "" {
		return nil, resolutionError(did, errors.New("empty DID"), "validate DID")
	}

	req, err := transport.NewRequest(r.cfg, http.MethodGet, r.cfg.ResolveDIDURL(did), nil)
	if err != nil {
		return nil, resolutionError(did, err, "build request")
	}

	resp, err := r.network.SendRequest(ctx, req)
	if err != nil {
		return nil, resolutionError(did, err, "fetch DID document")
	}

	raw := resp.Payload
	if envelope := gjson.GetBytes(raw, resolutionEnvelopeKey); envelope.IsObject() {
		raw = []byte(envelope.Raw)
	}

	doc, err := ParseDocument(raw)
	if err != nil {
		return nil, resolutionError(did, err, "parse DID document")
	}

	logger.Debug("DID resolved", logfields.WithDID(did), log.WithURL(req.Endpoint))

	return doc, nil
}

func resolutionError(did string, cause error, operation string) error {
	logger.Warn("DID resolution failed", logfields.WithDID(did), log.WithError(cause))

	return sdkerr.New(sdkerr.ResolutionFailed, cause).
		WithComponent(sdkerr.DIDResolverComponent).
		WithOperation(operation).
		With(sdkerr.KeyDID, did)
}
