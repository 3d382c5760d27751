/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credentialtypes

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/piprate/json-gold/ld"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/config"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/transport"
)

// ContextLoader is a JSON-LD document loader fetching contexts through the engine's transport,
// so that context requests carry the protocol version header and share its retry policy.
// Contexts are not cached.
type ContextLoader struct {
	ctx     context.Context //nolint:containedctx
	cfg     *config.Config
	network transport.NetworkService
}

var _ ld.DocumentLoader = (*ContextLoader)(nil)

// NewContextLoader returns a loader whose requests are bound to ctx; ld.DocumentLoader carries
// no context of its own.
func NewContextLoader(ctx context.Context, cfg *config.Config, network transport.NetworkService) *ContextLoader {
	return &ContextLoader{ctx: ctx, cfg: cfg, network: network}
}

func (l *ContextLoader) LoadDocument(u string) (*ld.RemoteDocument, error) {
	req, err := transport.NewRequest(l.cfg, http.MethodGet, u, nil)
	if err != nil {
		return nil, ld.NewJsonLdError(ld.LoadingDocumentFailed, err)
	}

	req.Headers["Accept"] = "application/ld+json, application/json"

	resp, err := l.network.SendRequest(l.ctx, req)
	if err != nil {
		return nil, ld.NewJsonLdError(ld.LoadingDocumentFailed, err)
	}

	doc, err := ld.DocumentFromReader(bytes.NewReader(resp.Payload))
	if err != nil {
		return nil, ld.NewJsonLdError(ld.LoadingDocumentFailed, fmt.Errorf("parse JSON-LD document %s: %w", u, err))
	}

	logger.Debug("JSON-LD context loaded", log.WithURL(u))

	return &ld.RemoteDocument{DocumentURL: u, Document: doc}, nil
}
