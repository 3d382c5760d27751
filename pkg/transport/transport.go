/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/config"
)

const (
	HeaderProtocolVersion = "x-vnf-protocol-version"
	HeaderAuthorization   = "Authorization"
	HeaderContentType     = "Content-Type"

	ContentTypeJSON = "application/json"

	bearerPrefix = "Bearer "
)

// Request is a single outgoing call of the engine.
type Request struct {
	Endpoint string
	Method   string
	Headers  map[string]string
	Body     []byte
}

// Response is the raw answer to a Request.
type Response struct {
	StatusCode int
	Header     http.Header
	Payload    []byte
}

// NetworkService sends requests on behalf of the engine. Implementations return a
// TransportError for network faults and non-2xx answers.
type NetworkService interface {
	SendRequest(ctx context.Context, req *Request) (*Response, error)
}

// NewRequest builds a request carrying the configured protocol version. A non-nil body is
// marshaled to JSON.
func NewRequest(cfg *config.Config, method, endpoint string, body interface{}) (*Request, error) {
	req := &Request{
		Endpoint: endpoint,
		Method:   method,
		Headers: map[string]string{
			HeaderProtocolVersion: string(cfg.ProtocolVersion()),
		},
	}

	if body == nil {
		return req, nil
	}

	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request body: %w", err)
	}

	req.Body = b
	req.Headers[HeaderContentType] = ContentTypeJSON

	return req, nil
}

// WithBearer sets the Authorization header from the given tokens. Empty tokens are skipped.
func (r *Request) WithBearer(tokens ...string) *Request {
	if auth := BearerAuthorization(tokens...); auth != "" {
		r.Headers[HeaderAuthorization] = auth
	}

	return r
}

// BearerAuthorization joins tokens into "Bearer <t1>, Bearer <t2>".
func BearerAuthorization(tokens ...string) string {
	var parts []string

	for _, t := range tokens {
		if t == "" {
			continue
		}

		parts = append(parts, bearerPrefix+t)
	}

	return strings.Join(parts, ", ")
}

// JSON decodes the payload into v.
func (r *Response) JSON(v interface{}) error {
	if err := json.Unmarshal(r.Payload, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
