/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package testutil

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/sdkerr"
	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/transport"
)

// HandlerFunc answers one routed request.
type HandlerFunc func(req *transport.Request) (*transport.Response, error)

// Network is an in-memory transport.NetworkService routing requests by method and endpoint
// (query string ignored). Unrouted requests fail with a 404 TransportError.
type Network struct {
	mu       sync.Mutex
	routes   map[string]HandlerFunc
	requests []*transport.Request
}

var _ transport.NetworkService = (*Network)(nil)

func NewNetwork() *Network {
	return &Network{routes: map[string]HandlerFunc{}}
}

// Handle routes method+endpoint to h.
func (n *Network) Handle(method, endpoint string, h HandlerFunc) *Network {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.routes[routeKey(method, endpoint)] = h

	return n
}

// JSON answers method+endpoint with a fixed status and payload.
func (n *Network) JSON(method, endpoint string, status int, payload []byte) *Network {
	return n.Handle(method, endpoint, func(*transport.Request) (*transport.Response, error) {
		if status/100 != 2 { //nolint:gomnd
			return nil, sdkerr.Newf(sdkerr.TransportError, "unexpected status code %d: %s", status, payload).
				WithHTTPStatus(status)
		}

		return &transport.Response{StatusCode: status, Header: http.Header{}, Payload: payload}, nil
	})
}

func (n *Network) SendRequest(ctx context.Context, req *transport.Request) (*transport.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, sdkerr.New(sdkerr.TransportError, err)
	}

	n.mu.Lock()
	n.requests = append(n.requests, req)
	h, ok := n.routes[routeKey(req.Method, req.Endpoint)]
	n.mu.Unlock()

	if !ok {
		return nil, sdkerr.Newf(sdkerr.TransportError, "no route for %s %s", req.Method, req.Endpoint).
			WithHTTPStatus(http.StatusNotFound)
	}

	return h(req)
}

// Requests returns the requests sent so far.
func (n *Network) Requests() []*transport.Request {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]*transport.Request(nil), n.requests...)
}

// Last returns the last request sent to method+endpoint.
func (n *Network) Last(method, endpoint string) *transport.Request {
	n.mu.Lock()
	defer n.mu.Unlock()

	key := routeKey(method, endpoint)

	for i := len(n.requests) - 1; i >= 0; i-- {
		if routeKey(n.requests[i].Method, n.requests[i].Endpoint) == key {
			return n.requests[i]
		}
	}

	return nil
}

func routeKey(method, endpoint string) string {
	if u, err := url.Parse(endpoint); err == nil {
		u.RawQuery = ""
		endpoint = u.String()
	}

	return fmt.Sprintf("%s %s", method, endpoint)
}
