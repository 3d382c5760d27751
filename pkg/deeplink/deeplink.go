/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package deeplink

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/samber/lo"

	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/sdkerr"
)

// Query parameters carried by wallet deep links and their request URIs.
const (
	ParamRequestURI          = "request_uri"
	ParamVendorOriginContext = "vendorOriginContext"
	ParamIssuerDID           = "issuerDid"
	ParamInspectorDID        = "inspectorDid"
)

const (
	didPrefix         = "did:"
	maxDecodingRounds = 3
)

// Kind is the action a deep link starts.
type Kind string

const (
	KindIssue   Kind = "issue"
	KindPresent Kind = "present"
	KindUnknown Kind = ""
)

// DeepLink is a parsed wallet deep link. Everything derived from it is a claim made by
// whoever produced the link and must be confirmed against a verified DID document.
type DeepLink struct {
	value      string
	kind       Kind
	query      url.Values
	requestURI *url.URL
}

// Parse parses value ("velocity-network://issue?request_uri=...").
func Parse(value string) (*DeepLink, error) {
	u, err := url.Parse(value)
	if err != nil {
		return nil, invalid(value, err)
	}

	if u.Scheme == "" {
		return nil, invalid(value, errors.New("missing scheme"))
	}

	query := u.Query()

	raw := query.Get(ParamRequestURI)
	if raw == "" {
		return nil, invalid(value, fmt.Errorf("missing %s", ParamRequestURI))
	}

	requestURI, err := url.Parse(decodeUntilStable(raw))
	if err != nil {
		return nil, invalid(value, fmt.Errorf("parse %s: %w", ParamRequestURI, err))
	}

	if !requestURI.IsAbs() {
		return nil, invalid(value, fmt.Errorf("%s is not absolute", ParamRequestURI))
	}

	return &DeepLink{
		value:      value,
		kind:       parseKind(u),
		query:      query,
		requestURI: requestURI,
	}, nil
}

// Value returns the deep link as received.
func (d *DeepLink) Value() string {
	return d.value
}

// Kind returns the action the link starts.
func (d *DeepLink) Kind() Kind {
	return d.kind
}

// RequestURI returns the decoded request URI.
func (d *DeepLink) RequestURI() string {
	return d.requestURI.String()
}

// RequestURIQuery returns a copy of the request URI query parameters.
func (d *DeepLink) RequestURIQuery() url.Values {
	return d.requestURI.Query()
}

// VendorOriginContext returns the issuer supplied context, looked up on the deep link first and
// on the request URI second.
func (d *DeepLink) VendorOriginContext() string {
	if v := d.query.Get(ParamVendorOriginContext); v != "" {
		return v
	}

	return d.requestURI.Query().Get(ParamVendorOriginContext)
}

// DID returns the counterparty DID claimed by the link: the issuerDid or inspectorDid
// parameter of the request URI or, for links produced by older agents, a "did:" path
// segment of the request URI.
func (d *DeepLink) DID() (string, bool) {
	q := d.requestURI.Query()

	for _, param := range []string{ParamIssuerDID, ParamInspectorDID} {
		if v := q.Get(param); v != "" {
			return v, true
		}
	}

	segments := strings.Split(d.requestURI.Path, "/")

	segment, ok := lo.Find(segments, func(s string) bool {
		return strings.HasPrefix(s, didPrefix) && len(s) > len(didPrefix)
	})
	if !ok {
		return "", false
	}

	return segment, true
}

func (d *DeepLink) String() string {
	return d.value
}

func parseKind(u *url.URL) Kind {
	action := u.Host
	if action == "" {
		action = strings.Trim(u.Opaque+u.Path, "/")
	}

	switch strings.ToLower(action) {
	case "issue":
		return KindIssue
	case "present", "inspect":
		return KindPresent
	default:
		return KindUnknown
	}
}

// decodeUntilStable undoes extra rounds of percent encoding applied by some agents. A value
// that already reads as an absolute URL is left alone so encoded query values survive.
func decodeUntilStable(s string) string {
	for i := 0; i < maxDecodingRounds && isEncoded(s); i++ {
		decoded, err := url.QueryUnescape(s)
		if err != nil || decoded == s {
			break
		}

		s = decoded
	}

	return s
}

func isEncoded(s string) bool {
	if strings.Contains(s, "://") {
		return false
	}

	lower := strings.ToLower(s)

	return strings.Contains(lower, "%3a") || strings.Contains(lower, "%2f")
}

func invalid(value string, err error) error {
	return sdkerr.New(sdkerr.InvalidDeepLink, err).
		WithComponent(sdkerr.DeepLinkComponent).
		With(sdkerr.KeyURL, value)
}
