/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package model

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/velocitycareerlabs/velocitycore-sub004/pkg/deeplink"
)

// Query parameters added to request URIs.
const (
	ParamCredentialTypes = "credential_types"
	ParamPushDelegateURL = "push_delegate.push_url"
	ParamPushDelegateTok = "push_delegate.push_token"
	ParamExchangeID      = "exchange_id"
)

// PushDelegate is where an agent pushes updates about the exchange.
type PushDelegate struct {
	PushURL   string `json:"push_url"`
	PushToken string `json:"push_token"`
}

// CredentialManifestDescriptor addresses a credential manifest, either through a deep link or
// through an issuer's advertised service endpoint.
type CredentialManifestDescriptor struct {
	DeepLink        *deeplink.DeepLink
	ServiceEndpoint string
	IssuerDID       string
	CredentialTypes []string
	PushDelegate    *PushDelegate
}

// NewCredentialManifestDescriptorByDeepLink addresses the manifest behind an issuing deep link.
func NewCredentialManifestDescriptorByDeepLink(
	dl *deeplink.DeepLink,
	pushDelegate *PushDelegate,
) *CredentialManifestDescriptor {
	return &CredentialManifestDescriptor{DeepLink: dl, PushDelegate: pushDelegate}
}

// NewCredentialManifestDescriptorByService addresses the manifest of an issuer's service.
func NewCredentialManifestDescriptorByService(
	serviceEndpoint, issuerDID string,
	credentialTypes []string,
	pushDelegate *PushDelegate,
) *CredentialManifestDescriptor {
	return &CredentialManifestDescriptor{
		ServiceEndpoint: serviceEndpoint,
		IssuerDID:       issuerDID,
		CredentialTypes: credentialTypes,
		PushDelegate:    pushDelegate,
	}
}

// Endpoint returns the URL the manifest is fetched from.
func (d *CredentialManifestDescriptor) Endpoint() (string, error) {
	base := d.ServiceEndpoint
	if d.DeepLink != nil {
		base = d.DeepLink.RequestURI()
	}

	if base == "" {
		return "", errors.New("credential manifest descriptor has neither deep link nor service endpoint")
	}

	extra := url.Values{}

	for _, t := range d.CredentialTypes {
		extra.Add(ParamCredentialTypes, t)
	}

	addPushDelegate(extra, d.PushDelegate)

	return appendQuery(base, extra)
}

// PresentationRequestDescriptor addresses a presentation request behind an inspection deep link.
type PresentationRequestDescriptor struct {
	DeepLink     *deeplink.DeepLink
	PushDelegate *PushDelegate
}

// NewPresentationRequestDescriptor addresses the request behind dl.
func NewPresentationRequestDescriptor(
	dl *deeplink.DeepLink,
	pushDelegate *PushDelegate,
) *PresentationRequestDescriptor {
	return &PresentationRequestDescriptor{DeepLink: dl, PushDelegate: pushDelegate}
}

// Endpoint returns the URL the request is fetched from.
func (d *PresentationRequestDescriptor) Endpoint() (string, error) {
	if d.DeepLink == nil {
		return "", errors.New("presentation request descriptor has no deep link")
	}

	extra := url.Values{}
	addPushDelegate(extra, d.PushDelegate)

	return appendQuery(d.DeepLink.RequestURI(), extra)
}

func addPushDelegate(q url.Values, pd *PushDelegate) {
	if pd == nil {
		return
	}

	q.Set(ParamPushDelegateURL, pd.PushURL)
	q.Set(ParamPushDelegateTok, pd.PushToken)
}

func appendQuery(base string, extra url.Values) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse endpoint: %w", err)
	}

	if len(extra) == 0 {
		return u.String(), nil
	}

	q := u.Query()

	for k, values := range extra {
		q.Del(k)

		for _, v := range values {
			q.Add(k, v)
		}
	}

	u.RawQuery = q.Encode()

	return u.String(), nil
}
