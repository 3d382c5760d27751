/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package model

import (
	"errors"

	"github.com/samber/lo"
	"github.com/tidwall/gjson"
)

// ServiceType is a Velocity Network service category an organization is accredited for.
type ServiceType string

const (
	ServiceTypeIssuer                 ServiceType = "Issuer"
	ServiceTypeNotaryIssuer           ServiceType = "NotaryIssuer"
	ServiceTypeCareerIssuer           ServiceType = "CareerIssuer"
	ServiceTypeIdentityIssuer         ServiceType = "IdentityIssuer"
	ServiceTypeIDDocumentIssuer       ServiceType = "IdDocumentIssuer"
	ServiceTypeNotaryIDDocumentIssuer ServiceType = "NotaryIdDocumentIssuer"
	ServiceTypeContactIssuer          ServiceType = "ContactIssuer"
	ServiceTypeNotaryContactIssuer    ServiceType = "NotaryContactIssuer"
	ServiceTypeInspector              ServiceType = "Inspector"
)

// Service type groups.
var (
	IssuingServiceTypes = []ServiceType{ //nolint:gochecknoglobals
		ServiceTypeIssuer, ServiceTypeNotaryIssuer, ServiceTypeCareerIssuer, ServiceTypeIdentityIssuer,
		ServiceTypeIDDocumentIssuer, ServiceTypeNotaryIDDocumentIssuer,
		ServiceTypeContactIssuer, ServiceTypeNotaryContactIssuer,
	}
	InspectorServiceTypes = []ServiceType{ServiceTypeInspector} //nolint:gochecknoglobals
)

// VerifiedProfile is the registrar's accredited profile of an organization. It only serves
// as context for trust checks.
type VerifiedProfile struct {
	payload []byte
}

// NewVerifiedProfile wraps a registrar verified-profile response.
func NewVerifiedProfile(payload []byte) (*VerifiedProfile, error) {
	if !gjson.ValidBytes(payload) || !gjson.ParseBytes(payload).IsObject() {
		return nil, errors.New("verified profile is not a JSON object")
	}

	return &VerifiedProfile{payload: append([]byte(nil), payload...)}, nil
}

// Payload returns a copy of the raw profile.
func (p *VerifiedProfile) Payload() []byte {
	return append([]byte(nil), p.payload...)
}

func (p *VerifiedProfile) subject(path string) gjson.Result {
	return gjson.GetBytes(p.payload, "credentialSubject."+path)
}

// ID returns the organization DID.
func (p *VerifiedProfile) ID() string {
	if id := p.subject("id").String(); id != "" {
		return id
	}

	return gjson.GetBytes(p.payload, "id").String()
}

func (p *VerifiedProfile) Name() string {
	return p.subject("name").String()
}

func (p *VerifiedProfile) Logo() string {
	return p.subject("logo").String()
}

// ServiceTypes returns the accredited service categories.
func (p *VerifiedProfile) ServiceTypes() []ServiceType {
	return lo.Map(p.subject("permittedVelocityServiceCategory").Array(), func(r gjson.Result, _ int) ServiceType {
		return ServiceType(r.String())
	})
}

// HasAnyServiceType reports whether the profile holds at least one of types.
func (p *VerifiedProfile) HasAnyServiceType(types ...ServiceType) bool {
	return len(lo.Intersect(p.ServiceTypes(), types)) > 0
}
